package store

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrOutOfStock    = errors.New("not enough stock")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrDuplicate     = errors.New("already exists")
	ErrBadTransition = errors.New("invalid status transition")
)
