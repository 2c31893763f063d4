package models

import "time"

const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusDelivering = "delivering"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

const (
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
)

type Order struct {
	OrderID        uint        `json:"order_id" gorm:"primaryKey"`
	UserID         int64       `json:"user_id" gorm:"index"`
	NeighborhoodID *uint       `json:"neighborhood_id"`
	FullName       string      `json:"full_name" gorm:"size:255"`
	Phone          string      `json:"phone" gorm:"size:20"`
	Address        string      `json:"address"`
	TotalAmount    float64     `json:"total_amount"`
	DeliveryPrice  float64     `json:"delivery_price"`
	PaymentMethod  string      `json:"payment_method" gorm:"size:10;default:cash"`
	Status         string      `json:"status" gorm:"size:20;index;default:pending"`
	Notes          string      `json:"notes"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
	Items          []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	User           User        `json:"user" gorm:"foreignKey:UserID"`
}

type OrderItem struct {
	OrderItemID uint    `json:"order_item_id" gorm:"primaryKey"`
	OrderID     uint    `json:"order_id" gorm:"index"`
	ProductID   uint    `json:"product_id"`
	Quantity    int     `json:"quantity"`
	// Price is the unit price at purchase time; it never tracks later
	// catalog changes.
	Price   float64 `json:"price"`
	Product Product `json:"product" gorm:"foreignKey:ProductID"`
}

// ValidStatusTransition reports whether an order may move from one status
// to another. Cancellation is allowed from any non-terminal status.
func ValidStatusTransition(from, to string) bool {
	if from == OrderStatusCompleted || from == OrderStatusCancelled {
		return false
	}
	switch to {
	case OrderStatusConfirmed:
		return from == OrderStatusPending
	case OrderStatusDelivering:
		return from == OrderStatusConfirmed
	case OrderStatusCompleted:
		return from == OrderStatusDelivering
	case OrderStatusCancelled:
		return true
	}
	return false
}
