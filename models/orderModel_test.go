package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatusTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusConfirmed, OrderStatusDelivering, true},
		{OrderStatusDelivering, OrderStatusCompleted, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusDelivering, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusDelivering, false},
		{OrderStatusPending, OrderStatusCompleted, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusConfirmed, false},
		{OrderStatusCancelled, OrderStatusCancelled, false},
	}
	for _, tt := range tests {
		t.Run(tt.from+"_to_"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidStatusTransition(tt.from, tt.to))
		})
	}
}

func TestEffectivePrice(t *testing.T) {
	discount := 800.0
	withDiscount := Product{Price: 1000, DiscountPrice: &discount}
	assert.Equal(t, 800.0, withDiscount.EffectivePrice())

	plain := Product{Price: 1000}
	assert.Equal(t, 1000.0, plain.EffectivePrice())

	zero := 0.0
	zeroDiscount := Product{Price: 1000, DiscountPrice: &zero}
	assert.Equal(t, 1000.0, zeroDiscount.EffectivePrice(), "zero discount means no discount")
}
