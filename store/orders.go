package store

import (
	"errors"

	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/models"
	"gorm.io/gorm"
)

// OrderRequest carries the checkout answers collected by either facade.
type OrderRequest struct {
	UserID         int64
	FullName       string
	Phone          string
	Address        string
	NeighborhoodID *uint
	PaymentMethod  string
	Notes          string
}

// PlaceOrder turns the user's cart into an order. The total is computed
// once from the cart snapshot, each order item locks the unit price in
// effect at purchase time, stock is decremented per line, and the cart is
// cleared. Both the HTTP handler and the bot checkout go through here.
func PlaceOrder(req OrderRequest) (*models.Order, error) {
	items, err := GetCartItems(req.UserID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := CartTotal(items)

	var deliveryPrice float64
	if req.NeighborhoodID != nil {
		neighborhood, err := GetNeighborhood(*req.NeighborhoodID)
		if err != nil {
			return nil, err
		}
		deliveryPrice = neighborhood.DeliveryPrice
	}

	if req.PaymentMethod == "" {
		req.PaymentMethod = models.PaymentMethodCash
	}

	order := &models.Order{
		UserID:         req.UserID,
		NeighborhoodID: req.NeighborhoodID,
		FullName:       req.FullName,
		Phone:          req.Phone,
		Address:        req.Address,
		TotalAmount:    subtotal + deliveryPrice,
		DeliveryPrice:  deliveryPrice,
		PaymentMethod:  req.PaymentMethod,
		Status:         models.OrderStatusPending,
		Notes:          req.Notes,
	}

	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for _, item := range items {
			orderItem := models.OrderItem{
				OrderID:   order.OrderID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Product.EffectivePrice(),
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
			if err := DecrementStock(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return tx.Where("user_id = ?", req.UserID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	return GetOrder(order.OrderID)
}

func GetOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	err := initializers.DB.Preload("Items").Preload("Items.Product").Preload("User").
		Where("order_id = ?", orderID).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func ListUserOrders(userID int64) ([]models.Order, error) {
	var orders []models.Order
	err := initializers.DB.Preload("Items").Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// ListOrders pages through all orders, newest first, optionally filtered
// by status.
func ListOrders(status string, page, limit int) ([]models.Order, int64, error) {
	query := initializers.DB.Model(&models.Order{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var orders []models.Order
	err := query.Preload("Items").Preload("Items.Product").Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&orders).Error
	return orders, total, err
}

// ListActiveOrders returns orders still in flight, oldest first, for the
// admin work queue.
func ListActiveOrders() ([]models.Order, error) {
	var orders []models.Order
	err := initializers.DB.Preload("Items").Preload("Items.Product").Preload("User").
		Where("status IN ?", []string{models.OrderStatusPending, models.OrderStatusConfirmed, models.OrderStatusDelivering}).
		Order("created_at").
		Find(&orders).Error
	return orders, err
}

// UpdateOrderStatus moves an order along its lifecycle. Cancelling puts
// every ordered quantity back in stock.
func UpdateOrderStatus(orderID uint, newStatus string) (*models.Order, error) {
	order, err := GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !models.ValidStatusTransition(order.Status, newStatus) {
		return nil, ErrBadTransition
	}

	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		if newStatus == models.OrderStatusCancelled {
			for _, item := range order.Items {
				if err := RestoreStock(tx, item.ProductID, item.Quantity); err != nil {
					return err
				}
			}
		}
		return tx.Model(&models.Order{}).Where("order_id = ?", orderID).Update("status", newStatus).Error
	})
	if err != nil {
		return nil, err
	}

	order.Status = newStatus
	return order, nil
}
