package store

import (
	"errors"

	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/models"
	"gorm.io/gorm"
)

func GetCartItems(userID int64) ([]models.CartItem, error) {
	var items []models.CartItem
	err := initializers.DB.Preload("Product").
		Where("user_id = ?", userID).
		Order("added_at").
		Find(&items).Error
	return items, err
}

// CartTotal sums quantity times the effective unit price over the items.
func CartTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.Product.EffectivePrice()
	}
	return total
}

// AddToCart puts a product in the user's cart. Adding a product that is
// already there merges into the existing row's quantity.
func AddToCart(userID int64, productID uint, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}
	product, err := GetProduct(productID)
	if err != nil {
		return err
	}

	var item models.CartItem
	err = initializers.DB.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if err == nil {
		if product.StockQuantity < item.Quantity+quantity {
			return ErrOutOfStock
		}
		return initializers.DB.Model(&item).Update("quantity", item.Quantity+quantity).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if product.StockQuantity < quantity {
		return ErrOutOfStock
	}
	return initializers.DB.Create(&models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}).Error
}

// UpdateCartQuantity sets an absolute quantity on a cart row the user
// owns. Zero or negative removes the row.
func UpdateCartQuantity(cartID uint, userID int64, quantity int) error {
	var item models.CartItem
	err := initializers.DB.Preload("Product").
		Where("cart_id = ? AND user_id = ?", cartID, userID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if quantity <= 0 {
		return initializers.DB.Delete(&item).Error
	}
	if item.Product.StockQuantity < quantity {
		return ErrOutOfStock
	}
	return initializers.DB.Model(&item).Update("quantity", quantity).Error
}

func GetCartItem(cartID uint, userID int64) (*models.CartItem, error) {
	var item models.CartItem
	err := initializers.DB.Preload("Product").
		Where("cart_id = ? AND user_id = ?", cartID, userID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func RemoveCartItem(cartID uint, userID int64) error {
	result := initializers.DB.Where("cart_id = ? AND user_id = ?", cartID, userID).Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func ClearCart(userID int64) error {
	return initializers.DB.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
