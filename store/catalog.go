package store

import (
	"errors"
	"strings"

	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/models"
	"gorm.io/gorm"
)

func ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := initializers.DB.Where("is_active = ?", true).Order("category_id").Find(&categories).Error
	return categories, err
}

func GetCategory(categoryID uint) (*models.Category, error) {
	var category models.Category
	err := initializers.DB.Where("category_id = ? AND is_active = ?", categoryID, true).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func CreateCategory(category *models.Category) error {
	category.IsActive = true
	return initializers.DB.Create(category).Error
}

// ListAllCategories includes inactive rows, for the admin surface.
func ListAllCategories() ([]models.Category, error) {
	var categories []models.Category
	err := initializers.DB.Order("category_id").Find(&categories).Error
	return categories, err
}

// UpdateCategory does not filter on the active flag so admins can flip
// is_active back on a soft-deleted row.
func UpdateCategory(categoryID uint, updates map[string]any) error {
	result := initializers.DB.Model(&models.Category{}).
		Where("category_id = ?", categoryID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteCategory(categoryID uint) error {
	return UpdateCategory(categoryID, map[string]any{"is_active": false})
}

// ListProducts returns active products, optionally narrowed to a category
// or a case-insensitive name search across both languages.
func ListProducts(categoryID *uint, search string) ([]models.Product, error) {
	query := initializers.DB.Where("is_active = ?", true)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name_uz) LIKE ? OR LOWER(name_ru) LIKE ?", pattern, pattern)
	}
	var products []models.Product
	err := query.Order("product_id").Find(&products).Error
	return products, err
}

func GetProduct(productID uint) (*models.Product, error) {
	var product models.Product
	err := initializers.DB.Where("product_id = ? AND is_active = ?", productID, true).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func CreateProduct(product *models.Product) error {
	product.IsActive = true
	return initializers.DB.Create(product).Error
}

// ListAllProducts includes inactive rows, for the admin surface.
func ListAllProducts() ([]models.Product, error) {
	var products []models.Product
	err := initializers.DB.Order("product_id").Find(&products).Error
	return products, err
}

// UpdateProduct does not filter on the active flag so admins can flip
// is_active back on a soft-deleted row.
func UpdateProduct(productID uint, updates map[string]any) error {
	result := initializers.DB.Model(&models.Product{}).
		Where("product_id = ?", productID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteProduct(productID uint) error {
	return UpdateProduct(productID, map[string]any{"is_active": false})
}

func SetProductImage(productID uint, imagePath string) error {
	return UpdateProduct(productID, map[string]any{"image_path": imagePath})
}

// DecrementStock subtracts sold quantity from a product. Callers read the
// current value first, so concurrent sales of the last unit can both
// succeed; see the placement path in orders.go.
func DecrementStock(tx *gorm.DB, productID uint, quantity int) error {
	var product models.Product
	if err := tx.Where("product_id = ?", productID).First(&product).Error; err != nil {
		return err
	}
	return tx.Model(&product).Update("stock_quantity", product.StockQuantity-quantity).Error
}

// RestoreStock adds cancelled quantity back to a product.
func RestoreStock(tx *gorm.DB, productID uint, quantity int) error {
	var product models.Product
	if err := tx.Where("product_id = ?", productID).First(&product).Error; err != nil {
		return err
	}
	return tx.Model(&product).Update("stock_quantity", product.StockQuantity+quantity).Error
}
