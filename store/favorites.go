package store

import (
	"errors"

	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/models"
	"gorm.io/gorm"
)

func ListFavorites(userID int64) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := initializers.DB.Preload("Product").
		Where("user_id = ?", userID).
		Order("favorite_id").
		Find(&favorites).Error
	return favorites, err
}

func AddFavorite(userID int64, productID uint) error {
	if _, err := GetProduct(productID); err != nil {
		return err
	}
	var existing models.Favorite
	err := initializers.DB.Where("user_id = ? AND product_id = ?", userID, productID).First(&existing).Error
	if err == nil {
		return ErrDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return initializers.DB.Create(&models.Favorite{UserID: userID, ProductID: productID}).Error
}

func RemoveFavorite(userID int64, productID uint) error {
	result := initializers.DB.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func IsFavorite(userID int64, productID uint) bool {
	var count int64
	initializers.DB.Model(&models.Favorite{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count)
	return count > 0
}
