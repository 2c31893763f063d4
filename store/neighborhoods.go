package store

import (
	"errors"

	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/models"
	"gorm.io/gorm"
)

func ListNeighborhoods() ([]models.Neighborhood, error) {
	var neighborhoods []models.Neighborhood
	err := initializers.DB.Where("is_active = ?", true).Order("neighborhood_id").Find(&neighborhoods).Error
	return neighborhoods, err
}

func GetNeighborhood(neighborhoodID uint) (*models.Neighborhood, error) {
	var neighborhood models.Neighborhood
	err := initializers.DB.Where("neighborhood_id = ? AND is_active = ?", neighborhoodID, true).First(&neighborhood).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &neighborhood, nil
}

func CreateNeighborhood(neighborhood *models.Neighborhood) error {
	neighborhood.IsActive = true
	return initializers.DB.Create(neighborhood).Error
}

// ListAllNeighborhoods includes inactive rows, for the admin surface.
func ListAllNeighborhoods() ([]models.Neighborhood, error) {
	var neighborhoods []models.Neighborhood
	err := initializers.DB.Order("neighborhood_id").Find(&neighborhoods).Error
	return neighborhoods, err
}

// UpdateNeighborhood does not filter on the active flag so admins can
// flip is_active back on a soft-deleted row.
func UpdateNeighborhood(neighborhoodID uint, updates map[string]any) error {
	result := initializers.DB.Model(&models.Neighborhood{}).
		Where("neighborhood_id = ?", neighborhoodID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteNeighborhood(neighborhoodID uint) error {
	return UpdateNeighborhood(neighborhoodID, map[string]any{"is_active": false})
}
