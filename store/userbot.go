package store

import (
	"errors"

	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/models"
	"gorm.io/gorm"
)

// GetUserbotSettings returns the singleton settings row, creating an
// inactive one on first access.
func GetUserbotSettings() (*models.UserbotSettings, error) {
	var settings models.UserbotSettings
	err := initializers.DB.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.UserbotSettings{IsActive: false}
		if err := initializers.DB.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func UpdateUserbotSettings(updates map[string]any) (*models.UserbotSettings, error) {
	settings, err := GetUserbotSettings()
	if err != nil {
		return nil, err
	}
	if err := initializers.DB.Model(settings).Updates(updates).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
