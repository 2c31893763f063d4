package store

import (
	"errors"

	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/models"
	"gorm.io/gorm"
)

func GetAdmin(adminID int64) (*models.Admin, error) {
	var admin models.Admin
	err := initializers.DB.Where("admin_id = ? AND is_active = ?", adminID, true).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func IsAdmin(adminID int64) bool {
	_, err := GetAdmin(adminID)
	return err == nil
}

func IsSuperAdmin(adminID int64) bool {
	admin, err := GetAdmin(adminID)
	return err == nil && admin.Role == models.RoleSuperAdmin
}

func ListAdmins() ([]models.Admin, error) {
	var admins []models.Admin
	err := initializers.DB.Where("is_active = ?", true).Order("added_at").Find(&admins).Error
	return admins, err
}

func ListAdminIDs() ([]int64, error) {
	var ids []int64
	err := initializers.DB.Model(&models.Admin{}).Where("is_active = ?", true).Pluck("admin_id", &ids).Error
	return ids, err
}

// AddAdmin creates or reactivates an admin row.
func AddAdmin(adminID int64, username, role string) error {
	if role != models.RoleSuperAdmin {
		role = models.RoleAdmin
	}
	var existing models.Admin
	err := initializers.DB.Where("admin_id = ?", adminID).First(&existing).Error
	if err == nil {
		if existing.IsActive {
			return ErrDuplicate
		}
		return initializers.DB.Model(&existing).
			Updates(map[string]any{"is_active": true, "role": role, "username": username}).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return initializers.DB.Create(&models.Admin{
		AdminID:  adminID,
		Username: username,
		Role:     role,
		IsActive: true,
	}).Error
}

func RemoveAdmin(adminID int64) error {
	result := initializers.DB.Model(&models.Admin{}).
		Where("admin_id = ? AND is_active = ?", adminID, true).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
