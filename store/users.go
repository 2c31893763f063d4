package store

import (
	"errors"
	"strconv"

	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/models"
	"gorm.io/gorm"
)

func GetUser(userID int64) (*models.User, error) {
	var user models.User
	err := initializers.DB.Where("user_id = ? AND is_active = ?", userID, true).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByPhone(phone string) (*models.User, error) {
	var user models.User
	err := initializers.DB.Where("phone = ?", phone).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(user *models.User) error {
	return initializers.DB.Create(user).Error
}

// GetOrCreateUserByPhone backs API logins: telegram users already have a
// row keyed by their telegram id, while first-time API users get a
// synthetic id derived from the phone digits.
func GetOrCreateUserByPhone(phone string) (*models.User, error) {
	user, err := GetUserByPhone(phone)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	id, convErr := strconv.ParseInt(digitsOf(phone), 10, 64)
	if convErr != nil {
		return nil, convErr
	}
	created := &models.User{
		UserID:   id,
		Phone:    phone,
		Language: "uz",
		IsActive: true,
	}
	if err := initializers.DB.Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}

func digitsOf(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// SetUserActive flips a user's active flag. Deactivating also drops the
// user's sessions so issued tokens stop working immediately.
func SetUserActive(userID int64, active bool) error {
	result := initializers.DB.Model(&models.User{}).
		Where("user_id = ?", userID).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	if !active {
		return DeleteUserSessions(userID)
	}
	return nil
}

func UpdateUserLanguage(userID int64, language string) error {
	return initializers.DB.Model(&models.User{}).Where("user_id = ?", userID).Update("language", language).Error
}

func ListUsers(page, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64
	if err := initializers.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := initializers.DB.Order("registered_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&users).Error
	return users, total, err
}

func ListUserIDs() ([]int64, error) {
	var ids []int64
	err := initializers.DB.Model(&models.User{}).Where("is_active = ?", true).Pluck("user_id", &ids).Error
	return ids, err
}

func CountUsers() (int64, error) {
	var total int64
	err := initializers.DB.Model(&models.User{}).Count(&total).Error
	return total, err
}
