package store

import (
	"errors"
	"time"

	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/models"
	"github.com/zarbdor/zarbdor-api/utils"
	"gorm.io/gorm"
)

// CreateVerificationCode issues a fresh code for a phone number. The code
// is time-boxed; old codes are not invalidated, they simply expire.
func CreateVerificationCode(phone string) (string, error) {
	code := utils.GenerateCode(initializers.Cfg.CodeLength)
	record := models.VerificationCode{
		Phone:     phone,
		Code:      code,
		ExpiresAt: time.Now().Add(time.Duration(initializers.Cfg.CodeExpireMinutes) * time.Minute),
	}
	if err := initializers.DB.Create(&record).Error; err != nil {
		return "", err
	}
	return code, nil
}

// VerifyCode consumes the newest matching code that is still unused and
// unexpired. A code can only ever succeed once.
func VerifyCode(phone, code string) (bool, error) {
	var record models.VerificationCode
	err := initializers.DB.
		Where("phone = ? AND code = ? AND is_used = ? AND expires_at > ?", phone, code, false, time.Now()).
		Order("created_at DESC").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := initializers.DB.Model(&record).Update("is_used", true).Error; err != nil {
		return false, err
	}
	return true, nil
}
