package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/models"
)

// CreateSession records a login. Sessions are bookkeeping for audits and
// logout; token validity itself is carried by the JWT expiry.
func CreateSession(userID int64) (*models.Session, error) {
	session := &models.Session{
		SessionID: uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Duration(initializers.Cfg.JWTExpireHours) * time.Hour),
	}
	if err := initializers.DB.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

func DeleteSession(sessionID string) error {
	return initializers.DB.Where("session_id = ?", sessionID).Delete(&models.Session{}).Error
}

func DeleteUserSessions(userID int64) error {
	return initializers.DB.Where("user_id = ?", userID).Delete(&models.Session{}).Error
}
