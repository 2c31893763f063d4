package store

import (
	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/models"
)

func SaveChatMessage(message *models.ChatMessage) error {
	return initializers.DB.Create(message).Error
}

// GetUserMessages returns a user's full conversation, oldest first, and
// marks the other party's messages as read.
func GetUserMessages(userID int64, readerType string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := initializers.DB.Where("user_id = ?", userID).Order("created_at").Find(&messages).Error
	if err != nil {
		return nil, err
	}

	otherSender := models.SenderTypeAdmin
	if readerType == models.SenderTypeAdmin {
		otherSender = models.SenderTypeUser
	}
	err = initializers.DB.Model(&models.ChatMessage{}).
		Where("user_id = ? AND sender_type = ? AND is_read = ?", userID, otherSender, false).
		Update("is_read", true).Error
	return messages, err
}

// ChatSummary is one open conversation in the admin inbox.
type ChatSummary struct {
	User        models.User `json:"user"`
	UnreadCount int64       `json:"unread_count"`
}

// ListUnreadChats returns users with unread incoming messages, together
// with how many are waiting.
func ListUnreadChats() ([]ChatSummary, error) {
	var userIDs []int64
	err := initializers.DB.Model(&models.ChatMessage{}).
		Where("sender_type = ? AND is_read = ?", models.SenderTypeUser, false).
		Distinct("user_id").
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]ChatSummary, 0, len(userIDs))
	for _, id := range userIDs {
		var user models.User
		if err := initializers.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
			continue
		}
		var count int64
		initializers.DB.Model(&models.ChatMessage{}).
			Where("user_id = ? AND sender_type = ? AND is_read = ?", id, models.SenderTypeUser, false).
			Count(&count)
		summaries = append(summaries, ChatSummary{User: user, UnreadCount: count})
	}
	return summaries, nil
}
