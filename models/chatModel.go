package models

import "time"

const (
	SenderTypeUser  = "user"
	SenderTypeAdmin = "admin"
)

type ChatMessage struct {
	MessageID   uint      `json:"message_id" gorm:"primaryKey"`
	UserID      int64     `json:"user_id" gorm:"index"`
	AdminID     *int64    `json:"admin_id"`
	MessageText string    `json:"message_text"`
	SenderType  string    `json:"sender_type" gorm:"size:10"`
	IsRead      bool      `json:"is_read" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
}
