package models

import (
	"time"

	"gorm.io/datatypes"
)

// DialogState is the persisted conversational position of one chat. It is
// loaded before an update is handled and written back after every
// transition, so a restart never loses a half-finished wizard.
type DialogState struct {
	ChatID    int64          `json:"chat_id" gorm:"primaryKey;autoIncrement:false"`
	State     string         `json:"state" gorm:"size:64"`
	Data      datatypes.JSON `json:"data"`
	UpdatedAt time.Time      `json:"updated_at"`
}
