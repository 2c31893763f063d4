package models

import "time"

type User struct {
	UserID       int64     `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	Username     string    `json:"username" gorm:"size:64"`
	FirstName    string    `json:"first_name" gorm:"size:128"`
	LastName     string    `json:"last_name" gorm:"size:128"`
	Phone        string    `json:"phone" gorm:"size:20;uniqueIndex"`
	Language     string    `json:"language" gorm:"size:2;default:uz"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	RegisteredAt time.Time `json:"registered_at" gorm:"autoCreateTime"`
}
