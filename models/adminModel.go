package models

import "time"

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type Admin struct {
	AdminID  int64     `json:"admin_id" gorm:"primaryKey;autoIncrement:false"`
	Username string    `json:"username" gorm:"size:64"`
	Role     string    `json:"role" gorm:"size:20;default:admin"`
	IsActive bool      `json:"is_active" gorm:"default:true"`
	AddedAt  time.Time `json:"added_at" gorm:"autoCreateTime"`
}

type VerificationCode struct {
	CodeID    uint      `json:"code_id" gorm:"primaryKey"`
	Phone     string    `json:"phone" gorm:"size:32;index"`
	Code      string    `json:"code" gorm:"size:10"`
	ExpiresAt time.Time `json:"expires_at"`
	IsUsed    bool      `json:"is_used" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}

type Session struct {
	SessionID string    `json:"session_id" gorm:"primaryKey;size:36"`
	UserID    int64     `json:"user_id" gorm:"index"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// UserbotSettings is a singleton row holding the credentials of the
// secondary account used for verification-code delivery.
type UserbotSettings struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	APIID         string `json:"api_id" gorm:"size:32"`
	APIHash       string `json:"api_hash" gorm:"size:64"`
	Phone         string `json:"phone" gorm:"size:20"`
	SessionString string `json:"session_string"`
	IsActive      bool   `json:"is_active" gorm:"default:false"`
}
