package models

import "time"

type CartItem struct {
	CartID    uint      `json:"cart_id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"index"`
	ProductID uint      `json:"product_id" gorm:"index"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at" gorm:"autoCreateTime"`
	Product   Product   `json:"product" gorm:"foreignKey:ProductID"`
}

type Favorite struct {
	FavoriteID uint    `json:"favorite_id" gorm:"primaryKey"`
	UserID     int64   `json:"user_id" gorm:"uniqueIndex:idx_favorite_user_product"`
	ProductID  uint    `json:"product_id" gorm:"uniqueIndex:idx_favorite_user_product"`
	Product    Product `json:"product" gorm:"foreignKey:ProductID"`
}
