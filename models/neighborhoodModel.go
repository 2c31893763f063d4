package models

type Neighborhood struct {
	NeighborhoodID uint    `json:"neighborhood_id" gorm:"primaryKey"`
	NameUz         string  `json:"name_uz" gorm:"size:255" binding:"required"`
	NameRu         string  `json:"name_ru" gorm:"size:255" binding:"required"`
	DeliveryPrice  float64 `json:"delivery_price"`
	IsActive       bool    `json:"is_active" gorm:"default:true"`
}

// Name returns the localized neighborhood name.
func (n *Neighborhood) Name(lang string) string {
	if lang == "ru" {
		return n.NameRu
	}
	return n.NameUz
}
