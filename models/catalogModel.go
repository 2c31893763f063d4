package models

type Category struct {
	CategoryID    uint   `json:"category_id" gorm:"primaryKey"`
	NameUz        string `json:"name_uz" gorm:"size:255" binding:"required"`
	NameRu        string `json:"name_ru" gorm:"size:255" binding:"required"`
	DescriptionUz string `json:"description_uz"`
	DescriptionRu string `json:"description_ru"`
	IsActive      bool   `json:"is_active" gorm:"default:true"`
}

type Product struct {
	ProductID     uint     `json:"product_id" gorm:"primaryKey"`
	CategoryID    uint     `json:"category_id" gorm:"index" binding:"required"`
	NameUz        string   `json:"name_uz" gorm:"size:255" binding:"required"`
	NameRu        string   `json:"name_ru" gorm:"size:255" binding:"required"`
	DescriptionUz string   `json:"description_uz"`
	DescriptionRu string   `json:"description_ru"`
	Price         float64  `json:"price" binding:"required"`
	DiscountPrice *float64 `json:"discount_price"`
	StockQuantity int      `json:"stock_quantity"`
	ImagePath     string   `json:"image_path" gorm:"size:512"`
	IsActive      bool     `json:"is_active" gorm:"default:true"`
}

// EffectivePrice is the unit price a buyer actually pays.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil && *p.DiscountPrice > 0 {
		return *p.DiscountPrice
	}
	return p.Price
}

// Name returns the localized product name.
func (p *Product) Name(lang string) string {
	if lang == "ru" {
		return p.NameRu
	}
	return p.NameUz
}

// Description returns the localized product description.
func (p *Product) Description(lang string) string {
	if lang == "ru" {
		return p.DescriptionRu
	}
	return p.DescriptionUz
}

// Name returns the localized category name.
func (c *Category) Name(lang string) string {
	if lang == "ru" {
		return c.NameRu
	}
	return c.NameUz
}
