package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zarbdor/zarbdor-api/models"
)

func TestTranslationFallback(t *testing.T) {
	assert.Equal(t, "🛍 Katalog", tFunc("uz", "catalog"))
	assert.Equal(t, "🛍 Каталог", tFunc("ru", "catalog"))
	assert.Equal(t, "🛍 Katalog", tFunc("en", "catalog"), "unknown language falls back to uzbek")
	assert.Equal(t, "no_such_key", tFunc("uz", "no_such_key"))
}

// tFunc avoids shadowing testing.T in table helpers.
func tFunc(lang, key string) string { return t(lang, key) }

func TestStatusEmoji(t *testing.T) {
	assert.Equal(t, "⏳", statusEmoji(models.OrderStatusPending))
	assert.Equal(t, "✅", statusEmoji(models.OrderStatusConfirmed))
	assert.Equal(t, "🚚", statusEmoji(models.OrderStatusDelivering))
	assert.Equal(t, "✔️", statusEmoji(models.OrderStatusCompleted))
	assert.Equal(t, "❌", statusEmoji(models.OrderStatusCancelled))
	assert.Equal(t, "•", statusEmoji("whatever"))
}

func TestFormatCart(t *testing.T) {
	discount := 800.0
	items := []models.CartItem{
		{
			Quantity: 2,
			Product:  models.Product{NameUz: "Olma", NameRu: "Яблоко", Price: 1000, DiscountPrice: &discount},
		},
		{
			Quantity: 1,
			Product:  models.Product{NameUz: "Non", NameRu: "Хлеб", Price: 500},
		},
	}

	text := formatCart(items, "uz")
	assert.Contains(t, text, "Olma x2 — 1,600 so'm")
	assert.Contains(t, text, "Non x1 — 500 so'm")
	assert.Contains(t, text, "2,100 so'm")

	russian := formatCart(items, "ru")
	assert.Contains(t, russian, "Яблоко x2")
}

func TestFormatProductDetails(t *testing.T) {
	discount := 800.0
	product := &models.Product{
		NameUz:        "Olma",
		NameRu:        "Яблоко",
		DescriptionUz: "Shirin olma",
		Price:         1000,
		DiscountPrice: &discount,
		StockQuantity: 7,
	}

	text := formatProductDetails(product, "uz")
	assert.Contains(t, text, "<b>Olma</b>")
	assert.Contains(t, text, "Shirin olma")
	assert.Contains(t, text, "<s>1,000 so'm</s>")
	assert.Contains(t, text, "800 so'm")
	assert.Contains(t, text, "7")
}

func TestFormatOrderDetails(t *testing.T) {
	order := &models.Order{
		OrderID:       3,
		Status:        models.OrderStatusPending,
		FullName:      "Test User",
		Phone:         "+998901234567",
		Address:       "Tashkent",
		DeliveryPrice: 15000,
		TotalAmount:   2115000,
		Notes:         "tezroq",
		Items: []models.OrderItem{
			{Quantity: 2, Price: 1050000, Product: models.Product{NameUz: "Telefon", NameRu: "Телефон"}},
		},
	}

	text := formatOrderDetails(order, "uz")
	assert.Contains(t, text, "#3")
	assert.Contains(t, text, "Telefon x2 — 2,100,000 so'm")
	assert.Contains(t, text, "15,000 so'm")
	assert.Contains(t, text, "2,115,000 so'm")
	assert.Contains(t, text, "tezroq")
}
