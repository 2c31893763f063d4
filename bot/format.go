package bot

import (
	"fmt"
	"strings"

	"github.com/zarbdor/zarbdor-api/models"
	"github.com/zarbdor/zarbdor-api/store"
	"github.com/zarbdor/zarbdor-api/utils"
)

func statusEmoji(status string) string {
	switch status {
	case models.OrderStatusPending:
		return "⏳"
	case models.OrderStatusConfirmed:
		return "✅"
	case models.OrderStatusDelivering:
		return "🚚"
	case models.OrderStatusCompleted:
		return "✔️"
	case models.OrderStatusCancelled:
		return "❌"
	}
	return "•"
}

func formatProductDetails(product *models.Product, lang string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>\n\n", product.Name(lang))
	if description := product.Description(lang); description != "" {
		fmt.Fprintf(&b, "%s\n\n", description)
	}
	if product.DiscountPrice != nil && *product.DiscountPrice > 0 {
		fmt.Fprintf(&b, "%s: <s>%s</s>\n", t(lang, "price"), utils.FormatPrice(product.Price))
		fmt.Fprintf(&b, "%s: <b>%s</b>\n", t(lang, "discount"), utils.FormatPrice(*product.DiscountPrice))
	} else {
		fmt.Fprintf(&b, "%s: <b>%s</b>\n", t(lang, "price"), utils.FormatPrice(product.Price))
	}
	fmt.Fprintf(&b, "%s: %d", t(lang, "stock"), product.StockQuantity)
	return b.String()
}

func formatCart(items []models.CartItem, lang string) string {
	var b strings.Builder
	b.WriteString(t(lang, "cart") + "\n\n")
	for _, item := range items {
		lineTotal := float64(item.Quantity) * item.Product.EffectivePrice()
		fmt.Fprintf(&b, "• %s x%d — %s\n", item.Product.Name(lang), item.Quantity, utils.FormatPrice(lineTotal))
	}
	fmt.Fprintf(&b, "\n%s: <b>%s</b>", t(lang, "total"), utils.FormatPrice(store.CartTotal(items)))
	return b.String()
}

func formatOrderDetails(order *models.Order, lang string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s <b>#%d</b> (%s)\n\n", statusEmoji(order.Status), order.OrderID, order.Status)
	fmt.Fprintf(&b, "👤 %s\n📞 %s\n📍 %s\n\n", order.FullName, order.Phone, order.Address)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "• %s x%d — %s\n", item.Product.Name(lang), item.Quantity,
			utils.FormatPrice(item.Price*float64(item.Quantity)))
	}
	fmt.Fprintf(&b, "\n%s: %s", t(lang, "delivery"), utils.FormatPrice(order.DeliveryPrice))
	fmt.Fprintf(&b, "\n%s: <b>%s</b>", t(lang, "total"), utils.FormatPrice(order.TotalAmount))
	if order.Notes != "" {
		fmt.Fprintf(&b, "\n\n📝 %s", order.Notes)
	}
	return b.String()
}

func formatStatistics(stats *store.Statistics) string {
	var b strings.Builder
	b.WriteString("📊 <b>Statistika</b>\n\n")
	fmt.Fprintf(&b, "👥 Foydalanuvchilar: %d\n", stats.TotalUsers)
	fmt.Fprintf(&b, "📦 Mahsulotlar: %d\n", stats.TotalProducts)
	fmt.Fprintf(&b, "🛍 Buyurtmalar: %d\n", stats.TotalOrders)
	fmt.Fprintf(&b, "⏳ Kutilmoqda: %d\n", stats.PendingOrders)
	fmt.Fprintf(&b, "💰 Tushum: %s", utils.FormatPrice(stats.TotalRevenue))
	return b.String()
}
