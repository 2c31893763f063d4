package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/zarbdor/zarbdor-api/models"
)

func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🇺🇿 O'zbekcha", "lang_uz"),
			tgbotapi.NewInlineKeyboardButtonData("🇷🇺 Русский", "lang_ru"),
		),
	)
}

func contactKeyboard(lang string) tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonContact(t(lang, "send_phone")),
		),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}

func mainMenuKeyboard(lang string) tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(t(lang, "catalog")),
			tgbotapi.NewKeyboardButton(t(lang, "cart_button")),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(t(lang, "my_orders")),
			tgbotapi.NewKeyboardButton(t(lang, "favorites_button")),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(t(lang, "settings")),
			tgbotapi.NewKeyboardButton(t(lang, "support")),
		),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}

func cancelKeyboard(lang string) tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(t(lang, "cancel")),
		),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}

func skipCancelKeyboard(lang string) tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(t(lang, "skip")),
			tgbotapi.NewKeyboardButton(t(lang, "cancel")),
		),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}

func categoriesKeyboard(categories []models.Category, lang string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(categories)+1)
	for _, category := range categories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(category.Name(lang), fmt.Sprintf("cat_%d", category.CategoryID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(t(lang, "back"), "back_to_menu"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func productsKeyboard(products []models.Product, lang string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(products)+1)
	for _, product := range products {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(product.Name(lang), fmt.Sprintf("prod_%d", product.ProductID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(t(lang, "back"), "back_to_catalog"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func productDetailKeyboard(product *models.Product, lang string, isFavorite bool) tgbotapi.InlineKeyboardMarkup {
	favoriteButton := tgbotapi.NewInlineKeyboardButtonData("❤️", fmt.Sprintf("fav_%d", product.ProductID))
	if isFavorite {
		favoriteButton = tgbotapi.NewInlineKeyboardButtonData("💔", fmt.Sprintf("unfav_%d", product.ProductID))
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛒 +", fmt.Sprintf("add_cart_%d", product.ProductID)),
			favoriteButton,
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "back"), fmt.Sprintf("cat_%d", product.CategoryID)),
		),
	)
}

func cartKeyboard(items []models.CartItem, lang string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(items)+2)
	for _, item := range items {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➖", fmt.Sprintf("cart_dec_%d", item.CartID)),
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%s x%d", item.Product.Name(lang), item.Quantity),
				fmt.Sprintf("cart_item_%d", item.CartID)),
			tgbotapi.NewInlineKeyboardButtonData("➕", fmt.Sprintf("cart_inc_%d", item.CartID)),
			tgbotapi.NewInlineKeyboardButtonData("🗑", fmt.Sprintf("cart_del_%d", item.CartID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(t(lang, "checkout"), "checkout"),
		tgbotapi.NewInlineKeyboardButtonData(t(lang, "clear_cart"), "clear_cart"),
	))
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(t(lang, "back"), "back_to_menu"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func neighborhoodsKeyboard(neighborhoods []models.Neighborhood, lang string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(neighborhoods))
	for _, neighborhood := range neighborhoods {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(neighborhood.Name(lang), fmt.Sprintf("neigh_%d", neighborhood.NeighborhoodID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func paymentKeyboard(lang string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "payment_cash"), "payment_cash"),
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "payment_card"), "payment_card"),
		),
	)
}

func confirmOrderKeyboard(lang string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "confirm"), "confirm_order"),
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "cancel"), "cancel_order"),
		),
	)
}

func ordersKeyboard(orders []models.Order) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%s #%d", statusEmoji(order.Status), order.OrderID),
				fmt.Sprintf("order_%d", order.OrderID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func settingsKeyboard(lang string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "change_language"), "change_language"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t(lang, "back"), "back_to_menu"),
		),
	)
}

// Admin keyboards

func adminMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("📊 Statistika"),
			tgbotapi.NewKeyboardButton("🛍 Buyurtmalar"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("📦 Mahsulotlar"),
			tgbotapi.NewKeyboardButton("📑 Kategoriyalar"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("🏘 Mahallalar"),
			tgbotapi.NewKeyboardButton("👨‍💼 Adminlar"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("📢 Xabar yuborish"),
			tgbotapi.NewKeyboardButton("👥 Foydalanuvchilar"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("◀️ Orqaga"),
		),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}

func adminOrderKeyboard(order *models.Order) tgbotapi.InlineKeyboardMarkup {
	var buttons []tgbotapi.InlineKeyboardButton
	switch order.Status {
	case models.OrderStatusPending:
		buttons = append(buttons,
			tgbotapi.NewInlineKeyboardButtonData("✅ Tasdiqlash", fmt.Sprintf("ord_confirm_%d", order.OrderID)))
	case models.OrderStatusConfirmed:
		buttons = append(buttons,
			tgbotapi.NewInlineKeyboardButtonData("🚚 Yetkazishga", fmt.Sprintf("ord_deliver_%d", order.OrderID)))
	case models.OrderStatusDelivering:
		buttons = append(buttons,
			tgbotapi.NewInlineKeyboardButtonData("✔️ Yakunlash", fmt.Sprintf("ord_complete_%d", order.OrderID)))
	}
	buttons = append(buttons,
		tgbotapi.NewInlineKeyboardButtonData("❌ Bekor qilish", fmt.Sprintf("ord_cancel_%d", order.OrderID)))
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(buttons...))
}

func yesNoKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Ha", "yes"),
			tgbotapi.NewInlineKeyboardButtonData("❌ Yo'q", "no"),
		),
	)
}
