package bot

import (
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/zarbdor/zarbdor-api/logger"
	"github.com/zarbdor/zarbdor-api/models"
	"github.com/zarbdor/zarbdor-api/store"
	"go.uber.org/zap"
)

func (b *Bot) showCatalog(chatID int64, lang string) {
	categories, err := store.ListCategories()
	if err != nil {
		b.reply(chatID, t(lang, "error"))
		return
	}
	if len(categories) == 0 {
		b.reply(chatID, t(lang, "no_products"))
		return
	}
	b.replyInline(chatID, t(lang, "select_category"), categoriesKeyboard(categories, lang))
}

func (b *Bot) showCategoryProducts(chatID int64, lang string, categoryID uint) {
	products, err := store.ListProducts(&categoryID, "")
	if err != nil {
		b.reply(chatID, t(lang, "error"))
		return
	}
	if len(products) == 0 {
		b.reply(chatID, t(lang, "no_products"))
		return
	}
	b.replyInline(chatID, t(lang, "select_category"), productsKeyboard(products, lang))
}

func (b *Bot) showProductDetail(chatID int64, user *models.User, productID uint) {
	lang := userLang(user)
	product, err := store.GetProduct(productID)
	if err != nil {
		b.reply(chatID, t(lang, "error"))
		return
	}

	isFavorite := false
	if user != nil {
		isFavorite = store.IsFavorite(user.UserID, productID)
	}

	text := formatProductDetails(product, lang)
	keyboard := productDetailKeyboard(product, lang, isFavorite)

	if product.ImagePath != "" {
		// Uploaded images live on disk; photos added through the bot are
		// stored as telegram file ids.
		var file tgbotapi.RequestFileData
		if strings.HasPrefix(product.ImagePath, "/") {
			file = tgbotapi.FilePath("." + product.ImagePath)
		} else {
			file = tgbotapi.FileID(product.ImagePath)
		}
		photo := tgbotapi.NewPhoto(chatID, file)
		photo.Caption = text
		photo.ParseMode = tgbotapi.ModeHTML
		photo.ReplyMarkup = keyboard
		if _, err := b.API.Send(photo); err == nil {
			return
		}
		logger.Debug("photo send failed, falling back to text", zap.Uint("product_id", productID))
	}
	b.replyInline(chatID, text, keyboard)
}

func (b *Bot) addToCart(chatID int64, user *models.User, productID uint) {
	if user == nil {
		b.reply(chatID, t("uz", "not_registered"))
		return
	}
	lang := user.Language

	err := store.AddToCart(user.UserID, productID, 1)
	switch {
	case errors.Is(err, store.ErrOutOfStock):
		b.reply(chatID, t(lang, "out_of_stock"))
	case err != nil:
		b.reply(chatID, t(lang, "error"))
	default:
		b.reply(chatID, t(lang, "product_added"))
	}
}

func (b *Bot) showCart(chatID int64, user *models.User) {
	if user == nil {
		b.reply(chatID, t("uz", "not_registered"))
		return
	}
	lang := user.Language

	items, err := store.GetCartItems(user.UserID)
	if err != nil {
		b.reply(chatID, t(lang, "error"))
		return
	}
	if len(items) == 0 {
		b.reply(chatID, t(lang, "cart_empty"))
		return
	}
	b.replyInline(chatID, formatCart(items, lang), cartKeyboard(items, lang))
}

func (b *Bot) changeCartQuantity(chatID int64, user *models.User, cartID uint, delta int) {
	if user == nil {
		return
	}
	lang := user.Language

	item, err := store.GetCartItem(cartID, user.UserID)
	if err != nil {
		b.showCart(chatID, user)
		return
	}

	err = store.UpdateCartQuantity(cartID, user.UserID, item.Quantity+delta)
	if errors.Is(err, store.ErrOutOfStock) {
		b.reply(chatID, t(lang, "out_of_stock"))
		return
	}
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		b.reply(chatID, t(lang, "error"))
		return
	}
	b.showCart(chatID, user)
}

func (b *Bot) removeCartItem(chatID int64, user *models.User, cartID uint) {
	if user == nil {
		return
	}
	if err := store.RemoveCartItem(cartID, user.UserID); err != nil && !errors.Is(err, store.ErrNotFound) {
		b.reply(chatID, t(user.Language, "error"))
		return
	}
	b.showCart(chatID, user)
}

func (b *Bot) clearCart(chatID int64, user *models.User) {
	if user == nil {
		return
	}
	if err := store.ClearCart(user.UserID); err != nil {
		b.reply(chatID, t(user.Language, "error"))
		return
	}
	b.reply(chatID, t(user.Language, "cart_empty"))
}
