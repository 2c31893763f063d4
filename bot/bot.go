package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/zarbdor/zarbdor-api/logger"
	"github.com/zarbdor/zarbdor-api/metrics"
	"github.com/zarbdor/zarbdor-api/models"
	"github.com/zarbdor/zarbdor-api/store"
	"go.uber.org/zap"
)

// Bot is the conversational surface of the shop. It shares the store
// layer with the HTTP API, so both see the same catalog, carts and
// orders.
type Bot struct {
	API *tgbotapi.BotAPI
}

func New(token string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	logger.Info("telegram bot authorized", zap.String("username", api.Self.UserName))
	return &Bot{API: api}, nil
}

// Run consumes updates over long polling until the process exits.
func (b *Bot) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.API.GetUpdatesChan(u)
	for update := range updates {
		b.RouteUpdate(update)
	}
}

// RouteUpdate dispatches one update: commands first, then callback data,
// then the active dialog state, then the menu buttons.
func (b *Bot) RouteUpdate(update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		metrics.BotUpdatesTotal.WithLabelValues("callback").Inc()
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil:
		metrics.BotUpdatesTotal.WithLabelValues("message").Inc()
		b.handleMessage(update.Message)
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	user, _ := store.GetUser(chatID)
	lang := userLang(user)
	d := loadDialog(chatID)

	switch {
	case message.IsCommand():
		b.handleCommand(message, user, d)
		return
	case message.Contact != nil:
		b.handleContact(message, d)
		return
	}

	text := message.Text

	// Cancel aborts any wizard from any step.
	if text == t("uz", "cancel") || text == t("ru", "cancel") {
		clearDialog(chatID)
		b.replyWithKeyboard(chatID, t(lang, "cancelled"), mainMenuKeyboard(lang))
		return
	}

	if d.State != stateNone {
		b.handleDialogText(message, user, d)
		return
	}

	if user == nil {
		b.reply(chatID, t("uz", "not_registered"))
		return
	}

	switch text {
	case t("uz", "catalog"), t("ru", "catalog"):
		b.showCatalog(chatID, lang)
	case t("uz", "cart_button"), t("ru", "cart_button"):
		b.showCart(chatID, user)
	case t("uz", "my_orders"), t("ru", "my_orders"):
		b.showMyOrders(chatID, user)
	case t("uz", "favorites_button"), t("ru", "favorites_button"):
		b.showFavorites(chatID, user)
	case t("uz", "settings"), t("ru", "settings"):
		b.showSettings(chatID, lang)
	case t("uz", "support"), t("ru", "support"):
		b.startSupport(chatID, lang, d)
	default:
		if store.IsAdmin(chatID) && b.handleAdminButton(message, d) {
			return
		}
		b.replyWithKeyboard(chatID, t(lang, "main_menu"), mainMenuKeyboard(lang))
	}
}

func (b *Bot) handleCommand(message *tgbotapi.Message, user *models.User, d *dialog) {
	chatID := message.Chat.ID
	switch message.Command() {
	case "start":
		b.startRegistration(message, user, d)
	case "admin":
		b.openAdminPanel(chatID)
	default:
		b.reply(chatID, t(userLang(user), "main_menu"))
	}
}

func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) {
	// Message is nil when the callback comes from an inaccessible or
	// expired message; there is no chat to route it to.
	if query.Message == nil {
		return
	}
	chatID := query.Message.Chat.ID
	data := query.Data
	user, _ := store.GetUser(chatID)
	d := loadDialog(chatID)

	// Acknowledge so the client stops its spinner.
	if _, err := b.API.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		logger.Debug("callback ack failed", zap.Error(err))
	}

	switch {
	case strings.HasPrefix(data, "lang_"):
		b.finishLanguageChoice(chatID, strings.TrimPrefix(data, "lang_"), user, d)
	case strings.HasPrefix(data, "cat_"):
		b.showCategoryProducts(chatID, userLang(user), trailingID(data, "cat_"))
	case strings.HasPrefix(data, "prod_"):
		b.showProductDetail(chatID, user, trailingID(data, "prod_"))
	case strings.HasPrefix(data, "add_cart_"):
		b.addToCart(chatID, user, trailingID(data, "add_cart_"))
	case strings.HasPrefix(data, "unfav_"):
		b.toggleFavorite(chatID, user, trailingID(data, "unfav_"), false)
	case strings.HasPrefix(data, "fav_"):
		b.toggleFavorite(chatID, user, trailingID(data, "fav_"), true)
	case strings.HasPrefix(data, "cart_inc_"):
		b.changeCartQuantity(chatID, user, trailingID(data, "cart_inc_"), 1)
	case strings.HasPrefix(data, "cart_dec_"):
		b.changeCartQuantity(chatID, user, trailingID(data, "cart_dec_"), -1)
	case strings.HasPrefix(data, "cart_del_"):
		b.removeCartItem(chatID, user, trailingID(data, "cart_del_"))
	case strings.HasPrefix(data, "cart_item_"):
		b.showCart(chatID, user)
	case data == "clear_cart":
		b.clearCart(chatID, user)
	case data == "back_to_cart":
		b.showCart(chatID, user)
	case data == "back_to_catalog":
		b.showCatalog(chatID, userLang(user))
	case data == "back_to_menu":
		b.replyWithKeyboard(chatID, t(userLang(user), "main_menu"), mainMenuKeyboard(userLang(user)))
	case data == "checkout":
		b.startCheckout(chatID, user, d)
	case strings.HasPrefix(data, "neigh_"):
		b.checkoutNeighborhood(chatID, user, d, trailingID(data, "neigh_"))
	case data == "payment_cash", data == "payment_card":
		b.checkoutPayment(chatID, user, d, strings.TrimPrefix(data, "payment_"))
	case data == "confirm_order":
		b.confirmOrder(chatID, user, d)
	case data == "cancel_order":
		clearDialog(chatID)
		b.replyWithKeyboard(chatID, t(userLang(user), "order_cancelled"), mainMenuKeyboard(userLang(user)))
	case strings.HasPrefix(data, "order_"):
		b.showOrderDetail(chatID, user, trailingID(data, "order_"))
	case data == "change_language":
		b.replyInline(chatID, t(userLang(user), "choose_language"), languageKeyboard())
	case strings.HasPrefix(data, "ord_"):
		b.handleAdminOrderAction(chatID, data)
	case data == "yes", data == "no":
		b.handleAdminConfirm(chatID, d, data == "yes")
	case data == "skip":
		b.handleDialogSkip(chatID, user, d)
	}
}

func userLang(user *models.User) string {
	if user == nil || user.Language == "" {
		return "uz"
	}
	return user.Language
}

func trailingID(data, prefix string) uint {
	var id uint
	for _, r := range strings.TrimPrefix(data, prefix) {
		if r < '0' || r > '9' {
			return 0
		}
		id = id*10 + uint(r-'0')
	}
	return id
}

// send helpers

func (b *Bot) reply(chatID int64, text string) {
	b.sendMessage(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) replyHTML(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	b.sendMessage(msg)
}

func (b *Bot) replyWithKeyboard(chatID int64, text string, keyboard any) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	b.sendMessage(msg)
}

func (b *Bot) replyInline(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = keyboard
	b.sendMessage(msg)
}

func (b *Bot) sendMessage(msg tgbotapi.MessageConfig) {
	if _, err := b.API.Send(msg); err != nil {
		logger.Warn("failed to send message", zap.Int64("chat_id", msg.ChatID), zap.Error(err))
	}
}
