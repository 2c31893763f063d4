package bot

import (
	"errors"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/zarbdor/zarbdor-api/logger"
	"github.com/zarbdor/zarbdor-api/metrics"
	"github.com/zarbdor/zarbdor-api/models"
	"github.com/zarbdor/zarbdor-api/services"
	"github.com/zarbdor/zarbdor-api/store"
	"github.com/zarbdor/zarbdor-api/utils"
	"go.uber.org/zap"
)

// Checkout wizard: name -> phone -> neighborhood -> address -> payment ->
// notes -> confirmation. Answers accumulate in the dialog data bag.

func (b *Bot) startCheckout(chatID int64, user *models.User, d *dialog) {
	if user == nil {
		b.reply(chatID, t("uz", "not_registered"))
		return
	}
	lang := user.Language

	items, err := store.GetCartItems(user.UserID)
	if err != nil || len(items) == 0 {
		b.reply(chatID, t(lang, "cart_empty"))
		return
	}

	d.State = stateCheckoutName
	d.Data = map[string]string{}
	saveDialog(chatID, d)
	b.replyWithKeyboard(chatID, t(lang, "enter_name"), cancelKeyboard(lang))
}

func (b *Bot) handleCheckoutText(message *tgbotapi.Message, user *models.User, d *dialog) {
	chatID := message.Chat.ID
	if user == nil {
		clearDialog(chatID)
		return
	}
	lang := user.Language

	switch d.State {
	case stateCheckoutName:
		if message.Text == "" {
			b.reply(chatID, t(lang, "invalid_input"))
			return
		}
		d.Data["full_name"] = message.Text
		d.State = stateCheckoutPhone
		saveDialog(chatID, d)
		b.reply(chatID, t(lang, "enter_phone"))

	case stateCheckoutPhone:
		phone := utils.FormatPhone(message.Text)
		if !utils.ValidatePhone(phone) {
			b.reply(chatID, t(lang, "invalid_phone"))
			return
		}
		d.Data["phone"] = phone
		b.askNeighborhood(chatID, lang, d)

	case stateCheckoutAddress:
		address := message.Text
		if message.Location != nil {
			address = fmt.Sprintf("geo:%f,%f", message.Location.Latitude, message.Location.Longitude)
		}
		if address == "" {
			b.reply(chatID, t(lang, "invalid_input"))
			return
		}
		d.Data["address"] = address
		d.State = stateCheckoutPayment
		saveDialog(chatID, d)
		b.replyInline(chatID, t(lang, "select_payment"), paymentKeyboard(lang))

	case stateCheckoutNotes:
		notes := message.Text
		if notes == t(lang, "skip") || notes == t("uz", "skip") || notes == t("ru", "skip") {
			notes = ""
		}
		b.checkoutNotes(chatID, user, d, notes)
	}
}

// askNeighborhood moves the wizard past the neighborhood step, skipping
// it entirely when no neighborhoods are configured.
func (b *Bot) askNeighborhood(chatID int64, lang string, d *dialog) {
	neighborhoods, err := store.ListNeighborhoods()
	if err != nil || len(neighborhoods) == 0 {
		d.State = stateCheckoutAddress
		saveDialog(chatID, d)
		b.reply(chatID, t(lang, "enter_address"))
		return
	}
	d.State = stateCheckoutNeighborhood
	saveDialog(chatID, d)
	b.replyInline(chatID, t(lang, "select_neighborhood"), neighborhoodsKeyboard(neighborhoods, lang))
}

func (b *Bot) checkoutNeighborhood(chatID int64, user *models.User, d *dialog, neighborhoodID uint) {
	if d.State != stateCheckoutNeighborhood {
		return
	}
	lang := userLang(user)
	if _, err := store.GetNeighborhood(neighborhoodID); err != nil {
		b.reply(chatID, t(lang, "error"))
		return
	}
	d.Data["neighborhood_id"] = strconv.FormatUint(uint64(neighborhoodID), 10)
	d.State = stateCheckoutAddress
	saveDialog(chatID, d)
	b.reply(chatID, t(lang, "enter_address"))
}

func (b *Bot) checkoutPayment(chatID int64, user *models.User, d *dialog, method string) {
	if d.State != stateCheckoutPayment {
		return
	}
	lang := userLang(user)
	d.Data["payment_method"] = method
	d.State = stateCheckoutNotes
	saveDialog(chatID, d)
	b.replyWithKeyboard(chatID, t(lang, "enter_notes"), skipCancelKeyboard(lang))
}

func (b *Bot) checkoutNotes(chatID int64, user *models.User, d *dialog, notes string) {
	lang := userLang(user)
	d.Data["notes"] = notes
	d.State = stateCheckoutConfirm
	saveDialog(chatID, d)

	items, err := store.GetCartItems(user.UserID)
	if err != nil || len(items) == 0 {
		clearDialog(chatID)
		b.reply(chatID, t(lang, "cart_empty"))
		return
	}

	subtotal := store.CartTotal(items)
	var deliveryPrice float64
	if raw := d.Data["neighborhood_id"]; raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			if neighborhood, err := store.GetNeighborhood(uint(id)); err == nil {
				deliveryPrice = neighborhood.DeliveryPrice
			}
		}
	}

	summary := formatCart(items, lang)
	summary += fmt.Sprintf("\n%s: %s", t(lang, "delivery"), utils.FormatPrice(deliveryPrice))
	summary += fmt.Sprintf("\n%s: <b>%s</b>", t(lang, "total"), utils.FormatPrice(subtotal+deliveryPrice))
	summary += "\n\n" + t(lang, "confirm_order")
	b.replyInline(chatID, summary, confirmOrderKeyboard(lang))
}

func (b *Bot) confirmOrder(chatID int64, user *models.User, d *dialog) {
	if user == nil || d.State != stateCheckoutConfirm {
		return
	}
	lang := user.Language

	var neighborhoodID *uint
	if raw := d.Data["neighborhood_id"]; raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 32); err == nil {
			id := uint(parsed)
			neighborhoodID = &id
		}
	}

	order, err := store.PlaceOrder(store.OrderRequest{
		UserID:         user.UserID,
		FullName:       d.Data["full_name"],
		Phone:          d.Data["phone"],
		Address:        d.Data["address"],
		NeighborhoodID: neighborhoodID,
		PaymentMethod:  d.Data["payment_method"],
		Notes:          d.Data["notes"],
	})
	if errors.Is(err, store.ErrEmptyCart) {
		clearDialog(chatID)
		b.reply(chatID, t(lang, "cart_empty"))
		return
	}
	if err != nil {
		logger.Error("failed to place order from bot", zap.Int64("user_id", user.UserID), zap.Error(err))
		b.reply(chatID, t(lang, "error"))
		return
	}

	metrics.OrdersPlacedTotal.Inc()
	clearDialog(chatID)
	b.replyWithKeyboard(chatID, t(lang, "order_placed"), mainMenuKeyboard(lang))
	services.Notifier.NotifyAdminsNewOrder(order)
}

// Order history

func (b *Bot) showMyOrders(chatID int64, user *models.User) {
	if user == nil {
		b.reply(chatID, t("uz", "not_registered"))
		return
	}
	lang := user.Language

	orders, err := store.ListUserOrders(user.UserID)
	if err != nil {
		b.reply(chatID, t(lang, "error"))
		return
	}
	if len(orders) == 0 {
		b.reply(chatID, t(lang, "no_orders"))
		return
	}
	b.replyInline(chatID, t(lang, "my_orders"), ordersKeyboard(orders))
}

func (b *Bot) showOrderDetail(chatID int64, user *models.User, orderID uint) {
	if user == nil {
		return
	}
	lang := user.Language

	order, err := store.GetOrder(orderID)
	if err != nil || order.UserID != user.UserID {
		b.reply(chatID, t(lang, "error"))
		return
	}
	b.replyHTML(chatID, formatOrderDetails(order, lang))
}
