package services

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/zarbdor/zarbdor-api/logger"
	"github.com/zarbdor/zarbdor-api/metrics"
	"github.com/zarbdor/zarbdor-api/models"
	"github.com/zarbdor/zarbdor-api/store"
	"github.com/zarbdor/zarbdor-api/userbot"
	"github.com/zarbdor/zarbdor-api/utils"
	"go.uber.org/zap"
)

// Sender is the slice of the telegram client the notification service
// needs; *tgbotapi.BotAPI satisfies it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// NotificationService pushes outbound messages through the bot: order
// status changes, new-order alerts for admins, support pings and
// broadcasts.
type NotificationService struct {
	sender Sender
	delay  time.Duration
}

// Notifier is the process-wide instance, set once at startup. Handlers
// tolerate it being nil so the HTTP API still works without a bot token.
var Notifier *NotificationService

func NewNotificationService(sender Sender, broadcastDelay time.Duration) *NotificationService {
	return &NotificationService{sender: sender, delay: broadcastDelay}
}

func InitNotifier(sender Sender, broadcastDelay time.Duration) {
	Notifier = NewNotificationService(sender, broadcastDelay)
}

var orderStatusMessages = map[string]map[string]string{
	models.OrderStatusConfirmed: {
		"uz": "✅ Buyurtmangiz #%d tasdiqlandi!",
		"ru": "✅ Ваш заказ #%d подтверждён!",
	},
	models.OrderStatusDelivering: {
		"uz": "🚚 Buyurtmangiz #%d yetkazilmoqda!",
		"ru": "🚚 Ваш заказ #%d доставляется!",
	},
	models.OrderStatusCompleted: {
		"uz": "✔️ Buyurtmangiz #%d yetkazildi. Xaridingiz uchun rahmat!",
		"ru": "✔️ Ваш заказ #%d доставлен. Спасибо за покупку!",
	},
	models.OrderStatusCancelled: {
		"uz": "❌ Buyurtmangiz #%d bekor qilindi.",
		"ru": "❌ Ваш заказ #%d отменён.",
	},
}

// SendOrderStatus tells the customer their order moved to a new status.
func (n *NotificationService) SendOrderStatus(order *models.Order) {
	if n == nil {
		return
	}
	lang := order.User.Language
	if lang == "" {
		lang = "uz"
	}
	byLang, ok := orderStatusMessages[order.Status]
	if !ok {
		return
	}
	template, ok := byLang[lang]
	if !ok {
		template = byLang["uz"]
	}
	msg := tgbotapi.NewMessage(order.UserID, fmt.Sprintf(template, order.OrderID))
	if _, err := n.sender.Send(msg); err != nil {
		logger.Warn("failed to notify customer about order status",
			zap.Uint("order_id", order.OrderID), zap.Error(err))
	}
}

// NotifyAdminsNewOrder alerts every active admin about a fresh order and
// attaches the management keyboard. Returns how many admins were reached.
func (n *NotificationService) NotifyAdminsNewOrder(order *models.Order) int {
	if n == nil {
		return 0
	}
	adminIDs, err := store.ListAdminIDs()
	if err != nil {
		logger.Error("failed to list admins for order alert", zap.Error(err))
		return 0
	}

	var text strings.Builder
	fmt.Fprintf(&text, "🆕 <b>Yangi buyurtma #%d</b>\n\n", order.OrderID)
	fmt.Fprintf(&text, "👤 %s\n📞 %s\n📍 %s\n", order.FullName, order.Phone, order.Address)
	fmt.Fprintf(&text, "💳 %s\n\n", order.PaymentMethod)
	for _, item := range order.Items {
		fmt.Fprintf(&text, "• %s x%d — %s\n", item.Product.NameUz, item.Quantity, utils.FormatPrice(item.Price*float64(item.Quantity)))
	}
	fmt.Fprintf(&text, "\n🚚 Yetkazish: %s\n", utils.FormatPrice(order.DeliveryPrice))
	fmt.Fprintf(&text, "💰 Jami: %s", utils.FormatPrice(order.TotalAmount))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Tasdiqlash", fmt.Sprintf("ord_confirm_%d", order.OrderID)),
			tgbotapi.NewInlineKeyboardButtonData("❌ Bekor qilish", fmt.Sprintf("ord_cancel_%d", order.OrderID)),
		),
	)

	notified := 0
	for _, adminID := range adminIDs {
		msg := tgbotapi.NewMessage(adminID, text.String())
		msg.ParseMode = tgbotapi.ModeHTML
		msg.ReplyMarkup = keyboard
		if _, err := n.sender.Send(msg); err != nil {
			logger.Warn("failed to alert admin about order", zap.Int64("admin_id", adminID), zap.Error(err))
			continue
		}
		notified++
	}
	return notified
}

// NotifyAdminsSupportMessage pings admins about an incoming support
// message.
func (n *NotificationService) NotifyAdminsSupportMessage(user *models.User, text string) {
	if n == nil {
		return
	}
	adminIDs, err := store.ListAdminIDs()
	if err != nil {
		return
	}
	body := fmt.Sprintf("💬 Yangi xabar\n👤 %s %s (@%s)\n📞 %s\n\n%s",
		user.FirstName, user.LastName, user.Username, user.Phone, text)
	for _, adminID := range adminIDs {
		if _, err := n.sender.Send(tgbotapi.NewMessage(adminID, body)); err != nil {
			logger.Warn("failed to ping admin about support message", zap.Int64("admin_id", adminID), zap.Error(err))
		}
	}
}

// SendAdminReply delivers an admin's support answer to the user.
func (n *NotificationService) SendAdminReply(userID int64, text string) error {
	if n == nil {
		return nil
	}
	_, err := n.sender.Send(tgbotapi.NewMessage(userID, "💬 Admin: "+text))
	return err
}

// BroadcastResult tallies one broadcast run.
type BroadcastResult struct {
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Blocked int `json:"blocked"`
}

// Broadcast sends a message to every given chat serially with a fixed
// pause between sends. Failures are counted, never retried; users who
// blocked the bot are tallied separately.
func (n *NotificationService) Broadcast(chatIDs []int64, text string) BroadcastResult {
	var result BroadcastResult
	if n == nil {
		return result
	}
	for i, chatID := range chatIDs {
		if i > 0 && n.delay > 0 {
			time.Sleep(n.delay)
		}
		if _, err := n.sender.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
			if strings.Contains(err.Error(), "blocked") {
				result.Blocked++
				metrics.BroadcastMessagesTotal.WithLabelValues("blocked").Inc()
			} else {
				result.Failed++
				metrics.BroadcastMessagesTotal.WithLabelValues("failed").Inc()
			}
			continue
		}
		result.Sent++
		metrics.BroadcastMessagesTotal.WithLabelValues("sent").Inc()
	}
	return result
}

// DeliverVerificationCode tries the userbot gateway first and degrades to
// logging the code so development setups keep working without one.
func DeliverVerificationCode(phone, code string) {
	if client := userbot.Default(); client != nil {
		err := client.SendCode(phone, code)
		if err == nil {
			return
		}
		logger.Warn("userbot delivery failed, falling back to log", zap.Error(err))
	}
	logger.Info("verification code issued", zap.String("phone", phone), zap.String("code", code))
}

// DeliverAdminCode sends a login code to an admin's telegram chat.
func DeliverAdminCode(adminID int64, code string) {
	if Notifier == nil {
		logger.Info("admin verification code issued", zap.Int64("admin_id", adminID), zap.String("code", code))
		return
	}
	msg := tgbotapi.NewMessage(adminID, fmt.Sprintf("🔐 Kirish kodi: %s", code))
	if _, err := Notifier.sender.Send(msg); err != nil {
		logger.Warn("failed to deliver admin code", zap.Int64("admin_id", adminID), zap.Error(err))
	}
}
