package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/zarbdor/zarbdor-api/logger"
	"github.com/zarbdor/zarbdor-api/models"
	"github.com/zarbdor/zarbdor-api/services"
	"github.com/zarbdor/zarbdor-api/store"
	"github.com/zarbdor/zarbdor-api/utils"
	"go.uber.org/zap"
)

// Registration

func (b *Bot) startRegistration(message *tgbotapi.Message, user *models.User, d *dialog) {
	chatID := message.Chat.ID
	if user != nil {
		b.replyWithKeyboard(chatID, t(user.Language, "main_menu"), mainMenuKeyboard(user.Language))
		return
	}
	d.State = stateAwaitLanguage
	d.Data = map[string]string{}
	saveDialog(chatID, d)
	b.replyInline(chatID, t("uz", "choose_language"), languageKeyboard())
}

func (b *Bot) finishLanguageChoice(chatID int64, lang string, user *models.User, d *dialog) {
	if lang != "uz" && lang != "ru" {
		lang = "uz"
	}

	// Existing users are just switching languages in settings.
	if user != nil {
		if err := store.UpdateUserLanguage(user.UserID, lang); err != nil {
			logger.Warn("failed to update language", zap.Int64("user_id", user.UserID), zap.Error(err))
			b.reply(chatID, t(lang, "error"))
			return
		}
		b.replyWithKeyboard(chatID, t(lang, "language_changed"), mainMenuKeyboard(lang))
		return
	}

	d.State = stateAwaitContact
	d.Data["language"] = lang
	saveDialog(chatID, d)
	b.replyWithKeyboard(chatID, t(lang, "send_phone"), contactKeyboard(lang))
}

func (b *Bot) handleContact(message *tgbotapi.Message, d *dialog) {
	chatID := message.Chat.ID
	lang := d.Data["language"]
	if lang == "" {
		lang = "uz"
	}
	if d.State != stateAwaitContact {
		return
	}

	contact := message.Contact
	if contact.UserID != message.From.ID {
		b.reply(chatID, t(lang, "own_contact_only"))
		return
	}

	phone := utils.FormatPhone(contact.PhoneNumber)
	if !utils.ValidatePhone(phone) {
		b.reply(chatID, t(lang, "invalid_phone"))
		return
	}

	user := &models.User{
		UserID:    chatID,
		Username:  message.From.UserName,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Phone:     phone,
		Language:  lang,
		IsActive:  true,
	}
	if err := store.CreateUser(user); err != nil {
		logger.Error("failed to create user", zap.Int64("user_id", chatID), zap.Error(err))
		b.reply(chatID, t(lang, "error"))
		return
	}

	clearDialog(chatID)
	b.reply(chatID, t(lang, "registered"))
	b.replyWithKeyboard(chatID, t(lang, "welcome"), mainMenuKeyboard(lang))
}

// Settings

func (b *Bot) showSettings(chatID int64, lang string) {
	b.replyInline(chatID, t(lang, "choose_setting"), settingsKeyboard(lang))
}

// Favorites

func (b *Bot) showFavorites(chatID int64, user *models.User) {
	lang := userLang(user)
	favorites, err := store.ListFavorites(user.UserID)
	if err != nil {
		b.reply(chatID, t(lang, "error"))
		return
	}
	if len(favorites) == 0 {
		b.reply(chatID, t(lang, "favorites_empty"))
		return
	}

	products := make([]models.Product, 0, len(favorites))
	for _, favorite := range favorites {
		products = append(products, favorite.Product)
	}
	b.replyInline(chatID, t(lang, "favorites_button"), productsKeyboard(products, lang))
}

func (b *Bot) toggleFavorite(chatID int64, user *models.User, productID uint, add bool) {
	if user == nil {
		b.reply(chatID, t("uz", "not_registered"))
		return
	}
	lang := user.Language
	if add {
		if err := store.AddFavorite(user.UserID, productID); err != nil && err != store.ErrDuplicate {
			b.reply(chatID, t(lang, "error"))
			return
		}
		b.reply(chatID, t(lang, "added_favorite"))
	} else {
		if err := store.RemoveFavorite(user.UserID, productID); err != nil && err != store.ErrNotFound {
			b.reply(chatID, t(lang, "error"))
			return
		}
		b.reply(chatID, t(lang, "removed_favorite"))
	}
	b.showProductDetail(chatID, user, productID)
}

// Support

func (b *Bot) startSupport(chatID int64, lang string, d *dialog) {
	d.State = stateSupportMessage
	d.Data = map[string]string{}
	saveDialog(chatID, d)
	b.replyWithKeyboard(chatID, t(lang, "support_prompt"), cancelKeyboard(lang))
}

func (b *Bot) handleSupportMessage(message *tgbotapi.Message, user *models.User) {
	chatID := message.Chat.ID
	lang := userLang(user)
	if user == nil {
		clearDialog(chatID)
		b.reply(chatID, t("uz", "not_registered"))
		return
	}

	chatMessage := &models.ChatMessage{
		UserID:      user.UserID,
		MessageText: message.Text,
		SenderType:  models.SenderTypeUser,
	}
	if err := store.SaveChatMessage(chatMessage); err != nil {
		b.reply(chatID, t(lang, "error"))
		return
	}

	services.Notifier.NotifyAdminsSupportMessage(user, message.Text)
	clearDialog(chatID)
	b.replyWithKeyboard(chatID, t(lang, "message_sent"), mainMenuKeyboard(lang))
}

// Dialog dispatch: every free-text update lands here while a wizard is
// active.
func (b *Bot) handleDialogText(message *tgbotapi.Message, user *models.User, d *dialog) {
	switch d.State {
	case stateAwaitLanguage:
		b.replyInline(message.Chat.ID, t("uz", "choose_language"), languageKeyboard())
	case stateAwaitContact:
		lang := d.Data["language"]
		b.replyWithKeyboard(message.Chat.ID, t(lang, "send_phone"), contactKeyboard(lang))
	case stateSupportMessage:
		b.handleSupportMessage(message, user)
	case stateCheckoutName, stateCheckoutPhone, stateCheckoutAddress, stateCheckoutNotes:
		b.handleCheckoutText(message, user, d)
	default:
		if store.IsAdmin(message.Chat.ID) {
			b.handleAdminDialogText(message, d)
			return
		}
		clearDialog(message.Chat.ID)
		b.replyWithKeyboard(message.Chat.ID, t(userLang(user), "main_menu"), mainMenuKeyboard(userLang(user)))
	}
}

// handleDialogSkip handles the inline "skip" action used by optional
// wizard steps.
func (b *Bot) handleDialogSkip(chatID int64, user *models.User, d *dialog) {
	switch d.State {
	case stateCheckoutNotes:
		b.checkoutNotes(chatID, user, d, "")
	case stateAdminProductDiscount, stateAdminProductPhoto:
		b.handleAdminSkip(chatID, d)
	}
}
