package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/zarbdor/zarbdor-api/logger"
	"github.com/zarbdor/zarbdor-api/models"
	"github.com/zarbdor/zarbdor-api/services"
	"github.com/zarbdor/zarbdor-api/store"
	"github.com/zarbdor/zarbdor-api/utils"
	"go.uber.org/zap"
)

func (b *Bot) openAdminPanel(chatID int64) {
	if !store.IsAdmin(chatID) {
		b.reply(chatID, "⛔️ Sizda admin huquqlari yo'q.")
		return
	}
	b.replyWithKeyboard(chatID, "👨‍💼 Admin panel:", adminMenuKeyboard())
}

// handleAdminButton reacts to the admin reply-keyboard. Returns false
// when the text is not an admin button so the caller can fall through.
func (b *Bot) handleAdminButton(message *tgbotapi.Message, d *dialog) bool {
	chatID := message.Chat.ID

	switch message.Text {
	case "📊 Statistika":
		stats, err := store.GetStatistics()
		if err != nil {
			b.reply(chatID, "Xatolik yuz berdi.")
			return true
		}
		b.replyHTML(chatID, formatStatistics(stats))

	case "🛍 Buyurtmalar":
		b.showActiveOrders(chatID)

	case "📦 Mahsulotlar":
		b.listProductsAdmin(chatID)
		b.startAddProduct(chatID, d)

	case "📑 Kategoriyalar":
		b.listCategoriesAdmin(chatID)
		d.State = stateAdminCategoryNameUz
		d.Data = map[string]string{}
		saveDialog(chatID, d)
		b.reply(chatID, "Yangi kategoriya nomi (uz):")

	case "🏘 Mahallalar":
		b.listNeighborhoodsAdmin(chatID)
		d.State = stateAdminNeighborhoodNameUz
		d.Data = map[string]string{}
		saveDialog(chatID, d)
		b.reply(chatID, "Yangi mahalla nomi (uz):")

	case "👨‍💼 Adminlar":
		b.showAdmins(chatID, d)

	case "📢 Xabar yuborish":
		d.State = stateAdminBroadcastText
		d.Data = map[string]string{}
		saveDialog(chatID, d)
		b.reply(chatID, "Yuboriladigan xabar matnini kiriting:")

	case "👥 Foydalanuvchilar":
		count, err := store.CountUsers()
		if err != nil {
			b.reply(chatID, "Xatolik yuz berdi.")
			return true
		}
		b.reply(chatID, fmt.Sprintf("👥 Foydalanuvchilar soni: %d", count))

	case "◀️ Orqaga":
		user, _ := store.GetUser(chatID)
		lang := userLang(user)
		b.replyWithKeyboard(chatID, t(lang, "main_menu"), mainMenuKeyboard(lang))

	default:
		return false
	}
	return true
}

func (b *Bot) showActiveOrders(chatID int64) {
	orders, err := store.ListActiveOrders()
	if err != nil {
		b.reply(chatID, "Xatolik yuz berdi.")
		return
	}
	if len(orders) == 0 {
		b.reply(chatID, "Faol buyurtmalar yo'q.")
		return
	}
	for i := range orders {
		order := &orders[i]
		msg := tgbotapi.NewMessage(chatID, formatOrderDetails(order, "uz"))
		msg.ParseMode = tgbotapi.ModeHTML
		msg.ReplyMarkup = adminOrderKeyboard(order)
		b.sendMessage(msg)
	}
}

// handleAdminOrderAction moves an order on behalf of an admin pressing
// an inline button; cancellation restores stock and the customer gets a
// status message either way.
func (b *Bot) handleAdminOrderAction(chatID int64, data string) {
	if !store.IsAdmin(chatID) {
		return
	}

	var newStatus string
	var orderID uint
	switch {
	case strings.HasPrefix(data, "ord_confirm_"):
		newStatus = models.OrderStatusConfirmed
		orderID = trailingID(data, "ord_confirm_")
	case strings.HasPrefix(data, "ord_deliver_"):
		newStatus = models.OrderStatusDelivering
		orderID = trailingID(data, "ord_deliver_")
	case strings.HasPrefix(data, "ord_complete_"):
		newStatus = models.OrderStatusCompleted
		orderID = trailingID(data, "ord_complete_")
	case strings.HasPrefix(data, "ord_cancel_"):
		newStatus = models.OrderStatusCancelled
		orderID = trailingID(data, "ord_cancel_")
	default:
		return
	}

	order, err := store.UpdateOrderStatus(orderID, newStatus)
	if err != nil {
		logger.Warn("admin order action failed", zap.Uint("order_id", orderID), zap.Error(err))
		b.reply(chatID, "Holatni o'zgartirib bo'lmadi.")
		return
	}

	b.reply(chatID, fmt.Sprintf("%s Buyurtma #%d: %s", statusEmoji(order.Status), order.OrderID, order.Status))
	services.Notifier.SendOrderStatus(order)
}

// Catalog listings shown before the add wizards. Inactive rows are
// marked so admins can spot soft-deleted entries.

func (b *Bot) listProductsAdmin(chatID int64) {
	products, err := store.ListAllProducts()
	if err != nil || len(products) == 0 {
		return
	}
	var list strings.Builder
	list.WriteString("📦 Mahsulotlar:\n\n")
	for _, product := range products {
		marker := "✅"
		if !product.IsActive {
			marker = "🚫"
		}
		fmt.Fprintf(&list, "%s %d — %s (%s, %d dona)\n",
			marker, product.ProductID, product.NameUz, utils.FormatPrice(product.Price), product.StockQuantity)
	}
	b.reply(chatID, list.String())
}

func (b *Bot) listCategoriesAdmin(chatID int64) {
	categories, err := store.ListAllCategories()
	if err != nil || len(categories) == 0 {
		return
	}
	var list strings.Builder
	list.WriteString("📑 Kategoriyalar:\n\n")
	for _, category := range categories {
		marker := "✅"
		if !category.IsActive {
			marker = "🚫"
		}
		fmt.Fprintf(&list, "%s %d — %s\n", marker, category.CategoryID, category.NameUz)
	}
	b.reply(chatID, list.String())
}

func (b *Bot) listNeighborhoodsAdmin(chatID int64) {
	neighborhoods, err := store.ListAllNeighborhoods()
	if err != nil || len(neighborhoods) == 0 {
		return
	}
	var list strings.Builder
	list.WriteString("🏘 Mahallalar:\n\n")
	for _, neighborhood := range neighborhoods {
		marker := "✅"
		if !neighborhood.IsActive {
			marker = "🚫"
		}
		fmt.Fprintf(&list, "%s %d — %s (%s)\n",
			marker, neighborhood.NeighborhoodID, neighborhood.NameUz, utils.FormatPrice(neighborhood.DeliveryPrice))
	}
	b.reply(chatID, list.String())
}

// Add-product wizard

func (b *Bot) startAddProduct(chatID int64, d *dialog) {
	categories, err := store.ListCategories()
	if err != nil || len(categories) == 0 {
		b.reply(chatID, "Avval kategoriya yarating.")
		return
	}

	var list strings.Builder
	list.WriteString("Yangi mahsulot. Kategoriya raqamini kiriting:\n\n")
	for _, category := range categories {
		fmt.Fprintf(&list, "%d — %s\n", category.CategoryID, category.NameUz)
	}

	d.State = stateAdminProductCategory
	d.Data = map[string]string{}
	saveDialog(chatID, d)
	b.reply(chatID, list.String())
}

func (b *Bot) handleAdminDialogText(message *tgbotapi.Message, d *dialog) {
	chatID := message.Chat.ID
	text := message.Text

	switch d.State {
	case stateAdminProductCategory:
		id, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			b.reply(chatID, "Raqam kiriting.")
			return
		}
		if _, err := store.GetCategory(uint(id)); err != nil {
			b.reply(chatID, "Bunday kategoriya yo'q.")
			return
		}
		d.Data["category_id"] = text
		b.advance(chatID, d, stateAdminProductNameUz, "Mahsulot nomi (uz):")

	case stateAdminProductNameUz:
		d.Data["name_uz"] = text
		b.advance(chatID, d, stateAdminProductNameRu, "Mahsulot nomi (ru):")

	case stateAdminProductNameRu:
		d.Data["name_ru"] = text
		b.advance(chatID, d, stateAdminProductDescUz, "Tavsif (uz):")

	case stateAdminProductDescUz:
		d.Data["desc_uz"] = text
		b.advance(chatID, d, stateAdminProductDescRu, "Tavsif (ru):")

	case stateAdminProductDescRu:
		d.Data["desc_ru"] = text
		b.advance(chatID, d, stateAdminProductPrice, "Narx (so'mda):")

	case stateAdminProductPrice:
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			b.reply(chatID, "Raqam kiriting.")
			return
		}
		d.Data["price"] = text
		d.State = stateAdminProductDiscount
		saveDialog(chatID, d)
		b.replyInline(chatID, "Chegirma narxi (yoki o'tkazib yuboring):", skipInlineKeyboard())

	case stateAdminProductDiscount:
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			b.reply(chatID, "Raqam kiriting.")
			return
		}
		d.Data["discount"] = text
		b.advance(chatID, d, stateAdminProductStock, "Ombordagi soni:")

	case stateAdminProductStock:
		if _, err := strconv.Atoi(text); err != nil {
			b.reply(chatID, "Raqam kiriting.")
			return
		}
		d.Data["stock"] = text
		d.State = stateAdminProductPhoto
		saveDialog(chatID, d)
		b.replyInline(chatID, "Mahsulot rasmini yuboring (yoki o'tkazib yuboring):", skipInlineKeyboard())

	case stateAdminProductPhoto:
		if len(message.Photo) == 0 {
			b.reply(chatID, "Rasm yuboring yoki o'tkazib yuboring.")
			return
		}
		d.Data["photo"] = message.Photo[len(message.Photo)-1].FileID
		b.createProductFromDialog(chatID, d)

	case stateAdminCategoryNameUz:
		d.Data["name_uz"] = text
		b.advance(chatID, d, stateAdminCategoryNameRu, "Kategoriya nomi (ru):")

	case stateAdminCategoryNameRu:
		category := &models.Category{NameUz: d.Data["name_uz"], NameRu: text}
		if err := store.CreateCategory(category); err != nil {
			b.reply(chatID, "Kategoriyani saqlab bo'lmadi.")
			return
		}
		clearDialog(chatID)
		b.reply(chatID, fmt.Sprintf("✅ Kategoriya #%d yaratildi.", category.CategoryID))

	case stateAdminNeighborhoodNameUz:
		d.Data["name_uz"] = text
		b.advance(chatID, d, stateAdminNeighborhoodNameRu, "Mahalla nomi (ru):")

	case stateAdminNeighborhoodNameRu:
		d.Data["name_ru"] = text
		b.advance(chatID, d, stateAdminNeighborhoodPrice, "Yetkazib berish narxi (so'mda):")

	case stateAdminNeighborhoodPrice:
		price, err := strconv.ParseFloat(text, 64)
		if err != nil {
			b.reply(chatID, "Raqam kiriting.")
			return
		}
		neighborhood := &models.Neighborhood{
			NameUz:        d.Data["name_uz"],
			NameRu:        d.Data["name_ru"],
			DeliveryPrice: price,
		}
		if err := store.CreateNeighborhood(neighborhood); err != nil {
			b.reply(chatID, "Mahallani saqlab bo'lmadi.")
			return
		}
		clearDialog(chatID)
		b.reply(chatID, fmt.Sprintf("✅ Mahalla #%d yaratildi.", neighborhood.NeighborhoodID))

	case stateAdminAddAdminID:
		b.finishAddAdmin(chatID, text)

	case stateAdminBroadcastText:
		d.Data["text"] = text
		d.State = stateAdminBroadcastConfirm
		saveDialog(chatID, d)
		b.replyInline(chatID, "Xabar barcha foydalanuvchilarga yuborilsinmi?\n\n"+text, yesNoKeyboard())

	default:
		clearDialog(chatID)
		b.openAdminPanel(chatID)
	}
}

func (b *Bot) advance(chatID int64, d *dialog, nextState, prompt string) {
	d.State = nextState
	saveDialog(chatID, d)
	b.reply(chatID, prompt)
}

// handleAdminSkip skips the optional wizard steps.
func (b *Bot) handleAdminSkip(chatID int64, d *dialog) {
	switch d.State {
	case stateAdminProductDiscount:
		b.advance(chatID, d, stateAdminProductStock, "Ombordagi soni:")
	case stateAdminProductPhoto:
		b.createProductFromDialog(chatID, d)
	}
}

func (b *Bot) createProductFromDialog(chatID int64, d *dialog) {
	categoryID, _ := strconv.ParseUint(d.Data["category_id"], 10, 32)
	price, _ := strconv.ParseFloat(d.Data["price"], 64)
	stock, _ := strconv.Atoi(d.Data["stock"])

	product := &models.Product{
		CategoryID:    uint(categoryID),
		NameUz:        d.Data["name_uz"],
		NameRu:        d.Data["name_ru"],
		DescriptionUz: d.Data["desc_uz"],
		DescriptionRu: d.Data["desc_ru"],
		Price:         price,
		StockQuantity: stock,
		ImagePath:     d.Data["photo"],
	}
	if raw := d.Data["discount"]; raw != "" {
		if discount, err := strconv.ParseFloat(raw, 64); err == nil {
			product.DiscountPrice = &discount
		}
	}

	if err := store.CreateProduct(product); err != nil {
		logger.Error("failed to create product", zap.Error(err))
		b.reply(chatID, "Mahsulotni saqlab bo'lmadi.")
		return
	}
	clearDialog(chatID)
	b.reply(chatID, fmt.Sprintf("✅ Mahsulot #%d yaratildi.", product.ProductID))
}

// Admins

func (b *Bot) showAdmins(chatID int64, d *dialog) {
	if !store.IsSuperAdmin(chatID) {
		b.reply(chatID, "⛔️ Faqat super admin uchun.")
		return
	}

	admins, err := store.ListAdmins()
	if err != nil {
		b.reply(chatID, "Xatolik yuz berdi.")
		return
	}

	var list strings.Builder
	list.WriteString("👨‍💼 Adminlar:\n\n")
	for _, admin := range admins {
		fmt.Fprintf(&list, "• %d @%s (%s)\n", admin.AdminID, admin.Username, admin.Role)
	}
	list.WriteString("\nYangi admin qo'shish uchun: <id> [username]")

	d.State = stateAdminAddAdminID
	d.Data = map[string]string{}
	saveDialog(chatID, d)
	b.reply(chatID, list.String())
}

func (b *Bot) finishAddAdmin(chatID int64, text string) {
	if !store.IsSuperAdmin(chatID) {
		clearDialog(chatID)
		return
	}

	fields := strings.Fields(text)
	if len(fields) == 0 {
		b.reply(chatID, "Admin ID raqamini kiriting.")
		return
	}
	adminID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		b.reply(chatID, "Admin ID raqam bo'lishi kerak.")
		return
	}
	username := ""
	if len(fields) > 1 {
		username = strings.TrimPrefix(fields[1], "@")
	}

	if err := store.AddAdmin(adminID, username, models.RoleAdmin); err != nil {
		if err == store.ErrDuplicate {
			b.reply(chatID, "Bu admin allaqachon mavjud.")
		} else {
			b.reply(chatID, "Adminni qo'shib bo'lmadi.")
		}
		return
	}
	clearDialog(chatID)
	b.reply(chatID, fmt.Sprintf("✅ Admin %d qo'shildi.", adminID))
}

// Broadcast

func (b *Bot) handleAdminConfirm(chatID int64, d *dialog, confirmed bool) {
	if d.State != stateAdminBroadcastConfirm {
		return
	}
	if !confirmed {
		clearDialog(chatID)
		b.reply(chatID, "Bekor qilindi.")
		return
	}

	text := d.Data["text"]
	clearDialog(chatID)

	userIDs, err := store.ListUserIDs()
	if err != nil {
		b.reply(chatID, "Foydalanuvchilarni olib bo'lmadi.")
		return
	}

	b.reply(chatID, fmt.Sprintf("📢 Yuborilmoqda (%d ta foydalanuvchi)...", len(userIDs)))
	result := services.Notifier.Broadcast(userIDs, text)
	b.reply(chatID, fmt.Sprintf("✅ Yuborildi: %d\n❌ Xato: %d\n🚫 Bloklangan: %d",
		result.Sent, result.Failed, result.Blocked))
}

func skipInlineKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("O'tkazish ➡️", "skip"),
		),
	)
}
