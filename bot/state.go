package bot

import (
	"encoding/json"

	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/models"
	"gorm.io/datatypes"
)

// Dialog states. Wizard steps share a prefix so a cancel can tell which
// flow it is aborting.
const (
	stateNone = ""

	stateAwaitLanguage = "register_language"
	stateAwaitContact  = "register_contact"

	stateCheckoutName         = "checkout_name"
	stateCheckoutPhone        = "checkout_phone"
	stateCheckoutNeighborhood = "checkout_neighborhood"
	stateCheckoutAddress      = "checkout_address"
	stateCheckoutPayment      = "checkout_payment"
	stateCheckoutNotes        = "checkout_notes"
	stateCheckoutConfirm      = "checkout_confirm"

	stateSupportMessage = "support_message"

	stateAdminProductCategory = "admin_product_category"
	stateAdminProductNameUz   = "admin_product_name_uz"
	stateAdminProductNameRu   = "admin_product_name_ru"
	stateAdminProductDescUz   = "admin_product_desc_uz"
	stateAdminProductDescRu   = "admin_product_desc_ru"
	stateAdminProductPrice    = "admin_product_price"
	stateAdminProductDiscount = "admin_product_discount"
	stateAdminProductStock    = "admin_product_stock"
	stateAdminProductPhoto    = "admin_product_photo"

	stateAdminCategoryNameUz = "admin_category_name_uz"
	stateAdminCategoryNameRu = "admin_category_name_ru"

	stateAdminNeighborhoodNameUz = "admin_neighborhood_name_uz"
	stateAdminNeighborhoodNameRu = "admin_neighborhood_name_ru"
	stateAdminNeighborhoodPrice  = "admin_neighborhood_price"

	stateAdminAddAdminID = "admin_add_admin_id"

	stateAdminBroadcastText    = "admin_broadcast_text"
	stateAdminBroadcastConfirm = "admin_broadcast_confirm"
)

// dialog is the loaded conversational state for one chat. Data is a
// free-form bag the wizard steps accumulate answers into.
type dialog struct {
	State string
	Data  map[string]string
}

func loadDialog(chatID int64) *dialog {
	var row models.DialogState
	if err := initializers.DB.Where("chat_id = ?", chatID).First(&row).Error; err != nil {
		return &dialog{State: stateNone, Data: map[string]string{}}
	}

	data := map[string]string{}
	if len(row.Data) > 0 {
		_ = json.Unmarshal(row.Data, &data)
	}
	return &dialog{State: row.State, Data: data}
}

func saveDialog(chatID int64, d *dialog) {
	raw, _ := json.Marshal(d.Data)
	row := models.DialogState{
		ChatID: chatID,
		State:  d.State,
		Data:   datatypes.JSON(raw),
	}
	initializers.DB.Save(&row)
}

func clearDialog(chatID int64) {
	initializers.DB.Where("chat_id = ?", chatID).Delete(&models.DialogState{})
}
