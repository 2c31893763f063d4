package bot

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

// Telegram omits Message on callbacks from inaccessible or expired
// messages; the update loop must survive those.
func TestCallbackWithoutMessageIgnored(t *testing.T) {
	b := &Bot{}
	assert.NotPanics(t, func() {
		b.RouteUpdate(tgbotapi.Update{
			CallbackQuery: &tgbotapi.CallbackQuery{ID: "1", Data: "cat_1"},
		})
	})
}
