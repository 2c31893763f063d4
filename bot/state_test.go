package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupStateDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.DialogState{}))
	initializers.DB = db
}

func TestDialogSurvivesReload(t *testing.T) {
	setupStateDB(t)

	d := loadDialog(42)
	assert.Equal(t, stateNone, d.State)

	d.State = stateCheckoutPhone
	d.Data["full_name"] = "Test User"
	saveDialog(42, d)

	reloaded := loadDialog(42)
	assert.Equal(t, stateCheckoutPhone, reloaded.State)
	assert.Equal(t, "Test User", reloaded.Data["full_name"])
}

func TestDialogStatePerChat(t *testing.T) {
	setupStateDB(t)

	first := loadDialog(1)
	first.State = stateSupportMessage
	saveDialog(1, first)

	second := loadDialog(2)
	assert.Equal(t, stateNone, second.State, "state is scoped to the chat")
}

func TestClearDialog(t *testing.T) {
	setupStateDB(t)

	d := loadDialog(42)
	d.State = stateCheckoutConfirm
	d.Data["phone"] = "+998901234567"
	saveDialog(42, d)

	clearDialog(42)

	reloaded := loadDialog(42)
	assert.Equal(t, stateNone, reloaded.State)
	assert.Empty(t, reloaded.Data)
}

func TestDialogOverwriteKeepsSingleRow(t *testing.T) {
	setupStateDB(t)

	d := loadDialog(42)
	d.State = stateCheckoutName
	saveDialog(42, d)
	d.State = stateCheckoutPhone
	saveDialog(42, d)

	var count int64
	initializers.DB.Model(&models.DialogState{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
