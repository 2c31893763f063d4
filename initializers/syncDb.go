package initializers

import (
	"log"

	"github.com/zarbdor/zarbdor-api/models"
)

func SyncDatabase() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Favorite{},
		&models.Neighborhood{},
		&models.Order{},
		&models.OrderItem{},
		&models.Admin{},
		&models.VerificationCode{},
		&models.ChatMessage{},
		&models.Session{},
		&models.UserbotSettings{},
		&models.DialogState{},
	)
	if err != nil {
		log.Fatal("Failed to sync database: ", err)
	}
	seedSuperAdmin()
	log.Println("Database synced successfully.")
}

// seedSuperAdmin makes sure the configured super admin always has an
// active row, so a fresh database is immediately manageable.
func seedSuperAdmin() {
	if Cfg == nil || Cfg.SuperAdminID == 0 {
		return
	}
	var admin models.Admin
	result := DB.Where("admin_id = ?", Cfg.SuperAdminID).First(&admin)
	if result.Error == nil {
		if admin.Role != models.RoleSuperAdmin || !admin.IsActive {
			DB.Model(&admin).Updates(map[string]any{"role": models.RoleSuperAdmin, "is_active": true})
		}
		return
	}
	DB.Create(&models.Admin{
		AdminID:  Cfg.SuperAdminID,
		Role:     models.RoleSuperAdmin,
		IsActive: true,
	})
}
