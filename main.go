package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/zarbdor/zarbdor-api/bot"
	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/logger"
	"github.com/zarbdor/zarbdor-api/middlewares"
	"github.com/zarbdor/zarbdor-api/routes"
	"github.com/zarbdor/zarbdor-api/services"
	"go.uber.org/zap"
)

func init() {
	initializers.LoadEnv()
	initializers.LoadConfig()
	logger.InitLogger()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	defer logger.Sync()

	// The bot shares the process with the HTTP API; both surfaces work
	// against the same database.
	if initializers.Cfg.BotToken != "" {
		shopBot, err := bot.New(initializers.Cfg.BotToken)
		if err != nil {
			logger.Error("failed to start telegram bot", zap.Error(err))
		} else {
			services.InitNotifier(shopBot.API, initializers.Cfg.BroadcastDelay)
			go shopBot.Run()
		}
	} else {
		logger.Warn("BOT_TOKEN not set, running HTTP API only")
	}

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	server.Use(middlewares.Metrics())
	server.Static("/uploads", initializers.Cfg.UploadDir)

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.CatalogRoutes(server)
	routes.CartRoutes(server)
	routes.OrderRoutes(server)
	routes.AdminRoutes(server)

	if err := server.Run(":" + initializers.Cfg.Port); err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
