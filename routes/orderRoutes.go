package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/zarbdor/zarbdor-api/controllers"
	"github.com/zarbdor/zarbdor-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/api/orders", middlewares.RequireAuth())
	{
		orders.POST("/create", controllers.CreateOrder)
		orders.GET("", controllers.GetOrders)
		orders.GET("/:id", controllers.GetOrderByID)
	}

	chat := server.Group("/api/chat", middlewares.RequireAuth())
	{
		chat.GET("/messages", controllers.GetChatMessages)
		chat.POST("/send", controllers.SendChatMessage)
		chat.POST("/upload", controllers.UploadChatFile)
	}
}
