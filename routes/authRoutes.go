package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/zarbdor/zarbdor-api/controllers"
	"github.com/zarbdor/zarbdor-api/middlewares"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/api/auth")
	{
		auth.POST("/request-code", controllers.RequestCode)
		auth.POST("/verify-code", controllers.VerifyCode)
		auth.POST("/logout", middlewares.RequireAuth(), controllers.Logout)
		auth.GET("/me", middlewares.RequireAuth(), controllers.GetMe)
	}
}
