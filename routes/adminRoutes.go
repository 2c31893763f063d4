package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/zarbdor/zarbdor-api/controllers"
	"github.com/zarbdor/zarbdor-api/middlewares"
)

func AdminRoutes(server *gin.Engine) {
	server.POST("/api/admin/auth/request-code", controllers.AdminRequestCode)
	server.POST("/api/admin/auth/verify-code", controllers.AdminVerifyCode)

	admin := server.Group("/api/admin", middlewares.RequireAdmin())
	{
		admin.GET("/statistics", controllers.AdminGetStatistics)

		admin.GET("/orders", controllers.AdminGetOrders)
		admin.GET("/orders/:id", controllers.AdminGetOrder)
		admin.PUT("/orders/:id/status", controllers.AdminUpdateOrderStatus)

		admin.GET("/products", controllers.AdminGetProducts)
		admin.POST("/products", controllers.AdminCreateProduct)
		admin.PUT("/products/:id", controllers.AdminUpdateProduct)
		admin.DELETE("/products/:id", controllers.AdminDeleteProduct)
		admin.POST("/products/:id/upload-image", controllers.AdminUploadProductImage)

		admin.GET("/categories", controllers.AdminGetCategories)
		admin.POST("/categories", controllers.AdminCreateCategory)
		admin.PUT("/categories/:id", controllers.AdminUpdateCategory)
		admin.DELETE("/categories/:id", controllers.AdminDeleteCategory)

		admin.GET("/neighborhoods", controllers.AdminGetNeighborhoods)
		admin.POST("/neighborhoods", controllers.AdminCreateNeighborhood)
		admin.PUT("/neighborhoods/:id", controllers.AdminUpdateNeighborhood)
		admin.DELETE("/neighborhoods/:id", controllers.AdminDeleteNeighborhood)

		admin.GET("/chats", controllers.AdminGetChats)
		admin.GET("/chats/:userId", controllers.AdminGetChat)
		admin.POST("/chats/:userId/reply", controllers.AdminReplyChat)

		admin.GET("/users", controllers.AdminListUsers)
		admin.GET("/users/:id", controllers.AdminGetUser)
		admin.PUT("/users/:id/status", controllers.AdminSetUserStatus)

		admin.GET("/userbot", controllers.AdminGetUserbotSettings)
		admin.PUT("/userbot", controllers.AdminUpdateUserbotSettings)

		admin.POST("/broadcast", controllers.AdminBroadcast)

		super := admin.Group("", middlewares.RequireSuperAdmin())
		{
			super.GET("/admins", controllers.AdminListAdmins)
			super.POST("/admins", controllers.AdminAddAdmin)
			super.DELETE("/admins/:id", controllers.AdminRemoveAdmin)
		}
	}
}
