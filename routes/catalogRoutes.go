package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/zarbdor/zarbdor-api/controllers"
	"github.com/zarbdor/zarbdor-api/middlewares"
)

func CatalogRoutes(server *gin.Engine) {
	api := server.Group("/api")
	{
		api.GET("/categories", controllers.GetCategories)
		api.GET("/products", middlewares.OptionalAuth(), controllers.GetProducts)
		api.GET("/products/:id", middlewares.OptionalAuth(), controllers.GetProduct)
		api.GET("/neighborhoods", controllers.GetNeighborhoods)
	}
}
