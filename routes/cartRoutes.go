package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/zarbdor/zarbdor-api/controllers"
	"github.com/zarbdor/zarbdor-api/middlewares"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/api/cart", middlewares.RequireAuth())
	{
		cart.GET("", controllers.GetCart)
		cart.POST("/add", controllers.AddToCart)
		cart.PUT("/update", controllers.UpdateCartItem)
		cart.DELETE("/remove/:cartId", controllers.RemoveCartItem)
		cart.DELETE("/clear", controllers.ClearCart)
	}

	favorites := server.Group("/api/favorites", middlewares.RequireAuth())
	{
		favorites.GET("", controllers.GetFavorites)
		favorites.POST("", controllers.AddFavorite)
		favorites.DELETE("/:productId", controllers.RemoveFavorite)
	}
}
