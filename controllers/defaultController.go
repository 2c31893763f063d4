package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the ZarbdorUn storefront API.

AUTH
- POST "/api/auth/request-code" - Request a verification code
- POST "/api/auth/verify-code" - Exchange code for access token
- POST "/api/auth/logout" - Drop the current session
- GET  "/api/auth/me" - Current user profile

CATALOG
- GET "/api/categories" - Active categories
- GET "/api/products" - Active products (category_id, search filters)
- GET "/api/products/:id" - Product by ID
- GET "/api/neighborhoods" - Delivery neighborhoods

CART & FAVORITES
- GET    "/api/cart" - Cart contents with total
- POST   "/api/cart/add" - Add product to cart
- PUT    "/api/cart/update" - Change item quantity
- DELETE "/api/cart/remove/:cartId" - Remove item
- DELETE "/api/cart/clear" - Empty the cart
- GET/POST/DELETE "/api/favorites" - Favorite products

ORDERS
- POST "/api/orders/create" - Place an order from the cart
- GET  "/api/orders" - Own orders
- GET  "/api/orders/:id" - Own order by ID

SUPPORT
- GET  "/api/chat/messages" - Conversation with support
- POST "/api/chat/send" - Send a message
- POST "/api/chat/upload" - Attach a file

Admin endpoints live under "/api/admin".`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

func HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
