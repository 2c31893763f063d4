package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/models"
)

const (
	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgInternalServerError   = "internal server error"
	msgInvalidCode           = "invalid or expired verification code"
	msgInvalidPhone          = "invalid phone number"
	msgProductNotFound       = "product not found"
	msgOrderNotFound         = "order not found"
	msgCartItemNotFound      = "cart item not found"
	msgNotEnoughStock        = "not enough stock"
	msgCartEmpty             = "cart is empty"
	msgAlreadyInFavorites    = "product is already in favorites"
	msgNotInFavorites        = "product is not in favorites"
	msgFailedToGenerateToken = "failed to generate token"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"success": false, "message": message})
}

func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
		"error":   errMsg,
	})
}

func generateUserJWT(user *models.User, sessionID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    user.UserID,
		"session_id": sessionID,
		"iat":        time.Now().Unix(),
		"exp":        time.Now().Add(time.Duration(initializers.Cfg.JWTExpireHours) * time.Hour).Unix(),
	})
	return token.SignedString([]byte(initializers.Cfg.JWTSecret))
}

func generateAdminJWT(admin *models.Admin) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": admin.AdminID,
		"type":    "admin",
		"role":    admin.Role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Duration(initializers.Cfg.JWTExpireHours) * time.Hour).Unix(),
	})
	return token.SignedString([]byte(initializers.Cfg.JWTSecret))
}

// currentUserID reads the subject id set by the auth middlewares.
func currentUserID(ctx *gin.Context) int64 {
	value, exists := ctx.Get("user_id")
	if !exists {
		return 0
	}
	id, _ := value.(int64)
	return id
}

func currentSessionID(ctx *gin.Context) string {
	value, exists := ctx.Get("session_id")
	if !exists {
		return ""
	}
	sessionID, _ := value.(string)
	return sessionID
}

func parseUintParam(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(value), true
}
