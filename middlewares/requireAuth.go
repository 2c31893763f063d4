package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/store"
)

func parseToken(ctx *gin.Context) (jwt.MapClaims, error) {
	header := ctx.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, fmt.Errorf("missing bearer token")
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(initializers.Cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

func subjectID(claims jwt.MapClaims) int64 {
	raw, ok := claims["user_id"].(float64)
	if !ok {
		return 0
	}
	return int64(raw)
}

// RequireAuth admits requests carrying a valid user token for an active
// account.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := parseToken(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
			return
		}
		if tokenType, _ := claims["type"].(string); tokenType == "admin" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "user token required"})
			return
		}

		userID := subjectID(claims)
		if _, err := store.GetUser(userID); err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "user not found or inactive"})
			return
		}

		ctx.Set("claims", claims)
		ctx.Set("user_id", userID)
		if sessionID, ok := claims["session_id"].(string); ok {
			ctx.Set("session_id", sessionID)
		}
		ctx.Next()
	}
}

// OptionalAuth sets the subject id when a valid token is present but
// never rejects the request. Listing endpoints use it for per-user
// flags like is_favorite.
func OptionalAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if claims, err := parseToken(ctx); err == nil {
			if tokenType, _ := claims["type"].(string); tokenType != "admin" {
				ctx.Set("user_id", subjectID(claims))
			}
		}
		ctx.Next()
	}
}
