package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zarbdor/zarbdor-api/store"
)

// RequireAdmin admits admin tokens only. The role is re-checked against
// the database on every request so a removed admin loses access at once.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := parseToken(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
			return
		}

		tokenType, _ := claims["type"].(string)
		if tokenType != "admin" {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "admin access required"})
			return
		}

		adminID := subjectID(claims)
		admin, err := store.GetAdmin(adminID)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "admin access required"})
			return
		}

		ctx.Set("claims", claims)
		ctx.Set("user_id", adminID)
		ctx.Set("role", admin.Role)
		ctx.Next()
	}
}

// RequireSuperAdmin sits behind RequireAdmin and narrows access further.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role, _ := ctx.Get("role")
		if role != "super_admin" {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "super admin access required"})
			return
		}
		ctx.Next()
	}
}
