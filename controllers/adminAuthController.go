package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/logger"
	"github.com/zarbdor/zarbdor-api/services"
	"github.com/zarbdor/zarbdor-api/store"
	"go.uber.org/zap"
)

// Admin login codes are keyed by the admin's telegram id and delivered to
// their telegram chat, so only someone holding the account can log in.

func adminCodeKey(adminID int64) string {
	return fmt.Sprintf("admin:%d", adminID)
}

func AdminRequestCode(ctx *gin.Context) {
	var body struct {
		AdminID int64 `json:"admin_id" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if _, err := store.GetAdmin(body.AdminID); err != nil {
		sendErrorResponse(ctx, http.StatusForbidden, "not an admin")
		return
	}

	code, err := store.CreateVerificationCode(adminCodeKey(body.AdminID))
	if err != nil {
		logger.Error("failed to create admin code", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	services.DeliverAdminCode(body.AdminID, code)

	response := gin.H{"success": true, "message": "verification code sent"}
	if initializers.Cfg.DevMode {
		response["code"] = code
	}
	sendJSONResponse(ctx, http.StatusOK, response)
}

func AdminVerifyCode(ctx *gin.Context) {
	var body struct {
		AdminID int64  `json:"admin_id" binding:"required"`
		Code    string `json:"code" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	ok, err := store.VerifyCode(adminCodeKey(body.AdminID), body.Code)
	if err != nil {
		logger.Error("failed to check admin code", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCode)
		return
	}

	admin, err := store.GetAdmin(body.AdminID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusForbidden, "not an admin")
		return
	}

	tokenString, err := generateAdminJWT(admin)
	if err != nil {
		logger.Error("failed to sign admin token", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":      true,
		"access_token": tokenString,
		"token_type":   "bearer",
		"admin":        admin,
	})
}
