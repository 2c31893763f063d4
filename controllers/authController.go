package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/logger"
	"github.com/zarbdor/zarbdor-api/services"
	"github.com/zarbdor/zarbdor-api/store"
	"github.com/zarbdor/zarbdor-api/utils"
	"go.uber.org/zap"
)

type phoneBody struct {
	Phone string `json:"phone" binding:"required"`
}

type verifyBody struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// RequestCode issues a verification code for a phone number and hands it
// to the notification service for delivery.
func RequestCode(ctx *gin.Context) {
	var body phoneBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	phone := utils.FormatPhone(body.Phone)
	if !utils.ValidatePhone(phone) {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidPhone)
		return
	}

	code, err := store.CreateVerificationCode(phone)
	if err != nil {
		logger.Error("failed to create verification code", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	services.DeliverVerificationCode(phone, code)

	response := gin.H{"success": true, "message": "verification code sent"}
	if initializers.Cfg.DevMode {
		response["code"] = code
	}
	sendJSONResponse(ctx, http.StatusOK, response)
}

// VerifyCode burns a verification code and logs the user in, creating the
// account on first contact.
func VerifyCode(ctx *gin.Context) {
	var body verifyBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	phone := utils.FormatPhone(body.Phone)
	ok, err := store.VerifyCode(phone, body.Code)
	if err != nil {
		logger.Error("failed to check verification code", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCode)
		return
	}

	user, err := store.GetOrCreateUserByPhone(phone)
	if err != nil {
		logger.Error("failed to resolve user by phone", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	session, err := store.CreateSession(user.UserID)
	if err != nil {
		logger.Error("failed to create session", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	tokenString, err := generateUserJWT(user, session.SessionID)
	if err != nil {
		logger.Error("failed to sign token", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success":      true,
		"access_token": tokenString,
		"token_type":   "bearer",
		"user":         user,
	})
}

// Logout drops the session row behind the presented token.
func Logout(ctx *gin.Context) {
	if sessionID := currentSessionID(ctx); sessionID != "" {
		if err := store.DeleteSession(sessionID); err != nil {
			logger.Warn("failed to delete session", zap.Error(err))
		}
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "logged out"})
}

func GetMe(ctx *gin.Context) {
	user, err := store.GetUser(currentUserID(ctx))
	if err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, "user not found")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "user": user})
}
