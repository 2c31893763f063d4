package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zarbdor/zarbdor-api/logger"
	"github.com/zarbdor/zarbdor-api/models"
	"github.com/zarbdor/zarbdor-api/services"
	"github.com/zarbdor/zarbdor-api/store"
	"go.uber.org/zap"
)

// AdminGetChats lists users with unread support messages.
func AdminGetChats(ctx *gin.Context) {
	chats, err := store.ListUnreadChats()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to fetch chats", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "chats": chats})
}

// AdminGetChat returns one user's conversation and marks their messages
// as read.
func AdminGetChat(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid userId")
		return
	}

	messages, getErr := store.GetUserMessages(userID, models.SenderTypeAdmin)
	if getErr != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to fetch messages", getErr)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "messages": messages})
}

// AdminReplyChat persists an answer and delivers it through the bot.
func AdminReplyChat(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid userId")
		return
	}

	var body struct {
		Message string `json:"message" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	adminID := currentUserID(ctx)
	message := &models.ChatMessage{
		UserID:      userID,
		AdminID:     &adminID,
		MessageText: body.Message,
		SenderType:  models.SenderTypeAdmin,
	}
	if err := store.SaveChatMessage(message); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to save reply", err)
		return
	}

	if err := services.Notifier.SendAdminReply(userID, body.Message); err != nil {
		logger.Warn("failed to deliver admin reply", zap.Int64("user_id", userID), zap.Error(err))
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"success": true, "message": message})
}
