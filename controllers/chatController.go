package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/models"
	"github.com/zarbdor/zarbdor-api/services"
	"github.com/zarbdor/zarbdor-api/store"
)

// GetChatMessages returns the caller's support conversation and marks
// admin replies as read.
func GetChatMessages(ctx *gin.Context) {
	messages, err := store.GetUserMessages(currentUserID(ctx), models.SenderTypeUser)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to fetch messages", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "messages": messages})
}

func SendChatMessage(ctx *gin.Context) {
	var body struct {
		Message string `json:"message" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	userID := currentUserID(ctx)
	message := &models.ChatMessage{
		UserID:      userID,
		MessageText: body.Message,
		SenderType:  models.SenderTypeUser,
	}
	if err := store.SaveChatMessage(message); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to save message", err)
		return
	}

	if user, err := store.GetUser(userID); err == nil {
		services.Notifier.NotifyAdminsSupportMessage(user, body.Message)
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"success": true, "message": message})
}

// UploadChatFile stores an attachment under the upload dir and records it
// as a chat message carrying the file path.
func UploadChatFile(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "no file uploaded")
		return
	}
	if file.Size > initializers.Cfg.MaxFileSize {
		sendErrorResponse(ctx, http.StatusBadRequest, "file too large")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	dir := filepath.Join(initializers.Cfg.UploadDir, "chat")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to store file", err)
		return
	}
	path := filepath.Join(dir, uuid.NewString()+ext)
	if err := ctx.SaveUploadedFile(file, path); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to store file", err)
		return
	}

	message := &models.ChatMessage{
		UserID:      currentUserID(ctx),
		MessageText: fmt.Sprintf("[file] /%s", filepath.ToSlash(path)),
		SenderType:  models.SenderTypeUser,
	}
	if err := store.SaveChatMessage(message); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to save message", err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"success": true, "message": message})
}
