package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zarbdor/zarbdor-api/services"
	"github.com/zarbdor/zarbdor-api/store"
)

// Admin management endpoints; the router gates these behind the
// super-admin middleware.

func AdminListAdmins(ctx *gin.Context) {
	admins, err := store.ListAdmins()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to fetch admins", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "admins": admins})
}

func AdminAddAdmin(ctx *gin.Context) {
	var body struct {
		AdminID  int64  `json:"admin_id" binding:"required"`
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	err := store.AddAdmin(body.AdminID, body.Username, body.Role)
	if errors.Is(err, store.ErrDuplicate) {
		sendErrorResponse(ctx, http.StatusBadRequest, "admin already exists")
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to add admin", err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"success": true, "message": "admin added"})
}

func AdminRemoveAdmin(ctx *gin.Context) {
	adminID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid id")
		return
	}
	if adminID == currentUserID(ctx) {
		sendErrorResponse(ctx, http.StatusBadRequest, "cannot remove yourself")
		return
	}

	removeErr := store.RemoveAdmin(adminID)
	if errors.Is(removeErr, store.ErrNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, "admin not found")
		return
	}
	if removeErr != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to remove admin", removeErr)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "admin removed"})
}

// Userbot settings; credentials are masked on read.

func AdminGetUserbotSettings(ctx *gin.Context) {
	settings, err := store.GetUserbotSettings()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to fetch settings", err)
		return
	}
	masked := gin.H{
		"api_id":    settings.APIID,
		"phone":     settings.Phone,
		"is_active": settings.IsActive,
	}
	if settings.APIHash != "" {
		masked["api_hash"] = "***"
	}
	if settings.SessionString != "" {
		masked["session_string"] = "***"
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "settings": masked})
}

func AdminUpdateUserbotSettings(ctx *gin.Context) {
	var body struct {
		APIID         *string `json:"api_id"`
		APIHash       *string `json:"api_hash"`
		Phone         *string `json:"phone"`
		SessionString *string `json:"session_string"`
		IsActive      *bool   `json:"is_active"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	updates := map[string]any{}
	if body.APIID != nil {
		updates["api_id"] = *body.APIID
	}
	if body.APIHash != nil {
		updates["api_hash"] = *body.APIHash
	}
	if body.Phone != nil {
		updates["phone"] = *body.Phone
	}
	if body.SessionString != nil {
		updates["session_string"] = *body.SessionString
	}
	if body.IsActive != nil {
		updates["is_active"] = *body.IsActive
	}
	if len(updates) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "nothing to update")
		return
	}

	if _, err := store.UpdateUserbotSettings(updates); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to update settings", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "settings updated"})
}

// Users

func AdminListUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}

	users, total, err := store.ListUsers(page, limit)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to fetch users", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"users":   users,
		"metadata": gin.H{
			"total":       total,
			"currentPage": page,
			"limit":       limit,
		},
	})
}

func AdminGetUser(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid id")
		return
	}

	user, getErr := store.GetUser(userID)
	if getErr != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "user not found")
		return
	}
	orders, _ := store.ListUserOrders(userID)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "user": user, "orders": orders})
}

// AdminSetUserStatus blocks or unblocks a user. Blocking drops the
// user's sessions along with the active flag.
func AdminSetUserStatus(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid id")
		return
	}
	var body struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	setErr := store.SetUserActive(userID, *body.IsActive)
	if errors.Is(setErr, store.ErrNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, "user not found")
		return
	}
	if setErr != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to update user", setErr)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "user updated"})
}

// AdminBroadcast pushes a message to every active user through the
// notification service.
func AdminBroadcast(ctx *gin.Context) {
	var body struct {
		Message string `json:"message" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	userIDs, err := store.ListUserIDs()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to list users", err)
		return
	}

	result := services.Notifier.Broadcast(userIDs, body.Message)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "result": result})
}
