package controllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zarbdor/zarbdor-api/models"
	"github.com/zarbdor/zarbdor-api/services"
	"github.com/zarbdor/zarbdor-api/store"
)

func AdminGetStatistics(ctx *gin.Context) {
	stats, err := store.GetStatistics()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to fetch statistics", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "statistics": stats})
}

func AdminGetOrders(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	if page < 1 {
		page = 1
	}

	orders, total, err := store.ListOrders(ctx.Query("status"), page, limit)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to fetch orders", err)
		return
	}

	totalPages := math.Ceil(float64(total) / float64(limit))
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"orders":  orders,
		"metadata": gin.H{
			"total":       total,
			"currentPage": page,
			"limit":       limit,
			"hasPrevPage": page > 1,
			"hasNextPage": int(totalPages) > page,
		},
	})
}

func AdminGetOrder(ctx *gin.Context) {
	orderID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}
	order, err := store.GetOrder(orderID)
	if errors.Is(err, store.ErrNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to fetch order", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "order": order})
}

// AdminUpdateOrderStatus moves an order through its lifecycle and notifies
// the customer. Cancelling restores stock.
func AdminUpdateOrderStatus(ctx *gin.Context) {
	orderID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	switch body.Status {
	case models.OrderStatusConfirmed, models.OrderStatusDelivering,
		models.OrderStatusCompleted, models.OrderStatusCancelled:
	default:
		sendErrorResponse(ctx, http.StatusBadRequest, "unknown status")
		return
	}

	order, err := store.UpdateOrderStatus(orderID, body.Status)
	switch {
	case errors.Is(err, store.ErrNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	case errors.Is(err, store.ErrBadTransition):
		sendErrorResponse(ctx, http.StatusBadRequest, "invalid status transition")
		return
	case err != nil:
		respondWithError(ctx, http.StatusInternalServerError, "unable to update order", err)
		return
	}

	services.Notifier.SendOrderStatus(order)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "order": order})
}
