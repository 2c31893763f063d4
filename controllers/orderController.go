package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zarbdor/zarbdor-api/logger"
	"github.com/zarbdor/zarbdor-api/metrics"
	"github.com/zarbdor/zarbdor-api/services"
	"github.com/zarbdor/zarbdor-api/store"
	"github.com/zarbdor/zarbdor-api/utils"
	"go.uber.org/zap"
)

type createOrderBody struct {
	FullName       string `json:"full_name" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Address        string `json:"address" binding:"required"`
	NeighborhoodID *uint  `json:"neighborhood_id"`
	PaymentMethod  string `json:"payment_method"`
	Notes          string `json:"notes"`
}

// CreateOrder places an order from the caller's cart and alerts admins.
func CreateOrder(ctx *gin.Context) {
	var body createOrderBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	phone := utils.FormatPhone(body.Phone)
	if !utils.ValidatePhone(phone) {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidPhone)
		return
	}

	order, err := store.PlaceOrder(store.OrderRequest{
		UserID:         currentUserID(ctx),
		FullName:       body.FullName,
		Phone:          phone,
		Address:        body.Address,
		NeighborhoodID: body.NeighborhoodID,
		PaymentMethod:  body.PaymentMethod,
		Notes:          body.Notes,
	})
	switch {
	case errors.Is(err, store.ErrEmptyCart):
		sendErrorResponse(ctx, http.StatusBadRequest, msgCartEmpty)
		return
	case errors.Is(err, store.ErrNotFound):
		sendErrorResponse(ctx, http.StatusBadRequest, "neighborhood not found")
		return
	case err != nil:
		logger.Error("failed to place order", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	metrics.OrdersPlacedTotal.Inc()
	services.Notifier.NotifyAdminsNewOrder(order)

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"success": true, "order": order})
}

func GetOrders(ctx *gin.Context) {
	orders, err := store.ListUserOrders(currentUserID(ctx))
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to fetch orders", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "orders": orders})
}

func GetOrderByID(ctx *gin.Context) {
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
	if order.UserID != currentUserID(ctx) {
		sendErrorResponse(ctx, http.StatusForbidden, "order belongs to another user")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "order": order})
}
