package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zarbdor/zarbdor-api/store"
)

func GetCart(ctx *gin.Context) {
	items, err := store.GetCartItems(currentUserID(ctx))
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to fetch cart", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"items":   items,
		"total":   store.CartTotal(items),
		"count":   len(items),
	})
}

func AddToCart(ctx *gin.Context) {
	var body struct {
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	err := store.AddToCart(currentUserID(ctx), body.ProductID, body.Quantity)
	switch {
	case errors.Is(err, store.ErrNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
	case errors.Is(err, store.ErrOutOfStock):
		sendErrorResponse(ctx, http.StatusBadRequest, msgNotEnoughStock)
	case err != nil:
		respondWithError(ctx, http.StatusInternalServerError, "unable to add to cart", err)
	default:
		sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "product added to cart"})
	}
}

func UpdateCartItem(ctx *gin.Context) {
	var body struct {
		CartID   uint `json:"cart_id" binding:"required"`
		Quantity int  `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	err := store.UpdateCartQuantity(body.CartID, currentUserID(ctx), body.Quantity)
	switch {
	case errors.Is(err, store.ErrNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, msgCartItemNotFound)
	case errors.Is(err, store.ErrOutOfStock):
		sendErrorResponse(ctx, http.StatusBadRequest, msgNotEnoughStock)
	case err != nil:
		respondWithError(ctx, http.StatusInternalServerError, "unable to update cart", err)
	default:
		sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "cart updated"})
	}
}

func RemoveCartItem(ctx *gin.Context) {
	cartID, ok := parseUintParam(ctx, "cartId")
	if !ok {
		return
	}

	err := store.RemoveCartItem(cartID, currentUserID(ctx))
	if errors.Is(err, store.ErrNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, msgCartItemNotFound)
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to remove cart item", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "cart item removed"})
}

func ClearCart(ctx *gin.Context) {
	if err := store.ClearCart(currentUserID(ctx)); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to clear cart", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "cart cleared"})
}
