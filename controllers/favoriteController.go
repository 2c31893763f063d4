package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zarbdor/zarbdor-api/store"
)

func GetFavorites(ctx *gin.Context) {
	favorites, err := store.ListFavorites(currentUserID(ctx))
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to fetch favorites", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "favorites": favorites})
}

func AddFavorite(ctx *gin.Context) {
	var body struct {
		ProductID uint `json:"product_id" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	err := store.AddFavorite(currentUserID(ctx), body.ProductID)
	switch {
	case errors.Is(err, store.ErrDuplicate):
		sendErrorResponse(ctx, http.StatusBadRequest, msgAlreadyInFavorites)
	case errors.Is(err, store.ErrNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
	case err != nil:
		respondWithError(ctx, http.StatusInternalServerError, "unable to add favorite", err)
	default:
		sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "product added to favorites"})
	}
}

func RemoveFavorite(ctx *gin.Context) {
	productID, ok := parseUintParam(ctx, "productId")
	if !ok {
		return
	}

	err := store.RemoveFavorite(currentUserID(ctx), productID)
	if errors.Is(err, store.ErrNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, msgNotInFavorites)
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to remove favorite", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "product removed from favorites"})
}
