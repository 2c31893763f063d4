package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zarbdor/zarbdor-api/models"
	"github.com/zarbdor/zarbdor-api/store"
)

type productView struct {
	models.Product
	IsFavorite bool `json:"is_favorite"`
}

// GetProducts lists active products, optionally narrowed by category or
// search. With a valid token each product carries an is_favorite flag.
func GetProducts(ctx *gin.Context) {
	var categoryID *uint
	if raw := ctx.Query("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "invalid category_id")
			return
		}
		id := uint(parsed)
		categoryID = &id
	}

	products, err := store.ListProducts(categoryID, ctx.Query("search"))
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to fetch products", err)
		return
	}

	userID := currentUserID(ctx)
	views := make([]productView, 0, len(products))
	for _, product := range products {
		view := productView{Product: product}
		if userID != 0 {
			view.IsFavorite = store.IsFavorite(userID, product.ProductID)
		}
		views = append(views, view)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "products": views})
}

func GetProduct(ctx *gin.Context) {
	productID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	product, err := store.GetProduct(productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "unable to fetch product", err)
		}
		return
	}

	view := productView{Product: *product}
	if userID := currentUserID(ctx); userID != 0 {
		view.IsFavorite = store.IsFavorite(userID, product.ProductID)
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "product": view})
}
