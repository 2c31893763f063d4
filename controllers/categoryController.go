package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zarbdor/zarbdor-api/store"
)

func GetCategories(ctx *gin.Context) {
	categories, err := store.ListCategories()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to fetch categories", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "categories": categories})
}

func GetNeighborhoods(ctx *gin.Context) {
	neighborhoods, err := store.ListNeighborhoods()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to fetch neighborhoods", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "neighborhoods": neighborhoods})
}
