package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/models"
	"github.com/zarbdor/zarbdor-api/store"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Products

// AdminGetProducts lists every product, soft-deleted rows included, so
// admins can see and reactivate them.
func AdminGetProducts(ctx *gin.Context) {
	products, err := store.ListAllProducts()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to fetch products", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "products": products})
}

func AdminCreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if _, err := store.GetCategory(product.CategoryID); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "category not found")
		return
	}
	if err := store.CreateProduct(&product); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to create product", err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"success": true, "product": product})
}

func AdminUpdateProduct(ctx *gin.Context) {
	productID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}
	var updates map[string]any
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	delete(updates, "product_id")

	err := store.UpdateProduct(productID, updates)
	if errors.Is(err, store.ErrNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to update product", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "product updated"})
}

func AdminDeleteProduct(ctx *gin.Context) {
	productID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}
	err := store.DeleteProduct(productID)
	if errors.Is(err, store.ErrNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to delete product", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "product deleted"})
}

// AdminUploadProductImage saves a product photo under the upload dir and
// stores its path on the product. Files are served statically.
func AdminUploadProductImage(ctx *gin.Context) {
	productID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}
	if _, err := store.GetProduct(productID); err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "no file uploaded")
		return
	}
	if file.Size > initializers.Cfg.MaxFileSize {
		sendErrorResponse(ctx, http.StatusBadRequest, "file too large")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		sendErrorResponse(ctx, http.StatusBadRequest, "unsupported file type")
		return
	}

	if err := os.MkdirAll(initializers.Cfg.UploadDir, 0o755); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to store image", err)
		return
	}
	path := filepath.Join(initializers.Cfg.UploadDir, fmt.Sprintf("product_%d%s", productID, ext))
	if err := ctx.SaveUploadedFile(file, path); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to store image", err)
		return
	}

	imagePath := "/" + filepath.ToSlash(path)
	if err := store.SetProductImage(productID, imagePath); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to save image path", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "image_path": imagePath})
}

// Categories

// AdminGetCategories lists every category, soft-deleted rows included.
func AdminGetCategories(ctx *gin.Context) {
	categories, err := store.ListAllCategories()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to fetch categories", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "categories": categories})
}

func AdminCreateCategory(ctx *gin.Context) {
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if err := store.CreateCategory(&category); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to create category", err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"success": true, "category": category})
}

func AdminUpdateCategory(ctx *gin.Context) {
	categoryID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}
	var updates map[string]any
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	delete(updates, "category_id")

	err := store.UpdateCategory(categoryID, updates)
	if errors.Is(err, store.ErrNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, "category not found")
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to update category", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "category updated"})
}

func AdminDeleteCategory(ctx *gin.Context) {
	categoryID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}
	err := store.DeleteCategory(categoryID)
	if errors.Is(err, store.ErrNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, "category not found")
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to delete category", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "category deleted"})
}

// Neighborhoods

// AdminGetNeighborhoods lists every neighborhood, soft-deleted rows
// included.
func AdminGetNeighborhoods(ctx *gin.Context) {
	neighborhoods, err := store.ListAllNeighborhoods()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to fetch neighborhoods", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "neighborhoods": neighborhoods})
}

func AdminCreateNeighborhood(ctx *gin.Context) {
	var neighborhood models.Neighborhood
	if err := ctx.ShouldBindJSON(&neighborhood); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if err := store.CreateNeighborhood(&neighborhood); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to create neighborhood", err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"success": true, "neighborhood": neighborhood})
}

func AdminUpdateNeighborhood(ctx *gin.Context) {
	neighborhoodID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}
	var updates map[string]any
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	delete(updates, "neighborhood_id")

	err := store.UpdateNeighborhood(neighborhoodID, updates)
	if errors.Is(err, store.ErrNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, "neighborhood not found")
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to update neighborhood", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "neighborhood updated"})
}

func AdminDeleteNeighborhood(ctx *gin.Context) {
	neighborhoodID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}
	err := store.DeleteNeighborhood(neighborhoodID)
	if errors.Is(err, store.ErrNotFound) {
		sendErrorResponse(ctx, http.StatusNotFound, "neighborhood not found")
		return
	}
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "unable to delete neighborhood", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "neighborhood deleted"})
}
