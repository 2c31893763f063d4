package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/models"
	"github.com/zarbdor/zarbdor-api/routes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Favorite{},
		&models.Neighborhood{},
		&models.Order{},
		&models.OrderItem{},
		&models.Admin{},
		&models.VerificationCode{},
		&models.ChatMessage{},
		&models.Session{},
		&models.UserbotSettings{},
		&models.DialogState{},
	))
	initializers.DB = db
	initializers.Cfg = &initializers.Config{
		CodeLength:        6,
		CodeExpireMinutes: 5,
		JWTExpireHours:    720,
		JWTSecret:         "test-secret",
		DevMode:           true,
	}

	server := gin.New()
	routes.AuthRoutes(server)
	routes.CatalogRoutes(server)
	routes.CartRoutes(server)
	routes.OrderRoutes(server)
	routes.AdminRoutes(server)
	routes.DefaultRoutes(server)
	return server
}

func doJSON(t *testing.T, server *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &parsed))
	return parsed
}

// loginUser walks the code-based login for a phone number and returns the
// issued token. Dev mode echoes the code back so no bot is needed.
func loginUser(t *testing.T, server *gin.Engine, phone string) string {
	t.Helper()

	recorder := doJSON(t, server, http.MethodPost, "/api/auth/request-code", "", gin.H{"phone": phone})
	require.Equal(t, http.StatusOK, recorder.Code)
	code, _ := decodeBody(t, recorder)["code"].(string)
	require.NotEmpty(t, code)

	recorder = doJSON(t, server, http.MethodPost, "/api/auth/verify-code", "", gin.H{"phone": phone, "code": code})
	require.Equal(t, http.StatusOK, recorder.Code)
	token, _ := decodeBody(t, recorder)["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func loginAdmin(t *testing.T, server *gin.Engine, adminID int64, role string) string {
	t.Helper()
	require.NoError(t, initializers.DB.Create(&models.Admin{AdminID: adminID, Role: role, IsActive: true}).Error)

	recorder := doJSON(t, server, http.MethodPost, "/api/admin/auth/request-code", "", gin.H{"admin_id": adminID})
	require.Equal(t, http.StatusOK, recorder.Code)
	code, _ := decodeBody(t, recorder)["code"].(string)
	require.NotEmpty(t, code)

	recorder = doJSON(t, server, http.MethodPost, "/api/admin/auth/verify-code", "", gin.H{"admin_id": adminID, "code": code})
	require.Equal(t, http.StatusOK, recorder.Code)
	token, _ := decodeBody(t, recorder)["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func seedProduct(t *testing.T, price float64, discount *float64, stock int) *models.Product {
	t.Helper()
	category := &models.Category{NameUz: "Mevalar", NameRu: "Фрукты", IsActive: true}
	require.NoError(t, initializers.DB.Create(category).Error)
	product := &models.Product{
		CategoryID:    category.CategoryID,
		NameUz:        "Mahsulot",
		NameRu:        "Товар",
		Price:         price,
		DiscountPrice: discount,
		StockQuantity: stock,
		IsActive:      true,
	}
	require.NoError(t, initializers.DB.Create(product).Error)
	return product
}

func TestAuthFlow(t *testing.T) {
	server := setupServer(t)

	recorder := doJSON(t, server, http.MethodPost, "/api/auth/request-code", "", gin.H{"phone": "+998901234567"})
	require.Equal(t, http.StatusOK, recorder.Code)
	code, _ := decodeBody(t, recorder)["code"].(string)
	require.Len(t, code, 6)

	recorder = doJSON(t, server, http.MethodPost, "/api/auth/verify-code", "", gin.H{"phone": "+998901234567", "code": "000000"})
	if code != "000000" {
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, "wrong code is rejected")
	}

	recorder = doJSON(t, server, http.MethodPost, "/api/auth/verify-code", "", gin.H{"phone": "+998901234567", "code": code})
	require.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	assert.Equal(t, "bearer", body["token_type"])

	recorder = doJSON(t, server, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	user, _ := decodeBody(t, recorder)["user"].(map[string]any)
	require.NotNil(t, user)
	assert.Equal(t, "+998901234567", user["phone"])

	recorder = doJSON(t, server, http.MethodPost, "/api/auth/verify-code", "", gin.H{"phone": "+998901234567", "code": code})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code, "a code only works once")
}

func TestRequestCodeRejectsBadPhone(t *testing.T) {
	server := setupServer(t)

	recorder := doJSON(t, server, http.MethodPost, "/api/auth/request-code", "", gin.H{"phone": "12345"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCartRequiresAuth(t *testing.T) {
	server := setupServer(t)

	recorder := doJSON(t, server, http.MethodGet, "/api/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestOrderFlow(t *testing.T) {
	server := setupServer(t)
	token := loginUser(t, server, "+998901234567")

	discount := 800.0
	discounted := seedProduct(t, 1000, &discount, 10)
	plain := &models.Product{
		CategoryID:    discounted.CategoryID,
		NameUz:        "Non",
		NameRu:        "Хлеб",
		Price:         500,
		StockQuantity: 4,
		IsActive:      true,
	}
	require.NoError(t, initializers.DB.Create(plain).Error)

	recorder := doJSON(t, server, http.MethodPost, "/api/cart/add", token, gin.H{"product_id": discounted.ProductID, "quantity": 2})
	require.Equal(t, http.StatusOK, recorder.Code)
	recorder = doJSON(t, server, http.MethodPost, "/api/cart/add", token, gin.H{"product_id": plain.ProductID, "quantity": 1})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, server, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	cart := decodeBody(t, recorder)
	assert.Equal(t, 2100.0, cart["total"], "discounted line uses the discount price")
	assert.Equal(t, 2.0, cart["count"])

	recorder = doJSON(t, server, http.MethodPost, "/api/orders/create", token, gin.H{
		"full_name":      "Test User",
		"phone":          "+998901234567",
		"address":        "Tashkent",
		"payment_method": "cash",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	order, _ := decodeBody(t, recorder)["order"].(map[string]any)
	require.NotNil(t, order)
	assert.Equal(t, 2100.0, order["total_amount"])
	assert.Equal(t, "pending", order["status"])

	var reloaded models.Product
	require.NoError(t, initializers.DB.First(&reloaded, discounted.ProductID).Error)
	assert.Equal(t, 8, reloaded.StockQuantity)

	recorder = doJSON(t, server, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 0.0, decodeBody(t, recorder)["count"], "placing the order empties the cart")
}

func TestOrderEmptyCart(t *testing.T) {
	server := setupServer(t)
	token := loginUser(t, server, "+998901234567")

	recorder := doJSON(t, server, http.MethodPost, "/api/orders/create", token, gin.H{
		"full_name": "Test User",
		"phone":     "+998901234567",
		"address":   "Tashkent",
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "cart is empty", decodeBody(t, recorder)["message"])
}

func TestOrderOwnership(t *testing.T) {
	server := setupServer(t)
	owner := loginUser(t, server, "+998901234567")
	stranger := loginUser(t, server, "+998907654321")

	product := seedProduct(t, 500, nil, 5)
	recorder := doJSON(t, server, http.MethodPost, "/api/cart/add", owner, gin.H{"product_id": product.ProductID, "quantity": 1})
	require.Equal(t, http.StatusOK, recorder.Code)
	recorder = doJSON(t, server, http.MethodPost, "/api/orders/create", owner, gin.H{
		"full_name": "Test User",
		"phone":     "+998901234567",
		"address":   "Tashkent",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doJSON(t, server, http.MethodGet, "/api/orders/1", stranger, nil)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = doJSON(t, server, http.MethodGet, "/api/orders/1", owner, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestFavoritesFlagOnProducts(t *testing.T) {
	server := setupServer(t)
	token := loginUser(t, server, "+998901234567")
	product := seedProduct(t, 500, nil, 5)

	recorder := doJSON(t, server, http.MethodPost, "/api/favorites", token, gin.H{"product_id": product.ProductID})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, server, http.MethodPost, "/api/favorites", token, gin.H{"product_id": product.ProductID})
	assert.Equal(t, http.StatusBadRequest, recorder.Code, "adding twice is refused")

	recorder = doJSON(t, server, http.MethodGet, "/api/products", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	products, _ := decodeBody(t, recorder)["products"].([]any)
	require.Len(t, products, 1)
	assert.Equal(t, true, products[0].(map[string]any)["is_favorite"])

	recorder = doJSON(t, server, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	products, _ = decodeBody(t, recorder)["products"].([]any)
	require.Len(t, products, 1)
	assert.Equal(t, false, products[0].(map[string]any)["is_favorite"], "anonymous callers see no favorites")
}

func TestAdminGating(t *testing.T) {
	server := setupServer(t)
	userToken := loginUser(t, server, "+998901234567")
	adminToken := loginAdmin(t, server, 77, models.RoleAdmin)

	recorder := doJSON(t, server, http.MethodGet, "/api/admin/statistics", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = doJSON(t, server, http.MethodGet, "/api/admin/statistics", userToken, nil)
	assert.Equal(t, http.StatusForbidden, recorder.Code, "user tokens cannot reach admin endpoints")

	recorder = doJSON(t, server, http.MethodGet, "/api/admin/statistics", adminToken, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, server, http.MethodGet, "/api/admin/admins", adminToken, nil)
	assert.Equal(t, http.StatusForbidden, recorder.Code, "plain admins cannot manage admins")

	recorder = doJSON(t, server, http.MethodGet, "/api/auth/me", adminToken, nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code, "admin tokens are not user tokens")
}

func TestSuperAdminManagesAdmins(t *testing.T) {
	server := setupServer(t)
	superToken := loginAdmin(t, server, 1, models.RoleSuperAdmin)

	recorder := doJSON(t, server, http.MethodPost, "/api/admin/admins", superToken, gin.H{"admin_id": 55, "username": "helper"})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doJSON(t, server, http.MethodGet, "/api/admin/admins", superToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	admins, _ := decodeBody(t, recorder)["admins"].([]any)
	assert.Len(t, admins, 2)

	recorder = doJSON(t, server, http.MethodDelete, "/api/admin/admins/1", superToken, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code, "self-removal is refused")

	recorder = doJSON(t, server, http.MethodDelete, "/api/admin/admins/55", superToken, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAdminOrderStatusTransitions(t *testing.T) {
	server := setupServer(t)
	userToken := loginUser(t, server, "+998901234567")
	adminToken := loginAdmin(t, server, 77, models.RoleAdmin)

	product := seedProduct(t, 500, nil, 5)
	recorder := doJSON(t, server, http.MethodPost, "/api/cart/add", userToken, gin.H{"product_id": product.ProductID, "quantity": 2})
	require.Equal(t, http.StatusOK, recorder.Code)
	recorder = doJSON(t, server, http.MethodPost, "/api/orders/create", userToken, gin.H{
		"full_name": "Test User",
		"phone":     "+998901234567",
		"address":   "Tashkent",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doJSON(t, server, http.MethodPut, "/api/admin/orders/1/status", adminToken, gin.H{"status": "completed"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code, "pending cannot jump straight to completed")

	recorder = doJSON(t, server, http.MethodPut, "/api/admin/orders/1/status", adminToken, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, server, http.MethodPut, "/api/admin/orders/1/status", adminToken, gin.H{"status": "cancelled"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var reloaded models.Product
	require.NoError(t, initializers.DB.First(&reloaded, product.ProductID).Error)
	assert.Equal(t, 5, reloaded.StockQuantity, "cancelling returns stock")
}

func TestAdminCatalogShowsInactiveRows(t *testing.T) {
	server := setupServer(t)
	adminToken := loginAdmin(t, server, 77, models.RoleAdmin)
	product := seedProduct(t, 500, nil, 5)

	recorder := doJSON(t, server, http.MethodDelete, fmt.Sprintf("/api/admin/products/%d", product.ProductID), adminToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, server, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	products, _ := decodeBody(t, recorder)["products"].([]any)
	assert.Empty(t, products, "customers no longer see the product")

	recorder = doJSON(t, server, http.MethodGet, "/api/admin/products", adminToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	products, _ = decodeBody(t, recorder)["products"].([]any)
	require.Len(t, products, 1, "admins still see soft-deleted products")
	assert.Equal(t, false, products[0].(map[string]any)["is_active"])

	recorder = doJSON(t, server, http.MethodPut, fmt.Sprintf("/api/admin/products/%d", product.ProductID), adminToken, gin.H{"is_active": true})
	require.Equal(t, http.StatusOK, recorder.Code, "update must reach soft-deleted rows")

	recorder = doJSON(t, server, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	products, _ = decodeBody(t, recorder)["products"].([]any)
	assert.Len(t, products, 1, "reactivated product is back in the catalog")

	recorder = doJSON(t, server, http.MethodGet, "/api/admin/categories", adminToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	categories, _ := decodeBody(t, recorder)["categories"].([]any)
	assert.Len(t, categories, 1)
}

func TestAdminBlocksUser(t *testing.T) {
	server := setupServer(t)
	userToken := loginUser(t, server, "+998901234567")
	adminToken := loginAdmin(t, server, 77, models.RoleAdmin)

	recorder := doJSON(t, server, http.MethodGet, "/api/auth/me", userToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, server, http.MethodPut, "/api/admin/users/998901234567/status", adminToken, gin.H{"is_active": false})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, server, http.MethodGet, "/api/auth/me", userToken, nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code, "blocked users lose access")

	var sessions int64
	require.NoError(t, initializers.DB.Model(&models.Session{}).
		Where("user_id = ?", int64(998901234567)).Count(&sessions).Error)
	assert.Zero(t, sessions, "blocking drops the user's sessions")

	recorder = doJSON(t, server, http.MethodPut, "/api/admin/users/998901234567/status", adminToken, gin.H{"is_active": true})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, server, http.MethodPut, "/api/admin/users/42/status", adminToken, gin.H{"is_active": false})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHealthEndpoint(t *testing.T) {
	server := setupServer(t)

	recorder := doJSON(t, server, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ok", decodeBody(t, recorder)["status"])
}
