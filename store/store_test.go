package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarbdor/zarbdor-api/initializers"
	"github.com/zarbdor/zarbdor-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()

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
	}
}

func seedUser(t *testing.T, id int64) *models.User {
	t.Helper()
	user := &models.User{UserID: id, Phone: "+99890123456" + string(rune('0'+id%10)), Language: "uz", IsActive: true}
	require.NoError(t, initializers.DB.Create(user).Error)
	return user
}

func seedCategory(t *testing.T) *models.Category {
	t.Helper()
	category := &models.Category{NameUz: "Ichimliklar", NameRu: "Напитки", IsActive: true}
	require.NoError(t, initializers.DB.Create(category).Error)
	return category
}

func seedProduct(t *testing.T, categoryID uint, price float64, discount *float64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID:    categoryID,
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

func TestAddToCartMergesQuantity(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, 1)
	category := seedCategory(t)
	product := seedProduct(t, category.CategoryID, 1000, nil, 10)

	require.NoError(t, AddToCart(user.UserID, product.ProductID, 2))
	require.NoError(t, AddToCart(user.UserID, product.ProductID, 3))

	items, err := GetCartItems(user.UserID)
	require.NoError(t, err)
	require.Len(t, items, 1, "repeated add must merge into one row")
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddToCartRejectsOverStock(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, 1)
	category := seedCategory(t)
	product := seedProduct(t, category.CategoryID, 1000, nil, 3)

	require.NoError(t, AddToCart(user.UserID, product.ProductID, 2))
	assert.ErrorIs(t, AddToCart(user.UserID, product.ProductID, 2), ErrOutOfStock)
}

func TestCartTotalUsesDiscountPrice(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, 1)
	category := seedCategory(t)

	discount := 800.0
	productA := seedProduct(t, category.CategoryID, 1000, &discount, 10)
	productB := seedProduct(t, category.CategoryID, 500, nil, 10)

	require.NoError(t, AddToCart(user.UserID, productA.ProductID, 2))
	require.NoError(t, AddToCart(user.UserID, productB.ProductID, 1))

	items, err := GetCartItems(user.UserID)
	require.NoError(t, err)
	assert.Equal(t, 2100.0, CartTotal(items))
}

func TestPlaceOrderLocksPricesAndDecrementsStock(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, 1)
	category := seedCategory(t)

	discount := 800.0
	productA := seedProduct(t, category.CategoryID, 1000, &discount, 5)
	productB := seedProduct(t, category.CategoryID, 500, nil, 5)

	require.NoError(t, AddToCart(user.UserID, productA.ProductID, 2))
	require.NoError(t, AddToCart(user.UserID, productB.ProductID, 1))

	order, err := PlaceOrder(OrderRequest{
		UserID:   user.UserID,
		FullName: "Test User",
		Phone:    "+998901234567",
		Address:  "Tashkent",
	})
	require.NoError(t, err)

	assert.Equal(t, 2100.0, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 2)

	prices := map[uint]float64{}
	for _, item := range order.Items {
		prices[item.ProductID] = item.Price
	}
	assert.Equal(t, 800.0, prices[productA.ProductID], "order item must lock the discount price")
	assert.Equal(t, 500.0, prices[productB.ProductID])

	// Raising the catalog price afterwards must not change the order.
	require.NoError(t, initializers.DB.Model(&models.Product{}).
		Where("product_id = ?", productB.ProductID).Update("price", 9999).Error)
	reloaded, err := GetOrder(order.OrderID)
	require.NoError(t, err)
	for _, item := range reloaded.Items {
		if item.ProductID == productB.ProductID {
			assert.Equal(t, 500.0, item.Price)
		}
	}

	var stockA, stockB models.Product
	require.NoError(t, initializers.DB.First(&stockA, "product_id = ?", productA.ProductID).Error)
	require.NoError(t, initializers.DB.First(&stockB, "product_id = ?", productB.ProductID).Error)
	assert.Equal(t, 3, stockA.StockQuantity)
	assert.Equal(t, 4, stockB.StockQuantity)

	items, err := GetCartItems(user.UserID)
	require.NoError(t, err)
	assert.Empty(t, items, "cart must be cleared after placement")
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, 1)

	_, err := PlaceOrder(OrderRequest{UserID: user.UserID, FullName: "X", Phone: "+998901234567", Address: "Y"})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderAddsDeliveryPrice(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, 1)
	category := seedCategory(t)
	product := seedProduct(t, category.CategoryID, 1000, nil, 5)

	neighborhood := &models.Neighborhood{NameUz: "Markaz", NameRu: "Центр", DeliveryPrice: 15000}
	require.NoError(t, CreateNeighborhood(neighborhood))

	require.NoError(t, AddToCart(user.UserID, product.ProductID, 1))
	order, err := PlaceOrder(OrderRequest{
		UserID:         user.UserID,
		FullName:       "Test User",
		Phone:          "+998901234567",
		Address:        "Tashkent",
		NeighborhoodID: &neighborhood.NeighborhoodID,
	})
	require.NoError(t, err)
	assert.Equal(t, 15000.0, order.DeliveryPrice)
	assert.Equal(t, 16000.0, order.TotalAmount)
}

func TestCancelRestoresStock(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, 1)
	category := seedCategory(t)
	product := seedProduct(t, category.CategoryID, 1000, nil, 5)

	require.NoError(t, AddToCart(user.UserID, product.ProductID, 3))
	order, err := PlaceOrder(OrderRequest{UserID: user.UserID, FullName: "X", Phone: "+998901234567", Address: "Y"})
	require.NoError(t, err)

	var afterPlacement models.Product
	require.NoError(t, initializers.DB.First(&afterPlacement, "product_id = ?", product.ProductID).Error)
	require.Equal(t, 2, afterPlacement.StockQuantity)

	_, err = UpdateOrderStatus(order.OrderID, models.OrderStatusCancelled)
	require.NoError(t, err)

	var afterCancel models.Product
	require.NoError(t, initializers.DB.First(&afterCancel, "product_id = ?", product.ProductID).Error)
	assert.Equal(t, 5, afterCancel.StockQuantity, "cancellation must restore stock")
}

func TestCompletedOrderCannotBeCancelled(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, 1)
	category := seedCategory(t)
	product := seedProduct(t, category.CategoryID, 1000, nil, 5)

	require.NoError(t, AddToCart(user.UserID, product.ProductID, 1))
	order, err := PlaceOrder(OrderRequest{UserID: user.UserID, FullName: "X", Phone: "+998901234567", Address: "Y"})
	require.NoError(t, err)

	for _, status := range []string{models.OrderStatusConfirmed, models.OrderStatusDelivering, models.OrderStatusCompleted} {
		_, err = UpdateOrderStatus(order.OrderID, status)
		require.NoError(t, err)
	}

	_, err = UpdateOrderStatus(order.OrderID, models.OrderStatusCancelled)
	assert.ErrorIs(t, err, ErrBadTransition)
}

func TestVerifyCodeSingleUse(t *testing.T) {
	setupTestDB(t)

	code, err := CreateVerificationCode("+998901234567")
	require.NoError(t, err)
	require.Len(t, code, 6)

	ok, err := VerifyCode("+998901234567", code)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyCode("+998901234567", code)
	require.NoError(t, err)
	assert.False(t, ok, "a code must never succeed twice")
}

func TestVerifyCodeRejectsExpired(t *testing.T) {
	setupTestDB(t)

	record := models.VerificationCode{
		Phone:     "+998901234567",
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, initializers.DB.Create(&record).Error)

	ok, err := VerifyCode("+998901234567", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyCodeRejectsWrongCode(t *testing.T) {
	setupTestDB(t)

	_, err := CreateVerificationCode("+998901234567")
	require.NoError(t, err)

	ok, err := VerifyCode("+998901234567", "000000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSoftDeletedRowsExcluded(t *testing.T) {
	setupTestDB(t)
	category := seedCategory(t)
	active := seedProduct(t, category.CategoryID, 1000, nil, 5)
	hidden := seedProduct(t, category.CategoryID, 2000, nil, 5)

	require.NoError(t, DeleteProduct(hidden.ProductID))

	products, err := ListProducts(nil, "")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, active.ProductID, products[0].ProductID)

	_, err = GetProduct(hidden.ProductID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, DeleteCategory(category.CategoryID))
	categories, err := ListCategories()
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestSoftDeletedProductCanBeReactivated(t *testing.T) {
	setupTestDB(t)
	category := seedCategory(t)
	product := seedProduct(t, category.CategoryID, 1000, nil, 5)

	require.NoError(t, DeleteProduct(product.ProductID))
	_, err := GetProduct(product.ProductID)
	require.ErrorIs(t, err, ErrNotFound)

	// Admin listings keep soft-deleted rows visible.
	all, err := ListAllProducts()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].IsActive)

	require.NoError(t, UpdateProduct(product.ProductID, map[string]any{"is_active": true}))
	restored, err := GetProduct(product.ProductID)
	require.NoError(t, err)
	assert.True(t, restored.IsActive)

	require.NoError(t, DeleteCategory(category.CategoryID))
	require.NoError(t, UpdateCategory(category.CategoryID, map[string]any{"is_active": true}))
	categories, err := ListCategories()
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestDeactivatedUserLosesSessions(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, 1)
	_, err := CreateSession(user.UserID)
	require.NoError(t, err)

	require.NoError(t, SetUserActive(user.UserID, false))
	_, err = GetUser(user.UserID)
	assert.ErrorIs(t, err, ErrNotFound)

	var sessions int64
	require.NoError(t, initializers.DB.Model(&models.Session{}).
		Where("user_id = ?", user.UserID).Count(&sessions).Error)
	assert.Zero(t, sessions)

	require.NoError(t, SetUserActive(user.UserID, true))
	_, err = GetUser(user.UserID)
	assert.NoError(t, err)

	assert.ErrorIs(t, SetUserActive(999, true), ErrNotFound)
}

func TestFavoritesUniquePair(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, 1)
	category := seedCategory(t)
	product := seedProduct(t, category.CategoryID, 1000, nil, 5)

	require.NoError(t, AddFavorite(user.UserID, product.ProductID))
	assert.ErrorIs(t, AddFavorite(user.UserID, product.ProductID), ErrDuplicate)
	assert.True(t, IsFavorite(user.UserID, product.ProductID))

	require.NoError(t, RemoveFavorite(user.UserID, product.ProductID))
	assert.ErrorIs(t, RemoveFavorite(user.UserID, product.ProductID), ErrNotFound)
}

func TestUpdateCartQuantityZeroRemovesRow(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, 1)
	category := seedCategory(t)
	product := seedProduct(t, category.CategoryID, 1000, nil, 5)

	require.NoError(t, AddToCart(user.UserID, product.ProductID, 2))
	items, err := GetCartItems(user.UserID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, UpdateCartQuantity(items[0].CartID, user.UserID, 0))
	items, err = GetCartItems(user.UserID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetOrCreateUserByPhone(t *testing.T) {
	setupTestDB(t)

	created, err := GetOrCreateUserByPhone("+998901234567")
	require.NoError(t, err)
	assert.Equal(t, int64(998901234567), created.UserID)

	again, err := GetOrCreateUserByPhone("+998901234567")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, again.UserID)

	var count int64
	initializers.DB.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAdminLifecycle(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, AddAdmin(100, "boss", models.RoleSuperAdmin))
	require.NoError(t, AddAdmin(200, "helper", models.RoleAdmin))

	assert.True(t, IsSuperAdmin(100))
	assert.True(t, IsAdmin(200))
	assert.False(t, IsSuperAdmin(200))

	assert.ErrorIs(t, AddAdmin(200, "helper", models.RoleAdmin), ErrDuplicate)

	require.NoError(t, RemoveAdmin(200))
	assert.False(t, IsAdmin(200))

	// Re-adding reactivates the soft-deleted row.
	require.NoError(t, AddAdmin(200, "helper", models.RoleAdmin))
	assert.True(t, IsAdmin(200))
}

func TestStatisticsCountsCompletedRevenue(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, 1)
	category := seedCategory(t)
	product := seedProduct(t, category.CategoryID, 1000, nil, 50)

	require.NoError(t, AddToCart(user.UserID, product.ProductID, 2))
	first, err := PlaceOrder(OrderRequest{UserID: user.UserID, FullName: "X", Phone: "+998901234567", Address: "Y"})
	require.NoError(t, err)

	require.NoError(t, AddToCart(user.UserID, product.ProductID, 1))
	_, err = PlaceOrder(OrderRequest{UserID: user.UserID, FullName: "X", Phone: "+998901234567", Address: "Y"})
	require.NoError(t, err)

	for _, status := range []string{models.OrderStatusConfirmed, models.OrderStatusDelivering, models.OrderStatusCompleted} {
		_, err = UpdateOrderStatus(first.OrderID, status)
		require.NoError(t, err)
	}

	stats, err := GetStatistics()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalProducts)
	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.PendingOrders)
	assert.Equal(t, 2000.0, stats.TotalRevenue, "revenue counts completed orders only")
}

func TestUnreadChats(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, 1)

	require.NoError(t, SaveChatMessage(&models.ChatMessage{
		UserID: user.UserID, MessageText: "salom", SenderType: models.SenderTypeUser,
	}))
	require.NoError(t, SaveChatMessage(&models.ChatMessage{
		UserID: user.UserID, MessageText: "yordam kerak", SenderType: models.SenderTypeUser,
	}))

	chats, err := ListUnreadChats()
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, int64(2), chats[0].UnreadCount)

	// Reading as admin marks the user's messages read.
	_, err = GetUserMessages(user.UserID, models.SenderTypeAdmin)
	require.NoError(t, err)

	chats, err = ListUnreadChats()
	require.NoError(t, err)
	assert.Empty(t, chats)
}
