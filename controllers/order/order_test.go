package orderControllers

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/harshitap649-prog/peterart07/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection: every pooled conn would otherwise get its own
	// empty in-memory database.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Artwork{},
		&models.Order{},
	))
	return db
}

func createArtwork(t *testing.T, db *gorm.DB, title string, price float64) models.Artwork {
	t.Helper()
	artwork := models.Artwork{Title: title, Price: price, Image: "/uploads/artworks/test.jpg"}
	require.NoError(t, db.Create(&artwork).Error)
	return artwork
}

func validRequest(artworkID uint) PlaceOrderRequest {
	return PlaceOrderRequest{
		ArtworkID:     artworkID,
		BuyerName:     "Jane Doe",
		Phone:         "9876543210",
		AddressLine1:  "12 Main St",
		PostalCode:    "560001",
		PaymentMethod: "cod",
		Quantity:      "2",
	}
}

func orderCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Order{}).Count(&n).Error)
	return n
}

func TestPlaceOrderQuantityOutOfRange(t *testing.T) {
	db := newTestDB(t)
	artwork := createArtwork(t, db, "Sunset", 100)

	for _, qty := range []string{"0", "6", "-1", "100"} {
		req := validRequest(artwork.ID)
		req.Quantity = qty

		result, err := PlaceOrder(db, req)
		require.NoError(t, err)
		assert.Contains(t, result.Errors, "quantity", "quantity %q should be rejected", qty)
		assert.Nil(t, result.Order)
	}
	assert.EqualValues(t, 0, orderCount(t, db), "rejected orders must not be persisted")
}

func TestPlaceOrderQuantityInRange(t *testing.T) {
	db := newTestDB(t)
	artwork := createArtwork(t, db, "Sunset", 100)

	for i := 1; i <= 5; i++ {
		req := validRequest(artwork.ID)
		req.Quantity = fmt.Sprintf("%d", i)

		result, err := PlaceOrder(db, req)
		require.NoError(t, err)
		require.Empty(t, result.Errors)
		assert.Equal(t, i, result.Order.Quantity)
	}
}

func TestPlaceOrderQuantityDefaultsToOne(t *testing.T) {
	db := newTestDB(t)
	artwork := createArtwork(t, db, "Sunset", 100)

	// Missing or garbage quantity silently defaults to 1; only an
	// explicit out-of-range number is an error.
	for _, qty := range []string{"", "abc", "  "} {
		req := validRequest(artwork.ID)
		req.Quantity = qty

		result, err := PlaceOrder(db, req)
		require.NoError(t, err)
		require.Empty(t, result.Errors, "quantity %q should default, not fail", qty)
		assert.Equal(t, 1, result.Order.Quantity)
		assert.Equal(t, 100.0, result.Order.TotalAmount)
	}
}

func TestPlaceOrderCollectsAllFieldErrors(t *testing.T) {
	db := newTestDB(t)
	artwork := createArtwork(t, db, "Sunset", 100)

	req := PlaceOrderRequest{
		ArtworkID:     artwork.ID,
		BuyerName:     "J",
		Phone:         "12345",
		AddressLine1:  "abc",
		PostalCode:    "560",
		PaymentMethod: "card",
		Quantity:      "9",
	}

	result, err := PlaceOrder(db, req)
	require.NoError(t, err)
	for _, field := range []string{"buyer_name", "phone", "address_line1", "postal_code", "payment_method", "quantity"} {
		assert.Contains(t, result.Errors, field)
	}
	// Errors come back with the computed total so the form can re-render.
	assert.Equal(t, artwork.Price*9, result.Total)
	assert.EqualValues(t, 0, orderCount(t, db))
}

func TestPlaceOrderArtworkNotFound(t *testing.T) {
	db := newTestDB(t)

	result, err := PlaceOrder(db, validRequest(999))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, result)
}

func TestPlaceOrderAddressComposition(t *testing.T) {
	db := newTestDB(t)
	artwork := createArtwork(t, db, "Sunset", 100)

	req := validRequest(artwork.ID)
	req.AddressLine2 = "Apt 4B"
	result, err := PlaceOrder(db, req)
	require.NoError(t, err)
	require.Empty(t, result.Errors)
	assert.Equal(t, "12 Main St, Apt 4B, Pin: 560001", result.Order.Address)

	result, err = PlaceOrder(db, validRequest(artwork.ID))
	require.NoError(t, err)
	assert.Equal(t, "12 Main St, Pin: 560001", result.Order.Address)
}

func TestPlaceOrderSnapshotSurvivesPriceChange(t *testing.T) {
	db := newTestDB(t)
	artwork := createArtwork(t, db, "Sunset", 100)

	result, err := PlaceOrder(db, validRequest(artwork.ID))
	require.NoError(t, err)
	require.Empty(t, result.Errors)
	require.Equal(t, 200.0, result.Order.TotalAmount)

	// Repricing the artwork must not alter what the buyer agreed to pay.
	require.NoError(t, db.Model(&models.Artwork{}).
		Where("id = ?", artwork.ID).Update("price", 999).Error)

	var stored models.Order
	require.NoError(t, db.First(&stored, result.Order.ID).Error)
	assert.Equal(t, 100.0, stored.UnitPrice)
	assert.Equal(t, 200.0, stored.TotalAmount)
}

func TestPlaceOrderUnlimitedAvailability(t *testing.T) {
	db := newTestDB(t)
	artwork := createArtwork(t, db, "Sunset", 100)

	// Artworks carry no stock model: a second order for the same piece
	// while the first is still pending is accepted. This pins down the
	// unlimited-availability decision; a future stock-decrement belongs
	// in PlaceOrder between lookup and insert.
	first, err := PlaceOrder(db, validRequest(artwork.ID))
	require.NoError(t, err)
	require.Empty(t, first.Errors)

	second, err := PlaceOrder(db, validRequest(artwork.ID))
	require.NoError(t, err)
	require.Empty(t, second.Errors)

	assert.EqualValues(t, 2, orderCount(t, db))
}

func TestSetStatusArbitraryJumps(t *testing.T) {
	db := newTestDB(t)
	artwork := createArtwork(t, db, "Sunset", 100)
	result, err := PlaceOrder(db, validRequest(artwork.ID))
	require.NoError(t, err)
	orderID := fmt.Sprintf("%d", result.Order.ID)

	// Every (from, to) pair is currently allowed; statusJumpAllowed is
	// the single place to tighten this.
	for _, status := range []models.OrderStatus{
		models.OrderStatusDelivered,
		models.OrderStatusPending,
		models.OrderStatusShipped,
		models.OrderStatusAccepted,
	} {
		_, err := SetStatus(db, orderID, status)
		require.NoError(t, err)

		var stored models.Order
		require.NoError(t, db.First(&stored, result.Order.ID).Error)
		assert.Equal(t, status, stored.Status)
	}
}

func TestSetStatusNotFound(t *testing.T) {
	db := newTestDB(t)
	_, err := SetStatus(db, "12345", models.OrderStatusShipped)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindOrderByIDAndRef(t *testing.T) {
	db := newTestDB(t)
	artwork := createArtwork(t, db, "Sunset", 100)
	result, err := PlaceOrder(db, validRequest(artwork.ID))
	require.NoError(t, err)
	placed := result.Order

	byID, err := findOrder(db, fmt.Sprintf("%d", placed.ID))
	require.NoError(t, err)
	assert.Equal(t, placed.ID, byID.ID)

	// Refs are never numeric, so they must hit the order_ref column only;
	// binding one against the integer id column would fail on postgres.
	byRef, err := findOrder(db, placed.OrderRef)
	require.NoError(t, err)
	assert.Equal(t, placed.ID, byRef.ID)

	_, err = findOrder(db, "20260830185924-no-such-ref")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSetStatusByOrderRef(t *testing.T) {
	db := newTestDB(t)
	artwork := createArtwork(t, db, "Sunset", 100)
	result, err := PlaceOrder(db, validRequest(artwork.ID))
	require.NoError(t, err)

	updated, err := SetStatus(db, result.Order.OrderRef, models.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, result.Order.ID, updated.ID)

	var stored models.Order
	require.NoError(t, db.First(&stored, result.Order.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, stored.Status)
}

func TestOrderListingSurvivesArtworkDelete(t *testing.T) {
	db := newTestDB(t)
	artwork := createArtwork(t, db, "Sunset", 100)
	result, err := PlaceOrder(db, validRequest(artwork.ID))
	require.NoError(t, err)
	require.Empty(t, result.Errors)

	require.NoError(t, db.Delete(&models.Artwork{}, artwork.ID).Error)

	var orders []models.Order
	require.NoError(t, db.Order("created_at DESC").Find(&orders).Error)
	require.Len(t, orders, 1)
	assert.Equal(t, "Sunset", orders[0].ArtworkTitle)
	assert.Equal(t, 100.0, orders[0].UnitPrice)
}

func TestCheckoutEndToEnd(t *testing.T) {
	db := newTestDB(t)
	artwork := createArtwork(t, db, "Sunset", 100)

	result, err := PlaceOrder(db, PlaceOrderRequest{
		ArtworkID:     artwork.ID,
		BuyerName:     "Jane Doe",
		Phone:         "9876543210",
		AddressLine1:  "12 Main St",
		PostalCode:    "560001",
		PaymentMethod: "cod",
		Quantity:      "2",
	})
	require.NoError(t, err)
	require.Empty(t, result.Errors)

	order := result.Order
	assert.Equal(t, 2, order.Quantity)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "12 Main St, Pin: 560001", order.Address)
	assert.Equal(t, 200.0, order.TotalAmount)
	assert.NotEmpty(t, order.OrderRef)

	orderID := fmt.Sprintf("%d", order.ID)
	updated, err := SetStatus(db, orderID, models.OrderStatusDelivered)
	require.NoError(t, err)
	var stored models.Order
	require.NoError(t, db.First(&stored, updated.ID).Error)
	assert.Equal(t, models.OrderStatusDelivered, stored.Status)

	// delivered → pending succeeds today; if transitions are ever made
	// monotonic this assertion is the deliberate, visible change.
	_, err = SetStatus(db, orderID, models.OrderStatusPending)
	require.NoError(t, err)
	require.NoError(t, db.First(&stored, updated.ID).Error)
	assert.Equal(t, models.OrderStatusPending, stored.Status)
}

func TestMapOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "accepted", "shipped", "delivered", "PENDING"} {
		_, err := mapOrderStatus(valid)
		assert.NoError(t, err, valid)
	}
	for _, invalid := range []string{"", "cancelled", "returned", "done"} {
		_, err := mapOrderStatus(invalid)
		assert.Error(t, err, invalid)
	}
}
