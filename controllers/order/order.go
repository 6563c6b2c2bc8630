package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harshitap649-prog/peterart07/models"
)

const (
	minQuantity = 1
	maxQuantity = 5
)

// -------- Request Structs --------

type PlaceOrderRequest struct {
	ArtworkID     uint   `json:"artwork_id" binding:"required"`
	BuyerName     string `json:"buyer_name"`
	BuyerEmail    string `json:"buyer_email"`
	Phone         string `json:"phone"`
	AddressLine1  string `json:"address_line1"`
	AddressLine2  string `json:"address_line2"`
	PostalCode    string `json:"postal_code"`
	PaymentMethod string `json:"payment_method"`
	// Quantity arrives as the raw form string; parsing rules live in the
	// core, not the transport.
	Quantity string `json:"quantity"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ValidationErrors maps a field name to its failure message.
type ValidationErrors map[string]string

// PlaceOrderResult carries either the created order, or the collected
// field errors plus the computed total so the checkout form can be
// re-rendered with the buyer's input preserved.
type PlaceOrderResult struct {
	Order   *models.Order
	Errors  ValidationErrors
	Artwork models.Artwork
	Total   float64
}

// -------- Helpers --------

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusAccepted):
		return models.OrderStatusAccepted, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// Map string to PaymentMethod
func mapPaymentMethod(method string) (models.PaymentMethod, error) {
	switch strings.ToLower(method) {
	case string(models.PaymentMethodCOD):
		return models.PaymentMethodCOD, nil
	case string(models.PaymentMethodOnline):
		return models.PaymentMethodOnline, nil
	default:
		return "", errors.New("invalid payment method")
	}
}

// statusJumpAllowed is the single policy point for status transitions.
// Today every (from, to) pair is permitted, matching the admin UI that
// offers all four statuses on every order; tightening to monotonic
// progression is a change here, not at call sites.
func statusJumpAllowed(from, to models.OrderStatus) bool {
	return true
}

// parseQuantity applies the checkout quantity rules: a missing or
// unparseable value silently defaults to 1, while an explicit value
// outside [1,5] is a validation error.
func parseQuantity(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1, true
	}
	if n < minQuantity || n > maxQuantity {
		return n, false
	}
	return n, true
}

// validateOrderInput collects ALL field failures, not just the first, and
// returns the quantity the totals are computed with.
func validateOrderInput(req PlaceOrderRequest) (int, ValidationErrors) {
	fieldErrs := ValidationErrors{}

	if len(strings.TrimSpace(req.BuyerName)) < 2 {
		fieldErrs["buyer_name"] = "name must be at least 2 characters"
	}
	if len(strings.TrimSpace(req.Phone)) < 10 {
		fieldErrs["phone"] = "phone must be at least 10 characters"
	}
	if len(strings.TrimSpace(req.AddressLine1)) < 5 {
		fieldErrs["address_line1"] = "address must be at least 5 characters"
	}
	if len(strings.TrimSpace(req.PostalCode)) < 6 {
		fieldErrs["postal_code"] = "postal code must be at least 6 characters"
	}
	if _, err := mapPaymentMethod(req.PaymentMethod); err != nil {
		fieldErrs["payment_method"] = "payment method must be cod or online"
	}
	quantity, ok := parseQuantity(req.Quantity)
	if !ok {
		fieldErrs["quantity"] = "quantity must be between 1 and 5"
	}
	return quantity, fieldErrs
}

// composeAddress builds the stored address string: "line1[, line2], Pin: <postal>"
func composeAddress(line1, line2, postalCode string) string {
	address := strings.TrimSpace(line1)
	if l2 := strings.TrimSpace(line2); l2 != "" {
		address += ", " + l2
	}
	return address + ", Pin: " + strings.TrimSpace(postalCode)
}

// generateOrderRef returns a unique human-readable order reference
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// findOrder resolves a path key that is either the numeric id or the
// order_ref. Try numeric id first; if not numeric, fall back to
// order_ref. The columns have different types, so the key must never be
// bound against both in one query (postgres rejects a ref-shaped string
// as an integer parameter).
func findOrder(db *gorm.DB, key string) (*models.Order, error) {
	var order models.Order
	var err error
	if id, perr := strconv.ParseUint(key, 10, 64); perr == nil {
		err = db.First(&order, id).Error
	} else {
		err = db.Where("order_ref = ?", key).First(&order).Error
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Core Logic --------

// PlaceOrder runs the cash-on-delivery checkout. The artwork lookup is
// terminal: a missing artwork returns gorm.ErrRecordNotFound before any
// field errors matter. On validation failure nothing is persisted and the
// result carries the errors and the computed total. On success the order
// is inserted with status pending and a price/title/image snapshot of the
// artwork as it was at submit time. Artworks are treated as
// unlimited-availability: no stock is decremented and concurrent orders
// for the same artwork all succeed (see the order tests, which pin this
// down deliberately).
func PlaceOrder(db *gorm.DB, req PlaceOrderRequest) (*PlaceOrderResult, error) {
	var artwork models.Artwork
	if err := db.First(&artwork, req.ArtworkID).Error; err != nil {
		return nil, err
	}

	quantity, fieldErrs := validateOrderInput(req)
	total := artwork.Price * float64(quantity)

	if len(fieldErrs) > 0 {
		return &PlaceOrderResult{Errors: fieldErrs, Artwork: artwork, Total: total}, nil
	}

	method, _ := mapPaymentMethod(req.PaymentMethod)
	order := models.Order{
		OrderRef:      generateOrderRef(),
		ArtworkID:     artwork.ID,
		ArtworkTitle:  artwork.Title,
		ArtworkImage:  artwork.Image,
		UnitPrice:     artwork.Price,
		TotalAmount:   total,
		BuyerName:     strings.TrimSpace(req.BuyerName),
		BuyerEmail:    strings.TrimSpace(req.BuyerEmail),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       composeAddress(req.AddressLine1, req.AddressLine2, req.PostalCode),
		PaymentMethod: method,
		Quantity:      quantity,
		Status:        models.OrderStatusPending,
		CreatedAt:     time.Now(),
	}
	if err := db.Create(&order).Error; err != nil {
		return nil, err
	}

	broadcastNewOrder(order)
	return &PlaceOrderResult{Order: &order, Artwork: artwork, Total: total}, nil
}

// SetStatus is the only way an order's status changes. No audit trail is
// kept of the previous status or who changed it.
func SetStatus(db *gorm.DB, orderID string, status models.OrderStatus) (*models.Order, error) {
	order, err := findOrder(db, orderID)
	if err != nil {
		return nil, err
	}
	if !statusJumpAllowed(order.Status, status) {
		return nil, errors.New("status transition not allowed")
	}
	if err := db.Model(order).Update("status", status).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// -------- Handlers --------

// Place order (public checkout)
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := PlaceOrder(db, req)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}
		if len(result.Errors) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"errors":  result.Errors,
				"total":   result.Total,
				"artwork": result.Artwork,
				"input":   req,
			})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully",
			"order":   result.Order,
			"artwork": result.Artwork,
		})
	}
}

func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// Get single order by ID or order_ref
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		order, err := findOrder(db, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// Update order status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := SetStatus(db, orderID, newStatus)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "order": order})
	}
}

// Delete order
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		order, err := findOrder(db, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := db.Delete(order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
