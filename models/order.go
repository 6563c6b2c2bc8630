package models

import "time"

type OrderStatus string
type PaymentMethod string

const (
	// Order statuses (cash-on-delivery flow)
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusAccepted  OrderStatus = "accepted"  // Confirmed by the gallery
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Buyer received the artwork

	// Payment methods
	PaymentMethodCOD    PaymentMethod = "cod"    // Cash on delivery
	PaymentMethodOnline PaymentMethod = "online" // Accepted as input, not processed
)

type Order struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	OrderRef  string `gorm:"uniqueIndex" json:"order_ref"`
	ArtworkID uint   `gorm:"index" json:"artwork_id"`

	// Artwork snapshot captured at order time so later catalog edits or
	// deletes never alter what the buyer agreed to pay.
	ArtworkTitle string  `json:"artwork_title"`
	ArtworkImage string  `json:"artwork_image"`
	UnitPrice    float64 `json:"unit_price"`
	TotalAmount  float64 `json:"total_amount"`

	BuyerName     string        `gorm:"not null" json:"buyer_name"`
	BuyerEmail    string        `json:"buyer_email"`
	Phone         string        `gorm:"not null" json:"phone"`
	Address       string        `gorm:"not null" json:"address"`
	PaymentMethod PaymentMethod `gorm:"type:VARCHAR(20)" json:"payment_method"`
	Quantity      int           `json:"quantity"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}
