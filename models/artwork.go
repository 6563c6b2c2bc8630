package models

import "time"

type Artwork struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null" json:"price"` // Required, positive
	Image       string    `gorm:"not null" json:"image"` // Local path or absolute URL
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
