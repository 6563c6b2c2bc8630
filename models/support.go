package models

import "time"

type SupportStatus string

const (
	SupportStatusPending SupportStatus = "pending"
)

type SupportMessage struct {
	ID        uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uint         `json:"user_id,omitempty"` // nil for anonymous visitors
	UserName  string        `json:"user_name"`         // Snapshot at write time
	UserEmail string        `json:"user_email"`
	Subject   string        `gorm:"not null" json:"subject"`
	Message   string        `gorm:"not null" json:"message"`
	Status    SupportStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
