package models

import "time"

// ArtworkComment is append-only. UserName is copied from the user row at
// write time so renaming an account never rewrites comment history.
type ArtworkComment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ArtworkID uint      `gorm:"not null;index" json:"artwork_id"`
	UserName  string    `json:"user_name"`
	Comment   string    `gorm:"size:500;not null" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
