package models

import "time"

// ArtworkLike is the heart marker on the artwork detail page. The unique
// index is the backstop against duplicate rows from concurrent toggles.
type ArtworkLike struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_user_artwork" json:"user_id"`
	ArtworkID uint      `gorm:"not null;uniqueIndex:idx_like_user_artwork" json:"artwork_id"`
	CreatedAt time.Time `json:"created_at"`
}
