package models

import "time"

// Wishlist marks an artwork a user saved for later. Distinct from
// ArtworkLike: the two are independently toggled surfaces.
type Wishlist struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_artwork" json:"user_id"`
	ArtworkID uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_artwork" json:"artwork_id"`
	CreatedAt time.Time `json:"created_at"`
}
