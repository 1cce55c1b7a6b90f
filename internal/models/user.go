package models

import "time"

// WishlistItem is a single entry in a user's wishlist. At most one entry
// exists per distinct name; quantity defaults to 1 on first add.
type WishlistItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// User represents a customer of the store. The wishlist is embedded in the
// user record and persisted as a JSON column, so every wishlist mutation is
// a single-document write.
type User struct {
	ID        string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string         `json:"name" gorm:"type:varchar(100)" validate:"required"`
	Email     string         `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string         `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Wishlist  []WishlistItem `json:"wishlist" gorm:"serializer:json"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
