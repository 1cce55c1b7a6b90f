package models

import "time"

// OrderStatusPending is the status every order is created with. Nothing in
// the system transitions it yet.
const OrderStatusPending = "Pending"

// OrderItem represents a single line item within an order. Unlike the
// wishlist, an order's item list has no uniqueness rule: repeated names may
// accumulate across calls.
type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Order represents a placed customer order. UserID is a weak reference: it
// points at a User record but no integrity is enforced.
type Order struct {
	ID        string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string      `json:"user_id" gorm:"index;type:varchar(36)"`
	Items     []OrderItem `json:"items" gorm:"serializer:json"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
