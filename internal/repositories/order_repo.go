package repositories

import "bakery/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetByUserID(userID string) ([]models.Order, error)
	Save(order *models.Order) error
	// Delete removes an order by ID. Deleting an absent ID is a no-op, not
	// an error.
	Delete(id string) error
}
