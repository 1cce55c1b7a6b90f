package repositories

import "bakery/internal/models"

// ContactRepository defines the interface for contact-message data access.
// Contact messages are append-only; nothing in the system reads them back.
type ContactRepository interface {
	Create(contact *models.Contact) error
}
