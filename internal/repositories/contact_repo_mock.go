package repositories

import (
	"sync"
	"time"

	"bakery/internal/models"

	"github.com/google/uuid"
)

// MockContactRepository is an in-memory implementation of ContactRepository.
type MockContactRepository struct {
	contacts map[string]models.Contact
	mu       sync.RWMutex
}

// NewMockContactRepository creates a new instance of MockContactRepository.
func NewMockContactRepository() *MockContactRepository {
	return &MockContactRepository{
		contacts: make(map[string]models.Contact),
	}
}

// Create stores a new contact message.
func (r *MockContactRepository) Create(contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	contact.CreatedAt = time.Now()
	r.contacts[contact.ID] = *contact
	return nil
}

// Count reports how many messages were stored. Used by tests.
func (r *MockContactRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.contacts)
}
