package services

import (
	"log"

	"bakery/internal/models"
	"bakery/internal/repositories"
)

// ContactService stores contact-form submissions.
type ContactService struct {
	contactRepo repositories.ContactRepository
	events      EventPublisher
}

// NewContactService creates a new ContactService. events may be nil.
func NewContactService(contactRepo repositories.ContactRepository, events EventPublisher) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		events:      events,
	}
}

// Submit stores a contact message and notifies any listeners.
func (s *ContactService) Submit(name, email, phone, message string) error {
	contact := &models.Contact{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Message: message,
	}
	if err := s.contactRepo.Create(contact); err != nil {
		return err
	}

	if s.events != nil {
		if err := s.events.Publish("contact.received", map[string]interface{}{
			"contactID": contact.ID,
			"email":     contact.Email,
		}); err != nil {
			log.Printf("Warning: failed to publish contact.received event: %v", err)
		}
	}
	return nil
}
