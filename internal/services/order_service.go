package services

import (
	"fmt"
	"log"

	"bakery/internal/models"
	"bakery/internal/repositories"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	events    EventPublisher
}

// NewOrderService creates a new OrderService. events may be nil, in which
// case no events are published.
func NewOrderService(orderRepo repositories.OrderRepository, events EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		events:    events,
	}
}

// Place creates a new order with status "Pending". It rejects a missing
// userID or an empty item list, but does not verify that the user exists:
// the reference is relation only, with no integrity check. Item quantities
// default to 1 when omitted.
func (s *OrderService) Place(userID string, items []models.OrderItem) (*models.Order, error) {
	if userID == "" || len(items) == 0 {
		return nil, fmt.Errorf("order needs a user and at least one item: %w", models.ErrInvalidInput)
	}

	for i := range items {
		if items[i].Quantity == 0 {
			items[i].Quantity = 1
		}
	}

	order := &models.Order{
		UserID: userID,
		Items:  items,
		Status: models.OrderStatusPending,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	s.publish("order.placed", map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
		"items":   order.Items,
	})

	return order, nil
}

// ListForUser returns all orders referencing the given user ID.
func (s *OrderService) ListForUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// SetItemQuantity overwrites the quantity of the named line item in an
// order and returns the updated order. Fails with models.ErrNotFound when
// the order is absent and models.ErrItemNotFound when no line item matches.
func (s *OrderService) SetItemQuantity(orderID, itemName string, quantity int) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range order.Items {
		if order.Items[i].Name == itemName {
			order.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("item %q in order %s: %w", itemName, orderID, models.ErrItemNotFound)
	}

	if err := s.orderRepo.Save(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete removes an order by ID. A missing order is not an error.
func (s *OrderService) Delete(orderID string) error {
	return s.orderRepo.Delete(orderID)
}

// publish sends an event if a publisher is wired. Publish failures are
// logged and never fail the request.
func (s *OrderService) publish(eventType string, payload map[string]interface{}) {
	if s.events == nil {
		log.Printf("No event publisher configured, skipping %s", eventType)
		return
	}
	if err := s.events.Publish(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
