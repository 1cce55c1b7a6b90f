package handlers

import (
	"errors"
	"log"

	"bakery/internal/models"
	"bakery/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/order", h.HandlePlaceOrder)
	router.Get("/api/orders/:userId", h.HandleGetOrders)
	router.Delete("/api/orders/:orderId", h.HandleDeleteOrder)
	router.Put("/api/orders/:orderId/item", h.HandleSetItemQuantity)
}

// PlaceOrderRequest represents the request body for placing an order.
type PlaceOrderRequest struct {
	UserID string             `json:"userId"`
	Items  []models.OrderItem `json:"items"`
}

// HandlePlaceOrder creates a new order. The success response confirms
// placement without echoing the record.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
		})
	}

	if _, err := h.service.Place(req.UserID, req.Items); err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid data",
			})
		}
		log.Printf("Error placing order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order placed successfully!",
	})
}

// HandleGetOrders returns all orders for the userId path parameter.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	userID := c.Params("userId")
	orders, err := h.service.ListForUser(userID)
	if err != nil {
		log.Printf("Error listing orders for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orders,
	})
}

// HandleDeleteOrder removes an order. Deleting an ID that never existed
// still reports success.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	orderID := c.Params("orderId")
	if err := h.service.Delete(orderID); err != nil {
		log.Printf("Error deleting order %s: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// ItemQuantityRequest represents the request body for an order line-item
// quantity update.
type ItemQuantityRequest struct {
	ItemName string `json:"itemName"`
	Quantity int    `json:"quantity"`
}

// HandleSetItemQuantity overwrites the quantity of a line item in an order
// and returns the updated order.
func (h *OrderHandler) HandleSetItemQuantity(c *fiber.Ctx) error {
	orderID := c.Params("orderId")
	var req ItemQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing item quantity request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
		})
	}

	order, err := h.service.SetItemQuantity(orderID, req.ItemName, req.Quantity)
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Item not found in order",
			})
		}
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Order not found",
			})
		}
		log.Printf("Error updating order %s item: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}
