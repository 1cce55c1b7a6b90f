package handlers

import (
	"errors"
	"log"

	"bakery/internal/models"
	"bakery/internal/services"

	"github.com/gofiber/fiber/v2"
)

// WishlistHandler handles HTTP requests for a user's wishlist.
type WishlistHandler struct {
	service *services.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		service: service,
	}
}

// RegisterRoutes registers the wishlist routes with the Fiber app.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/wishlist/add", h.HandleAddItem)
	router.Post("/wishlist/remove", h.HandleRemoveItem)
	router.Put("/wishlist/quantity", h.HandleSetQuantity)
	router.Get("/api/wishlist/:userId", h.HandleGetWishlist)
}

// AddItemRequest represents the request body for adding a wishlist item.
type AddItemRequest struct {
	UserID string `json:"userId"`
	Item   struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
	} `json:"item"`
}

// HandleAddItem adds an item to the wishlist if no entry with that name
// exists yet. Repeating the call is a no-op; either way the full wishlist
// comes back.
func (h *WishlistHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing wishlist add request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
		})
	}
	if req.UserID == "" || req.Item.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
		})
	}

	wishlist, err := h.service.AddItem(req.UserID, req.Item.Name)
	if err != nil {
		return wishlistError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Item added to wishlist",
		"wishlist": wishlist,
	})
}

// RemoveItemRequest represents the request body for removing a wishlist item.
type RemoveItemRequest struct {
	UserID   string `json:"userId"`
	ItemName string `json:"itemName"`
}

// HandleRemoveItem removes the named item. A name that is not on the list
// still reports success with the unchanged wishlist.
func (h *WishlistHandler) HandleRemoveItem(c *fiber.Ctx) error {
	var req RemoveItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing wishlist remove request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
		})
	}

	wishlist, err := h.service.RemoveItem(req.UserID, req.ItemName)
	if err != nil {
		return wishlistError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Item removed from wishlist",
		"wishlist": wishlist,
	})
}

// SetQuantityRequest represents the request body for a quantity update.
type SetQuantityRequest struct {
	UserID   string `json:"userId"`
	ItemName string `json:"itemName"`
	Quantity int    `json:"quantity"`
}

// HandleSetQuantity overwrites the quantity of a wishlist entry.
func (h *WishlistHandler) HandleSetQuantity(c *fiber.Ctx) error {
	var req SetQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing wishlist quantity request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid data",
		})
	}

	wishlist, err := h.service.SetQuantity(req.UserID, req.ItemName, req.Quantity)
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Item not found in wishlist",
			})
		}
		return wishlistError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"wishlist": wishlist,
	})
}

// HandleGetWishlist returns the current wishlist for the userId path
// parameter.
func (h *WishlistHandler) HandleGetWishlist(c *fiber.Ctx) error {
	userID := c.Params("userId")
	wishlist, err := h.service.List(userID)
	if err != nil {
		return wishlistError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"wishlist": wishlist,
	})
}

// wishlistError maps service errors to the wishlist failure responses.
func wishlistError(c *fiber.Ctx, err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "User not found",
		})
	}
	log.Printf("Wishlist store error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Server error",
	})
}
