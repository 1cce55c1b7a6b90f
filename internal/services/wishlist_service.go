package services

import (
	"fmt"

	"bakery/internal/models"
	"bakery/internal/repositories"
)

// WishlistService operates on the item list embedded in a user record.
// Every mutation is load, scan, save: the list is small and lives inside
// the user document, so a linear scan is the whole cost. Concurrent
// mutations of the same user are a read-modify-write race with no version
// check; the last save wins.
type WishlistService struct {
	userRepo repositories.UserRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(userRepo repositories.UserRepository) *WishlistService {
	return &WishlistService{
		userRepo: userRepo,
	}
}

// AddItem appends {name, quantity: 1} to the user's wishlist unless an
// entry with that name already exists, in which case nothing changes, not
// even the existing quantity. Returns the full wishlist either way.
func (s *WishlistService) AddItem(userID, name string) ([]models.WishlistItem, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	for _, item := range user.Wishlist {
		if item.Name == name {
			return user.Wishlist, nil
		}
	}

	user.Wishlist = append(user.Wishlist, models.WishlistItem{Name: name, Quantity: 1})
	if err := s.userRepo.Save(user); err != nil {
		return nil, err
	}
	return user.Wishlist, nil
}

// RemoveItem filters out every entry matching name and returns the
// remaining wishlist. Removing a name that is not present succeeds and
// leaves the list unchanged.
func (s *WishlistService) RemoveItem(userID, name string) ([]models.WishlistItem, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	kept := make([]models.WishlistItem, 0, len(user.Wishlist))
	for _, item := range user.Wishlist {
		if item.Name != name {
			kept = append(kept, item)
		}
	}
	user.Wishlist = kept

	if err := s.userRepo.Save(user); err != nil {
		return nil, err
	}
	return user.Wishlist, nil
}

// SetQuantity overwrites the quantity of the named wishlist entry. The
// value is stored as sent; nothing rejects zero or negative quantities.
func (s *WishlistService) SetQuantity(userID, name string, quantity int) ([]models.WishlistItem, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range user.Wishlist {
		if user.Wishlist[i].Name == name {
			user.Wishlist[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("wishlist item %q for user %s: %w", name, userID, models.ErrItemNotFound)
	}

	if err := s.userRepo.Save(user); err != nil {
		return nil, err
	}
	return user.Wishlist, nil
}

// List returns the user's current wishlist.
func (s *WishlistService) List(userID string) ([]models.WishlistItem, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user.Wishlist == nil {
		return []models.WishlistItem{}, nil
	}
	return user.Wishlist, nil
}
