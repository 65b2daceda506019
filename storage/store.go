package storage

import (
	"context"
	"errors"

	"github.com/outfitgenius/wardrobe-api/models"
)

// ErrNotFound is returned when no record matches the given identifiers
var ErrNotFound = errors.New("record not found")

// Store defines the persistence operations the API layer depends on
type Store interface {
	InsertClothingItem(ctx context.Context, item models.ClothingItem) error
	// ListClothingItems returns the user's items, capped at 1000
	ListClothingItems(ctx context.Context, userID string) ([]models.ClothingItem, error)
	// FindClothingItem resolves an item scoped to its owner
	FindClothingItem(ctx context.Context, itemID, userID string) (*models.ClothingItem, error)
	// DeleteClothingItem removes the item matching both identifiers
	DeleteClothingItem(ctx context.Context, itemID, userID string) error
	InsertOutfit(ctx context.Context, outfit models.GeneratedOutfit) error
	// ListOutfits returns the user's outfits, capped at 1000
	ListOutfits(ctx context.Context, userID string) ([]models.GeneratedOutfit, error)
	InsertStatusCheck(ctx context.Context, check models.StatusCheck) error
	// ListStatusChecks returns all status checks, capped at 1000
	ListStatusChecks(ctx context.Context) ([]models.StatusCheck, error)
}
