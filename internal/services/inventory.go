package services

import (
	"context"
	"errors"

	"github.com/pantrykit/apiserver/internal/store"
	"github.com/pantrykit/apiserver/types"
)

// InventoryStore defines the persistence operations the inventory use-cases
// need.
type InventoryStore interface {
	IngredientIDByName(ctx context.Context, name string) (int64, error)
	MeasurementUnitByName(ctx context.Context, name string) (types.MeasurementUnit, error)
	AddIngredient(ctx context.Context, insertion types.IngredientInsertion) (int64, error)
	QuantityByName(ctx context.Context, name string, userID int64) (float64, error)
	InfoByName(ctx context.Context, name string, userID int64) (*types.InventoryItem, error)
	AllInventory(ctx context.Context, userID int64) ([]types.InventoryItem, error)
	AddToInventory(ctx context.Context, userID, ingredientID int64, insertion types.InventoryInsertion) (types.InventoryItem, error)
	DeleteFromInventoryByName(ctx context.Context, name string, userID int64) (bool, error)
	UpdateInventoryByName(ctx context.Context, name string, userID int64, patch types.InventoryPatch) (types.InventoryItem, error)
}

// InventoryService encapsulates inventory use-cases.
type InventoryService struct {
	store InventoryStore
}

func NewInventoryService(store InventoryStore) *InventoryService {
	return &InventoryService{store: store}
}

// AddIngredientToCatalog registers a new catalog entry and returns its id.
func (s *InventoryService) AddIngredientToCatalog(ctx context.Context, insertion types.IngredientInsertion) (int64, error) {
	return s.store.AddIngredient(ctx, insertion)
}

// MeasurementUnit returns the catalog unit type for an ingredient name.
func (s *InventoryService) MeasurementUnit(ctx context.Context, name string) (types.MeasurementUnit, error) {
	return s.store.MeasurementUnitByName(ctx, name)
}

// Add runs the two-phase add-to-inventory workflow: the catalog entry is
// created lazily the first time any user adds the ingredient, then the
// user's inventory row is inserted and the composed record returned.
func (s *InventoryService) Add(ctx context.Context, userID int64, ingredient types.Ingredient) (types.InventoryItem, error) {
	ingredientID, err := s.store.IngredientIDByName(ctx, ingredient.Name)
	if errors.Is(err, store.ErrIngredientNotFound) {
		ingredientID, err = s.store.AddIngredient(ctx, ingredient.IngredientInsertion)
	}
	if err != nil {
		return types.InventoryItem{}, err
	}

	return s.store.AddToInventory(ctx, userID, ingredientID, ingredient.InventoryInsertion)
}

// Quantity returns how much of the named ingredient the user holds; zero
// when the user never added it.
func (s *InventoryService) Quantity(ctx context.Context, name string, userID int64) (float64, error) {
	return s.store.QuantityByName(ctx, name, userID)
}

// Info returns the composed record for the user's ingredient, or nil when
// the user has no such row.
func (s *InventoryService) Info(ctx context.Context, name string, userID int64) (*types.InventoryItem, error) {
	return s.store.InfoByName(ctx, name, userID)
}

// List returns every inventory row of the user.
func (s *InventoryService) List(ctx context.Context, userID int64) ([]types.InventoryItem, error) {
	return s.store.AllInventory(ctx, userID)
}

// Update applies a sparse patch to the user's inventory row.
func (s *InventoryService) Update(ctx context.Context, name string, userID int64, patch types.InventoryPatch) (types.InventoryItem, error) {
	return s.store.UpdateInventoryByName(ctx, name, userID, patch)
}

// Delete removes the user's inventory row for the named ingredient.
func (s *InventoryService) Delete(ctx context.Context, name string, userID int64) (bool, error) {
	return s.store.DeleteFromInventoryByName(ctx, name, userID)
}
