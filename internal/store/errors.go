package store

import "errors"

// ErrNotConnected is returned when a query method runs before Connect.
var ErrNotConnected = errors.New("store is not connected")

// ErrIngredientNotFound is returned when a catalog lookup by name or id
// finds nothing.
var ErrIngredientNotFound = errors.New("ingredient not found in catalog")

// ErrIngredientAlreadyInCatalog is returned when a catalog insert targets a
// name that already exists.
var ErrIngredientAlreadyInCatalog = errors.New("ingredient already exists in catalog")

// ErrIngredientAlreadyInInventory is returned when an inventory insert
// targets a (user, ingredient) pair that already exists.
var ErrIngredientAlreadyInInventory = errors.New("ingredient already exists in inventory")

// ErrIngredientInsertion is returned when an insert yields no generated id,
// or the post-write confirmation read cannot find the row just written.
var ErrIngredientInsertion = errors.New("ingredient insertion failed")

// ErrInventoryDeletion is returned when a delete targets a (user, ingredient)
// row that does not exist.
var ErrInventoryDeletion = errors.New("inventory deletion failed")

// ErrInventoryUpdate is returned when an update targets a non-existent row,
// supplies no fields, or affects zero rows.
var ErrInventoryUpdate = errors.New("inventory update failed")

// ErrUserNotFound is returned when a user lookup finds nothing.
var ErrUserNotFound = errors.New("user not found")
