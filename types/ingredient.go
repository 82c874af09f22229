package types

// Category classifies a catalog ingredient.
type Category string

const (
	CategoryStaple    Category = "staple"
	CategoryDairy     Category = "dairy"
	CategoryProtein   Category = "protein"
	CategoryCondiment Category = "condiment"
	CategoryProduce   Category = "produce"
	CategoryOthers    Category = "others"
)

// MeasurementUnit is the standard unit a catalog ingredient is tracked in.
type MeasurementUnit string

const (
	UnitGrams       MeasurementUnit = "grams"
	UnitMillilitres MeasurementUnit = "millilitres"
	UnitPieces      MeasurementUnit = "pieces"
)

// IngredientInsertion describes a new catalog entry. Catalog entries are
// shared across all users and keyed by their unique name.
type IngredientInsertion struct {
	// Name is the globally unique, case-sensitive ingredient name.
	Name string `json:"name" db:"name" validate:"required,min=1,max=100"`

	// Category classifies the ingredient (staple, dairy, protein,
	// condiment, produce, others).
	Category Category `json:"category" db:"category" validate:"required,oneof=staple dairy protein condiment produce others"`

	// UnitType is the measurement unit quantities of this ingredient are
	// expressed in (grams, millilitres, pieces).
	UnitType MeasurementUnit `json:"unit_type" db:"unit_type" validate:"required,oneof=grams millilitres pieces"`
}

// InventoryInsertion describes the per-user attributes of a new inventory row.
type InventoryInsertion struct {
	// Quantity is the amount currently held, in the ingredient's unit.
	// Never negative.
	Quantity float64 `json:"quantity" db:"quantity" validate:"gte=0"`

	// MinimumThreshold is the restock level for this ingredient.
	// Never negative.
	MinimumThreshold float64 `json:"minimum_threshold" db:"minimum_threshold" validate:"gte=0"`

	// ExpirationDate is an optional date, e.g. "2025-01-01". Nil means the
	// ingredient does not expire.
	ExpirationDate *string `json:"expiration_date" db:"expiration_date" validate:"omitempty,datetime=2006-01-02"`
}

// Ingredient is the full "add to inventory" payload: the catalog attributes
// of the ingredient plus the caller's inventory attributes.
type Ingredient struct {
	IngredientInsertion
	InventoryInsertion
}

// InventoryPatch is a sparse partial update for an inventory row. A nil field
// is left untouched; an empty ExpirationDate clears the stored date.
type InventoryPatch struct {
	Quantity         *float64 `json:"quantity" validate:"omitempty,gte=0"`
	MinimumThreshold *float64 `json:"minimum_threshold" validate:"omitempty,gte=0"`
	ExpirationDate   *string  `json:"expiration_date"`
}

// IsEmpty reports whether no field of the patch is set.
func (p InventoryPatch) IsEmpty() bool {
	return p.Quantity == nil && p.MinimumThreshold == nil && p.ExpirationDate == nil
}

// InventoryItem is the composed response record for one ingredient held by
// one user: catalog attributes joined with the user's inventory row.
type InventoryItem struct {
	// IngredientID is the catalog id of the ingredient.
	IngredientID int64 `json:"ingredient_id" db:"ingredient_id"`

	// InventoryID is the id of the user's inventory row.
	InventoryID int64 `json:"inventory_id" db:"inventory_id"`

	// UserID is the owner of the inventory row.
	UserID int64 `json:"user_id" db:"user_id"`

	// Name, Category and UnitType are the catalog attributes.
	Name     string          `json:"name" db:"name"`
	Category Category        `json:"category" db:"category"`
	UnitType MeasurementUnit `json:"unit_type" db:"unit_type"`

	// Quantity and MinimumThreshold are the per-user inventory attributes.
	Quantity         float64 `json:"quantity" db:"quantity"`
	MinimumThreshold float64 `json:"minimum_threshold" db:"minimum_threshold"`

	// ExpirationDate is nil when the row has no expiry.
	ExpirationDate *string `json:"expiration_date" db:"expiration_date"`

	// CreatedAt is stamped when the inventory row is inserted and never
	// changes afterwards.
	CreatedAt string `json:"created_at" db:"created_at"`

	// UpdatedAt advances on every successful partial update.
	UpdatedAt string `json:"updated_at" db:"updated_at"`
}
