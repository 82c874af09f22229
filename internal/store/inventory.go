package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/pantrykit/apiserver/types"
)

// composedColumns joins an inventory row with its catalog attributes into
// the composed response shape.
const composedColumns = `
	SELECT ing.id, inv.id, inv.user_id, ing.name, ing.category, ing.unit_type,
	       inv.quantity, inv.minimum_threshold, inv.expiration_date,
	       inv.created_at, inv.updated_at
	FROM inventory inv
	JOIN ingredients ing ON ing.id = inv.ingredient_id`

func scanInventoryItem(row interface{ Scan(dest ...any) error }) (types.InventoryItem, error) {
	var item types.InventoryItem
	var category, unit string
	var expiration sql.NullString
	err := row.Scan(
		&item.IngredientID,
		&item.InventoryID,
		&item.UserID,
		&item.Name,
		&category,
		&unit,
		&item.Quantity,
		&item.MinimumThreshold,
		&expiration,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return types.InventoryItem{}, err
	}
	item.Category = types.Category(category)
	item.UnitType = types.MeasurementUnit(unit)
	if expiration.Valid {
		item.ExpirationDate = &expiration.String
	}
	return item, nil
}

// QuantityByID returns the stored quantity of the ingredient for the user,
// or 0 when the user has no such inventory row. Absence is not an error: a
// user who never added an ingredient has zero of it.
func (s *Store) QuantityByID(ctx context.Context, ingredientID, userID int64) (float64, error) {
	dbConn, err := s.conn()
	if err != nil {
		return 0, err
	}

	const query = `SELECT quantity FROM inventory WHERE user_id = ? AND ingredient_id = ?`
	var quantity float64
	if err := dbConn.QueryRowContext(ctx, query, userID, ingredientID).Scan(&quantity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return quantity, nil
}

// QuantityByName is QuantityByID keyed by catalog name. A name absent from
// the catalog also yields 0, since no inventory row can reference it.
func (s *Store) QuantityByName(ctx context.Context, name string, userID int64) (float64, error) {
	dbConn, err := s.conn()
	if err != nil {
		return 0, err
	}

	const query = `
		SELECT inv.quantity
		FROM inventory inv
		JOIN ingredients ing ON ing.id = inv.ingredient_id
		WHERE inv.user_id = ? AND ing.name = ?`
	var quantity float64
	if err := dbConn.QueryRowContext(ctx, query, userID, name).Scan(&quantity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return quantity, nil
}

// ExistsInInventory reports whether the user holds an inventory row for the
// ingredient id.
func (s *Store) ExistsInInventory(ctx context.Context, ingredientID, userID int64) (bool, error) {
	dbConn, err := s.conn()
	if err != nil {
		return false, err
	}

	const query = `SELECT COUNT(1) FROM inventory WHERE user_id = ? AND ingredient_id = ?`
	var count int
	if err := dbConn.QueryRowContext(ctx, query, userID, ingredientID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// InfoByID returns the composed record for one (user, ingredient) pair, or
// nil when the user has no such inventory row.
func (s *Store) InfoByID(ctx context.Context, ingredientID, userID int64) (*types.InventoryItem, error) {
	dbConn, err := s.conn()
	if err != nil {
		return nil, err
	}

	query := composedColumns + ` WHERE inv.user_id = ? AND inv.ingredient_id = ?`
	item, err := scanInventoryItem(dbConn.QueryRowContext(ctx, query, userID, ingredientID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// InfoByName is InfoByID keyed by catalog name.
func (s *Store) InfoByName(ctx context.Context, name string, userID int64) (*types.InventoryItem, error) {
	dbConn, err := s.conn()
	if err != nil {
		return nil, err
	}

	query := composedColumns + ` WHERE inv.user_id = ? AND ing.name = ?`
	item, err := scanInventoryItem(dbConn.QueryRowContext(ctx, query, userID, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// AllInventory returns every inventory row of the user joined with catalog
// attributes. A user with nothing gets an empty slice.
func (s *Store) AllInventory(ctx context.Context, userID int64) ([]types.InventoryItem, error) {
	dbConn, err := s.conn()
	if err != nil {
		return nil, err
	}

	query := composedColumns + ` WHERE inv.user_id = ? ORDER BY ing.name`
	rows, err := dbConn.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]types.InventoryItem, 0)
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToInventory inserts one inventory row for the user and returns the
// composed record read back after the write. The pair is checked explicitly
// first; a duplicate fails with ErrIngredientAlreadyInInventory. A read-back
// miss after a successful insert signals a consistency fault, not a user
// error: the insert is compensated and ErrIngredientInsertion returned.
func (s *Store) AddToInventory(ctx context.Context, userID, ingredientID int64, insertion types.InventoryInsertion) (types.InventoryItem, error) {
	dbConn, err := s.conn()
	if err != nil {
		return types.InventoryItem{}, err
	}

	exists, err := s.ExistsInInventory(ctx, ingredientID, userID)
	if err != nil {
		return types.InventoryItem{}, err
	}
	if exists {
		return types.InventoryItem{}, ErrIngredientAlreadyInInventory
	}

	now := timestamp()
	const query = `
		INSERT INTO inventory (user_id, ingredient_id, quantity, minimum_threshold, expiration_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	result, err := dbConn.ExecContext(
		ctx,
		query,
		userID,
		ingredientID,
		insertion.Quantity,
		insertion.MinimumThreshold,
		insertion.ExpirationDate,
		now,
		now,
	)
	if err != nil {
		return types.InventoryItem{}, err
	}

	inventoryID, err := result.LastInsertId()
	if err != nil || inventoryID == 0 {
		return types.InventoryItem{}, ErrIngredientInsertion
	}

	item, err := s.InfoByID(ctx, ingredientID, userID)
	if err != nil {
		return types.InventoryItem{}, err
	}
	if item == nil {
		const compensate = `DELETE FROM inventory WHERE id = ?`
		_, _ = dbConn.ExecContext(ctx, compensate, inventoryID)
		return types.InventoryItem{}, ErrIngredientInsertion
	}
	return *item, nil
}

// DeleteFromInventoryByID removes the user's inventory row for the
// ingredient id. A row that does not exist fails with ErrInventoryDeletion
// before any DELETE runs. A zero affected-row count after the existence
// check passed signals a race and returns false rather than an error.
func (s *Store) DeleteFromInventoryByID(ctx context.Context, ingredientID, userID int64) (bool, error) {
	dbConn, err := s.conn()
	if err != nil {
		return false, err
	}

	exists, err := s.ExistsInInventory(ctx, ingredientID, userID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, ErrInventoryDeletion
	}

	const query = `DELETE FROM inventory WHERE user_id = ? AND ingredient_id = ?`
	result, err := dbConn.ExecContext(ctx, query, userID, ingredientID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteFromInventoryByName is DeleteFromInventoryByID keyed by catalog
// name. A name absent from the catalog cannot have a row, so it fails with
// ErrInventoryDeletion.
func (s *Store) DeleteFromInventoryByName(ctx context.Context, name string, userID int64) (bool, error) {
	ingredientID, err := s.IngredientIDByName(ctx, name)
	if err != nil {
		if errors.Is(err, ErrIngredientNotFound) {
			return false, ErrInventoryDeletion
		}
		return false, err
	}
	return s.DeleteFromInventoryByID(ctx, ingredientID, userID)
}

// UpdateInventoryByID applies a sparse patch to the user's inventory row.
// Unset fields are untouched; an all-unset patch fails with
// ErrInventoryUpdate before any SQL runs. updated_at is stamped as part of
// the same write, and the composed record is read back for the response.
func (s *Store) UpdateInventoryByID(ctx context.Context, ingredientID, userID int64, patch types.InventoryPatch) (types.InventoryItem, error) {
	dbConn, err := s.conn()
	if err != nil {
		return types.InventoryItem{}, err
	}

	if patch.IsEmpty() {
		return types.InventoryItem{}, fmt.Errorf("%w: no fields to update", ErrInventoryUpdate)
	}

	exists, err := s.ExistsInInventory(ctx, ingredientID, userID)
	if err != nil {
		return types.InventoryItem{}, err
	}
	if !exists {
		return types.InventoryItem{}, ErrInventoryUpdate
	}

	setClauses := make([]string, 0, 4)
	args := make([]any, 0, 6)
	if patch.Quantity != nil {
		setClauses = append(setClauses, "quantity = ?")
		args = append(args, *patch.Quantity)
	}
	if patch.MinimumThreshold != nil {
		setClauses = append(setClauses, "minimum_threshold = ?")
		args = append(args, *patch.MinimumThreshold)
	}
	if patch.ExpirationDate != nil {
		// Empty string clears the stored date.
		if *patch.ExpirationDate == "" {
			setClauses = append(setClauses, "expiration_date = NULL")
		} else {
			setClauses = append(setClauses, "expiration_date = ?")
			args = append(args, *patch.ExpirationDate)
		}
	}
	setClauses = append(setClauses, "updated_at = ?")
	args = append(args, timestamp(), userID, ingredientID)

	query := fmt.Sprintf(
		`UPDATE inventory SET %s WHERE user_id = ? AND ingredient_id = ?`,
		strings.Join(setClauses, ", "),
	)
	result, err := dbConn.ExecContext(ctx, query, args...)
	if err != nil {
		return types.InventoryItem{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.InventoryItem{}, err
	}
	if affected == 0 {
		return types.InventoryItem{}, ErrInventoryUpdate
	}

	item, err := s.InfoByID(ctx, ingredientID, userID)
	if err != nil {
		return types.InventoryItem{}, err
	}
	if item == nil {
		return types.InventoryItem{}, ErrInventoryUpdate
	}
	return *item, nil
}

// UpdateInventoryByName is UpdateInventoryByID keyed by catalog name.
func (s *Store) UpdateInventoryByName(ctx context.Context, name string, userID int64, patch types.InventoryPatch) (types.InventoryItem, error) {
	ingredientID, err := s.IngredientIDByName(ctx, name)
	if err != nil {
		if errors.Is(err, ErrIngredientNotFound) {
			return types.InventoryItem{}, ErrInventoryUpdate
		}
		return types.InventoryItem{}, err
	}
	return s.UpdateInventoryByID(ctx, ingredientID, userID, patch)
}
