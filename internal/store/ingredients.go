package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pantrykit/apiserver/types"
)

// IngredientIDByName resolves a catalog name to its id. Absence is
// ErrIngredientNotFound; every name-to-catalog lookup follows this contract.
func (s *Store) IngredientIDByName(ctx context.Context, name string) (int64, error) {
	dbConn, err := s.conn()
	if err != nil {
		return 0, err
	}

	const query = `SELECT id FROM ingredients WHERE name = ?`
	var id int64
	if err := dbConn.QueryRowContext(ctx, query, name).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrIngredientNotFound
		}
		return 0, err
	}
	return id, nil
}

// MeasurementUnitByName returns the catalog unit type for name. This is a
// catalog-level lookup, independent of any user's inventory.
func (s *Store) MeasurementUnitByName(ctx context.Context, name string) (types.MeasurementUnit, error) {
	dbConn, err := s.conn()
	if err != nil {
		return "", err
	}

	const query = `SELECT unit_type FROM ingredients WHERE name = ?`
	var unit string
	if err := dbConn.QueryRowContext(ctx, query, name).Scan(&unit); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrIngredientNotFound
		}
		return "", err
	}
	return types.MeasurementUnit(unit), nil
}

// MeasurementUnitByID returns the catalog unit type for the ingredient id.
func (s *Store) MeasurementUnitByID(ctx context.Context, id int64) (types.MeasurementUnit, error) {
	dbConn, err := s.conn()
	if err != nil {
		return "", err
	}

	const query = `SELECT unit_type FROM ingredients WHERE id = ?`
	var unit string
	if err := dbConn.QueryRowContext(ctx, query, id).Scan(&unit); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrIngredientNotFound
		}
		return "", err
	}
	return types.MeasurementUnit(unit), nil
}

// ExistsInCatalog reports whether the catalog has an ingredient with name.
func (s *Store) ExistsInCatalog(ctx context.Context, name string) (bool, error) {
	dbConn, err := s.conn()
	if err != nil {
		return false, err
	}

	const query = `SELECT COUNT(1) FROM ingredients WHERE name = ?`
	var count int
	if err := dbConn.QueryRowContext(ctx, query, name).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsInCatalogByID reports whether the catalog has the ingredient id.
func (s *Store) ExistsInCatalogByID(ctx context.Context, id int64) (bool, error) {
	dbConn, err := s.conn()
	if err != nil {
		return false, err
	}

	const query = `SELECT COUNT(1) FROM ingredients WHERE id = ?`
	var count int
	if err := dbConn.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddIngredient inserts a new catalog row and returns its generated id.
// The name is checked explicitly first so a duplicate fails with
// ErrIngredientAlreadyInCatalog rather than a generic constraint error.
func (s *Store) AddIngredient(ctx context.Context, insertion types.IngredientInsertion) (int64, error) {
	dbConn, err := s.conn()
	if err != nil {
		return 0, err
	}

	exists, err := s.ExistsInCatalog(ctx, insertion.Name)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrIngredientAlreadyInCatalog
	}

	const query = `
		INSERT INTO ingredients (name, category, unit_type)
		VALUES (?, ?, ?)`
	result, err := dbConn.ExecContext(ctx, query, insertion.Name, string(insertion.Category), string(insertion.UnitType))
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil || id == 0 {
		return 0, ErrIngredientInsertion
	}
	return id, nil
}
