package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pantrykit/apiserver/types"
)

func TestAddIngredientRejectsDuplicateName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.AddIngredient(ctx, flourInsertion())
	require.NoError(t, err)
	require.Positive(t, id)

	_, err = s.AddIngredient(ctx, flourInsertion())
	require.ErrorIs(t, err, ErrIngredientAlreadyInCatalog)

	var count int
	require.NoError(t, s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM ingredients WHERE name = ?`, "flour").Scan(&count))
	require.Equal(t, 1, count)
}

func TestIngredientNameIsCaseSensitive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddIngredient(ctx, flourInsertion())
	require.NoError(t, err)

	upper := flourInsertion()
	upper.Name = "Flour"
	id, err := s.AddIngredient(ctx, upper)
	require.NoError(t, err)
	require.Positive(t, id)
}

func TestIngredientIDByName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	want, err := s.AddIngredient(ctx, flourInsertion())
	require.NoError(t, err)

	got, err := s.IngredientIDByName(ctx, "flour")
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = s.IngredientIDByName(ctx, "saffron")
	require.ErrorIs(t, err, ErrIngredientNotFound)
}

func TestMeasurementUnitLookups(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.AddIngredient(ctx, types.IngredientInsertion{
		Name:     "milk",
		Category: types.CategoryDairy,
		UnitType: types.UnitMillilitres,
	})
	require.NoError(t, err)

	unit, err := s.MeasurementUnitByName(ctx, "milk")
	require.NoError(t, err)
	require.Equal(t, types.UnitMillilitres, unit)

	unit, err = s.MeasurementUnitByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, types.UnitMillilitres, unit)

	_, err = s.MeasurementUnitByName(ctx, "saffron")
	require.ErrorIs(t, err, ErrIngredientNotFound)

	_, err = s.MeasurementUnitByID(ctx, id+1000)
	require.ErrorIs(t, err, ErrIngredientNotFound)
}

func TestExistsInCatalog(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.AddIngredient(ctx, flourInsertion())
	require.NoError(t, err)

	exists, err := s.ExistsInCatalog(ctx, "flour")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = s.ExistsInCatalog(ctx, "saffron")
	require.NoError(t, err)
	require.False(t, exists)

	exists, err = s.ExistsInCatalogByID(ctx, id)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = s.ExistsInCatalogByID(ctx, id+1000)
	require.NoError(t, err)
	require.False(t, exists)
}
