package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/pantrykit/apiserver/types"
)

// newTestStore returns a connected store backed by a database file in a
// per-test temp dir.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	s := New(path, zerolog.Nop())
	require.NoError(t, s.Connect(context.Background()))
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

// mustCreateUser inserts a user row to satisfy the inventory foreign key.
func mustCreateUser(t *testing.T, s *Store, email string) int64 {
	t.Helper()

	user, err := s.CreateUser(context.Background(), email, "hashed")
	require.NoError(t, err)
	require.Positive(t, user.ID)
	return user.ID
}

func flourInsertion() types.IngredientInsertion {
	return types.IngredientInsertion{
		Name:     "flour",
		Category: types.CategoryStaple,
		UnitType: types.UnitGrams,
	}
}

func TestConnectIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	first := New(path, zerolog.Nop())
	require.NoError(t, first.Connect(ctx))
	_, err := first.AddIngredient(ctx, flourInsertion())
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// Reconnecting applies the schema again without clobbering data.
	second := New(path, zerolog.Nop())
	require.NoError(t, second.Connect(ctx))
	defer second.Close()

	id, err := second.IngredientIDByName(ctx, "flour")
	require.NoError(t, err)
	require.Positive(t, id)
}

func TestOperationsBeforeConnect(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	ctx := context.Background()

	_, err := s.IngredientIDByName(ctx, "flour")
	require.ErrorIs(t, err, ErrNotConnected)

	_, err = s.AddIngredient(ctx, flourInsertion())
	require.ErrorIs(t, err, ErrNotConnected)

	_, err = s.QuantityByName(ctx, "flour", 1)
	require.ErrorIs(t, err, ErrNotConnected)

	_, err = s.AllInventory(ctx, 1)
	require.ErrorIs(t, err, ErrNotConnected)
}

func TestCloseWithoutConnect(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	require.NoError(t, s.Close())
}

func TestForeignKeysEnforced(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// No user and no catalog row with id 42 exist.
	const query = `
		INSERT INTO inventory (user_id, ingredient_id, quantity, minimum_threshold, created_at, updated_at)
		VALUES (42, 42, 1, 0, ?, ?)`
	now := timestamp()
	_, err := s.db.ExecContext(ctx, query, now, now)
	require.Error(t, err)
}
