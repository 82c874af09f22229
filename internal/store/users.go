package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pantrykit/apiserver/types"
)

// UserByEmail returns the user with the given email, or ErrUserNotFound.
func (s *Store) UserByEmail(ctx context.Context, email string) (types.User, error) {
	dbConn, err := s.conn()
	if err != nil {
		return types.User{}, err
	}

	const query = `
		SELECT id, email, hashed_pw, created_at, updated_at
		FROM users
		WHERE email = ?`
	var user types.User
	err = dbConn.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.HashedPW,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, ErrUserNotFound
		}
		return types.User{}, err
	}
	return user, nil
}

// CreateUser inserts a user record and returns it with generated fields set.
// Users carry no behavior here beyond owning inventory rows; email
// uniqueness is enforced by the schema.
func (s *Store) CreateUser(ctx context.Context, email, hashedPW string) (types.User, error) {
	dbConn, err := s.conn()
	if err != nil {
		return types.User{}, err
	}

	now := timestamp()
	const query = `
		INSERT INTO users (email, hashed_pw, created_at, updated_at)
		VALUES (?, ?, ?, ?)`
	result, err := dbConn.ExecContext(ctx, query, email, hashedPW, now, now)
	if err != nil {
		return types.User{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return types.User{}, err
	}

	return types.User{
		ID:        id,
		Email:     email,
		HashedPW:  hashedPW,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// DeleteUser removes a user record; the schema cascades deletion of the
// user's inventory rows.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	dbConn, err := s.conn()
	if err != nil {
		return err
	}

	const query = `DELETE FROM users WHERE id = ?`
	result, err := dbConn.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
