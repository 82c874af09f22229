package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/pantrykit/apiserver/internal/store"
	"github.com/pantrykit/apiserver/types"
)

// ErrEmailTaken is returned when registration targets an email that already
// has an account.
var ErrEmailTaken = errors.New("email already registered")

// UserStore defines persistence operations for users.
type UserStore interface {
	UserByEmail(ctx context.Context, email string) (types.User, error)
	CreateUser(ctx context.Context, email, hashedPW string) (types.User, error)
}

// UserService encapsulates user use-cases. There is no authentication here:
// registration only creates the record inventory rows reference.
type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// Register creates a user record with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, email, password string) (types.User, error) {
	_, err := s.store.UserByEmail(ctx, email)
	if err == nil {
		return types.User{}, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return types.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return types.User{}, err
	}

	return s.store.CreateUser(ctx, email, string(hash))
}
