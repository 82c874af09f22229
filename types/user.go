package types

// User represents an account in the system. Inventory rows belong to a user;
// beyond owning rows, users carry no behavior here.
type User struct {
	// ID is the unique identifier of the user. It is the opaque integer the
	// request layer supplies as caller identity.
	ID int64 `json:"id" db:"id"`

	// Email is the user's unique email address.
	Email string `json:"email" db:"email"`

	// HashedPW stores the bcrypt hash of the user's password.
	// This field is never exposed in API responses.
	HashedPW string `json:"-" db:"hashed_pw"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt string `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the account.
	UpdatedAt string `json:"updated_at" db:"updated_at"`
}
