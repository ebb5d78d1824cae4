package auth

import "context"

// UpdateParams carries an admin edit of one user. Empty fields keep their
// current value; merging happens inside the store call so concurrent updates
// of the same user cannot lose each other's writes.
type UpdateParams struct {
	ID       int64
	Username string
	Password string
}

// Store defines user persistence. Create and Update must be atomic per user
// id. Lookups return ErrUserNotFound when nothing matches.
type Store interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	// FindByCredentials matches the exact username/password pair, the login
	// check of this system (plaintext comparison, see User).
	FindByCredentials(ctx context.Context, username, password string) (*User, error)
	Update(ctx context.Context, params UpdateParams) error
	All(ctx context.Context) ([]User, error)
}
