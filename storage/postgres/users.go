package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"picoweb/core/auth"
)

// UserStore persists users in postgres.
type UserStore struct {
	pool *pgxpool.Pool
}

// NewUserStore creates a store over pool.
func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

// Create inserts u and fills in the generated id.
func (s *UserStore) Create(ctx context.Context, u *auth.User) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (username, password, role) VALUES ($1, $2, $3) RETURNING id`,
		u.Username, u.Password, string(u.Role),
	).Scan(&u.ID)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// FindByID returns the user with the given id.
func (s *UserStore) FindByID(ctx context.Context, id int64) (*auth.User, error) {
	return s.findOne(ctx,
		`SELECT id, username, password, role FROM users WHERE id = $1`, id)
}

// FindByUsername returns the lowest-id user with the given username;
// registration does not enforce uniqueness.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	return s.findOne(ctx,
		`SELECT id, username, password, role FROM users WHERE username = $1 ORDER BY id LIMIT 1`,
		username)
}

// FindByCredentials returns the lowest-id user matching the exact pair.
func (s *UserStore) FindByCredentials(ctx context.Context, username, password string) (*auth.User, error) {
	return s.findOne(ctx,
		`SELECT id, username, password, role FROM users
		 WHERE username = $1 AND password = $2 ORDER BY id LIMIT 1`,
		username, password)
}

// Update merges non-empty fields in one statement, so concurrent edits of
// the same row serialize on the row lock.
func (s *UserStore) Update(ctx context.Context, params auth.UpdateParams) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE users
		 SET username = COALESCE(NULLIF($2, ''), username),
		     password = COALESCE(NULLIF($3, ''), password)
		 WHERE id = $1`,
		params.ID, params.Username, params.Password,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", auth.ErrUserNotFound, params.ID)
	}
	return nil
}

// All returns every user ordered by id.
func (s *UserStore) All(ctx context.Context) ([]auth.User, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, username, password, role FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []auth.User
	for rows.Next() {
		var u auth.User
		var role string
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &role); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Role = auth.Role(role)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserStore) findOne(ctx context.Context, query string, args ...any) (*auth.User, error) {
	var u auth.User
	var role string
	err := s.pool.QueryRow(ctx, query, args...).Scan(&u.ID, &u.Username, &u.Password, &role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, auth.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	u.Role = auth.Role(role)
	return &u, nil
}
