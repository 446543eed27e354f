package repo

import (
	"context"

	dom "Staff/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo provides user account persistence.
type UserRepo interface {
	GetByID(ctx context.Context, id int64) (dom.User, error)
	GetByUsername(ctx context.Context, username string) (dom.User, error)
	Create(ctx context.Context, username, passwordHash, email, displayName string) (dom.User, error)
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// GetByID returns the user by ID.
func (r *PGUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash, email, display_name, created_at FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.DisplayName, &u.CreatedAt)
	return u, err
}

// GetByUsername returns the user by username.
func (r *PGUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash, email, display_name, created_at FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.DisplayName, &u.CreatedAt)
	return u, err
}

// Create inserts a new user and returns it.
func (r *PGUserRepo) Create(ctx context.Context, username, passwordHash, email, displayName string) (dom.User, error) {
	query := `
		INSERT INTO users (username, password_hash, email, display_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, password_hash, email, display_name, created_at`
	var u dom.User
	err := r.db.QueryRow(ctx, query, username, passwordHash, email, displayName).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.DisplayName, &u.CreatedAt,
	)
	return u, err
}

// UpdatePasswordHash replaces the stored password hash for the user.
func (r *PGUserRepo) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET password_hash = $2 WHERE id = $1`,
		id, passwordHash,
	)
	return err
}
