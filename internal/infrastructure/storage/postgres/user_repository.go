package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"cloudvault/internal/domain/user"
)

const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewUserRepository(pool *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log.With("component", "user_repository"),
	}
}

const userColumns = `id, COALESCE(email, ''), COALESCE(phone_number, ''),
	COALESCE(password_hash, ''), auth_provider, display_name, created_at, last_login`

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, email, phone_number, password_hash, auth_provider, display_name, created_at, last_login)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Email, u.PhoneNumber, u.PasswordHash, u.AuthProvider, u.DisplayName, u.CreatedAt, u.LastLogin)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return user.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (user.User, error) {
	return r.findBy(ctx, "id", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (user.User, error) {
	return r.findBy(ctx, "email", email)
}

func (r *UserRepository) FindByPhone(ctx context.Context, phone string) (user.User, error) {
	return r.findBy(ctx, "phone_number", phone)
}

func (r *UserRepository) findBy(ctx context.Context, column, value string) (user.User, error) {
	var u user.User
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1`, userColumns, column)

	err := r.pool.QueryRow(ctx, query, value).Scan(
		&u.ID, &u.Email, &u.PhoneNumber, &u.PasswordHash,
		&u.AuthProvider, &u.DisplayName, &u.CreatedAt, &u.LastLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return u, user.ErrNotFound
		}
		return u, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE users SET last_login = NOW() WHERE id = $1`, id)
	return err
}

func (r *UserRepository) UpdateDisplayName(ctx context.Context, id, displayName string) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE users SET display_name = $1 WHERE id = $2`, displayName, id)
	if err != nil {
		return fmt.Errorf("update display name: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}
