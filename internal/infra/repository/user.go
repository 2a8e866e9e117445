package repository

import (
	"context"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error) {
	sql := `SELECT id, email, COALESCE(name, ''), role, is_active, last_login, password_hash
		FROM users
		WHERE email = $1`

	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, sql, email.Value()).Scan(
		&view.ID, &view.Email, &view.Name, &view.Role, &view.IsActive, &view.LastLogin, &hash,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &view, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	sql := `SELECT id, email, COALESCE(name, ''), role, is_active, last_login
		FROM users
		WHERE id = $1`

	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&view.ID, &view.Email, &view.Name, &view.Role, &view.IsActive, &view.LastLogin,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &view, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	sql := `UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, sql, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
