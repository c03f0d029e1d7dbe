package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/selfcare/backend/internal/models"
)

type PasswordResetRepository struct {
	db *pgxpool.Pool
}

// NewPasswordResetRepository создает репозиторий токенов сброса пароля.
func NewPasswordResetRepository(db *pgxpool.Pool) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

// Create сохраняет токен сброса пароля.
func (r *PasswordResetRepository) Create(ctx context.Context, reset models.PasswordReset) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO password_resets (id, user_id, token_hash, expires_at)
		 VALUES ($1, $2, $3, $4)`,
		reset.ID, reset.UserID, reset.TokenHash, reset.ExpiresAt,
	)
	return err
}

// GetByID возвращает токен сброса по идентификатору.
func (r *PasswordResetRepository) GetByID(ctx context.Context, id uuid.UUID) (models.PasswordReset, error) {
	var reset models.PasswordReset
	var usedAt *time.Time

	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, token_hash, expires_at, used_at, created_at
		 FROM password_resets
		 WHERE id = $1`,
		id,
	).Scan(&reset.ID, &reset.UserID, &reset.TokenHash, &reset.ExpiresAt, &usedAt, &reset.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return reset, ErrNotFound
		}
		return reset, err
	}

	reset.UsedAt = usedAt
	return reset, nil
}

// MarkUsed помечает токен сброса использованным. Повторное использование
// возвращает ErrNotFound.
func (r *PasswordResetRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE password_resets
		 SET used_at = NOW()
		 WHERE id = $1 AND used_at IS NULL`,
		id,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
