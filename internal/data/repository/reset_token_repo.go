package repository

import (
	"context"
	"fmt"

	"shop-backend/internal/data/entity"
	"shop-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ResetTokenRepository interface {
	Create(ctx context.Context, token *entity.ResetToken) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ResetToken, error)
	FindByUserAndToken(ctx context.Context, userID uuid.UUID, token string) (*entity.ResetToken, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type resetTokenRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewResetTokenRepository(db database.PgxIface, log *zap.Logger) ResetTokenRepository {
	return &resetTokenRepository{
		db:  db,
		log: log.With(zap.String("repository", "reset_token")),
	}
}

func (rr *resetTokenRepository) Create(ctx context.Context, token *entity.ResetToken) error {
	// user_id carries a unique index; a second concurrent reset request for
	// the same user keeps the first token instead of inserting a duplicate
	query := `
		INSERT INTO reset_tokens (id, user_id, token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO NOTHING
	`

	_, err := rr.db.Exec(ctx, query,
		token.ID,
		token.UserID,
		token.Token,
		token.CreatedAt,
		token.UpdatedAt,
	)

	if err != nil {
		rr.log.Error("Failed to create reset token",
			zap.Error(err),
			zap.String("user_id", token.UserID.String()),
		)
		return fmt.Errorf("create reset token for user %s: %w", token.UserID.String(), err)
	}

	return nil
}

func (rr *resetTokenRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ResetToken, error) {
	query := `
		SELECT id, user_id, token, created_at, updated_at
		FROM reset_tokens
		WHERE user_id = $1
	`

	var token entity.ResetToken
	err := rr.db.QueryRow(ctx, query, userID).Scan(
		&token.ID,
		&token.UserID,
		&token.Token,
		&token.CreatedAt,
		&token.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		rr.log.Error("Failed to find reset token by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find reset token for user %s: %w", userID.String(), err)
	}

	return &token, nil
}

func (rr *resetTokenRepository) FindByUserAndToken(ctx context.Context, userID uuid.UUID, tokenStr string) (*entity.ResetToken, error) {
	query := `
		SELECT id, user_id, token, created_at, updated_at
		FROM reset_tokens
		WHERE user_id = $1 AND token = $2
	`

	var token entity.ResetToken
	err := rr.db.QueryRow(ctx, query, userID, tokenStr).Scan(
		&token.ID,
		&token.UserID,
		&token.Token,
		&token.CreatedAt,
		&token.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		rr.log.Error("Failed to find reset token",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find reset token for user %s: %w", userID.String(), err)
	}

	return &token, nil
}

func (rr *resetTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reset_tokens WHERE id = $1`

	result, err := rr.db.Exec(ctx, query, id)
	if err != nil {
		rr.log.Error("Failed to delete reset token",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete reset token %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrInvalidResetLink
	}

	return nil
}
