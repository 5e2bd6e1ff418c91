package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

// UsedTokenRepository records the jti of consumed setup and reset tokens.
type UsedTokenRepository struct {
	db *pgxpool.Pool
}

func NewUsedTokenRepository(db *pgxpool.Pool) *UsedTokenRepository {
	return &UsedTokenRepository{db: db}
}

func (r *UsedTokenRepository) MarkTokenUsed(ctx context.Context, jti uuid.UUID, expiresAt time.Time) error {
	q := `INSERT INTO dms_used_tokens (jti, expires_at) VALUES ($1, $2) ON CONFLICT (jti) DO NOTHING`

	tag, err := r.db.Exec(ctx, q, jti, expiresAt)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("jti %s: %w", jti, entity.ErrTokenUsed)
	}

	return nil
}

func (r *UsedTokenRepository) DeleteExpiredTokens(ctx context.Context) (int64, error) {
	q := `DELETE FROM dms_used_tokens WHERE expires_at < NOW()`

	tag, err := r.db.Exec(ctx, q)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
