package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

type AuditRepository struct {
	db *pgxpool.Pool
}

func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) SaveAuditEvent(ctx context.Context, e entity.AuditEvent) error {
	q := `
	INSERT INTO dms_user_logs (user_id, page, event, row_id, old_data, new_data, ip_address, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.db.Exec(ctx, q,
		e.UserID,
		e.Page,
		e.Event,
		nullable(string(e.RowID)),
		jsonOrNil(e.OldData),
		jsonOrNil(e.NewData),
		nullable(e.IPAddress),
		createdAt,
	)
	if err != nil {
		return err
	}

	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// jsonOrNil keeps empty payloads out of the jsonb columns.
func jsonOrNil(b []byte) any {
	if len(b) == 0 {
		return nil
	}

	return string(b)
}
