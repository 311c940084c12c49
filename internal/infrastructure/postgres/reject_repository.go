package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/model"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/port"
	pgpkg "github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/pkg/postgres"
)

var rejectColumns = []string{
	"run_id", "asset_id", "reason", "field", "value", "message", "rejected_at",
}

// RejectRepository implements port.RejectRepository using PostgreSQL.
type RejectRepository struct {
	pool *pgxpool.Pool
}

var _ port.RejectRepository = (*RejectRepository)(nil)

// NewRejectRepository creates a new PostgreSQL-backed reject repository.
func NewRejectRepository(pool *pgxpool.Pool) *RejectRepository {
	return &RejectRepository{pool: pool}
}

// EnsureSchema creates the rejected_records table if it does not exist.
func (r *RejectRepository) EnsureSchema(ctx context.Context) error {
	ddl := `
		CREATE TABLE IF NOT EXISTS rejected_records (
			run_id      UUID NOT NULL,
			asset_id    TEXT NOT NULL,
			reason      TEXT NOT NULL,
			field       TEXT NOT NULL DEFAULT '',
			value       TEXT NOT NULL DEFAULT '',
			message     TEXT NOT NULL,
			rejected_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rejected_records_asset_id
			ON rejected_records (asset_id);
	`
	if _, err := r.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to ensure rejected_records schema: %w", err)
	}
	return nil
}

// ReplaceAll swaps the table contents for the given batch inside one
// transaction. An empty batch still truncates, so a clean run clears the
// previous run's rejects.
func (r *RejectRepository) ReplaceAll(ctx context.Context, rejects []model.RejectedRecord) error {
	return pgpkg.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `TRUNCATE TABLE rejected_records`); err != nil {
			return fmt.Errorf("failed to truncate rejected_records: %w", err)
		}

		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"rejected_records"},
			rejectColumns,
			pgx.CopyFromSlice(len(rejects), func(i int) ([]any, error) {
				rej := rejects[i]
				return []any{
					rej.RunID, rej.AssetID, string(rej.Reason), rej.Field, rej.Value, rej.Message, rej.RejectedAt,
				}, nil
			}),
		)
		if err != nil {
			return fmt.Errorf("failed to copy rejected records: %w", err)
		}
		return nil
	})
}
