package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/model"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/port"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/valueobject"
	pgpkg "github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/pkg/postgres"
)

var scoredAssetColumns = []string{
	"asset_id",
	"corrosion_level", "deformation_level", "leak_detected", "age_years", "repair_type",
	"corrosion_rank", "deformation_rank", "leak_rank", "age_rank", "repair_rank",
	"summed_rank", "failure_status", "run_id", "scored_at",
}

// ScoredAssetRepository implements port.ScoredAssetRepository using PostgreSQL.
type ScoredAssetRepository struct {
	pool *pgxpool.Pool
}

var _ port.ScoredAssetRepository = (*ScoredAssetRepository)(nil)

// NewScoredAssetRepository creates a new PostgreSQL-backed scored-asset repository.
func NewScoredAssetRepository(pool *pgxpool.Pool) *ScoredAssetRepository {
	return &ScoredAssetRepository{pool: pool}
}

// EnsureSchema creates the scored_assets table if it does not exist.
func (r *ScoredAssetRepository) EnsureSchema(ctx context.Context) error {
	ddl := `
		CREATE TABLE IF NOT EXISTS scored_assets (
			asset_id          TEXT PRIMARY KEY,
			corrosion_level   INTEGER NOT NULL,
			deformation_level INTEGER NOT NULL,
			leak_detected     BOOLEAN NOT NULL,
			age_years         DOUBLE PRECISION NOT NULL,
			repair_type       TEXT NOT NULL,
			corrosion_rank    INTEGER NOT NULL,
			deformation_rank  INTEGER NOT NULL,
			leak_rank         INTEGER NOT NULL,
			age_rank          INTEGER NOT NULL,
			repair_rank       INTEGER NOT NULL,
			summed_rank       INTEGER NOT NULL,
			failure_status    SMALLINT NOT NULL,
			run_id            UUID NOT NULL,
			scored_at         TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_scored_assets_failure_status
			ON scored_assets (failure_status);
	`
	if _, err := r.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to ensure scored_assets schema: %w", err)
	}
	return nil
}

// ReplaceAll swaps the table contents for the given batch inside one
// transaction, so readers either see the previous run or the new one.
func (r *ScoredAssetRepository) ReplaceAll(ctx context.Context, assets []*model.ScoredAsset) error {
	return pgpkg.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `TRUNCATE TABLE scored_assets`); err != nil {
			return fmt.Errorf("failed to truncate scored_assets: %w", err)
		}

		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"scored_assets"},
			scoredAssetColumns,
			pgx.CopyFromSlice(len(assets), func(i int) ([]any, error) {
				a := assets[i]
				record := a.AssetRecord()
				return []any{
					record.Identifier(),
					record.CorrosionLevel(), record.DeformationLevel(), record.LeakDetected(), record.AgeYears(), record.RepairType().String(),
					a.CorrosionRank(), a.DeformationRank(), a.LeakRank(), a.AgeRank(), a.RepairRank(),
					a.SummedRank(), a.Status().Int(), a.RunID(), a.ScoredAt(),
				}, nil
			}),
		)
		if err != nil {
			return fmt.Errorf("failed to copy scored assets: %w", err)
		}
		return nil
	})
}

// FindByAssetID retrieves one scored asset by its identifier.
func (r *ScoredAssetRepository) FindByAssetID(ctx context.Context, assetID string) (*model.ScoredAsset, error) {
	query := `
		SELECT asset_id,
			corrosion_level, deformation_level, leak_detected, age_years, repair_type,
			corrosion_rank, deformation_rank, leak_rank, age_rank, repair_rank,
			summed_rank, failure_status, run_id, scored_at
		FROM scored_assets
		WHERE asset_id = $1
	`
	return r.scanScoredAsset(r.pool.QueryRow(ctx, query, assetID))
}

// Count returns the number of persisted scored assets.
func (r *ScoredAssetRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM scored_assets`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count scored assets: %w", err)
	}
	return count, nil
}

func (r *ScoredAssetRepository) scanScoredAsset(row pgx.Row) (*model.ScoredAsset, error) {
	var (
		assetID          string
		corrosionLevel   int
		deformationLevel int
		leakDetected     bool
		ageYears         float64
		repairTypeStr    string
		corrosionRank    int
		deformationRank  int
		leakRank         int
		ageRank          int
		repairRank       int
		summedRank       int
		failureStatus    int
		runID            uuid.UUID
		scoredAt         time.Time
	)

	err := row.Scan(
		&assetID,
		&corrosionLevel, &deformationLevel, &leakDetected, &ageYears, &repairTypeStr,
		&corrosionRank, &deformationRank, &leakRank, &ageRank, &repairRank,
		&summedRank, &failureStatus, &runID, &scoredAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan scored asset: %w", err)
	}

	repairType, err := valueobject.RepairTypeFromString(repairTypeStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse repair type: %w", err)
	}
	status, err := valueobject.FailureStatusFromInt(failureStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to parse failure status: %w", err)
	}

	record := model.ReconstructAssetRecord(assetID, corrosionLevel, deformationLevel, leakDetected, ageYears, repairType)
	return model.ReconstructScoredAsset(
		record,
		corrosionRank, deformationRank, leakRank, ageRank, repairRank, summedRank,
		status, runID, scoredAt,
	), nil
}
