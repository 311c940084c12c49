package port

import (
	"context"

	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/model"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/pkg/events"
)

// AssetSource provides the four source tables for a pipeline run.
type AssetSource interface {
	// Assets reads the asset master table, the join base.
	Assets(ctx context.Context) ([]model.AssetRow, error)

	// Inspections reads the inspection findings table.
	Inspections(ctx context.Context) ([]model.InspectionRow, error)

	// Leaks reads the leak detection table.
	Leaks(ctx context.Context) ([]model.LeakRow, error)

	// Repairs reads the repair history table.
	Repairs(ctx context.Context) ([]model.RepairRow, error)
}

// ScoredAssetRepository defines the persistence port for scoring results.
type ScoredAssetRepository interface {
	// EnsureSchema creates the scored-asset table if it does not exist.
	EnsureSchema(ctx context.Context) error

	// ReplaceAll atomically replaces the table contents with the given batch.
	// A failed replace leaves the previous contents intact.
	ReplaceAll(ctx context.Context, assets []*model.ScoredAsset) error

	// FindByAssetID retrieves one scored asset by its identifier.
	FindByAssetID(ctx context.Context, assetID string) (*model.ScoredAsset, error)

	// Count returns the number of persisted scored assets.
	Count(ctx context.Context) (int, error)
}

// RejectRepository defines the persistence port for records a run dropped.
type RejectRepository interface {
	// EnsureSchema creates the reject table if it does not exist.
	EnsureSchema(ctx context.Context) error

	// ReplaceAll atomically replaces the table contents with the given batch.
	ReplaceAll(ctx context.Context, rejects []model.RejectedRecord) error
}

// EventPublisher defines the port for publishing domain events.
type EventPublisher interface {
	// Publish sends one or more domain events to the messaging infrastructure.
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}
