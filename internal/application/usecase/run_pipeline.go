package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/application/dto"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/event"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/model"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/port"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/service"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/pkg/events"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/pkg/observability"
)

// RunPipeline is the use case for one end-to-end pass over the four source
// tables: extract, join, score, load, publish.
type RunPipeline struct {
	source     port.AssetSource
	scoredRepo port.ScoredAssetRepository
	rejectRepo port.RejectRepository
	publisher  port.EventPublisher
	joiner     *service.TableJoiner
	scorer     service.Scorer
	metrics    *pipelineMetrics
	logger     *slog.Logger
}

// NewRunPipeline creates a new RunPipeline use case.
func NewRunPipeline(
	source port.AssetSource,
	scoredRepo port.ScoredAssetRepository,
	rejectRepo port.RejectRepository,
	publisher port.EventPublisher,
	scorer service.Scorer,
	logger *slog.Logger,
) (*RunPipeline, error) {
	metrics, err := newPipelineMetrics()
	if err != nil {
		return nil, fmt.Errorf("init pipeline metrics: %w", err)
	}
	return &RunPipeline{
		source:     source,
		scoredRepo: scoredRepo,
		rejectRepo: rejectRepo,
		publisher:  publisher,
		joiner:     service.NewTableJoiner(),
		scorer:     scorer,
		metrics:    metrics,
		logger:     logger,
	}, nil
}

// Execute performs one pipeline run. Record-level failures follow the
// request's error policy; a failure of a whole stage always fails the run.
func (uc *RunPipeline) Execute(ctx context.Context, req dto.RunPipelineRequest) (dto.RunReport, error) {
	runID := uuid.New()
	startedAt := time.Now().UTC()

	ctx, span := observability.StartSpan(ctx, "pipeline.run",
		attribute.String("run.id", runID.String()))
	defer span.End()

	logger := uc.logger.With("run_id", runID)
	logger.Info("pipeline run started",
		"error_policy", req.ErrorPolicy,
		"score_workers", req.ScoreWorkers)

	// 1. Extract the four source tables concurrently.
	tables, err := uc.extract(ctx)
	if err != nil {
		return dto.RunReport{}, fmt.Errorf("failed to extract source tables: %w", err)
	}

	// 2. Left-join inspections, leaks and repairs onto the asset base table.
	joined, stats, err := uc.join(ctx, tables)
	if err != nil {
		return dto.RunReport{}, fmt.Errorf("failed to join source tables: %w", err)
	}
	if orphans := stats.OrphanInspections + stats.OrphanLeaks + stats.OrphanRepairs; orphans > 0 {
		logger.Warn("dropped rows without a matching asset",
			"orphan_inspections", stats.OrphanInspections,
			"orphan_leaks", stats.OrphanLeaks,
			"orphan_repairs", stats.OrphanRepairs)
	}

	// 3. Validate and score every joined row.
	scored, rejects, err := uc.score(ctx, runID, joined, req)
	if err != nil {
		return dto.RunReport{}, fmt.Errorf("failed to score records: %w", err)
	}

	// 4. Replace the previous run's results in the warehouse.
	if err := uc.load(ctx, scored, rejects); err != nil {
		return dto.RunReport{}, fmt.Errorf("failed to load results: %w", err)
	}

	// 5. Publish domain events.
	completedAt := time.Now().UTC()
	failures := countFailures(scored)
	runEvent := event.NewRunCompleted(runID, stats.BaseRows, len(scored), len(rejects), failures, startedAt, completedAt)
	if err := uc.publish(ctx, scored, runEvent); err != nil {
		return dto.RunReport{}, fmt.Errorf("failed to publish events: %w", err)
	}

	report := dto.RunReport{
		StartedAt:         startedAt,
		CompletedAt:       completedAt,
		RunID:             runID,
		Duration:          completedAt.Sub(startedAt),
		RecordsExtracted:  stats.BaseRows,
		RecordsScored:     len(scored),
		RecordsRejected:   len(rejects),
		FailuresDetected:  failures,
		OrphanInspections: stats.OrphanInspections,
		OrphanLeaks:       stats.OrphanLeaks,
		OrphanRepairs:     stats.OrphanRepairs,
	}
	uc.metrics.recordRun(ctx, report)

	logger.Info("pipeline run completed",
		"records_extracted", report.RecordsExtracted,
		"records_scored", report.RecordsScored,
		"records_rejected", report.RecordsRejected,
		"failures_detected", report.FailuresDetected,
		"duration", report.Duration)
	return report, nil
}

// sourceTables carries one extracted copy of each source table.
type sourceTables struct {
	assets      []model.AssetRow
	inspections []model.InspectionRow
	leaks       []model.LeakRow
	repairs     []model.RepairRow
}

// extract reads the four tables in parallel. Each goroutine writes a distinct
// field, so no synchronization beyond the group wait is needed.
func (uc *RunPipeline) extract(ctx context.Context) (sourceTables, error) {
	ctx, span := observability.StartSpan(ctx, "pipeline.extract")
	defer span.End()

	var tables sourceTables
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := uc.source.Assets(ctx)
		if err != nil {
			return fmt.Errorf("read assets: %w", err)
		}
		tables.assets = rows
		return nil
	})
	g.Go(func() error {
		rows, err := uc.source.Inspections(ctx)
		if err != nil {
			return fmt.Errorf("read inspections: %w", err)
		}
		tables.inspections = rows
		return nil
	})
	g.Go(func() error {
		rows, err := uc.source.Leaks(ctx)
		if err != nil {
			return fmt.Errorf("read leaks: %w", err)
		}
		tables.leaks = rows
		return nil
	})
	g.Go(func() error {
		rows, err := uc.source.Repairs(ctx)
		if err != nil {
			return fmt.Errorf("read repairs: %w", err)
		}
		tables.repairs = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return sourceTables{}, err
	}
	return tables, nil
}

func (uc *RunPipeline) join(ctx context.Context, tables sourceTables) ([]model.JoinedAssetRow, service.JoinStats, error) {
	_, span := observability.StartSpan(ctx, "pipeline.join")
	defer span.End()

	return uc.joiner.Join(tables.assets, tables.inspections, tables.leaks, tables.repairs)
}

// score runs every joined row through validation and the scorer on a small
// worker pool. Results land in slots indexed by input position, so worker
// scheduling cannot reorder the output.
func (uc *RunPipeline) score(
	ctx context.Context,
	runID uuid.UUID,
	rows []model.JoinedAssetRow,
	req dto.RunPipelineRequest,
) ([]*model.ScoredAsset, []model.RejectedRecord, error) {
	ctx, span := observability.StartSpan(ctx, "pipeline.score",
		attribute.Int("rows", len(rows)))
	defer span.End()

	workers := req.ScoreWorkers
	if workers < 1 {
		workers = 1
	}

	scoredSlots := make([]*model.ScoredAsset, len(rows))
	rejectSlots := make([]*model.RejectedRecord, len(rows))

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int)
	g.Go(func() error {
		defer close(jobs)
		for i := range rows {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				if err := uc.scoreOne(runID, rows[i], i, req.ErrorPolicy, scoredSlots, rejectSlots); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	scored := make([]*model.ScoredAsset, 0, len(rows))
	var rejects []model.RejectedRecord
	for i := range rows {
		if scoredSlots[i] != nil {
			scored = append(scored, scoredSlots[i])
		}
		if rejectSlots[i] != nil {
			rejects = append(rejects, *rejectSlots[i])
		}
	}
	return scored, rejects, nil
}

// scoreOne fills exactly one of the two slots at index i. Under the abort
// policy a record-level failure is returned instead of captured.
func (uc *RunPipeline) scoreOne(
	runID uuid.UUID,
	row model.JoinedAssetRow,
	i int,
	policy dto.ErrorPolicy,
	scoredSlots []*model.ScoredAsset,
	rejectSlots []*model.RejectedRecord,
) error {
	scored, err := uc.buildScoredAsset(runID, row)
	if err == nil {
		scoredSlots[i] = scored
		return nil
	}
	if policy == dto.ErrorPolicyAbort {
		return fmt.Errorf("asset %s: %w", row.AssetID, err)
	}
	reject := model.NewRejectedRecord(runID, row.AssetID, err, time.Now().UTC())
	rejectSlots[i] = &reject
	uc.logger.Debug("record rejected", "asset_id", row.AssetID, "error", err)
	return nil
}

// buildScoredAsset runs one row through record validation, the scorer and the
// aggregate. Every error it returns is record-level.
func (uc *RunPipeline) buildScoredAsset(runID uuid.UUID, row model.JoinedAssetRow) (*model.ScoredAsset, error) {
	record, err := model.NewAssetRecord(row)
	if err != nil {
		return nil, err
	}
	output, err := uc.scorer.Score(record)
	if err != nil {
		return nil, err
	}
	scored, err := model.NewScoredAsset(record, runID)
	if err != nil {
		return nil, err
	}
	if err := scored.ApplyScore(output.CorrosionRank, output.DeformationRank, output.LeakRank, output.AgeRank, output.RepairRank); err != nil {
		return nil, err
	}
	return scored, nil
}

// load replaces both target tables. Schemas are ensured first so a fresh
// database works without a separate provisioning step.
func (uc *RunPipeline) load(ctx context.Context, scored []*model.ScoredAsset, rejects []model.RejectedRecord) error {
	ctx, span := observability.StartSpan(ctx, "pipeline.load",
		attribute.Int("scored", len(scored)),
		attribute.Int("rejected", len(rejects)))
	defer span.End()

	if err := uc.scoredRepo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure scored-asset schema: %w", err)
	}
	if err := uc.rejectRepo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure reject schema: %w", err)
	}
	if err := uc.scoredRepo.ReplaceAll(ctx, scored); err != nil {
		return fmt.Errorf("replace scored assets: %w", err)
	}
	if err := uc.rejectRepo.ReplaceAll(ctx, rejects); err != nil {
		return fmt.Errorf("replace rejected records: %w", err)
	}
	return nil
}

// publish drains the failure events collected by the aggregates and appends
// the run summary event. Publishing happens after the load so consumers never
// hear about results that were not persisted.
func (uc *RunPipeline) publish(ctx context.Context, scored []*model.ScoredAsset, runEvent event.RunCompleted) error {
	ctx, span := observability.StartSpan(ctx, "pipeline.publish")
	defer span.End()

	evts := make([]events.DomainEvent, 0, len(scored)+1)
	for _, asset := range scored {
		evts = append(evts, asset.ClearEvents()...)
	}
	evts = append(evts, runEvent)
	return uc.publisher.Publish(ctx, evts...)
}

func countFailures(scored []*model.ScoredAsset) int {
	n := 0
	for _, asset := range scored {
		if asset.Status().IsFailing() {
			n++
		}
	}
	return n
}
