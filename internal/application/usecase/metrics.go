package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/application/dto"
)

// pipelineMetrics holds the instruments recorded at the end of a run. The
// instruments come from the global meter provider, so they are no-ops until
// observability.InitMetrics has been called.
type pipelineMetrics struct {
	recordsExtracted metric.Int64Counter
	recordsScored    metric.Int64Counter
	recordsRejected  metric.Int64Counter
	failuresDetected metric.Int64Counter
	runDuration      metric.Float64Histogram
}

func newPipelineMetrics() (*pipelineMetrics, error) {
	meter := otel.Meter("failure-etl/pipeline")

	extracted, err := meter.Int64Counter("etl_records_extracted_total",
		metric.WithDescription("Base-table records extracted from the sources."))
	if err != nil {
		return nil, fmt.Errorf("create extracted counter: %w", err)
	}
	scored, err := meter.Int64Counter("etl_records_scored_total",
		metric.WithDescription("Records that were validated, scored and loaded."))
	if err != nil {
		return nil, fmt.Errorf("create scored counter: %w", err)
	}
	rejected, err := meter.Int64Counter("etl_records_rejected_total",
		metric.WithDescription("Records dropped for validation or scoring errors."))
	if err != nil {
		return nil, fmt.Errorf("create rejected counter: %w", err)
	}
	failures, err := meter.Int64Counter("etl_failures_detected_total",
		metric.WithDescription("Assets whose summed rank crossed the failure threshold."))
	if err != nil {
		return nil, fmt.Errorf("create failures counter: %w", err)
	}
	duration, err := meter.Float64Histogram("etl_run_duration_seconds",
		metric.WithDescription("Wall-clock duration of a pipeline run."),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	return &pipelineMetrics{
		recordsExtracted: extracted,
		recordsScored:    scored,
		recordsRejected:  rejected,
		failuresDetected: failures,
		runDuration:      duration,
	}, nil
}

// recordRun publishes one run's counters and duration.
func (m *pipelineMetrics) recordRun(ctx context.Context, report dto.RunReport) {
	m.recordsExtracted.Add(ctx, int64(report.RecordsExtracted))
	m.recordsScored.Add(ctx, int64(report.RecordsScored))
	m.recordsRejected.Add(ctx, int64(report.RecordsRejected))
	m.failuresDetected.Add(ctx, int64(report.FailuresDetected))
	m.runDuration.Record(ctx, report.Duration.Seconds())
}
