package event

import (
	"time"

	"github.com/google/uuid"
)

const (
	// EventTypeFailureDetected is emitted for each asset classified as failing.
	EventTypeFailureDetected = "pipeline.failure.detected"

	// EventTypeRunCompleted is emitted once when a pipeline run finishes.
	EventTypeRunCompleted = "pipeline.run.completed"
)

// FailureDetected is published when an asset's summed rank crosses the
// failure threshold, flagging it for maintenance follow-up.
type FailureDetected struct {
	RunID           uuid.UUID `json:"run_id"`
	AssetID         string    `json:"asset_id"`
	CorrosionRank   int       `json:"corrosion_rank"`
	DeformationRank int       `json:"deformation_rank"`
	LeakRank        int       `json:"leak_rank"`
	AgeRank         int       `json:"age_rank"`
	RepairRank      int       `json:"repair_rank"`
	SummedRank      int       `json:"summed_rank"`
	DetectedAt      time.Time `json:"detected_at"`
}

// NewFailureDetected builds a FailureDetected event.
func NewFailureDetected(
	runID uuid.UUID,
	assetID string,
	corrosionRank, deformationRank, leakRank, ageRank, repairRank, summedRank int,
	detectedAt time.Time,
) FailureDetected {
	return FailureDetected{
		RunID:           runID,
		AssetID:         assetID,
		CorrosionRank:   corrosionRank,
		DeformationRank: deformationRank,
		LeakRank:        leakRank,
		AgeRank:         ageRank,
		RepairRank:      repairRank,
		SummedRank:      summedRank,
		DetectedAt:      detectedAt,
	}
}

// EventType returns the event type identifier.
func (e FailureDetected) EventType() string {
	return EventTypeFailureDetected
}

// AggregateID returns the asset ID as the aggregate identifier.
func (e FailureDetected) AggregateID() string {
	return e.AssetID
}

// OccurredAt returns when the failure was detected.
func (e FailureDetected) OccurredAt() time.Time {
	return e.DetectedAt
}

// RunCompleted is published when a pipeline run has finished loading its
// results, summarizing what the run processed.
type RunCompleted struct {
	RunID            uuid.UUID `json:"run_id"`
	RecordsExtracted int       `json:"records_extracted"`
	RecordsScored    int       `json:"records_scored"`
	RecordsRejected  int       `json:"records_rejected"`
	FailuresDetected int       `json:"failures_detected"`
	StartedAt        time.Time `json:"started_at"`
	CompletedAt      time.Time `json:"completed_at"`
}

// NewRunCompleted builds a RunCompleted event.
func NewRunCompleted(
	runID uuid.UUID,
	recordsExtracted, recordsScored, recordsRejected, failuresDetected int,
	startedAt, completedAt time.Time,
) RunCompleted {
	return RunCompleted{
		RunID:            runID,
		RecordsExtracted: recordsExtracted,
		RecordsScored:    recordsScored,
		RecordsRejected:  recordsRejected,
		FailuresDetected: failuresDetected,
		StartedAt:        startedAt,
		CompletedAt:      completedAt,
	}
}

// EventType returns the event type identifier.
func (e RunCompleted) EventType() string {
	return EventTypeRunCompleted
}

// AggregateID returns the run ID as the aggregate identifier.
func (e RunCompleted) AggregateID() string {
	return e.RunID.String()
}

// OccurredAt returns when the run completed.
func (e RunCompleted) OccurredAt() time.Time {
	return e.CompletedAt
}
