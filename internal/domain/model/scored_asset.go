package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/event"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/valueobject"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/pkg/events"
)

// ScoredAsset is the aggregate root for one asset's scoring outcome within a
// pipeline run. It links the validated input record to the rank breakdown,
// summed rank and failure status that were derived from it.
type ScoredAsset struct {
	events.EventCollector
	scoredAt        time.Time
	record          AssetRecord
	status          valueobject.FailureStatus
	runID           uuid.UUID
	corrosionRank   int
	deformationRank int
	leakRank        int
	ageRank         int
	repairRank      int
	summedRank      int
}

// NewScoredAsset creates a scoring outcome shell for an asset record.
// The asset starts unscored; call ApplyScore() with the rank breakdown.
func NewScoredAsset(record AssetRecord, runID uuid.UUID) (*ScoredAsset, error) {
	if record.Identifier() == "" {
		return nil, fmt.Errorf("asset record is required")
	}
	if runID == uuid.Nil {
		return nil, fmt.Errorf("run ID is required")
	}

	return &ScoredAsset{
		record: record,
		runID:  runID,
	}, nil
}

// ApplyScore applies a rank breakdown to the asset, deriving the summed rank
// and failure status. This is the core domain operation. Each rank must lie
// within its table's range; the sum then always falls in [3, 20].
func (s *ScoredAsset) ApplyScore(corrosionRank, deformationRank, leakRank, ageRank, repairRank int) error {
	if corrosionRank < 0 || corrosionRank > 5 {
		return fmt.Errorf("corrosion rank must be between 0 and 5, got %d", corrosionRank)
	}
	if deformationRank < 0 || deformationRank > 5 {
		return fmt.Errorf("deformation rank must be between 0 and 5, got %d", deformationRank)
	}
	if leakRank < 1 || leakRank > 2 {
		return fmt.Errorf("leak rank must be 1 or 2, got %d", leakRank)
	}
	if ageRank < 1 || ageRank > 5 {
		return fmt.Errorf("age rank must be between 1 and 5, got %d", ageRank)
	}
	if repairRank < 1 || repairRank > 3 {
		return fmt.Errorf("repair rank must be between 1 and 3, got %d", repairRank)
	}

	s.corrosionRank = corrosionRank
	s.deformationRank = deformationRank
	s.leakRank = leakRank
	s.ageRank = ageRank
	s.repairRank = repairRank
	s.summedRank = corrosionRank + deformationRank + leakRank + ageRank + repairRank
	s.status = valueobject.FailureStatusFromSummedRank(s.summedRank)
	s.scoredAt = time.Now().UTC()

	// Emit FailureDetected when the asset crosses the failure threshold.
	if s.status.IsFailing() {
		s.Record(event.NewFailureDetected(
			s.runID, s.record.Identifier(),
			s.corrosionRank, s.deformationRank, s.leakRank, s.ageRank, s.repairRank,
			s.summedRank, s.scoredAt,
		))
	}

	return nil
}

// ReconstructScoredAsset rebuilds a ScoredAsset from persisted data (no validation, no events).
func ReconstructScoredAsset(
	record AssetRecord,
	corrosionRank, deformationRank, leakRank, ageRank, repairRank, summedRank int,
	status valueobject.FailureStatus,
	runID uuid.UUID,
	scoredAt time.Time,
) *ScoredAsset {
	return &ScoredAsset{
		record:          record,
		corrosionRank:   corrosionRank,
		deformationRank: deformationRank,
		leakRank:        leakRank,
		ageRank:         ageRank,
		repairRank:      repairRank,
		summedRank:      summedRank,
		status:          status,
		runID:           runID,
		scoredAt:        scoredAt,
	}
}

// --- Accessors ---

func (s *ScoredAsset) AssetRecord() AssetRecord             { return s.record }
func (s *ScoredAsset) CorrosionRank() int                   { return s.corrosionRank }
func (s *ScoredAsset) DeformationRank() int                 { return s.deformationRank }
func (s *ScoredAsset) LeakRank() int                        { return s.leakRank }
func (s *ScoredAsset) AgeRank() int                         { return s.ageRank }
func (s *ScoredAsset) RepairRank() int                      { return s.repairRank }
func (s *ScoredAsset) SummedRank() int                      { return s.summedRank }
func (s *ScoredAsset) Status() valueobject.FailureStatus    { return s.status }
func (s *ScoredAsset) RunID() uuid.UUID                     { return s.runID }
func (s *ScoredAsset) ScoredAt() time.Time                  { return s.scoredAt }
