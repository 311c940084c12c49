package service

import (
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/model"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/valueobject"
)

// ScoreOutput contains the rank breakdown produced by scoring one asset.
type ScoreOutput struct {
	CorrosionRank   int
	DeformationRank int
	LeakRank        int
	AgeRank         int
	RepairRank      int
	SummedRank      int
}

// ageBrackets maps age in years to a rank via inclusive upper bounds,
// in ascending order. Ages above the last bound are outside the domain.
var ageBrackets = []struct {
	upper float64
	rank  int
}{
	{upper: 10, rank: 1},
	{upper: 20, rank: 2},
	{upper: 30, rank: 3},
	{upper: 40, rank: 4},
	{upper: 50, rank: 5},
}

// FailureScorer is a domain service that derives an asset's rank breakdown
// from fixed per-field rank tables. It is stateless and deterministic: the
// same record always produces the same output, with no I/O and no clock.
type FailureScorer struct{}

var _ Scorer = (*FailureScorer)(nil)

// NewFailureScorer creates a new FailureScorer instance.
func NewFailureScorer() *FailureScorer {
	return &FailureScorer{}
}

// Score evaluates one asset record against the rank tables.
// Every field is mapped through a total table: a value outside its table's
// domain is an error naming the field, never a fallback rank.
func (s *FailureScorer) Score(record model.AssetRecord) (ScoreOutput, error) {
	corrosionRank, err := rankSeverity("corrosion_level", record.CorrosionLevel())
	if err != nil {
		return ScoreOutput{}, err
	}

	deformationRank, err := rankSeverity("deformation_level", record.DeformationLevel())
	if err != nil {
		return ScoreOutput{}, err
	}

	leakRank := rankLeak(record.LeakDetected())

	ageRank, err := rankAge(record.AgeYears())
	if err != nil {
		return ScoreOutput{}, err
	}

	repairRank, err := rankRepair(record.RepairType())
	if err != nil {
		return ScoreOutput{}, err
	}

	return ScoreOutput{
		CorrosionRank:   corrosionRank,
		DeformationRank: deformationRank,
		LeakRank:        leakRank,
		AgeRank:         ageRank,
		RepairRank:      repairRank,
		SummedRank:      corrosionRank + deformationRank + leakRank + ageRank + repairRank,
	}, nil
}

// rankSeverity maps a 0-5 severity level to its rank (the identity mapping).
func rankSeverity(field string, level int) (int, error) {
	if level < 0 || level > 5 {
		return 0, &model.InvalidInputError{Field: field, Value: level}
	}
	return level, nil
}

// rankLeak maps leak detection to its rank. Detected leaks rank 2, none rank 1.
func rankLeak(detected bool) int {
	if detected {
		return 2
	}
	return 1
}

// rankAge maps an asset's age to its rank by scanning the brackets in order.
func rankAge(years float64) (int, error) {
	if years < 0 {
		return 0, &model.InvalidInputError{Field: "age_years", Value: years}
	}
	for _, bracket := range ageBrackets {
		if years <= bracket.upper {
			return bracket.rank, nil
		}
	}
	return 0, &model.InvalidInputError{Field: "age_years", Value: years}
}

// rankRepair maps a repair type to its rank.
// routine=1, preventive=2, corrective=3.
func rankRepair(repairType valueobject.RepairType) (int, error) {
	switch repairType {
	case valueobject.RepairTypeRoutine:
		return 1, nil
	case valueobject.RepairTypePreventive:
		return 2, nil
	case valueobject.RepairTypeCorrective:
		return 3, nil
	default:
		return 0, &model.InvalidInputError{Field: "repair_type", Value: repairType.String()}
	}
}
