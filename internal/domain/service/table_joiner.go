package service

import (
	"fmt"

	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/model"
)

// JoinStats summarizes one join pass over the four source tables.
type JoinStats struct {
	BaseRows          int
	InspectionRows    int
	LeakRows          int
	RepairRows        int
	OrphanInspections int
	OrphanLeaks       int
	OrphanRepairs     int
}

// TableJoiner is a domain service that left-joins the inspection, leak and
// repair tables onto the asset master table by asset identifier. Output order
// follows the base table, so a join over the same inputs is reproducible.
type TableJoiner struct{}

// NewTableJoiner creates a new TableJoiner instance.
func NewTableJoiner() *TableJoiner {
	return &TableJoiner{}
}

// Join produces one joined row per base asset. A right-side row with no base
// match is an orphan: left-join semantics drop it, and the stats count it.
// A duplicate identifier within any single table fails the join; two rows
// claiming the same identity cannot be reconciled.
func (j *TableJoiner) Join(
	assets []model.AssetRow,
	inspections []model.InspectionRow,
	leaks []model.LeakRow,
	repairs []model.RepairRow,
) ([]model.JoinedAssetRow, JoinStats, error) {
	stats := JoinStats{
		BaseRows:       len(assets),
		InspectionRows: len(inspections),
		LeakRows:       len(leaks),
		RepairRows:     len(repairs),
	}

	inspectionIdx := make(map[string]model.InspectionRow, len(inspections))
	for _, row := range inspections {
		if _, dup := inspectionIdx[row.AssetID]; dup {
			return nil, JoinStats{}, duplicateIdentifier("inspections", row.AssetID)
		}
		inspectionIdx[row.AssetID] = row
	}

	leakIdx := make(map[string]model.LeakRow, len(leaks))
	for _, row := range leaks {
		if _, dup := leakIdx[row.AssetID]; dup {
			return nil, JoinStats{}, duplicateIdentifier("leaks", row.AssetID)
		}
		leakIdx[row.AssetID] = row
	}

	repairIdx := make(map[string]model.RepairRow, len(repairs))
	for _, row := range repairs {
		if _, dup := repairIdx[row.AssetID]; dup {
			return nil, JoinStats{}, duplicateIdentifier("repairs", row.AssetID)
		}
		repairIdx[row.AssetID] = row
	}

	joined := make([]model.JoinedAssetRow, 0, len(assets))
	seenBase := make(map[string]struct{}, len(assets))
	matchedInspections, matchedLeaks, matchedRepairs := 0, 0, 0

	for _, asset := range assets {
		if _, dup := seenBase[asset.AssetID]; dup {
			return nil, JoinStats{}, duplicateIdentifier("assets", asset.AssetID)
		}
		seenBase[asset.AssetID] = struct{}{}

		row := model.JoinedAssetRow{
			AssetID:  asset.AssetID,
			AgeYears: asset.AgeYears,
		}

		if inspection, ok := inspectionIdx[asset.AssetID]; ok {
			corrosion := inspection.CorrosionLevel
			deformation := inspection.DeformationLevel
			row.CorrosionLevel = &corrosion
			row.DeformationLevel = &deformation
			matchedInspections++
		}

		if leak, ok := leakIdx[asset.AssetID]; ok {
			detected := leak.LeakDetected
			row.LeakDetected = &detected
			matchedLeaks++
		}

		if repair, ok := repairIdx[asset.AssetID]; ok {
			repairType := repair.RepairType
			row.RepairType = &repairType
			matchedRepairs++
		}

		joined = append(joined, row)
	}

	// Base identifiers are unique, so matched counts are distinct counts.
	stats.OrphanInspections = len(inspectionIdx) - matchedInspections
	stats.OrphanLeaks = len(leakIdx) - matchedLeaks
	stats.OrphanRepairs = len(repairIdx) - matchedRepairs

	return joined, stats, nil
}

func duplicateIdentifier(table, assetID string) error {
	return fmt.Errorf("%s table: duplicate identifier: %w",
		table, &model.InvalidInputError{Field: "asset_id", Value: assetID})
}
