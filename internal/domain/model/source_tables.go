package model

// AssetRow is one row of the asset master table, the join base.
type AssetRow struct {
	AssetID  string
	AgeYears float64
}

// InspectionRow is one row of the inspection findings table.
type InspectionRow struct {
	AssetID          string
	CorrosionLevel   int
	DeformationLevel int
}

// LeakRow is one row of the leak detection table.
type LeakRow struct {
	AssetID      string
	LeakDetected bool
}

// RepairRow is one row of the repair history table.
type RepairRow struct {
	AssetID    string
	RepairType string
}

// JoinedAssetRow is the left-outer join of the four source tables for one
// asset. Right-side fields are nil when the asset has no row in that table;
// validation turns a nil into a missing-field error, not a default.
type JoinedAssetRow struct {
	AssetID          string
	CorrosionLevel   *int
	DeformationLevel *int
	LeakDetected     *bool
	RepairType       *string
	AgeYears         float64
}
