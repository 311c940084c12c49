package model

import (
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/valueobject"
)

// AssetRecord is a fully joined, validated pipeline asset ready for scoring.
// Records are immutable once constructed.
type AssetRecord struct {
	identifier       string
	repairType       valueobject.RepairType
	ageYears         float64
	corrosionLevel   int
	deformationLevel int
	leakDetected     bool
}

// NewAssetRecord validates a joined row into an AssetRecord.
// A nil right-side field yields a MissingFieldError; a value outside its
// declared domain yields an InvalidInputError. Age is only checked for
// non-negativity here; the upper scoring bound is enforced at scoring time.
func NewAssetRecord(row JoinedAssetRow) (AssetRecord, error) {
	if row.AssetID == "" {
		return AssetRecord{}, &MissingFieldError{Field: "asset_id"}
	}

	if row.CorrosionLevel == nil {
		return AssetRecord{}, &MissingFieldError{Field: "corrosion_level"}
	}
	if *row.CorrosionLevel < 0 || *row.CorrosionLevel > 5 {
		return AssetRecord{}, &InvalidInputError{Field: "corrosion_level", Value: *row.CorrosionLevel}
	}

	if row.DeformationLevel == nil {
		return AssetRecord{}, &MissingFieldError{Field: "deformation_level"}
	}
	if *row.DeformationLevel < 0 || *row.DeformationLevel > 5 {
		return AssetRecord{}, &InvalidInputError{Field: "deformation_level", Value: *row.DeformationLevel}
	}

	if row.LeakDetected == nil {
		return AssetRecord{}, &MissingFieldError{Field: "leak_detected"}
	}

	if row.AgeYears < 0 {
		return AssetRecord{}, &InvalidInputError{Field: "age_years", Value: row.AgeYears}
	}

	if row.RepairType == nil {
		return AssetRecord{}, &MissingFieldError{Field: "repair_type"}
	}
	repairType, err := valueobject.RepairTypeFromString(*row.RepairType)
	if err != nil {
		return AssetRecord{}, &InvalidInputError{Field: "repair_type", Value: *row.RepairType}
	}

	return AssetRecord{
		identifier:       row.AssetID,
		corrosionLevel:   *row.CorrosionLevel,
		deformationLevel: *row.DeformationLevel,
		leakDetected:     *row.LeakDetected,
		ageYears:         row.AgeYears,
		repairType:       repairType,
	}, nil
}

// ReconstructAssetRecord rebuilds an AssetRecord from persisted data (no validation).
func ReconstructAssetRecord(
	identifier string,
	corrosionLevel, deformationLevel int,
	leakDetected bool,
	ageYears float64,
	repairType valueobject.RepairType,
) AssetRecord {
	return AssetRecord{
		identifier:       identifier,
		corrosionLevel:   corrosionLevel,
		deformationLevel: deformationLevel,
		leakDetected:     leakDetected,
		ageYears:         ageYears,
		repairType:       repairType,
	}
}

// --- Accessors ---

func (r AssetRecord) Identifier() string                 { return r.identifier }
func (r AssetRecord) CorrosionLevel() int                { return r.corrosionLevel }
func (r AssetRecord) DeformationLevel() int              { return r.deformationLevel }
func (r AssetRecord) LeakDetected() bool                 { return r.leakDetected }
func (r AssetRecord) AgeYears() float64                  { return r.ageYears }
func (r AssetRecord) RepairType() valueobject.RepairType { return r.repairType }
