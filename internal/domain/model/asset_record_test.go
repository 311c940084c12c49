package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/model"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/valueobject"
)

func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func validJoinedRow() model.JoinedAssetRow {
	return model.JoinedAssetRow{
		AssetID:          "PIPE-001",
		CorrosionLevel:   intPtr(4),
		DeformationLevel: intPtr(2),
		LeakDetected:     boolPtr(true),
		RepairType:       strPtr("preventive"),
		AgeYears:         39,
	}
}

func TestNewAssetRecord_Valid(t *testing.T) {
	record, err := model.NewAssetRecord(validJoinedRow())
	require.NoError(t, err)

	assert.Equal(t, "PIPE-001", record.Identifier())
	assert.Equal(t, 4, record.CorrosionLevel())
	assert.Equal(t, 2, record.DeformationLevel())
	assert.True(t, record.LeakDetected())
	assert.Equal(t, 39.0, record.AgeYears())
	assert.True(t, valueobject.RepairTypePreventive.Equal(record.RepairType()))
}

func TestNewAssetRecord_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*model.JoinedAssetRow)
		field  string
	}{
		{
			name:   "missing corrosion level",
			modify: func(r *model.JoinedAssetRow) { r.CorrosionLevel = nil },
			field:  "corrosion_level",
		},
		{
			name:   "missing deformation level",
			modify: func(r *model.JoinedAssetRow) { r.DeformationLevel = nil },
			field:  "deformation_level",
		},
		{
			name:   "missing leak flag",
			modify: func(r *model.JoinedAssetRow) { r.LeakDetected = nil },
			field:  "leak_detected",
		},
		{
			name:   "missing repair type",
			modify: func(r *model.JoinedAssetRow) { r.RepairType = nil },
			field:  "repair_type",
		},
		{
			name:   "missing identifier",
			modify: func(r *model.JoinedAssetRow) { r.AssetID = "" },
			field:  "asset_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validJoinedRow()
			tt.modify(&row)

			_, err := model.NewAssetRecord(row)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrMissingField)

			var missing *model.MissingFieldError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.field, missing.Field)
		})
	}
}

func TestNewAssetRecord_InvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*model.JoinedAssetRow)
		field  string
	}{
		{
			name:   "corrosion above 5",
			modify: func(r *model.JoinedAssetRow) { r.CorrosionLevel = intPtr(6) },
			field:  "corrosion_level",
		},
		{
			name:   "corrosion negative",
			modify: func(r *model.JoinedAssetRow) { r.CorrosionLevel = intPtr(-1) },
			field:  "corrosion_level",
		},
		{
			name:   "deformation above 5",
			modify: func(r *model.JoinedAssetRow) { r.DeformationLevel = intPtr(9) },
			field:  "deformation_level",
		},
		{
			name:   "negative age",
			modify: func(r *model.JoinedAssetRow) { r.AgeYears = -3 },
			field:  "age_years",
		},
		{
			name:   "unknown repair type",
			modify: func(r *model.JoinedAssetRow) { r.RepairType = strPtr("emergency") },
			field:  "repair_type",
		},
		{
			name:   "uppercase repair type is not normalized here",
			modify: func(r *model.JoinedAssetRow) { r.RepairType = strPtr("Routine") },
			field:  "repair_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validJoinedRow()
			tt.modify(&row)

			_, err := model.NewAssetRecord(row)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidInput)

			var invalid *model.InvalidInputError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestNewAssetRecord_AgeAboveScoringBoundIsAccepted(t *testing.T) {
	row := validJoinedRow()
	row.AgeYears = 62

	// Construction holds the record; the scoring bound is enforced when ranking.
	record, err := model.NewAssetRecord(row)
	require.NoError(t, err)
	assert.Equal(t, 62.0, record.AgeYears())
}

func TestReconstructAssetRecord_SkipsValidation(t *testing.T) {
	record := model.ReconstructAssetRecord("PIPE-009", 9, -1, false, -5, valueobject.RepairType{})

	assert.Equal(t, "PIPE-009", record.Identifier())
	assert.Equal(t, 9, record.CorrosionLevel())
	assert.Equal(t, -1, record.DeformationLevel())
	assert.Equal(t, -5.0, record.AgeYears())
	assert.True(t, record.RepairType().IsZero())
}
