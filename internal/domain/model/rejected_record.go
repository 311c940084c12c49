package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RejectReason classifies why a record was rejected.
type RejectReason string

const (
	RejectReasonInvalidInput RejectReason = "invalid_input"
	RejectReasonMissingField RejectReason = "missing_field"
)

// RejectedRecord captures a source record that failed validation or scoring
// under the skip policy, so a run leaves an auditable trail of what it dropped.
type RejectedRecord struct {
	RunID      uuid.UUID
	AssetID    string
	Reason     RejectReason
	Field      string
	Value      string
	Message    string
	RejectedAt time.Time
}

// NewRejectedRecord builds a RejectedRecord from a record-level error,
// extracting the offending field and value from the typed error.
func NewRejectedRecord(runID uuid.UUID, assetID string, cause error, rejectedAt time.Time) RejectedRecord {
	rejected := RejectedRecord{
		RunID:      runID,
		AssetID:    assetID,
		Message:    cause.Error(),
		RejectedAt: rejectedAt,
	}

	var invalid *InvalidInputError
	var missing *MissingFieldError
	switch {
	case errors.As(cause, &invalid):
		rejected.Reason = RejectReasonInvalidInput
		rejected.Field = invalid.Field
		rejected.Value = fmt.Sprintf("%v", invalid.Value)
	case errors.As(cause, &missing):
		rejected.Reason = RejectReasonMissingField
		rejected.Field = missing.Field
	default:
		rejected.Reason = RejectReasonInvalidInput
	}

	return rejected
}
