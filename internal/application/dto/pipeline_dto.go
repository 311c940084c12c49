package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrorPolicy selects how a run treats a record that fails validation or
// scoring: skip drops the record into the reject table and continues, abort
// fails the whole run on the first bad record.
type ErrorPolicy string

const (
	ErrorPolicySkip  ErrorPolicy = "skip"
	ErrorPolicyAbort ErrorPolicy = "abort"
)

// ErrorPolicyFromString parses an error policy. The empty string selects the
// skip default.
func ErrorPolicyFromString(s string) (ErrorPolicy, error) {
	switch s {
	case "", string(ErrorPolicySkip):
		return ErrorPolicySkip, nil
	case string(ErrorPolicyAbort):
		return ErrorPolicyAbort, nil
	default:
		return "", fmt.Errorf("invalid error policy: %s", s)
	}
}

// RunPipelineRequest is the input DTO for the RunPipeline use case.
type RunPipelineRequest struct {
	ErrorPolicy  ErrorPolicy `json:"error_policy"`
	ScoreWorkers int         `json:"score_workers"`
}

// RunReport is the output DTO summarizing one completed pipeline run.
type RunReport struct {
	StartedAt         time.Time     `json:"started_at"`
	CompletedAt       time.Time     `json:"completed_at"`
	RunID             uuid.UUID     `json:"run_id"`
	Duration          time.Duration `json:"duration"`
	RecordsExtracted  int           `json:"records_extracted"`
	RecordsScored     int           `json:"records_scored"`
	RecordsRejected   int           `json:"records_rejected"`
	FailuresDetected  int           `json:"failures_detected"`
	OrphanInspections int           `json:"orphan_inspections"`
	OrphanLeaks       int           `json:"orphan_leaks"`
	OrphanRepairs     int           `json:"orphan_repairs"`
}
