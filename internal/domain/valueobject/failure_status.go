package valueobject

import "fmt"

// FailureStatusThreshold is the summed-rank value above which an asset is
// classified as failing. A sum of exactly this value stays healthy.
const FailureStatusThreshold = 10

// FailureStatus is an immutable value object for the binary failure
// classification of an asset.
type FailureStatus struct {
	value string
}

var (
	FailureStatusHealthy = FailureStatus{value: "healthy"}
	FailureStatusFailing = FailureStatus{value: "failing"}
)

// FailureStatusFromString reconstructs a FailureStatus from its string representation.
func FailureStatusFromString(s string) (FailureStatus, error) {
	switch s {
	case "healthy":
		return FailureStatusHealthy, nil
	case "failing":
		return FailureStatusFailing, nil
	default:
		return FailureStatus{}, fmt.Errorf("invalid failure status: %s", s)
	}
}

// FailureStatusFromInt reconstructs a FailureStatus from its persisted flag.
func FailureStatusFromInt(v int) (FailureStatus, error) {
	switch v {
	case 0:
		return FailureStatusHealthy, nil
	case 1:
		return FailureStatusFailing, nil
	default:
		return FailureStatus{}, fmt.Errorf("invalid failure status flag: %d", v)
	}
}

// FailureStatusFromSummedRank determines the status from a summed rank.
func FailureStatusFromSummedRank(sum int) FailureStatus {
	if sum > FailureStatusThreshold {
		return FailureStatusFailing
	}
	return FailureStatusHealthy
}

// String returns the string representation.
func (f FailureStatus) String() string {
	return f.value
}

// Int returns the persisted flag for this status. healthy=0, failing=1.
func (f FailureStatus) Int() int {
	if f.value == "failing" {
		return 1
	}
	return 0
}

// IsZero returns true if the FailureStatus has not been set.
func (f FailureStatus) IsZero() bool {
	return f.value == ""
}

// IsFailing returns true if the status is failing.
func (f FailureStatus) IsFailing() bool {
	return f.value == "failing"
}

// Equal checks equality with another FailureStatus.
func (f FailureStatus) Equal(other FailureStatus) bool {
	return f.value == other.value
}
