package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/valueobject"
)

func TestFailureStatus_FromSummedRank(t *testing.T) {
	tests := []struct {
		name     string
		expected valueobject.FailureStatus
		sum      int
	}{
		{name: "minimum sum 3 is healthy", expected: valueobject.FailureStatusHealthy, sum: 3},
		{name: "sum 7 is healthy", expected: valueobject.FailureStatusHealthy, sum: 7},
		{name: "sum 9 is healthy", expected: valueobject.FailureStatusHealthy, sum: 9},
		{name: "sum exactly 10 stays healthy", expected: valueobject.FailureStatusHealthy, sum: 10},
		{name: "sum 11 is failing", expected: valueobject.FailureStatusFailing, sum: 11},
		{name: "sum 14 is failing", expected: valueobject.FailureStatusFailing, sum: 14},
		{name: "maximum sum 20 is failing", expected: valueobject.FailureStatusFailing, sum: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := valueobject.FailureStatusFromSummedRank(tt.sum)
			assert.True(t, tt.expected.Equal(result),
				"expected %s for sum %d, got %s", tt.expected.String(), tt.sum, result.String())
		})
	}
}

func TestFailureStatus_Int(t *testing.T) {
	assert.Equal(t, 0, valueobject.FailureStatusHealthy.Int())
	assert.Equal(t, 1, valueobject.FailureStatusFailing.Int())
}

func TestFailureStatus_FromInt(t *testing.T) {
	tests := []struct {
		expected valueobject.FailureStatus
		input    int
		wantErr  bool
	}{
		{expected: valueobject.FailureStatusHealthy, input: 0},
		{expected: valueobject.FailureStatusFailing, input: 1},
		{input: 2, wantErr: true},
		{input: -1, wantErr: true},
	}

	for _, tt := range tests {
		result, err := valueobject.FailureStatusFromInt(tt.input)
		if tt.wantErr {
			require.Error(t, err)
		} else {
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(result))
		}
	}
}

func TestFailureStatus_FromString(t *testing.T) {
	tests := []struct {
		input    string
		expected valueobject.FailureStatus
		wantErr  bool
	}{
		{"healthy", valueobject.FailureStatusHealthy, false},
		{"failing", valueobject.FailureStatusFailing, false},
		{"FAILING", valueobject.FailureStatus{}, true},
		{"broken", valueobject.FailureStatus{}, true},
		{"", valueobject.FailureStatus{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := valueobject.FailureStatusFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.True(t, tt.expected.Equal(result))
			}
		})
	}
}

func TestFailureStatus_IsFailing(t *testing.T) {
	assert.False(t, valueobject.FailureStatusHealthy.IsFailing())
	assert.True(t, valueobject.FailureStatusFailing.IsFailing())
}

func TestFailureStatus_IsZero(t *testing.T) {
	var zero valueobject.FailureStatus
	assert.True(t, zero.IsZero())
	assert.False(t, valueobject.FailureStatusHealthy.IsZero())
}
