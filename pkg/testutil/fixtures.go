package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// Fixed UUIDs for deterministic testing
var (
	TestRunID1 = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	TestRunID2 = uuid.MustParse("00000000-0000-0000-0000-000000000002")
)

// WriteCSV writes rows (header first) as a CSV file under dir and returns its path.
func WriteCSV(t *testing.T, dir, name string, rows [][]string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("failed to flush fixture %s: %v", path, err)
	}

	return path
}

// WriteSourceTables writes a consistent set of the four source CSVs under dir.
// The five assets cover both failure outcomes, including the sum-of-exactly-10
// boundary, which stays healthy.
func WriteSourceTables(t *testing.T, dir string) (assets, inspections, leaks, repairs string) {
	t.Helper()

	assets = WriteCSV(t, dir, "assets.csv", [][]string{
		{"asset_id", "age_years"},
		{"PIPE-001", "39"},
		{"PIPE-002", "32"},
		{"PIPE-003", "27"},
		{"PIPE-004", "8"},
		{"PIPE-005", "45"},
	})
	inspections = WriteCSV(t, dir, "inspections.csv", [][]string{
		{"asset_id", "corrosion_level", "deformation_level"},
		{"PIPE-001", "4", "2"},
		{"PIPE-002", "1", "0"},
		{"PIPE-003", "3", "3"},
		{"PIPE-004", "0", "1"},
		{"PIPE-005", "2", "1"},
	})
	leaks = WriteCSV(t, dir, "leaks.csv", [][]string{
		{"asset_id", "leak_detected"},
		{"PIPE-001", "true"},
		{"PIPE-002", "false"},
		{"PIPE-003", "false"},
		{"PIPE-004", "false"},
		{"PIPE-005", "false"},
	})
	repairs = WriteCSV(t, dir, "repairs.csv", [][]string{
		{"asset_id", "repair_type"},
		{"PIPE-001", "preventive"},
		{"PIPE-002", "routine"},
		{"PIPE-003", "routine"},
		{"PIPE-004", "routine"},
		{"PIPE-005", "routine"},
	})

	return assets, inspections, leaks, repairs
}
