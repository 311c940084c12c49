package csv

import (
	"context"
	stdcsv "encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/model"
	"github.com/Judithokon/sparkETL-failure-detection-and-postgres-integration/internal/domain/port"
)

// Source implements port.AssetSource over four CSV files. Every file carries
// a header row and columns are matched by name, so column order does not
// matter and unknown columns are ignored. A cell that cannot be parsed into
// its declared type fails the extraction; values that parse but fall outside
// their domain are left for record validation to judge.
type Source struct {
	assetsPath      string
	inspectionsPath string
	leaksPath       string
	repairsPath     string
}

var _ port.AssetSource = (*Source)(nil)

// NewSource creates a CSV-backed asset source.
func NewSource(assetsPath, inspectionsPath, leaksPath, repairsPath string) *Source {
	return &Source{
		assetsPath:      assetsPath,
		inspectionsPath: inspectionsPath,
		leaksPath:       leaksPath,
		repairsPath:     repairsPath,
	}
}

// Assets reads the asset master table.
func (s *Source) Assets(ctx context.Context) ([]model.AssetRow, error) {
	table, err := openTable(s.assetsPath, "asset_id", "age_years")
	if err != nil {
		return nil, err
	}
	defer table.Close()

	var rows []model.AssetRow
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := table.next()
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return rows, nil
		}
		age, err := table.parseFloat(rec, "age_years")
		if err != nil {
			return nil, err
		}
		rows = append(rows, model.AssetRow{
			AssetID:  table.field(rec, "asset_id"),
			AgeYears: age,
		})
	}
}

// Inspections reads the inspection findings table.
func (s *Source) Inspections(ctx context.Context) ([]model.InspectionRow, error) {
	table, err := openTable(s.inspectionsPath, "asset_id", "corrosion_level", "deformation_level")
	if err != nil {
		return nil, err
	}
	defer table.Close()

	var rows []model.InspectionRow
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := table.next()
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return rows, nil
		}
		corrosion, err := table.parseInt(rec, "corrosion_level")
		if err != nil {
			return nil, err
		}
		deformation, err := table.parseInt(rec, "deformation_level")
		if err != nil {
			return nil, err
		}
		rows = append(rows, model.InspectionRow{
			AssetID:          table.field(rec, "asset_id"),
			CorrosionLevel:   corrosion,
			DeformationLevel: deformation,
		})
	}
}

// Leaks reads the leak detection table.
func (s *Source) Leaks(ctx context.Context) ([]model.LeakRow, error) {
	table, err := openTable(s.leaksPath, "asset_id", "leak_detected")
	if err != nil {
		return nil, err
	}
	defer table.Close()

	var rows []model.LeakRow
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := table.next()
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return rows, nil
		}
		leak, err := table.parseBool(rec, "leak_detected")
		if err != nil {
			return nil, err
		}
		rows = append(rows, model.LeakRow{
			AssetID:      table.field(rec, "asset_id"),
			LeakDetected: leak,
		})
	}
}

// Repairs reads the repair history table. Repair types are lowercased and
// trimmed here so the domain only ever sees canonical spellings.
func (s *Source) Repairs(ctx context.Context) ([]model.RepairRow, error) {
	table, err := openTable(s.repairsPath, "asset_id", "repair_type")
	if err != nil {
		return nil, err
	}
	defer table.Close()

	var rows []model.RepairRow
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := table.next()
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return rows, nil
		}
		rows = append(rows, model.RepairRow{
			AssetID:    table.field(rec, "asset_id"),
			RepairType: strings.ToLower(table.field(rec, "repair_type")),
		})
	}
}

// tableReader wraps a CSV reader with header-based column lookup and
// line-numbered parse errors.
type tableReader struct {
	file   *os.File
	reader *stdcsv.Reader
	cols   map[string]int
	path   string
	line   int
}

func openTable(path string, required ...string) (*tableReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source table: %w", err)
	}

	r := stdcsv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: read header: %w", path, err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			f.Close()
			return nil, fmt.Errorf("%s: missing column %q", path, name)
		}
	}

	return &tableReader{file: f, reader: r, cols: cols, path: path, line: 1}, nil
}

func (t *tableReader) Close() error {
	return t.file.Close()
}

// next returns the following data row, or nil at end of file.
func (t *tableReader) next() ([]string, error) {
	rec, err := t.reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.path, err)
	}
	t.line++
	return rec, nil
}

func (t *tableReader) field(rec []string, name string) string {
	return strings.TrimSpace(rec[t.cols[name]])
}

func (t *tableReader) parseInt(rec []string, name string) (int, error) {
	n, err := strconv.Atoi(t.field(rec, name))
	if err != nil {
		return 0, fmt.Errorf("%s line %d: column %s: %w", t.path, t.line, name, err)
	}
	return n, nil
}

func (t *tableReader) parseFloat(rec []string, name string) (float64, error) {
	f, err := strconv.ParseFloat(t.field(rec, name), 64)
	if err != nil {
		return 0, fmt.Errorf("%s line %d: column %s: %w", t.path, t.line, name, err)
	}
	return f, nil
}

func (t *tableReader) parseBool(rec []string, name string) (bool, error) {
	b, err := strconv.ParseBool(t.field(rec, name))
	if err != nil {
		return false, fmt.Errorf("%s line %d: column %s: %w", t.path, t.line, name, err)
	}
	return b, nil
}
