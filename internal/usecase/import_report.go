package usecase

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/bytedance/sonic"
)

// WriteUnresolvedReport writes rows as indented JSON. Nothing is written
// when rows is empty; written reports whether a file was produced.
func WriteUnresolvedReport(path string, rows []UnresolvedRow) (written bool, err error) {
	if len(rows) == 0 {
		return false, nil
	}

	encoded, err := sonic.ConfigStd.MarshalIndent(rows, "", "  ")
	if err != nil {
		return false, fmt.Errorf("encode unresolved report: %w", err)
	}
	if err := writeReportFile(path, encoded); err != nil {
		return false, err
	}
	return true, nil
}

// FailedRow is a squad-import row that could not be imported.
type FailedRow struct {
	Row    int
	Reason string
	Cells  map[string]string
}

// WriteFailureReport writes failures as CSV with a row, reason and one
// column per source header that appeared in any failed row.
func WriteFailureReport(path string, failures []FailedRow) (written bool, err error) {
	if len(failures) == 0 {
		return false, nil
	}

	headerSet := make(map[string]struct{})
	for _, item := range failures {
		for header := range item.Cells {
			headerSet[header] = struct{}{}
		}
	}
	headers := make([]string, 0, len(headerSet))
	for header := range headerSet {
		headers = append(headers, header)
	}
	slices.Sort(headers)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create report dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("create failure report %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(append([]string{"row", "reason"}, headers...)); err != nil {
		return false, fmt.Errorf("write failure report header: %w", err)
	}
	for _, item := range failures {
		record := make([]string, 0, len(headers)+2)
		record = append(record, strconv.Itoa(item.Row), item.Reason)
		for _, header := range headers {
			record = append(record, item.Cells[header])
		}
		if err := w.Write(record); err != nil {
			return false, fmt.Errorf("write failure report row %d: %w", item.Row, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return false, fmt.Errorf("flush failure report: %w", err)
	}
	return true, nil
}

func writeReportFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
