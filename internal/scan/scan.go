// Package scan extracts tyre sizes from bulk input files. CSV files get
// column-aware treatment driven by the configured header hints; anything
// else falls back to a free-text scan.
package scan

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tyrepage/internal/tyresize"
)

// File reads one input file and returns every plausible size found, in
// order of appearance. Unparseable cells are skipped, not errors; only
// I/O failures surface.
func File(path string, columnHints []string) ([]tyresize.TyreSize, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", path, err)
	}
	text := string(raw)
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		return CSV(text, columnHints), nil
	}
	return tyresize.Scan(text), nil
}

// CSV scans spreadsheet rows. If a header cell matches one of the
// column-name hints, only that column is scanned; otherwise every cell
// is. Malformed CSV degrades to a free-text scan of the whole content
// rather than failing the file.
func CSV(raw string, columnHints []string) []tyresize.TyreSize {
	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil || len(rows) == 0 {
		return tyresize.Scan(raw)
	}

	col := hintColumn(rows[0], columnHints)
	var out []tyresize.TyreSize
	if col >= 0 {
		for _, row := range rows[1:] {
			if col < len(row) {
				out = append(out, tyresize.Scan(row[col])...)
			}
		}
		return out
	}
	for _, row := range rows {
		for _, cell := range row {
			out = append(out, tyresize.Scan(cell)...)
		}
	}
	return out
}

func hintColumn(header []string, hints []string) int {
	for i, cell := range header {
		cell = strings.ToLower(strings.TrimSpace(cell))
		for _, h := range hints {
			if cell == h {
				return i
			}
		}
	}
	return -1
}
