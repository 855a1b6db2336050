package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"ride-analytics/internal/model"
)

// Read tokenizes CSV input into its ordered header list and a sequence of
// raw rows. Headers are delivered exactly as they appear in the file
// (whitespace padding included); trimming is the normalizer's job. Cell
// values are typed opportunistically: int, then float, then string.
func Read(r io.Reader) ([]string, []model.RawRow, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	headers, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("ingest: read CSV header: %w", err)
	}

	var rows []model.RawRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("ingest: read CSV row: %w", err)
		}

		row := make(model.RawRow, len(headers))
		for i, h := range headers {
			if i >= len(record) {
				row[h] = nil
				continue
			}
			row[h] = parseValue(record[i])
		}
		rows = append(rows, row)
	}

	return headers, rows, nil
}

// ReadFile opens and tokenizes a CSV file.
func ReadFile(path string) ([]string, []model.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// parseValue types a raw cell the way the upstream tokenizer promises:
// number when the cell parses as one, nil for the empty cell, string
// otherwise.
func parseValue(s string) any {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	if i, err := strconv.Atoi(trimmed); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return s
}
