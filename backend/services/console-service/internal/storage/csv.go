package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ParseCSV decodes a header-first CSV stream into rows of named numeric
// fields. Non-numeric cells (timestamps, labels) are skipped; the schema
// check against canonical fields happens later, at the ingestion boundary.
func ParseCSV(r io.Reader) ([]map[string]float64, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows []map[string]float64
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}

		row := make(map[string]float64, len(header))
		for i, cell := range record {
			if i >= len(header) {
				break
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				continue
			}
			row[header[i]] = v
		}
		rows = append(rows, row)
	}

	return rows, nil
}
