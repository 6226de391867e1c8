package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
)

var csvHeader = []string{"scenario", "algorithm", "avg_waiting", "avg_turnaround", "avg_response"}

// SaveCSV writes rows with the fixed summary columns, creating parent
// directories as needed.
func SaveCSV(path string, rows []Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Scenario,
			r.Algorithm,
			strconv.FormatFloat(r.AvgWaiting, 'f', -1, 64),
			strconv.FormatFloat(r.AvgTurnaround, 'f', -1, 64),
			strconv.FormatFloat(r.AvgResponse, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// LoadCSV reads a summary written by SaveCSV.
func LoadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 || !slices.Equal(records[0], csvHeader) {
		return nil, fmt.Errorf("%s: unexpected header", path)
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		values := make([]float64, 3)
		for j := range values {
			v, err := strconv.ParseFloat(rec[j+2], 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", path, i+2, err)
			}
			values[j] = v
		}
		rows = append(rows, Row{
			Scenario:      rec[0],
			Algorithm:     rec[1],
			AvgWaiting:    values[0],
			AvgTurnaround: values[1],
			AvgResponse:   values[2],
		})
	}
	return rows, nil
}
