package sheets

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

//csvPath returns the fallback file for a sheet tab
func csvPath(dir, tab string) string {
	return filepath.Join(dir, tab+".csv")
}

//readCSV reads a fallback file as a cell grid (header row first)
func readCSV(dir, tab string) ([][]string, error) {
	f, err := os.Open(csvPath(dir, tab))
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return rows, nil
}

//writeCSV rewrites a fallback file with the given cell grid
func writeCSV(dir, tab string, rows [][]string) error {
	f, err := os.Create(csvPath(dir, tab))
	if err != nil {
		return fmt.Errorf("failed to create csv: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("failed to write csv: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return f.Close()
}
