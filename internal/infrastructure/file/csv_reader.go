// Package file implements the file formats the converter reads and writes:
// comma-delimited rate sheets in, indented JSON documents out.
package file

import (
	"encoding/csv"
	"fmt"
	"os"
)

// ReadRows reads every row of a comma-delimited file into memory. Rows may
// carry differing field counts; blank lines yield no row.
func ReadRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	return rows, nil
}
