package adapter

import (
	"encoding/csv"
	"fmt"
	"os"

	"maersk-tracker/internal/features/input/domain"
)

// CSVReader loads delimited text files.
type CSVReader struct{}

// NewCSVReader creates a CSVReader.
func NewCSVReader() *CSVReader {
	return &CSVReader{}
}

// Supports implements ports.TableReader.
func (r *CSVReader) Supports(ext string) bool {
	return ext == ".csv"
}

// Read implements ports.TableReader.
func (r *CSVReader) Read(path string) (domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	// Rows with a trailing empty cell or missing cells are common in
	// hand-edited files; accept them.
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return domain.Table{}, fmt.Errorf("failed to parse csv file: %w", err)
	}
	if len(records) == 0 {
		return domain.Table{}, nil
	}

	return domain.Table{
		Columns: records[0],
		Rows:    records[1:],
	}, nil
}
