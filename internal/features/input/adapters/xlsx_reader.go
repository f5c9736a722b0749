package adapter

import (
	"fmt"

	"maersk-tracker/internal/features/input/domain"

	"github.com/xuri/excelize/v2"
)

// XLSXReader loads OOXML spreadsheets. Only the first sheet is read.
type XLSXReader struct{}

// NewXLSXReader creates an XLSXReader.
func NewXLSXReader() *XLSXReader {
	return &XLSXReader{}
}

// Supports implements ports.TableReader.
func (r *XLSXReader) Supports(ext string) bool {
	return ext == ".xlsx"
}

// Read implements ports.TableReader.
func (r *XLSXReader) Read(path string) (domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("failed to open xlsx file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain.Table{}, fmt.Errorf("xlsx file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return domain.Table{}, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return domain.Table{}, nil
	}

	return domain.Table{
		Columns: rows[0],
		Rows:    rows[1:],
	}, nil
}
