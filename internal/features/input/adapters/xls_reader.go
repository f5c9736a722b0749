package adapter

import (
	"fmt"

	"maersk-tracker/internal/features/input/domain"

	"github.com/extrame/xls"
)

// XLSReader loads legacy BIFF spreadsheets. Only the first sheet is read.
type XLSReader struct{}

// NewXLSReader creates an XLSReader.
func NewXLSReader() *XLSReader {
	return &XLSReader{}
}

// Supports implements ports.TableReader.
func (r *XLSReader) Supports(ext string) bool {
	return ext == ".xls"
}

// Read implements ports.TableReader.
func (r *XLSReader) Read(path string) (domain.Table, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return domain.Table{}, fmt.Errorf("failed to open xls file: %w", err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return domain.Table{}, fmt.Errorf("xls file has no sheets")
	}

	var rows [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		var cells []string
		for j := 0; j <= row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return domain.Table{}, nil
	}

	return domain.Table{
		Columns: rows[0],
		Rows:    rows[1:],
	}, nil
}
