package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeXLSX(t *testing.T, cells map[string]string) string {
	t.Helper()
	f := excelize.NewFile()
	for ref, v := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", ref, v))
	}
	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// TestXLSXReader_Supports verifies extension dispatch.
func TestXLSXReader_Supports(t *testing.T) {
	r := NewXLSXReader()

	assert.True(t, r.Supports(".xlsx"))
	assert.False(t, r.Supports(".xls"))
	assert.False(t, r.Supports(".csv"))
}

// TestXLSXReader_Read verifies the first sheet is read with the first row
// as the header.
func TestXLSXReader_Read(t *testing.T) {
	path := writeXLSX(t, map[string]string{
		"A1": "FCR Number",
		"B1": "Consignee",
		"A2": "ABC123",
		"B2": "Acme",
		"A3": "DEF456",
	})

	table, err := NewXLSXReader().Read(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"FCR Number", "Consignee"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "ABC123", table.Cell(0, 0))
	assert.Equal(t, "DEF456", table.Cell(1, 0))
	// Row 3 has no B cell; Cell must degrade to empty.
	assert.Equal(t, "", table.Cell(1, 1))
}

// TestXLSXReader_Read_InvalidFile verifies a corrupt file surfaces a
// descriptive error.
func TestXLSXReader_Read_InvalidFile(t *testing.T) {
	path := writeXLSX(t, nil)
	table, err := NewXLSXReader().Read(path)
	require.NoError(t, err)
	assert.Empty(t, table.Rows)

	_, err = NewXLSXReader().Read(filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open xlsx file")
}
