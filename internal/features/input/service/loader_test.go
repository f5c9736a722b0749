package service

import (
	"os"
	"path/filepath"
	"testing"

	adapter "maersk-tracker/internal/features/input/adapters"
	"maersk-tracker/internal/features/input/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader() *Loader {
	return NewLoader([]ports.TableReader{
		adapter.NewCSVReader(),
		adapter.NewXLSXReader(),
		adapter.NewXLSReader(),
	})
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoader_Load_RecognizedColumn verifies the documented scenario: an
// "FCR Number" column with empty and "nan" cells.
func TestLoader_Load_RecognizedColumn(t *testing.T) {
	path := writeCSV(t, "FCR Number,Consignee\nABC123,Acme\n,Acme\nDEF456,Acme\nnan,Acme\n")

	ids, err := newTestLoader().Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"ABC123", "DEF456"}, ids)
}

// TestLoader_Load_SubstringColumnMatch verifies the containment heuristics
// pick a non-first column.
func TestLoader_Load_SubstringColumnMatch(t *testing.T) {
	path := writeCSV(t, "Consignee,Customer Booking Ref\nAcme,BK001\nAcme,BK002\n")

	ids, err := newTestLoader().Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"BK001", "BK002"}, ids)
}

// TestLoader_Load_FallbackFirstColumn verifies the first column is selected
// when no header matches the keyword heuristics.
func TestLoader_Load_FallbackFirstColumn(t *testing.T) {
	path := writeCSV(t, "Shipment,Destination\nSH-1,Rotterdam\nSH-2,Antwerp\n")

	ids, err := newTestLoader().Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"SH-1", "SH-2"}, ids)
}

// TestLoader_Load_PreservesOrderAndDuplicates verifies identifiers are not
// deduplicated or reordered.
func TestLoader_Load_PreservesOrderAndDuplicates(t *testing.T) {
	path := writeCSV(t, "fcr\nZ9\nA1\nZ9\n")

	ids, err := newTestLoader().Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"Z9", "A1", "Z9"}, ids)
}

// TestLoader_Load_TrimsWhitespace verifies cells are trimmed before
// filtering.
func TestLoader_Load_TrimsWhitespace(t *testing.T) {
	path := writeCSV(t, "reference\n  ABC123  \n   \nNAN\n")

	ids, err := newTestLoader().Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"ABC123"}, ids)
}

// TestLoader_Load_FileNotFound verifies missing paths fail with
// ErrFileNotFound.
func TestLoader_Load_FileNotFound(t *testing.T) {
	ids, err := newTestLoader().Load(filepath.Join(t.TempDir(), "missing.csv"))

	assert.Nil(t, ids)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

// TestLoader_Load_UnsupportedFormat verifies unknown extensions fail with
// ErrUnsupportedFormat and no partial processing.
func TestLoader_Load_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))

	ids, err := newTestLoader().Load(path)

	assert.Nil(t, ids)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

// TestLoader_Load_HeaderOnly verifies a file with no data rows yields an
// empty sequence without error.
func TestLoader_Load_HeaderOnly(t *testing.T) {
	path := writeCSV(t, "booking\n")

	ids, err := newTestLoader().Load(path)

	require.NoError(t, err)
	assert.Empty(t, ids)
}
