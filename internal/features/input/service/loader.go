package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"maersk-tracker/internal/core/logger"
	"maersk-tracker/internal/features/input/domain"
	"maersk-tracker/internal/features/input/ports"

	"go.uber.org/zap"
)

var (
	// ErrFileNotFound is returned when the input path does not exist.
	ErrFileNotFound = errors.New("input file not found")
	// ErrUnsupportedFormat is returned for file extensions no reader handles.
	ErrUnsupportedFormat = errors.New("unsupported input format")
)

// exactColumnNames are header names matched case-insensitively as a whole.
var exactColumnNames = []string{
	"fcr_number", "fcr number", "fcr",
	"booking_number", "booking",
	"reference", "container", "number",
}

// containsTerms match a header when contained anywhere in its name.
var containsTerms = []string{"fcr", "booking", "reference"}

// Loader reads shipment identifiers from tabular input files. Format is
// dispatched by file extension to the configured readers.
type Loader struct {
	readers []ports.TableReader
	logger  *zap.Logger
}

// NewLoader creates a Loader with the given format readers.
func NewLoader(readers []ports.TableReader) *Loader {
	return &Loader{
		readers: readers,
		logger:  logger.Get(),
	}
}

// Load reads the file at path and returns the cleaned identifier sequence in
// original row order. Duplicates are preserved.
func (l *Loader) Load(path string) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	ext := strings.ToLower(filepath.Ext(path))

	var reader ports.TableReader
	for _, r := range l.readers {
		if r.Supports(ext) {
			reader = r
			break
		}
	}
	if reader == nil {
		return nil, fmt.Errorf("%w: %s (supported: .csv, .xlsx, .xls)", ErrUnsupportedFormat, ext)
	}

	table, err := reader.Read(path)
	if err != nil {
		return nil, err
	}

	l.logger.Info("Input file loaded",
		zap.String("path", path),
		zap.Int("rows", len(table.Rows)),
		zap.Strings("columns", table.Columns),
	)

	col := l.selectColumn(table.Columns)
	identifiers := extractIdentifiers(table, col)

	l.logger.Info("Identifiers extracted", zap.Int("count", len(identifiers)))
	return identifiers, nil
}

// selectColumn scans the header for a known identifier column name. When no
// header matches, the first column is selected and a warning is emitted.
func (l *Loader) selectColumn(columns []string) int {
	for i, name := range columns {
		lower := strings.ToLower(strings.TrimSpace(name))
		for _, exact := range exactColumnNames {
			if lower == exact {
				l.logger.Info("Using identifier column", zap.String("column", name))
				return i
			}
		}
		for _, term := range containsTerms {
			if strings.Contains(lower, term) {
				l.logger.Info("Using identifier column", zap.String("column", name))
				return i
			}
		}
	}

	fallback := ""
	if len(columns) > 0 {
		fallback = columns[0]
	}
	l.logger.Warn("No identifier column recognized, using first column",
		zap.String("column", fallback),
	)
	return 0
}

// extractIdentifiers trims cells, drops empties and the literal "nan", and
// preserves row order.
func extractIdentifiers(table domain.Table, col int) []string {
	var out []string
	for i := range table.Rows {
		v := strings.TrimSpace(table.Cell(i, col))
		if v == "" || strings.EqualFold(v, "nan") {
			continue
		}
		out = append(out, v)
	}
	return out
}
