package ports

import "maersk-tracker/internal/features/input/domain"

// TableReader loads one tabular file format.
type TableReader interface {
	// Supports returns true when the reader handles the given lowercase
	// file extension (including the leading dot).
	Supports(ext string) bool
	// Read parses the file at path into a Table.
	Read(path string) (domain.Table, error)
}
