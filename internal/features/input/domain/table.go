package domain

// Table is row-oriented tabular data loaded from an input file. The first
// file row is interpreted as the header.
type Table struct {
	// Columns holds the header names in file order.
	Columns []string
	// Rows holds the data rows. Rows may be ragged; missing cells are
	// treated as empty.
	Rows [][]string
}

// Cell returns the value at the given row and column, or the empty string
// when the row is too short.
func (t Table) Cell(row, col int) string {
	if col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}
