package datatable

// View is the tabular data a table screen renders.
// Columns returns the column titles, Cell the value
// at a zero-based row and column or nil if out of bounds.
type View interface {
	Title() string
	Columns() []string
	NumRows() int
	Cell(row, col int) any
}

// ViewRows returns the row indices of a view
// usable as row type for a Selection.
func ViewRows(view View) []int {
	rows := make([]int, view.NumRows())
	for i := range rows {
		rows[i] = i
	}
	return rows
}
