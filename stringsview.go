package datatable

import (
	"fmt"
	"strings"
)

var (
	_ View   = new(StringsView)
	_ Viewer = StringsViewer{}
)

// StringsView is a View implementation that uses strings as cell values.
//
// The Cols field defines the column names and determines the number of columns.
// A row within Rows can have fewer elements than Cols,
// in which case empty strings are returned for the missing cells.
//
// Example:
//
//	view := datatable.NewStringsView(
//	    "Assets",
//	    [][]string{
//	        {"ID", "Name", "Cost"},
//	        {"A-1", "Forklift", "12000"},
//	        {"A-2", "Generator", "3400"},
//	    },
//	)
//	fmt.Println(view.Cell(0, 1)) // Output: Forklift
type StringsView struct {
	Tit  string
	Cols []string
	Rows [][]string
}

// NewStringsView creates a new StringsView.
// If no cols are passed and rows is not empty,
// then the first row is used as column names and removed from the rows.
// All column names are trimmed of leading and trailing whitespace.
func NewStringsView(title string, rows [][]string, cols ...string) *StringsView {
	if len(cols) == 0 && len(rows) > 0 {
		cols = rows[0]
		rows = rows[1:]
	}
	trimmed := make([]string, len(cols))
	for i, col := range cols {
		trimmed[i] = strings.TrimSpace(col)
	}
	return &StringsView{Tit: title, Cols: trimmed, Rows: rows}
}

func (view *StringsView) Title() string     { return view.Tit }
func (view *StringsView) Columns() []string { return view.Cols }
func (view *StringsView) NumRows() int      { return len(view.Rows) }

// Cell returns the string at [row][col],
// an empty string for a missing cell of a shorter row,
// or nil if row or col are out of bounds.
func (view *StringsView) Cell(row, col int) any {
	if row < 0 || col < 0 || row >= len(view.Rows) || col >= len(view.Cols) {
		return nil
	}
	if col >= len(view.Rows[row]) {
		return ""
	}
	return view.Rows[row][col]
}

// StringsViewer creates Views from [][]string tables.
// If Cols is empty then the first row of a table is used as header.
type StringsViewer struct {
	Cols []string
}

func (v StringsViewer) NewView(title string, table any) (View, error) {
	rows, ok := table.([][]string)
	if !ok {
		return nil, fmt.Errorf("expected table of type [][]string, but got %T", table)
	}
	return NewStringsView(title, rows, v.Cols...), nil
}

// HeaderView is a single row View
// that has its column names as cell values.
type HeaderView struct {
	Tit  string
	Cols []string
}

// NewHeaderViewFrom returns a HeaderView with the title and columns of source.
func NewHeaderViewFrom(source View) *HeaderView {
	return &HeaderView{Tit: source.Title(), Cols: source.Columns()}
}

func (view *HeaderView) Title() string     { return view.Tit }
func (view *HeaderView) Columns() []string { return view.Cols }
func (view *HeaderView) NumRows() int      { return 1 }

func (view *HeaderView) Cell(row, col int) any {
	if row != 0 || col < 0 || col >= len(view.Cols) {
		return nil
	}
	return view.Cols[col]
}

// RemoveEmptyStringRows returns rows without
// the rows that only contain empty or whitespace strings.
func RemoveEmptyStringRows(rows [][]string) [][]string {
	result := rows[:0:0]
	for _, row := range rows {
		if !isEmptyStringRow(row) {
			result = append(result, row)
		}
	}
	return result
}

func isEmptyStringRow(row []string) bool {
	for _, str := range row {
		if strings.TrimSpace(str) != "" {
			return false
		}
	}
	return true
}

// RemoveEmptyStringColumns truncates the rows in place to the
// number of columns that have at least one non empty string
// counted from the left and returns that number of columns.
func RemoveEmptyStringColumns(rows [][]string) (numCols int) {
	for _, row := range rows {
		for col := len(row) - 1; col >= numCols; col-- {
			if strings.TrimSpace(row[col]) != "" {
				numCols = col + 1
				break
			}
		}
	}
	for i, row := range rows {
		if len(row) > numCols {
			rows[i] = row[:numCols]
		}
	}
	return numCols
}
