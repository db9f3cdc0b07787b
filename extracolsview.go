package datatable

var _ View = ExtraColsView(nil)

// ExtraColsView horizontally concatenates multiple Views
// without copying their data.
//
// The resulting view has as many rows as the longest View,
// cells of shorter views are nil for the extra rows.
// The title is taken from the first view.
//
//	ExtraColsView{view1, view2}
//	Columns: [view1.col0, view1.col1, view2.col0]
type ExtraColsView []View

func (e ExtraColsView) Title() string {
	if len(e) == 0 {
		return ""
	}
	return e[0].Title()
}

func (e ExtraColsView) Columns() []string {
	var columns []string
	for _, view := range e {
		columns = append(columns, view.Columns()...)
	}
	return columns
}

// NumRows returns the maximum row count across all Views.
func (e ExtraColsView) NumRows() int {
	maxNumRows := 0
	for _, view := range e {
		maxNumRows = max(maxNumRows, view.NumRows())
	}
	return maxNumRows
}

func (e ExtraColsView) Cell(row, col int) any {
	if row < 0 || col < 0 {
		return nil
	}
	colLeft := 0
	for _, view := range e {
		colRight := colLeft + len(view.Columns())
		if col < colRight {
			return view.Cell(row, col-colLeft)
		}
		colLeft = colRight
	}
	return nil
}

// ExtraColsAnyValueFuncView returns a View with the columns of left
// followed by the passed columns whose cells are computed by anyValue
// with col counted from the first extra column.
func ExtraColsAnyValueFuncView(left View, columns []string, anyValue func(row, col int) any) View {
	return &extraColsFuncView{
		left:     left,
		columns:  columns,
		anyValue: anyValue,
	}
}

type extraColsFuncView struct {
	left     View
	columns  []string
	anyValue func(row, col int) any
}

func (e *extraColsFuncView) Title() string { return e.left.Title() }
func (e *extraColsFuncView) NumRows() int  { return e.left.NumRows() }

func (e *extraColsFuncView) Columns() []string {
	left := e.left.Columns()
	columns := make([]string, 0, len(left)+len(e.columns))
	columns = append(columns, left...)
	return append(columns, e.columns...)
}

func (e *extraColsFuncView) Cell(row, col int) any {
	if row < 0 || col < 0 || row >= e.NumRows() {
		return nil
	}
	numLeftCols := len(e.left.Columns())
	if col < numLeftCols {
		return e.left.Cell(row, col)
	}
	if col-numLeftCols >= len(e.columns) {
		return nil
	}
	return e.anyValue(row, col-numLeftCols)
}
