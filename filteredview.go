package datatable

var _ View = new(FilteredView)

type FilteredView struct {
	Source View
	// Offset index of the first row from Source, must be positive.
	RowOffset int
	// Limits the number of rows, only used if > 0.
	RowLimit int
	// If not nil then the view has as many
	// columns as ColumnMapping has elements and
	// every element is a column index into the Source view.
	// If nil then the view has as many columns as the Source view.
	ColumnMapping []int
}

// PageView returns a FilteredView with the rows
// of the zero-based page for the passed pageSize.
// A pageSize <= 0 returns all rows as a single page.
func PageView(source View, page, pageSize int) *FilteredView {
	if pageSize <= 0 {
		return &FilteredView{Source: source}
	}
	return &FilteredView{
		Source:    source,
		RowOffset: max(page, 0) * pageSize,
		RowLimit:  pageSize,
	}
}

// NumPages returns the number of pages of pageSize
// needed for numRows, at least 1.
func NumPages(numRows, pageSize int) int {
	if pageSize <= 0 || numRows <= pageSize {
		return 1
	}
	return (numRows + pageSize - 1) / pageSize
}

func (view *FilteredView) Title() string {
	return view.Source.Title()
}

func (view *FilteredView) Columns() []string {
	sourceCols := view.Source.Columns()
	if view.ColumnMapping == nil {
		return sourceCols
	}
	mappedCols := make([]string, len(view.ColumnMapping))
	for i, iSource := range view.ColumnMapping {
		mappedCols[i] = sourceCols[iSource]
	}
	return mappedCols
}

func (view *FilteredView) NumCols() int {
	if view.ColumnMapping != nil {
		return len(view.ColumnMapping)
	}
	return len(view.Source.Columns())
}

func (view *FilteredView) NumRows() int {
	n := view.Source.NumRows() - max(view.RowOffset, 0)
	if n < 0 {
		return 0
	}
	if view.RowLimit > 0 && n > view.RowLimit {
		return view.RowLimit
	}
	return n
}

// SourceRow returns the row index within Source for a row of the view.
func (view *FilteredView) SourceRow(row int) int {
	return row + max(view.RowOffset, 0)
}

func (view *FilteredView) Cell(row, col int) any {
	if row < 0 || col < 0 || row >= view.NumRows() || col >= view.NumCols() {
		return nil
	}
	if view.ColumnMapping != nil {
		col = view.ColumnMapping[col]
	}
	return view.Source.Cell(view.SourceRow(row), col)
}
