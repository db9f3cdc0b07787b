package datatable

// ViewWithTitle returns a View that wraps source
// but returns the passed title.
func ViewWithTitle(source View, title string) View {
	return viewWithTitle{source: source, title: title}
}

type viewWithTitle struct {
	source View
	title  string
}

func (v viewWithTitle) Title() string     { return v.title }
func (v viewWithTitle) Columns() []string { return v.source.Columns() }
func (v viewWithTitle) NumRows() int      { return v.source.NumRows() }

func (v viewWithTitle) Cell(row, col int) any {
	return v.source.Cell(row, col)
}

// ViewWithColumnTitles returns a View that wraps source
// but returns ColumnTitle of the passed columns as column titles.
// columns must have the same length as the columns of source.
func ViewWithColumnTitles(source View, columns []ColumnDef) View {
	titles := make([]string, len(columns))
	for i, column := range columns {
		titles[i] = ColumnTitle(column)
	}
	return viewWithColumns{View: source, columns: titles}
}

type viewWithColumns struct {
	View
	columns []string
}

func (v viewWithColumns) Columns() []string { return v.columns }
