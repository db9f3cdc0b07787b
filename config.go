package datatable

const (
	// SelectColumnID is the id of the row selection checkbox column.
	SelectColumnID = "select"

	// RowActionsColumnID is the id of the per row actions column.
	RowActionsColumnID = "row-actions"
)

var (
	// DefaultFixedStartIDs are the column ids pinned to the start
	// of a column order if ColumnOrderConfig.FixedStartIDs is nil.
	DefaultFixedStartIDs = []string{SelectColumnID}

	// DefaultFixedEndIDs are the column ids pinned to the end
	// of a column order if ColumnOrderConfig.FixedEndIDs is nil.
	DefaultFixedEndIDs = []string{RowActionsColumnID}

	// DefaultStructFieldNaming provides the default StructFieldNaming
	// using "col" as title tag, ignores "-" titled fields,
	// and uses SpacePascalCase for untagged fields.
	DefaultStructFieldNaming = StructFieldNaming{
		Tag:      "col",
		Ignore:   "-",
		Untagged: SpacePascalCase,
	}

	// DefaultStructRowsViewer provides the default StructRowsViewer
	// using DefaultStructFieldNaming.
	DefaultStructRowsViewer = &StructRowsViewer{
		StructFieldNaming: DefaultStructFieldNaming,
	}

	// SelectViewer selects the best matching Viewer implementation
	// for the passed table type.
	// By default it returns a StringsViewer for a [][]string table,
	// the table itself if it already is a View,
	// and the DefaultStructRowsViewer for all other cases.
	SelectViewer = func(table any) (Viewer, error) {
		switch table.(type) {
		case [][]string:
			return new(StringsViewer), nil
		case View:
			return identityViewer{}, nil
		}
		return DefaultStructRowsViewer, nil
	}
)

type identityViewer struct{}

func (identityViewer) NewView(title string, table any) (View, error) {
	view := table.(View)
	if title == "" || title == view.Title() {
		return view, nil
	}
	return ViewWithTitle(view, title), nil
}
