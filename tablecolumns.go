package datatable

// SelectColumnView returns source with an additional last column
// titled title with a bool cell per row that is true
// for the rows contained in selection.
// Use SelectColumnID as ID of the added column.
func SelectColumnView(source View, title string, selection RowSelection) View {
	selected := make([]bool, source.NumRows())
	for _, index := range selection.Indices() {
		if index < len(selected) {
			selected[index] = true
		}
	}
	return ExtraColsView{source, SingleColView(title, selected)}
}

// RowActionsColumnView returns source with an additional last column
// titled title that contains the actions for every row.
// Use RowActionsColumnID as ID of the added column.
func RowActionsColumnView(source View, title string, actions []string) View {
	return ExtraColsAnyValueFuncView(source, []string{title}, func(row, col int) any {
		return actions
	})
}
