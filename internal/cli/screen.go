package cli

import (
	"fmt"
	"slices"

	"github.com/domonda/go-datatable"
	"github.com/domonda/go-datatable/layout"
)

// Screen is a page of a table screen with the select
// and row-actions columns in reconciled column order.
type Screen struct {
	Layout *layout.Table
	Page   int
	// NumPages of the whole data with the layout page size.
	NumPages int
	// Columns of the table before ordering,
	// the data columns followed by the synthetic columns.
	Columns []datatable.ColumnDef
	// Order is the reconciled order of the visible column IDs.
	Order []string
	// Selection has the row indices of the page as Data.
	Selection *datatable.Selection[int]
	// RowID returns the ID of a row of the page.
	RowID func(row int) string
	// View is the page with columns in Order.
	View datatable.View
}

// NewScreen returns the page of data described by tableLayout.
// previousOrder overrides the order of the layout if not empty.
func NewScreen(tableLayout *layout.Table, data datatable.View, page int, previousOrder, selectedIDs []string, onToggle func(id string)) (*Screen, error) {
	defs := tableLayout.ColumnDefs(data)
	dataIDs := datatable.ColumnIDs(defs)

	pageView := datatable.PageView(data, page, tableLayout.PageSize)
	rowID := datatable.ContentRowID(pageView)
	if tableLayout.RowIDColumn != "" {
		col := slices.Index(dataIDs, tableLayout.RowIDColumn)
		if col < 0 {
			return nil, fmt.Errorf("row ID column %q not in data columns %v", tableLayout.RowIDColumn, dataIDs)
		}
		rowID = datatable.ColumnRowID(pageView, col)
	}
	selection := datatable.NewSelection(datatable.ViewRows(pageView), selectedIDs, rowID, onToggle)

	selectColumn := datatable.ColumnDef{ID: datatable.SelectColumnID}
	table := datatable.SelectColumnView(
		datatable.ViewWithColumnTitles(pageView, defs),
		datatable.ColumnTitle(selectColumn),
		selection.RowSelection(),
	)
	columns := append(slices.Clip(defs), selectColumn)
	if len(tableLayout.RowActions) > 0 {
		actionsColumn := datatable.ColumnDef{ID: datatable.RowActionsColumnID}
		table = datatable.RowActionsColumnView(table, datatable.ColumnTitle(actionsColumn), tableLayout.RowActions)
		columns = append(columns, actionsColumn)
	}
	ids := datatable.ColumnIDs(columns)
	order := tableLayout.ColumnOrder(ids, previousOrder)

	return &Screen{
		Layout:    tableLayout,
		Page:      page,
		NumPages:  datatable.NumPages(data.NumRows(), tableLayout.PageSize),
		Columns:   columns,
		Order:     order,
		Selection: selection,
		RowID:     rowID,
		View:      datatable.ViewWithColumnOrder(table, ids, order),
	}, nil
}

// ColumnIndex returns the index of the column with id
// within View or -1 if the column is not visible.
func (s *Screen) ColumnIndex(id string) int {
	return slices.Index(s.Order, id)
}
