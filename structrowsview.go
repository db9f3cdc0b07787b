package datatable

import (
	"fmt"
	"reflect"
)

var (
	_ View   = new(StructRowsView)
	_ Viewer = new(StructRowsViewer)
)

// StructRowsViewer creates Views from slices or arrays
// of structs or struct pointers using StructFieldNaming
// to map the exported struct fields to columns.
type StructRowsViewer struct {
	StructFieldNaming
}

func (v *StructRowsViewer) NewView(title string, table any) (View, error) {
	rows := reflect.ValueOf(table)
	for rows.Kind() == reflect.Ptr && !rows.IsNil() {
		rows = rows.Elem()
	}
	if rows.Kind() != reflect.Slice && rows.Kind() != reflect.Array {
		return nil, fmt.Errorf("table must be slice or array kind but is %T", table)
	}
	structType := rows.Type().Elem()
	if structType.Kind() == reflect.Ptr {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("row type must be a struct but is %s", structType)
	}
	defs, fieldIndices := v.columnDefsAndFieldIndices(structType)
	columns := make([]string, len(defs))
	for i, def := range defs {
		columns[i] = def.Title
	}
	return &StructRowsView{
		title:        title,
		columns:      columns,
		defs:         defs,
		fieldIndices: fieldIndices,
		rows:         rows,
		cachedRow:    -1,
	}, nil
}

// StructRowsView is a View of a slice of structs.
// It caches the field values of the last accessed row
// and is therefore not safe for concurrent use.
type StructRowsView struct {
	title        string
	columns      []string
	defs         []ColumnDef
	fieldIndices []int         // column index to StructFieldValues index
	rows         reflect.Value // slice of structs

	cachedRow    int
	cachedValues []reflect.Value
}

func (view *StructRowsView) Title() string     { return view.title }
func (view *StructRowsView) Columns() []string { return view.columns }
func (view *StructRowsView) NumRows() int      { return view.rows.Len() }

// ColumnDefs returns the column definitions
// with the struct field names as AccessorKey.
func (view *StructRowsView) ColumnDefs() []ColumnDef { return view.defs }

// Row returns the struct value of a row as any
// or nil if row is out of bounds.
func (view *StructRowsView) Row(row int) any {
	if row < 0 || row >= view.rows.Len() {
		return nil
	}
	return view.rows.Index(row).Interface()
}

func (view *StructRowsView) Cell(row, col int) any {
	if row < 0 || col < 0 || row >= view.rows.Len() || col >= len(view.columns) {
		return nil
	}
	if row != view.cachedRow {
		view.cachedRow = row
		view.cachedValues = nil
		rowVal := view.rows.Index(row)
		if rowVal.Kind() == reflect.Ptr && rowVal.IsNil() {
			return nil
		}
		view.cachedValues = StructFieldValues(rowVal)
	}
	if view.cachedValues == nil {
		return nil
	}
	val := view.cachedValues[view.fieldIndices[col]]
	if ValueIsNil(val) {
		return nil
	}
	return val.Interface()
}
