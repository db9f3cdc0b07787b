package datatable

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ColumnDef defines a column of a table screen.
//
// The identity of a column is its ID, or its AccessorKey if ID is empty,
// or its position as fallback, see ResolveColumnID.
type ColumnDef struct {
	// ID explicitly identifies the column.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
	// AccessorKey names the row field the column displays.
	AccessorKey string `json:"accessorKey,omitempty" yaml:"accessorKey,omitempty"`
	// Title is the header text of the column.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// ResolveColumnID returns the ID of the column if not empty,
// else the AccessorKey if not empty,
// else "col-" followed by the passed index.
func ResolveColumnID(column ColumnDef, index int) string {
	switch {
	case column.ID != "":
		return column.ID
	case column.AccessorKey != "":
		return column.AccessorKey
	default:
		return "col-" + strconv.Itoa(index)
	}
}

// ColumnIDs returns the resolved IDs of all columns.
func ColumnIDs(columns []ColumnDef) []string {
	ids := make([]string, len(columns))
	for i, column := range columns {
		ids[i] = ResolveColumnID(column, i)
	}
	return ids
}

// ColumnDefsFromView returns a ColumnDef for every column of the view
// using the column title as AccessorKey and Title.
// Empty titles result in positional IDs.
func ColumnDefsFromView(view View) []ColumnDef {
	columns := view.Columns()
	defs := make([]ColumnDef, len(columns))
	for i, title := range columns {
		defs[i] = ColumnDef{AccessorKey: title, Title: title}
	}
	return defs
}

// ColumnTitle returns the Title of the column
// or a title cased version of its AccessorKey or ID.
//
//	ColumnTitle(ColumnDef{AccessorKey: "purchase_cost"}) == "Purchase Cost"
//	ColumnTitle(ColumnDef{ID: "serialNumber"}) == "Serial Number"
func ColumnTitle(column ColumnDef) string {
	if column.Title != "" {
		return column.Title
	}
	key := column.AccessorKey
	if key == "" {
		key = column.ID
	}
	key = SpacePascalCase(strings.ReplaceAll(key, "-", "_"))
	// A Caser holds state and must not be shared between goroutines
	return cases.Title(language.Und, cases.NoLower).String(key)
}
