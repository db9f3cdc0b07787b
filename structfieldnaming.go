package datatable

import (
	"fmt"
	"reflect"
	"strings"
)

// StructFieldNaming defines how struct fields
// are mapped to column titles as used by View.
//
// nil is a valid value for *StructFieldNaming
// and is equal to the zero value
// which will use all exported struct fields
// with their field name as column title.
type StructFieldNaming struct {
	// Tag is the struct field tag to be used as column title.
	// If Tag is empty, then every struct field will be treated as untagged.
	Tag string
	// Ignore is the title of struct fields
	// that don't get a column.
	Ignore string
	// Untagged will be called with the struct field name to
	// return a title in case the struct field has no tag named Tag.
	// If Untagged is nil, then the struct field name will be used.
	Untagged func(fieldName string) (column string)
}

// String implements the fmt.Stringer interface for StructFieldNaming.
func (n *StructFieldNaming) String() string {
	if n == nil {
		return `StructFieldNaming{Tag: "", Ignore: ""}`
	}
	return fmt.Sprintf("StructFieldNaming{Tag: %#v, Ignore: %#v}", n.Tag, n.Ignore)
}

// StructFieldColumn returns the column title for a struct field.
func (n *StructFieldNaming) StructFieldColumn(structField reflect.StructField) string {
	if n == nil {
		return structField.Name
	}
	if n.Tag != "" {
		if tag, ok := structField.Tag.Lookup(n.Tag); ok {
			if i := strings.IndexByte(tag, ','); i != -1 {
				tag = tag[:i]
			}
			if tag != "" {
				return tag
			}
		}
	}
	if n.Untagged == nil {
		return structField.Name
	}
	return n.Untagged(structField.Name)
}

// IsIgnored returns if the column title is the Ignore title.
func (n *StructFieldNaming) IsIgnored(column string) bool {
	return n != nil && n.Ignore != "" && column == n.Ignore
}

// Columns returns the column titles of the exported
// and not ignored fields of a struct or struct pointer.
func (n *StructFieldNaming) Columns(strct any) []string {
	defs := n.ColumnDefs(reflect.TypeOf(strct))
	columns := make([]string, len(defs))
	for i, def := range defs {
		columns[i] = def.Title
	}
	return columns
}

// ColumnDefs returns a ColumnDef for every exported
// and not ignored field of structType
// with the field name as AccessorKey and the column title as Title.
func (n *StructFieldNaming) ColumnDefs(structType reflect.Type) []ColumnDef {
	defs, _ := n.columnDefsAndFieldIndices(structType)
	return defs
}

func (n *StructFieldNaming) columnDefsAndFieldIndices(structType reflect.Type) (defs []ColumnDef, fieldIndices []int) {
	fields := StructFieldTypes(structType)
	defs = make([]ColumnDef, 0, len(fields))
	for i, field := range fields {
		title := n.StructFieldColumn(field)
		if n.IsIgnored(title) {
			continue
		}
		defs = append(defs, ColumnDef{AccessorKey: field.Name, Title: title})
		fieldIndices = append(fieldIndices, i)
	}
	return defs, fieldIndices
}
