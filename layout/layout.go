// Package layout loads the YAML description of a table screen:
// its column definitions, pinned columns, the previously stored
// column order, hidden columns, paging and row actions.
//
// Example layout:
//
//	title: Assets
//	rowIdColumn: id
//	pageSize: 25
//	columns:
//	  - accessorKey: id
//	    title: Asset ID
//	  - accessorKey: purchase_cost
//	order: [select, name, id, row-actions]
//	hidden: [notes]
//	rowActions: [edit, retire]
package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/domonda/go-datatable"
)

// Table is the layout of a table screen.
type Table struct {
	Title string `yaml:"title,omitempty"`
	// Columns override the definitions of the data columns
	// matched by AccessorKey, or add columns by ID.
	Columns []datatable.ColumnDef `yaml:"columns,omitempty"`
	// FixedStart are the pinned start column IDs,
	// nil means datatable.DefaultFixedStartIDs.
	FixedStart []string `yaml:"fixedStart,omitempty"`
	// FixedEnd are the pinned end column IDs,
	// nil means datatable.DefaultFixedEndIDs.
	FixedEnd []string `yaml:"fixedEnd,omitempty"`
	// Order is the column order stored by the user.
	Order []string `yaml:"order,omitempty"`
	// Hidden are the IDs of columns toggled invisible.
	Hidden []string `yaml:"hidden,omitempty"`
	// RowIDColumn is the ID of the column with the row IDs.
	// Without it rows are identified by their content.
	RowIDColumn string `yaml:"rowIdColumn,omitempty"`
	PageSize    int    `yaml:"pageSize,omitempty"`
	// RowActions are rendered in the row-actions column.
	RowActions []string `yaml:"rowActions,omitempty"`
}

// Load parses and validates a YAML layout.
func Load(data []byte) (*Table, error) {
	return Parse(bytes.NewReader(data))
}

// Parse reads and validates a YAML layout.
// Unknown keys are an error.
func Parse(reader io.Reader) (*Table, error) {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	table := new(Table)
	err := decoder.Decode(table)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("can't parse table layout: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// Validate returns an error for duplicate column IDs,
// columns pinned to start and end, or a negative PageSize.
func (t *Table) Validate() error {
	var errs []error
	ids := datatable.ColumnIDs(t.Columns)
	for i, id := range ids {
		if slices.Index(ids, id) != i {
			errs = append(errs, fmt.Errorf("duplicate column ID %q", id))
		}
	}
	for _, id := range t.FixedStart {
		if slices.Contains(t.FixedEnd, id) {
			errs = append(errs, fmt.Errorf("column %q pinned to start and end", id))
		}
	}
	if t.PageSize < 0 {
		errs = append(errs, fmt.Errorf("negative pageSize %d", t.PageSize))
	}
	return errors.Join(errs...)
}

// FixedStartIDs returns FixedStart or datatable.DefaultFixedStartIDs if nil.
func (t *Table) FixedStartIDs() []string {
	if t.FixedStart == nil {
		return datatable.DefaultFixedStartIDs
	}
	return t.FixedStart
}

// FixedEndIDs returns FixedEnd or datatable.DefaultFixedEndIDs if nil.
func (t *Table) FixedEndIDs() []string {
	if t.FixedEnd == nil {
		return datatable.DefaultFixedEndIDs
	}
	return t.FixedEnd
}

// ColumnDefs returns the definitions of the columns of view
// merged with the layout columns having the same AccessorKey.
// Matched columns get the datatable.ColumnTitle of the layout column.
// Layout columns matching no view column are not returned.
func (t *Table) ColumnDefs(view datatable.View) []datatable.ColumnDef {
	defs := datatable.ColumnDefsFromView(view)
	for i, def := range defs {
		for _, override := range t.Columns {
			if override.AccessorKey == "" || override.AccessorKey != def.AccessorKey {
				continue
			}
			if override.ID != "" {
				defs[i].ID = override.ID
			}
			defs[i].Title = datatable.ColumnTitle(override)
		}
	}
	return defs
}

// ColumnOrder returns the reconciled order of the availableIDs
// without the Hidden columns, seeded by previousOrder
// or by the layout Order if previousOrder is empty.
func (t *Table) ColumnOrder(availableIDs, previousOrder []string) []string {
	if len(previousOrder) == 0 {
		previousOrder = t.Order
	}
	return datatable.ReconcileColumnOrder(datatable.ColumnOrderConfig{
		PreviousOrder: previousOrder,
		AvailableIDs:  datatable.VisibleColumnIDs(availableIDs, t.Hidden),
		FixedStartIDs: t.FixedStartIDs(),
		FixedEndIDs:   t.FixedEndIDs(),
	})
}
