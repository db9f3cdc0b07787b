package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domonda/go-datatable"
)

const assetsLayout = `
title: Assets
rowIdColumn: id
pageSize: 25
columns:
  - accessorKey: id
    title: Asset ID
  - accessorKey: purchase_cost
  - id: location
    accessorKey: site
order: [select, name, id, row-actions]
hidden: [notes]
rowActions: [edit, retire]
`

func TestLoad(t *testing.T) {
	table, err := Load([]byte(assetsLayout))
	require.NoError(t, err)
	require.Equal(t, &Table{
		Title: "Assets",
		Columns: []datatable.ColumnDef{
			{AccessorKey: "id", Title: "Asset ID"},
			{AccessorKey: "purchase_cost"},
			{ID: "location", AccessorKey: "site"},
		},
		Order:       []string{"select", "name", "id", "row-actions"},
		Hidden:      []string{"notes"},
		RowIDColumn: "id",
		PageSize:    25,
		RowActions:  []string{"edit", "retire"},
	}, table)
	require.Equal(t, datatable.DefaultFixedStartIDs, table.FixedStartIDs())
	require.Equal(t, datatable.DefaultFixedEndIDs, table.FixedEndIDs())
}

func TestParse_empty(t *testing.T) {
	table, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, new(Table), table)
}

func TestParse_errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "unknown key", yaml: "title: Assets\ncolumOrder: [a]\n", wantErr: "columOrder"},
		{name: "invalid yaml", yaml: "order: [a\n", wantErr: "can't parse table layout"},
		{name: "duplicate column", yaml: "columns:\n  - id: a\n  - accessorKey: a\n", wantErr: `duplicate column ID "a"`},
		{name: "pinned twice", yaml: "fixedStart: [a]\nfixedEnd: [a]\n", wantErr: `column "a" pinned to start and end`},
		{name: "negative page size", yaml: "pageSize: -1\n", wantErr: "negative pageSize"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.yaml))
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestTable_ColumnDefs(t *testing.T) {
	table, err := Load([]byte(assetsLayout))
	require.NoError(t, err)
	view := datatable.NewStringsView("", nil, "id", "name", "purchase_cost", "site")
	require.Equal(t, []datatable.ColumnDef{
		{AccessorKey: "id", Title: "Asset ID"},
		{AccessorKey: "name", Title: "name"},
		{AccessorKey: "purchase_cost", Title: "Purchase Cost"},
		{ID: "location", AccessorKey: "site", Title: "Site"},
	}, table.ColumnDefs(view))
}

func TestTable_ColumnOrder(t *testing.T) {
	table, err := Load([]byte(assetsLayout))
	require.NoError(t, err)
	available := []string{"select", "id", "name", "notes", "purchase_cost", "row-actions"}

	require.Equal(t,
		[]string{"select", "name", "id", "purchase_cost", "row-actions"},
		table.ColumnOrder(available, nil),
		"stored order of layout with new column appended",
	)
	require.Equal(t,
		[]string{"select", "purchase_cost", "id", "name", "row-actions"},
		table.ColumnOrder(available, []string{"purchase_cost", "id"}),
		"previous order overrides layout order",
	)

	table.FixedStart = []string{}
	require.Equal(t,
		[]string{"name", "id", "select", "purchase_cost", "row-actions"},
		table.ColumnOrder(available, []string{"name", "id", "select"}),
		"no pinned start columns",
	)
}
