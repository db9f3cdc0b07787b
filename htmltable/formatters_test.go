package htmltable

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domonda/go-datatable"
)

func TestCellFormatters(t *testing.T) {
	view := &datatable.AnyValuesView{
		Cols: []string{"value"},
		Rows: [][]any{
			{"<b>x</b>"},
			{true},
			{[]string{"edit", "<retire>"}},
			{`{ "a": [1, 2] }`},
			{nil},
		},
	}
	tests := []struct {
		name      string
		formatter datatable.CellFormatter
		row       int
		want      string
		wantErr   error
	}{
		{name: "pre", formatter: HTMLPreCellFormatter, row: 0, want: "<pre>&lt;b&gt;x&lt;/b&gt;</pre>"},
		{name: "span", formatter: HTMLSpanClassCellFormatter("warn"), row: 0, want: "<span class='warn'>&lt;b&gt;x&lt;/b&gt;</span>"},
		{name: "checkbox", formatter: CheckboxCellFormatter, row: 1, want: "<input type='checkbox' name='select' value='1' checked>"},
		{name: "checkbox unsupported", formatter: CheckboxCellFormatter, row: 0, wantErr: errors.ErrUnsupported},
		{name: "actions", formatter: ActionsCellFormatter, row: 2, want: "<button type='button' name='action' value='edit'>edit</button> <button type='button' name='action' value='&lt;retire&gt;'>&lt;retire&gt;</button>"},
		{name: "json compact", formatter: JSONCellFormatter(""), row: 3, want: `<pre>{"a":[1,2]}</pre>`},
		{name: "json nil", formatter: JSONCellFormatter(""), row: 4, wantErr: errors.ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, raw, err := tt.formatter.FormatCell(context.Background(), view, tt.row, 0)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.True(t, raw)
			require.Equal(t, tt.want, got)
		})
	}
}
