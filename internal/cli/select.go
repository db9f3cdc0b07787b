package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-datatable"
)

// SelectResult is the output of the select command.
type SelectResult struct {
	// Toggled are the IDs in the order of the toggle events.
	Toggled []string `json:"toggled"`
	// Selected are the selected IDs after all toggles.
	Selected []string `json:"selected"`
	Count    int      `json:"count"`
	// SingleRow is the page row index of the only
	// selected ID if it is on the page.
	SingleRow *int `json:"singleRow,omitempty"`
}

func (r *SelectResult) String() string {
	var b strings.Builder
	for _, id := range r.Toggled {
		fmt.Fprintf(&b, "toggled: %s\n", id)
	}
	fmt.Fprintf(&b, "selected: %s (%d)", strings.Join(r.Selected, ", "), r.Count)
	if r.SingleRow != nil {
		fmt.Fprintf(&b, "\nsingle row: %d", *r.SingleRow)
	}
	return b.String()
}

type selectOptions struct {
	layout   string
	data     string
	query    string
	page     int
	selected []string
	rows     []int
	clear    bool
}

// NewSelectCommand creates the select command.
func NewSelectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &selectOptions{}

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Apply a row selection change of a page to the selected row IDs",
		Long: `Treats --rows as the new positional selection of the rows of a page,
prints the resulting toggle events and the selected row IDs.

Every selected ID that is not the ID of one of the --rows
is deselected, also IDs of rows on other pages.
--clear deselects all IDs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.layout, "layout", "l", "", "YAML layout file")
	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "CSV, XLSX or SQLite data file")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "SQL query for SQLite data")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 0, "zero based page index")
	cmd.Flags().StringSliceVarP(&opts.selected, "select", "s", nil, "currently selected row IDs")
	cmd.Flags().IntSliceVar(&opts.rows, "rows", nil, "selected row indices of the page")
	cmd.Flags().BoolVar(&opts.clear, "clear", false, "deselect all row IDs")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func runSelect(rootOpts *RootOptions, opts *selectOptions, cmd *cobra.Command) error {
	tableLayout, err := LoadLayout(fs.File(opts.layout))
	if err != nil {
		return err
	}
	data, err := LoadData(cmd.Context(), fs.File(opts.data), tableLayout.Title, opts.query)
	if err != nil {
		return err
	}

	result := &SelectResult{
		Toggled:  []string{},
		Selected: opts.selected,
	}
	screen, err := NewScreen(tableLayout, data, opts.page, nil, opts.selected, func(id string) {
		slog.Debug("Toggled row", "id", id)
		result.Toggled = append(result.Toggled, id)
		result.Selected = datatable.ToggleID(result.Selected, id)
	})
	if err != nil {
		return err
	}

	if opts.clear {
		screen.Selection.ClearSelection()
	} else {
		screen.Selection.HandleRowSelectionIndices(datatable.RowSelectionFromIndices(opts.rows...))
	}

	after := datatable.NewSelection(screen.Selection.Data, result.Selected, screen.RowID, nil)
	if result.Selected == nil {
		result.Selected = []string{}
	}
	result.Count = after.SelectedCount()
	if row, ok := after.SingleSelectedItem(); ok {
		result.SingleRow = &row
	}

	return newOutputFormatter(rootOpts, cmd.OutOrStdout()).Success(result)
}
