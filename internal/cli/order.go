package cli

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-datatable"
	"github.com/domonda/go-datatable/layout"
)

// OrderResult is the output of the order command.
type OrderResult struct {
	Order []string `json:"order"`
	// Changed is false if Order equals the stored order
	// and the caller doesn't have to store it again.
	Changed bool `json:"changed"`
}

func (r *OrderResult) String() string {
	return strings.Join(r.Order, "\n")
}

type orderOptions struct {
	layout   string
	data     string
	query    string
	previous []string
	hide     []string
}

// NewOrderCommand creates the order command.
func NewOrderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &orderOptions{}

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Print the reconciled column order of a table screen",
		Long: `Reconciles the stored column order of a layout, or the order
passed with --previous, with the currently available columns.

The available columns are the columns of the --data file if passed,
else the columns of the layout, plus the select and row-actions columns.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrder(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.layout, "layout", "l", "", "YAML layout file")
	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "CSV, XLSX or SQLite data file")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "SQL query for SQLite data")
	cmd.Flags().StringSliceVar(&opts.previous, "previous", nil, "stored column order, overrides the layout order")
	cmd.Flags().StringSliceVar(&opts.hide, "hide", nil, "additional hidden column IDs")

	return cmd
}

func runOrder(rootOpts *RootOptions, opts *orderOptions, cmd *cobra.Command) error {
	tableLayout, err := LoadLayout(fs.File(opts.layout))
	if err != nil {
		return err
	}
	tableLayout.Hidden = append(tableLayout.Hidden, opts.hide...)

	stored := opts.previous
	if len(stored) == 0 {
		stored = tableLayout.Order
	}

	var order []string
	if opts.data != "" {
		data, err := LoadData(cmd.Context(), fs.File(opts.data), tableLayout.Title, opts.query)
		if err != nil {
			return err
		}
		screen, err := NewScreen(tableLayout, data, 0, opts.previous, nil, nil)
		if err != nil {
			return err
		}
		order = screen.Order
	} else {
		order = tableLayout.ColumnOrder(layoutColumnIDs(tableLayout), opts.previous)
	}
	slog.Debug("Reconciled column order", "stored", stored, "order", order)

	return newOutputFormatter(rootOpts, cmd.OutOrStdout()).Success(&OrderResult{
		Order:   order,
		Changed: !datatable.StringsEqual(order, stored),
	})
}

// layoutColumnIDs returns the IDs of the layout columns
// plus the select and row-actions column IDs.
func layoutColumnIDs(tableLayout *layout.Table) []string {
	ids := append(datatable.ColumnIDs(tableLayout.Columns), datatable.SelectColumnID)
	if len(tableLayout.RowActions) > 0 {
		ids = append(ids, datatable.RowActionsColumnID)
	}
	return ids
}
