package cli

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	fs "github.com/ungerik/go-fs"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/domonda/go-datatable"
	"github.com/domonda/go-datatable/csvtable"
	"github.com/domonda/go-datatable/exceltable"
	"github.com/domonda/go-datatable/htmltable"
)

// RenderFormats are the formats of the render command.
var RenderFormats = []string{"html", "csv", "xlsx"}

// RenderResult is the output of the render command
// if the table was written to a file.
type RenderResult struct {
	File     string   `json:"file"`
	Format   string   `json:"format"`
	Page     int      `json:"page"`
	NumPages int      `json:"numPages"`
	Rows     int      `json:"rows"`
	Columns  []string `json:"columns"`
}

func (r *RenderResult) String() string {
	return fmt.Sprintf("wrote %d rows of page %d/%d as %s to %s", r.Rows, r.Page+1, r.NumPages, r.Format, r.File)
}

type renderOptions struct {
	layout   string
	data     string
	query    string
	format   string
	page     int
	selected []string
	encoding string
	out      string
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a page of a table screen as HTML, CSV or XLSX",
		Long: `Renders one page of the data with the select and row-actions
columns in the reconciled column order of the layout.

Without --out the table is written to stdout.
Without --format the format is taken from the --out
file extension, defaulting to html.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.layout, "layout", "l", "", "YAML layout file")
	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "CSV, XLSX or SQLite data file")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "SQL query for SQLite data")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output table format (html|csv|xlsx)")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 0, "zero based page index")
	cmd.Flags().StringSliceVarP(&opts.selected, "select", "s", nil, "selected row IDs")
	cmd.Flags().StringVar(&opts.encoding, "encoding", "", "character encoding of CSV output, UTF-8 if empty")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func runRender(rootOpts *RootOptions, opts *renderOptions, cmd *cobra.Command) error {
	format := opts.format
	if format == "" && opts.out != "" {
		format = strings.TrimPrefix(strings.ToLower(fs.File(opts.out).Ext()), ".")
	}
	if format == "" {
		format = "html"
	}

	tableLayout, err := LoadLayout(fs.File(opts.layout))
	if err != nil {
		return err
	}
	data, err := LoadData(cmd.Context(), fs.File(opts.data), tableLayout.Title, opts.query)
	if err != nil {
		return err
	}
	screen, err := NewScreen(tableLayout, data, opts.page, nil, opts.selected, nil)
	if err != nil {
		return err
	}
	slog.Debug("Rendering", "format", format, "page", opts.page, "order", screen.Order)

	var buf bytes.Buffer
	err = RenderScreen(cmd.Context(), &buf, screen, format, opts.encoding)
	if err != nil {
		return err
	}

	if opts.out == "" {
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	err = fs.File(opts.out).WriteAll(buf.Bytes())
	if err != nil {
		return fmt.Errorf("can't write %s: %w", opts.out, err)
	}
	return newOutputFormatter(rootOpts, cmd.OutOrStdout()).Success(&RenderResult{
		File:     opts.out,
		Format:   format,
		Page:     screen.Page,
		NumPages: screen.NumPages,
		Rows:     screen.View.NumRows(),
		Columns:  screen.Order,
	})
}

// RenderScreen writes the View of screen in one of the RenderFormats.
// A non empty encoding is the WHATWG name of the character encoding
// of the csv format, like "windows-1252".
func RenderScreen(ctx context.Context, buf *bytes.Buffer, screen *Screen, format, encoding string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	selectCol := screen.ColumnIndex(datatable.SelectColumnID)
	actionsCol := screen.ColumnIndex(datatable.RowActionsColumnID)

	switch format {
	case "html":
		return htmltable.NewWriter[datatable.View]().
			WithHeaderRow(true).
			WithTableClass("datatable").
			WithColumnFormatter(selectCol, htmltable.CheckboxCellFormatter).
			WithColumnFormatter(actionsCol, htmltable.ActionsCellFormatter).
			WithSelectedRows(screen.Selection.RowSelectionBitmap(), "selected").
			WriteView(ctx, buf, screen.View)

	case "csv":
		writer := csvtable.NewWriter[datatable.View]().
			WithHeaderRow(true).
			WithColumnFormatter(selectCol, datatable.BoolCellFormatter{True: "x"}).
			WithColumnFormatter(actionsCol, datatable.JoinCellFormatter(" "))
		if encoding != "" {
			enc, err := htmlindex.Get(encoding)
			if err != nil {
				return fmt.Errorf("invalid encoding %q: %w", encoding, err)
			}
			writer = writer.WithEncoder(enc.NewEncoder())
		}
		return writer.WriteView(ctx, buf, screen.View)

	case "xlsx":
		return exceltable.Write(ctx, buf, screen.View, map[int]datatable.CellFormatter{
			actionsCol: datatable.JoinCellFormatter(", "),
		})

	default:
		return fmt.Errorf("invalid format %q: must be one of %v", format, RenderFormats)
	}
}
