// Package htmltable writes table views as HTML tables.
//
// Cell values are HTML escaped unless a formatter
// returns them as raw HTML. Selected rows of a
// datatable.Selection can be marked with a row class.
//
// Example usage:
//
//	writer := htmltable.NewWriter[[]Asset]().
//	    WithHeaderRow(true).
//	    WithTableClass("assets").
//	    WithSelectedRows(selection.RowSelectionBitmap(), "selected")
//
//	err := writer.Write(ctx, os.Stdout, assets, "Assets")
package htmltable

import (
	"context"
	"errors"
	"html/template"
	"io"
	"reflect"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/domonda/go-datatable"
)

// Writer writes table data as HTML table elements.
//
// Writer is immutable after creation - all With* methods return
// a new Writer instance with the modified configuration.
type Writer[T any] struct {
	tableClass       string
	viewer           datatable.Viewer
	columnFormatters map[int]datatable.CellFormatter
	nilValue         template.HTML
	headerRow        bool
	selectedRows     *roaring.Bitmap
	selectedRowClass string
	headerTemplate   *template.Template
	rowTemplate      *template.Template
	footerTemplate   *template.Template
}

// NewWriter creates a new HTML table writer for type T
// with the default templates and no formatters.
func NewWriter[T any]() *Writer[T] {
	return &Writer[T]{
		columnFormatters: make(map[int]datatable.CellFormatter),
		headerTemplate:   HeaderTemplate,
		rowTemplate:      RowTemplate,
		footerTemplate:   FooterTemplate,
	}
}

// Write writes the table data as HTML to dest
// using the writer's viewer if set, otherwise datatable.SelectViewer.
// The caption strings are joined with spaces.
func (w *Writer[T]) Write(ctx context.Context, dest io.Writer, table T, caption ...string) error {
	viewer := w.viewer
	if viewer == nil {
		var err error
		viewer, err = datatable.SelectViewer(table)
		if err != nil {
			return err
		}
	}
	return w.WriteWithViewer(ctx, dest, viewer, table, caption...)
}

// WriteWithViewer writes the table data as HTML using the passed viewer.
func (w *Writer[T]) WriteWithViewer(ctx context.Context, dest io.Writer, viewer datatable.Viewer, table T, caption ...string) error {
	view, err := viewer.NewView(strings.Join(caption, " "), table)
	if err != nil {
		return err
	}
	return w.WriteView(ctx, dest, view)
}

// WriteView writes a table view as HTML to dest.
//
// Cells are formatted by the column formatter of their column
// with a fallback to datatable.CellString for nil formatters
// and errors.ErrUnsupported.
// Non raw strings are HTML escaped.
func (w *Writer[T]) WriteView(ctx context.Context, dest io.Writer, view datatable.View) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var (
		columns   = view.Columns()
		numCols   = len(columns)
		templData = &RowTemplateContext{
			TemplateContext: TemplateContext{
				TableClass: w.tableClass,
				Caption:    view.Title(),
			},
			RawCells: make([]template.HTML, numCols),
		}
	)

	err := w.headerTemplate.Execute(dest, templData.TemplateContext)
	if err != nil {
		return err
	}

	if w.headerRow {
		templData.IsHeaderRow = true
		for i := range columns {
			templData.RawCells[i] = template.HTML(template.HTMLEscapeString(columns[i])) //#nosec G203
		}
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
		templData.IsHeaderRow = false
		templData.RowIndex++
	}

	for row, numRows := 0, view.NumRows(); row < numRows; row++ {
		for col := 0; col < numCols; col++ {
			templData.RawCells[col], err = w.formatCell(ctx, view, row, col)
			if err != nil {
				return err
			}
		}

		templData.Selected = w.selectedRows != nil && w.selectedRows.Contains(uint32(row)) //#nosec G115
		templData.RowClass = ""
		if templData.Selected {
			templData.RowClass = w.selectedRowClass
		}
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}

		templData.RowIndex++
	}

	return w.footerTemplate.Execute(dest, templData.TemplateContext)
}

func (w *Writer[T]) formatCell(ctx context.Context, view datatable.View, row, col int) (template.HTML, error) {
	if colFormatter, ok := w.columnFormatters[col]; ok {
		str, isRaw, err := colFormatter.FormatCell(ctx, view, row, col)
		if err != nil && !errors.Is(err, errors.ErrUnsupported) {
			return "", err
		}
		if err == nil {
			if !isRaw {
				str = template.HTMLEscapeString(str)
			}
			return template.HTML(str), nil //#nosec G203
		}
	}
	// In case of errors.ErrUnsupported
	// use fallback method of formatting
	if datatable.ValueIsNil(reflect.ValueOf(view.Cell(row, col))) {
		return w.nilValue, nil
	}
	str, err := datatable.CellString(ctx, view, row, col, nil)
	if err != nil {
		return "", err
	}
	return template.HTML(template.HTMLEscapeString(str)), nil //#nosec G203
}

func (w *Writer[T]) clone() *Writer[T] {
	c := new(Writer[T])
	*c = *w
	return c
}

// WithHeaderRow returns a new writer that renders
// the column titles as first row using th elements.
func (w *Writer[T]) WithHeaderRow(headerRow bool) *Writer[T] {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

// WithTableClass returns a new writer with the specified CSS class for the table element.
func (w *Writer[T]) WithTableClass(tableClass string) *Writer[T] {
	mod := w.clone()
	mod.tableClass = tableClass
	return mod
}

// WithTableViewer returns a new writer with the specified viewer.
// If not set, datatable.SelectViewer will be called automatically.
func (w *Writer[T]) WithTableViewer(viewer datatable.Viewer) *Writer[T] {
	mod := w.clone()
	mod.viewer = viewer
	return mod
}

// WithColumnFormatter returns a new writer with the formatter registered for the specified column.
// If nil is passed as formatter, any previously registered formatter for this column is removed.
func (w *Writer[T]) WithColumnFormatter(columnIndex int, formatter datatable.CellFormatter) *Writer[T] {
	mod := w.clone()
	mod.columnFormatters = make(map[int]datatable.CellFormatter, len(w.columnFormatters)+1)
	for key, val := range w.columnFormatters {
		mod.columnFormatters[key] = val
	}
	if formatter != nil {
		mod.columnFormatters[columnIndex] = formatter
	} else {
		delete(mod.columnFormatters, columnIndex)
	}
	return mod
}

// WithRawColumn returns a new writer that interprets the specified column as raw HTML strings.
//
// Warning: Only use this for trusted content to avoid XSS vulnerabilities.
func (w *Writer[T]) WithRawColumn(columnIndex int) *Writer[T] {
	return w.WithColumnFormatter(columnIndex, datatable.SprintCellFormatter(true))
}

// WithSelectedRows returns a new writer that renders
// the rows with an index contained in selectedRows
// with the CSS class rowClass.
func (w *Writer[T]) WithSelectedRows(selectedRows *roaring.Bitmap, rowClass string) *Writer[T] {
	mod := w.clone()
	mod.selectedRows = selectedRows
	mod.selectedRowClass = rowClass
	return mod
}

// WithNilValue returns a new writer with the specified HTML to use for nil values.
// By default, nil values are rendered as empty strings.
func (w *Writer[T]) WithNilValue(nilValue template.HTML) *Writer[T] {
	mod := w.clone()
	mod.nilValue = nilValue
	return mod
}

// WithTemplate returns a new writer with custom templates for rendering the HTML table.
// The header and footer templates receive a TemplateContext,
// the row template a RowTemplateContext.
func (w *Writer[T]) WithTemplate(headerTemplate, rowTemplate, footerTemplate *template.Template) *Writer[T] {
	mod := w.clone()
	mod.headerTemplate = headerTemplate
	mod.rowTemplate = rowTemplate
	mod.footerTemplate = footerTemplate
	return mod
}

func (w *Writer[T]) TableClass() string {
	return w.tableClass
}

func (w *Writer[T]) NilValue() template.HTML {
	return w.nilValue
}
