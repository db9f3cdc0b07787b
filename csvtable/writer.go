package csvtable

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/domonda/go-datatable"
)

// Encoder is an interface to encode byte strings.
type Encoder interface {
	Bytes([]byte) ([]byte, error)
}

// EncoderFunc implements the Encoder interface for a function.
type EncoderFunc func([]byte) ([]byte, error)

func (f EncoderFunc) Bytes(data []byte) ([]byte, error) {
	return f(data)
}

type Padding int

const (
	NoPadding Padding = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// Writer writes views as CSV.
// All With* methods return a modified copy of the Writer.
type Writer[T any] struct {
	viewer           datatable.Viewer
	columnFormatters map[int]datatable.CellFormatter
	padding          Padding
	headerRow        bool
	quoteAllFields   bool
	quoteEmptyFields bool
	escapeQuotes     string
	nilValue         string
	delimiter        rune
	newLine          string
	encoder          Encoder
}

func NewWriter[T any]() *Writer[T] {
	return &Writer[T]{
		columnFormatters: make(map[int]datatable.CellFormatter),
		padding:          NoPadding,
		escapeQuotes:     `""`,
		delimiter:        ';',
		newLine:          "\r\n",
	}
}

func (w *Writer[T]) clone() *Writer[T] {
	c := new(Writer[T])
	*c = *w
	return c
}

// Write calls WriteView with the result of Viewer.NewView(table)
// using the writer's viewer if not nil or else datatable.SelectViewer.
func (w *Writer[T]) Write(ctx context.Context, dest io.Writer, table T) error {
	viewer := w.viewer
	if viewer == nil {
		var err error
		viewer, err = datatable.SelectViewer(table)
		if err != nil {
			return err
		}
	}
	view, err := viewer.NewView("", table)
	if err != nil {
		return err
	}
	return w.WriteView(ctx, dest, view)
}

// WriteView writes the view to dest formatted as CSV.
func (w *Writer[T]) WriteView(ctx context.Context, dest io.Writer, view datatable.View) error {
	rows, err := w.ViewStrings(ctx, view)
	if err != nil {
		return err
	}

	var colWidths []int
	if w.padding != NoPadding {
		colWidths = datatable.StringColumnWidths(rows, len(view.Columns()))
	}

	rowBuf := bytes.NewBuffer(make([]byte, 0, 1024))
	for _, rowStrs := range rows {
		for col, str := range rowStrs {
			if col > 0 {
				rowBuf.WriteRune(w.delimiter)
			}
			padLeft, padRight := 0, 0
			if colWidths != nil {
				padTotal := colWidths[col] - utf8.RuneCountInString(str)
				switch w.padding {
				case AlignLeft:
					padRight = padTotal
				case AlignRight:
					padLeft = padTotal
				case AlignCenter:
					padLeft = padTotal / 2
					padRight = (padTotal + 1) / 2
				}
			}
			rowBuf.WriteString(strings.Repeat(" ", padLeft))
			rowBuf.WriteString(str)
			rowBuf.WriteString(strings.Repeat(" ", padRight))
		}
		rowBuf.WriteString(w.newLine)

		data := rowBuf.Bytes()
		if w.encoder != nil {
			data, err = w.encoder.Bytes(data)
			if err != nil {
				return err
			}
		}
		_, err = dest.Write(data)
		if err != nil {
			return err
		}
		rowBuf.Reset()
	}
	return nil
}

// ViewStrings returns the escaped CSV fields of view
// including the header row if configured.
func (w *Writer[T]) ViewStrings(ctx context.Context, view datatable.View) ([][]string, error) {
	numRows := view.NumRows()
	rows := make([][]string, 0, numRows+1)
	if w.headerRow {
		rowStrs, err := w.rowStrings(ctx, datatable.NewHeaderViewFrom(view), 0)
		if err != nil {
			return nil, err
		}
		rows = append(rows, rowStrs)
	}
	for row := 0; row < numRows; row++ {
		rowStrs, err := w.rowStrings(ctx, view, row)
		if err != nil {
			return nil, err
		}
		rows = append(rows, rowStrs)
	}
	return rows, nil
}

func (w *Writer[T]) rowStrings(ctx context.Context, view datatable.View, row int) ([]string, error) {
	rowStrs := make([]string, len(view.Columns()))
	for col := range rowStrs {
		var err error
		rowStrs[col], err = w.cellString(ctx, view, row, col)
		if err != nil {
			return nil, err
		}
	}
	return rowStrs, nil
}

func (w *Writer[T]) cellString(ctx context.Context, view datatable.View, row, col int) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if colFormatter, ok := w.columnFormatters[col]; ok {
		str, isRaw, err := colFormatter.FormatCell(ctx, view, row, col)
		if err == nil {
			return w.escapeString(str, isRaw), nil
		}
		if !errors.Is(err, errors.ErrUnsupported) {
			return "", err
		}
	}

	if datatable.ValueIsNil(reflect.ValueOf(view.Cell(row, col))) {
		return w.escapeString(w.nilValue, false), nil
	}
	str, err := datatable.CellString(ctx, view, row, col, nil)
	if err != nil {
		return "", err
	}
	return w.escapeString(str, false), nil
}

func (w *Writer[T]) escapeString(str string, isRaw bool) string {
	if isRaw {
		return str
	}
	str = strings.ReplaceAll(str, "\r", "")
	switch {
	case w.quoteAllFields || strings.ContainsRune(str, w.delimiter) || strings.ContainsRune(str, '\n'):
		return `"` + strings.ReplaceAll(str, `"`, w.escapeQuotes) + `"`
	case w.quoteEmptyFields && str == "":
		return `""`
	}
	return strings.ReplaceAll(str, `"`, w.escapeQuotes)
}

func (w *Writer[T]) WithHeaderRow(headerRow bool) *Writer[T] {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

func (w *Writer[T]) WithTableViewer(viewer datatable.Viewer) *Writer[T] {
	mod := w.clone()
	mod.viewer = viewer
	return mod
}

// WithColumnFormatter returns a writer with the formatter for a column index,
// a nil formatter removes the column formatter.
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

func (w *Writer[T]) WithPadding(padding Padding) *Writer[T] {
	mod := w.clone()
	mod.padding = padding
	return mod
}

func (w *Writer[T]) WithQuoteAllFields(quoteAllFields bool) *Writer[T] {
	mod := w.clone()
	mod.quoteAllFields = quoteAllFields
	return mod
}

func (w *Writer[T]) WithQuoteEmptyFields(quoteEmptyFields bool) *Writer[T] {
	mod := w.clone()
	mod.quoteEmptyFields = quoteEmptyFields
	return mod
}

func (w *Writer[T]) WithNilValue(nilValue string) *Writer[T] {
	mod := w.clone()
	mod.nilValue = nilValue
	return mod
}

func (w *Writer[T]) WithDelimiter(delimiter rune) *Writer[T] {
	mod := w.clone()
	mod.delimiter = delimiter
	return mod
}

func (w *Writer[T]) WithNewLine(newLine string) *Writer[T] {
	mod := w.clone()
	mod.newLine = newLine
	return mod
}

func (w *Writer[T]) WithEncoder(encoder Encoder) *Writer[T] {
	mod := w.clone()
	mod.encoder = encoder
	return mod
}

func (w *Writer[T]) Delimiter() rune { return w.delimiter }
func (w *Writer[T]) NewLine() string { return w.newLine }
