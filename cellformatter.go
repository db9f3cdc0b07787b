package datatable

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// CellFormatter is an interface for formatting view cells as strings.
type CellFormatter interface {
	// FormatCell formats the cell of a view as string
	// or returns a wrapped errors.ErrUnsupported error if
	// it doesn't support formatting the value of the cell.
	// The raw result indicates if the returned string
	// is in the raw format of the table format and can be
	// used as is or if it has to be sanitized in some way.
	FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error)
}

// CellFormatterFunc implements CellFormatter for a function.
type CellFormatterFunc func(ctx context.Context, view View, row, col int) (str string, raw bool, err error)

func (f CellFormatterFunc) FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error) {
	return f(ctx, view, row, col)
}

// PrintfCellFormatter implements CellFormatter by calling
// fmt.Sprintf with this type's string value as format.
type PrintfCellFormatter string

func (format PrintfCellFormatter) FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error) {
	return fmt.Sprintf(string(format), view.Cell(row, col)), false, nil
}

// SprintCellFormatter returns a CellFormatter
// that formats a cell with fmt.Sprint
// and returns rawResult as raw.
func SprintCellFormatter(rawResult bool) CellFormatter {
	return CellFormatterFunc(func(ctx context.Context, view View, row, col int) (str string, raw bool, err error) {
		return fmt.Sprint(view.Cell(row, col)), rawResult, nil
	})
}

// JoinCellFormatter formats string slice cells
// by joining the strings with sep.
// Other cell types are not supported.
type JoinCellFormatter string

func (sep JoinCellFormatter) FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error) {
	strs, ok := view.Cell(row, col).([]string)
	if !ok {
		return "", false, errors.ErrUnsupported
	}
	return strings.Join(strs, string(sep)), false, nil
}

// BoolCellFormatter formats bool cells
// with the True or False string.
type BoolCellFormatter struct {
	True  string
	False string
}

func (f BoolCellFormatter) FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error) {
	b, ok := view.Cell(row, col).(bool)
	if !ok {
		return "", false, errors.ErrUnsupported
	}
	if b {
		return f.True, false, nil
	}
	return f.False, false, nil
}
