package datatable

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"unicode/utf8"
)

// Strings creates a View for table using SelectViewer
// and returns the result of ViewStrings for it.
func Strings(ctx context.Context, table any, addHeaderRow bool, formatters map[int]CellFormatter) (rows [][]string, err error) {
	viewer, err := SelectViewer(table)
	if err != nil {
		return nil, err
	}
	view, err := viewer.NewView("", table)
	if err != nil {
		return nil, err
	}
	return ViewStrings(ctx, view, addHeaderRow, formatters)
}

// ViewStrings formats all cells of view as strings
// using the formatters by column index and CellString as fallback.
func ViewStrings(ctx context.Context, view View, addHeaderRow bool, formatters map[int]CellFormatter) (rows [][]string, err error) {
	numCols := len(view.Columns())
	if addHeaderRow {
		rows = append(rows, append([]string(nil), view.Columns()...))
	}
	for row, numRows := 0, view.NumRows(); row < numRows; row++ {
		rowStrs := make([]string, numCols)
		for col := range rowStrs {
			rowStrs[col], err = CellString(ctx, view, row, col, formatters[col])
			if err != nil {
				return nil, err
			}
		}
		rows = append(rows, rowStrs)
	}
	return rows, nil
}

// CellString formats a view cell with formatter if not nil.
// If formatter is nil or returns errors.ErrUnsupported,
// nil-like values are formatted as empty string,
// pointers are dereferenced and the value is formatted with fmt.Sprint.
func CellString(ctx context.Context, view View, row, col int, formatter CellFormatter) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if formatter != nil {
		str, _, err := formatter.FormatCell(ctx, view, row, col)
		if err == nil {
			return str, nil
		}
		if !errors.Is(err, errors.ErrUnsupported) {
			return "", err
		}
	}
	v := reflect.ValueOf(view.Cell(row, col))
	if ValueIsNil(v) {
		return "", nil
	}
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	return fmt.Sprint(v.Interface()), nil
}

// StringColumnWidths returns the column widths of the passed
// table as count of UTF-8 runes.
// A negative numCols uses the maximum row length.
func StringColumnWidths(rows [][]string, numCols int) []int {
	if numCols < 0 {
		for _, row := range rows {
			numCols = max(numCols, len(row))
		}
		if numCols <= 0 {
			return nil
		}
	}
	colWidths := make([]int, numCols)
	for _, row := range rows {
		for col := 0; col < numCols && col < len(row); col++ {
			colWidths[col] = max(colWidths[col], utf8.RuneCountInString(row[col]))
		}
	}
	return colWidths
}
