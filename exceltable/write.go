package exceltable

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-datatable"
)

// DefaultSheetName is used for views without title.
const DefaultSheetName = "Sheet1"

// Write writes the view as single sheet workbook in XLSX format to dest.
// The sheet is named after the view title, the first row
// contains the column titles.
// Cells are formatted by the formatters of their column index,
// bool and numeric cells without formatter are written as such,
// all other cells with datatable.CellString.
func Write(ctx context.Context, dest io.Writer, view datatable.View, formatters map[int]datatable.CellFormatter) (err error) {
	f := excelize.NewFile()
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	sheet := DefaultSheetName
	if title := view.Title(); title != "" && title != sheet {
		if err := f.SetSheetName(DefaultSheetName, title); err != nil {
			return fmt.Errorf("can't use view title %q as sheet name: %w", title, err)
		}
		sheet = title
	}

	columns := view.Columns()
	for col, title := range columns {
		if err := setCell(f, sheet, col, 0, title); err != nil {
			return err
		}
	}
	for row, numRows := 0, view.NumRows(); row < numRows; row++ {
		for col := range columns {
			value, err := cellValue(ctx, view, row, col, formatters[col])
			if err != nil {
				return err
			}
			if err := setCell(f, sheet, col, row+1, value); err != nil {
				return err
			}
		}
	}
	return f.Write(dest)
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func cellValue(ctx context.Context, view datatable.View, row, col int, formatter datatable.CellFormatter) (any, error) {
	if formatter == nil {
		v := reflect.ValueOf(view.Cell(row, col))
		switch v.Kind() {
		case reflect.Bool,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return v.Interface(), nil
		}
	}
	return datatable.CellString(ctx, view, row, col, formatter)
}
