// Package exceltable reads Excel sheets as table views
// and writes views as Excel workbooks.
package exceltable

import (
	"errors"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-datatable"
)

// ReadFirstSheet reads the first sheet of an Excel file as View
// using the first non empty row as header.
// If rawCellStrings is true, cell values are returned
// without applying the number formats of the cells.
func ReadFirstSheet(reader io.Reader, rawCellStrings bool) (sheetView datatable.View, err error) {
	f, e := excelize.OpenReader(reader)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrSheetNotExist{SheetName: "<FirstSheet>"}
	}
	return readSheet(f, sheet, rawCellStrings)
}

// Read reads all non empty sheets of an Excel file as Views.
func Read(reader io.Reader, rawCellStrings bool) (sheetViews []datatable.View, err error) {
	f, e := excelize.OpenReader(reader)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	for _, sheet := range f.GetSheetList() {
		view, err := readSheet(f, sheet, rawCellStrings)
		if err != nil {
			if errors.Is(err, ErrEmptySheet) {
				continue
			}
			return nil, err
		}
		sheetViews = append(sheetViews, view)
	}
	return sheetViews, nil
}

func readSheet(f *excelize.File, sheet string, rawCellStrings bool) (datatable.View, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: rawCellStrings})
	if err != nil {
		return nil, err
	}
	rows = datatable.RemoveEmptyStringRows(rows)
	numCols := datatable.RemoveEmptyStringColumns(rows)
	if len(rows) == 0 || numCols == 0 {
		return nil, ErrEmptySheet
	}
	columns := rows[0]
	if len(columns) < numCols {
		columns = append(columns, make([]string, numCols-len(columns))...)
	}
	return datatable.NewStringsView(sheet, rows[1:], columns...), nil
}
