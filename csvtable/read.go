package csvtable

import (
	"github.com/domonda/go-datatable"
)

// ReadView parses CSV data with format detection
// and returns a StringsView using the first non empty row as header.
func ReadView(data []byte, title string, configOrNil *FormatDetectionConfig) (*datatable.StringsView, *Format, error) {
	rows, format, err := ParseDetectFormat(data, configOrNil)
	if err != nil {
		return nil, format, err
	}
	return datatable.NewStringsView(title, datatable.RemoveEmptyStringRows(rows)), format, nil
}

// ReadViewWithFormat parses CSV data with the passed format
// and returns a StringsView using the first non empty row as header.
func ReadViewWithFormat(data []byte, title string, format *Format) (*datatable.StringsView, error) {
	rows, err := ParseWithFormat(data, format)
	if err != nil {
		return nil, err
	}
	return datatable.NewStringsView(title, datatable.RemoveEmptyStringRows(rows)), nil
}
