package datatable

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// RowIDNamespace is the UUID namespace of ContentRowID.
var RowIDNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/domonda/go-datatable/rowid"))

// ColumnRowID returns a row ID function for the row indices of view
// that uses the formatted cell of col as row ID.
func ColumnRowID(view View, col int) func(row int) string {
	return func(row int) string {
		return cellText(view.Cell(row, col))
	}
}

// ContentRowID returns a row ID function for the row indices of view
// for views without an ID column.
// The ID is a name based UUID (version 5) of all cells of the row,
// so rows with identical content have identical IDs.
func ContentRowID(view View) func(row int) string {
	numCols := len(view.Columns())
	return func(row int) string {
		var b strings.Builder
		for col := 0; col < numCols; col++ {
			if col > 0 {
				b.WriteByte(0x1f) // unit separator
			}
			b.WriteString(cellText(view.Cell(row, col)))
		}
		return uuid.NewSHA1(RowIDNamespace, []byte(b.String())).String()
	}
}

func cellText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
