package htmltable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/domonda/go-datatable"
)

var (
	HTMLPreCellFormatter datatable.CellFormatterFunc = func(ctx context.Context, view datatable.View, row, col int) (str string, raw bool, err error) {
		value := template.HTMLEscapeString(fmt.Sprint(view.Cell(row, col)))
		return "<pre>" + value + "</pre>", true, nil
	}

	// CheckboxCellFormatter renders bool cells as checkbox input
	// named "select" with the row index as value.
	// It is meant for the column with the datatable.SelectColumnID.
	CheckboxCellFormatter datatable.CellFormatterFunc = func(ctx context.Context, view datatable.View, row, col int) (str string, raw bool, err error) {
		checked, ok := view.Cell(row, col).(bool)
		if !ok {
			return "", false, errors.ErrUnsupported
		}
		if checked {
			return fmt.Sprintf("<input type='checkbox' name='select' value='%d' checked>", row), true, nil
		}
		return fmt.Sprintf("<input type='checkbox' name='select' value='%d'>", row), true, nil
	}

	// ActionsCellFormatter renders []string cells as one button per action.
	// It is meant for the column with the datatable.RowActionsColumnID.
	ActionsCellFormatter datatable.CellFormatterFunc = func(ctx context.Context, view datatable.View, row, col int) (str string, raw bool, err error) {
		actions, ok := view.Cell(row, col).([]string)
		if !ok {
			return "", false, errors.ErrUnsupported
		}
		buttons := make([]string, len(actions))
		for i, action := range actions {
			action = template.HTMLEscapeString(action)
			buttons[i] = fmt.Sprintf("<button type='button' name='action' value='%[1]s'>%[1]s</button>", action)
		}
		return strings.Join(buttons, " "), true, nil
	}

	_ datatable.CellFormatter = JSONCellFormatter("")
	_ datatable.CellFormatter = HTMLSpanClassCellFormatter("")
)

// JSONCellFormatter formats JSON cells within a pre element
// indented with the underlying string or compacted if it is empty.
type JSONCellFormatter string

func (indent JSONCellFormatter) FormatCell(ctx context.Context, view datatable.View, row, col int) (str string, raw bool, err error) {
	value := view.Cell(row, col)
	if value == nil {
		return "", false, errors.ErrUnsupported
	}
	var src bytes.Buffer
	_, err = fmt.Fprintf(&src, "%s", value)
	if err != nil {
		return "", false, err
	}
	buf := bytes.NewBufferString("<pre>")
	if indent == "" {
		err = json.Compact(buf, src.Bytes())
	} else {
		err = json.Indent(buf, src.Bytes(), "", string(indent))
	}
	if err != nil {
		return "", false, err
	}
	buf.WriteString("</pre>")
	return buf.String(), true, nil
}

// HTMLSpanClassCellFormatter formats the cell value within an HTML span element
// with the class of the underlying string value.
type HTMLSpanClassCellFormatter string

func (class HTMLSpanClassCellFormatter) FormatCell(ctx context.Context, view datatable.View, row, col int) (str string, raw bool, err error) {
	text := template.HTMLEscapeString(fmt.Sprint(view.Cell(row, col)))
	return fmt.Sprintf("<span class='%s'>%s</span>", class, text), true, nil
}
