// Package sqltable reads the results of SQL queries as table views.
package sqltable

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/domonda/go-datatable"
)

// QueryView executes query with args on db
// and returns the result rows as view with the passed title.
func QueryView(ctx context.Context, db *sql.DB, title, query string, args ...any) (*datatable.AnyValuesView, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("can't query table %q: %w", title, err)
	}
	return ScanRowsAsView(ctx, title, rows)
}

// ScanRowsAsView reads all rows and closes them.
// NULL values become nil cells.
func ScanRowsAsView(ctx context.Context, title string, rows Rows) (view *datatable.AnyValuesView, err error) {
	defer func() {
		err = errors.Join(err, rows.Close())
	}()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	view = &datatable.AnyValuesView{Tit: title, Cols: columns}

	for rows.Next() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		scannedValues := make([]any, len(columns))
		valueScanners := make([]any, len(columns))
		for i := range valueScanners {
			valueScanners[i] = valueScanner{&scannedValues[i]}
		}
		err = rows.Scan(valueScanners...)
		if err != nil {
			return nil, err
		}
		view.Rows = append(view.Rows, scannedValues)
	}
	return view, rows.Err()
}

var _ sql.Scanner = valueScanner{}

type valueScanner struct {
	dest *any
}

// Scan implements the database/sql.Scanner interface.
func (s valueScanner) Scan(src any) error {
	if b, ok := src.([]byte); ok {
		// Copy bytes because they won't be valid after this method call
		src = slices.Clone(b)
	}
	*s.dest = src
	return nil
}
