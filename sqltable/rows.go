package sqltable

import "database/sql"

var _ Rows = &sql.Rows{}

// Rows is the subset of the methods of *sql.Rows
// needed to scan a result set as View.
type Rows interface {
	Columns() ([]string, error)
	Scan(dest ...any) error
	Close() error
	Next() bool
	Err() error
}
