package cli

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-datatable"
	"github.com/domonda/go-datatable/csvtable"
	"github.com/domonda/go-datatable/exceltable"
	"github.com/domonda/go-datatable/layout"
	"github.com/domonda/go-datatable/sqltable"
)

var (
	// ErrUnknownFormat is returned for data files
	// that are neither CSV, XLSX nor SQLite.
	ErrUnknownFormat = errors.New("unknown table format")

	// ErrMissingQuery is returned for SQLite data files without query.
	ErrMissingQuery = errors.New("missing query for SQLite data")
)

// LoadLayout reads a YAML table layout.
// An empty file returns an empty layout with the default pinned columns.
func LoadLayout(file fs.File) (*layout.Table, error) {
	if file == "" {
		return new(layout.Table), nil
	}
	data, err := file.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("can't read layout: %w", err)
	}
	table, err := layout.Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	slog.Debug("Loaded layout", "file", file, "columns", len(table.Columns), "pageSize", table.PageSize)
	return table, nil
}

// LoadData reads a CSV or XLSX file as View
// depending on the file extension,
// or the result of query from a SQLite database file.
func LoadData(ctx context.Context, file fs.File, title, query string) (datatable.View, error) {
	ext := strings.ToLower(file.Ext())
	switch ext {
	case ".db", ".sqlite", ".sqlite3":
		return loadSQLite(ctx, file, title, query)
	}

	data, err := file.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("can't read data: %w", err)
	}
	switch ext {
	case ".csv", ".txt":
		view, format, err := csvtable.ReadView(data, title, nil)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		slog.Debug("Loaded CSV", "file", file, "encoding", format.Encoding, "separator", format.Separator, "rows", view.NumRows())
		return view, nil

	case ".xlsx":
		view, err := exceltable.ReadFirstSheet(bytes.NewReader(data), false)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		slog.Debug("Loaded XLSX", "file", file, "sheet", view.Title(), "rows", view.NumRows())
		if title != "" {
			view = datatable.ViewWithTitle(view, title)
		}
		return view, nil

	default:
		return nil, fmt.Errorf("%w %q of %s", ErrUnknownFormat, ext, file)
	}
}

func loadSQLite(ctx context.Context, file fs.File, title, query string) (view datatable.View, err error) {
	if query == "" {
		return nil, fmt.Errorf("%s: %w", file, ErrMissingQuery)
	}
	if !file.Exists() {
		return nil, fmt.Errorf("can't read data: %s does not exist", file)
	}
	db, err := sql.Open("sqlite3", "file:"+string(file)+"?mode=ro")
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, db.Close())
	}()

	result, err := sqltable.QueryView(ctx, db, title, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	slog.Debug("Loaded SQLite query", "file", file, "query", query, "rows", result.NumRows())
	return result, nil
}
