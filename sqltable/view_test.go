package sqltable

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// Every connection would open its own in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE asset (id TEXT PRIMARY KEY, name TEXT NOT NULL, purchase_cost INTEGER);
		INSERT INTO asset VALUES ('A-1', 'Forklift', 12000), ('A-2', 'Generator', NULL);
	`)
	require.NoError(t, err)
	return db
}

func TestQueryView(t *testing.T) {
	db := newTestDB(t)

	view, err := QueryView(context.Background(), db, "Assets", "SELECT id, name, purchase_cost FROM asset ORDER BY id")
	require.NoError(t, err)
	require.Equal(t, "Assets", view.Title())
	require.Equal(t, []string{"id", "name", "purchase_cost"}, view.Columns())
	require.Equal(t, 2, view.NumRows())
	require.Equal(t, "Forklift", view.Cell(0, 1))
	require.Equal(t, int64(12000), view.Cell(0, 2))
	require.Nil(t, view.Cell(1, 2))
}

func TestQueryView_errors(t *testing.T) {
	db := newTestDB(t)

	_, err := QueryView(context.Background(), db, "Assets", "SELECT * FROM missing")
	require.ErrorContains(t, err, `can't query table "Assets"`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = QueryView(ctx, db, "Assets", "SELECT * FROM asset")
	require.ErrorIs(t, err, context.Canceled)
}
