package cli

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	fs "github.com/ungerik/go-fs"
)

func testdataFile(t *testing.T, name string) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("testdata", name))
	require.NoError(t, err)
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand(new(slog.LevelVar))
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(nil)
	for _, name := range []string{"order", "render", "select"} {
		t.Run(name, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand(nil)

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)

	outputFlag := cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "text", outputFlag.DefValue)
}

func TestVerboseSetsDebugLevel(t *testing.T) {
	logLevel := new(slog.LevelVar)
	cmd := NewRootCommand(logLevel)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"order", "--verbose", "--layout", testdataFile(t, "assets.yaml")})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, slog.LevelDebug, logLevel.Level())
}

func TestInvalidOutput(t *testing.T) {
	_, err := execute(t, "order", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output")
}

func TestOrder(t *testing.T) {
	layoutFile := testdataFile(t, "assets.yaml")
	dataFile := testdataFile(t, "assets.csv")

	t.Run("layout columns", func(t *testing.T) {
		out, err := execute(t, "order", "--layout", layoutFile)
		require.NoError(t, err)
		assert.Equal(t, "select\npurchase_cost\nname\nid\nrow-actions\n", out)
	})

	t.Run("data columns with hidden column", func(t *testing.T) {
		out, err := execute(t, "order", "--output", "json",
			"--layout", layoutFile,
			"--data", dataFile,
			"--previous", "name,id,purchase_cost",
			"--hide", "purchase_cost",
		)
		require.NoError(t, err)

		var resp struct {
			Status string      `json:"status"`
			Data   OrderResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, []string{"select", "name", "id", "row-actions"}, resp.Data.Order)
		assert.True(t, resp.Data.Changed)
	})

	t.Run("unchanged order", func(t *testing.T) {
		out, err := execute(t, "order", "--output", "json",
			"--layout", layoutFile,
			"--data", dataFile,
			"--previous", "select,name,id,purchase_cost,row-actions",
		)
		require.NoError(t, err)
		assert.Contains(t, out, `"changed": false`)
	})

	t.Run("no layout", func(t *testing.T) {
		out, err := execute(t, "order", "--data", dataFile)
		require.NoError(t, err)
		assert.Equal(t, "select\nid\nname\npurchase_cost\n", out)
	})
}

func TestRender(t *testing.T) {
	layoutFile := testdataFile(t, "assets.yaml")
	dataFile := testdataFile(t, "assets.csv")

	t.Run("csv to stdout", func(t *testing.T) {
		out, err := execute(t, "render", "--format", "csv", "--layout", layoutFile, "--data", dataFile, "--select", "A-2,A-5")
		require.NoError(t, err)
		assert.Equal(t, ""+
			"Select;Purchase Cost;Name;Asset ID;Row Actions\r\n"+
			";12000;Forklift;A-1;edit retire\r\n"+
			"x;3400;Generator;A-2;edit retire\r\n",
			out,
		)
	})

	t.Run("html file", func(t *testing.T) {
		outFile := filepath.Join(t.TempDir(), "page.html")
		out, err := execute(t, "render", "--layout", layoutFile, "--data", dataFile, "--select", "A-5", "--page", "2", "--out", outFile)
		require.NoError(t, err)
		assert.Equal(t, "wrote 1 rows of page 3/3 as html to "+outFile+"\n", out)

		html, err := os.ReadFile(outFile)
		require.NoError(t, err)
		assert.Contains(t, string(html), "<table class='datatable'>")
		assert.Contains(t, string(html), "<caption>Assets</caption>")
		assert.Contains(t, string(html), "<tr class='selected'><td><input type='checkbox' name='select' value='0' checked></td><td>150</td><td>Drill</td><td>A-5</td>")
	})

	t.Run("xlsx file", func(t *testing.T) {
		outFile := filepath.Join(t.TempDir(), "page.xlsx")
		_, err := execute(t, "render", "--layout", layoutFile, "--data", dataFile, "--page", "1", "--out", outFile)
		require.NoError(t, err)

		view, err := LoadData(context.Background(), fs.File(outFile), "", "")
		require.NoError(t, err)
		assert.Equal(t, []string{"Select", "Purchase Cost", "Name", "Asset ID", "Row Actions"}, view.Columns())
		require.Equal(t, 2, view.NumRows())
		assert.Equal(t, "A-3", view.Cell(0, 3))
		assert.Equal(t, "edit, retire", view.Cell(1, 4))
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := execute(t, "render", "--format", "pdf", "--data", dataFile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})

	t.Run("unknown data format", func(t *testing.T) {
		_, err := execute(t, "render", "--layout", layoutFile, "--data", layoutFile)
		require.ErrorIs(t, err, ErrUnknownFormat)
	})
}

func TestSelect(t *testing.T) {
	layoutFile := testdataFile(t, "assets.yaml")
	dataFile := testdataFile(t, "assets.csv")

	t.Run("change page selection", func(t *testing.T) {
		out, err := execute(t, "select", "--layout", layoutFile, "--data", dataFile, "--select", "A-2,A-9", "--rows", "0")
		require.NoError(t, err)
		assert.Equal(t, ""+
			"toggled: A-1\n"+
			"toggled: A-2\n"+
			"toggled: A-9\n"+
			"selected: A-1 (1)\n"+
			"single row: 0\n",
			out,
		)
	})

	t.Run("add to page selection", func(t *testing.T) {
		out, err := execute(t, "select", "--output", "json", "--layout", layoutFile, "--data", dataFile, "--select", "A-3", "--page", "1", "--rows", "0,1")
		require.NoError(t, err)

		var resp struct {
			Data SelectResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Equal(t, []string{"A-4"}, resp.Data.Toggled)
		assert.Equal(t, []string{"A-3", "A-4"}, resp.Data.Selected)
		assert.Equal(t, 2, resp.Data.Count)
		assert.Nil(t, resp.Data.SingleRow)
	})

	t.Run("clear", func(t *testing.T) {
		out, err := execute(t, "select", "--layout", layoutFile, "--data", dataFile, "--select", "A-3,A-1", "--clear")
		require.NoError(t, err)
		assert.Equal(t, "toggled: A-3\ntoggled: A-1\nselected:  (0)\n", out)
	})
}

func TestRender_sqlite(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "assets.db")
	db, err := sql.Open("sqlite3", dbFile)
	require.NoError(t, err)
	_, err = db.Exec(`
		CREATE TABLE asset (id TEXT PRIMARY KEY, name TEXT NOT NULL, purchase_cost INTEGER);
		INSERT INTO asset VALUES ('A-1', 'Forklift', 12000), ('A-2', 'Generator', NULL);
	`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	out, err := execute(t, "render", "--format", "csv",
		"--layout", testdataFile(t, "assets.yaml"),
		"--data", dbFile,
		"--query", "SELECT id, name, purchase_cost FROM asset ORDER BY id",
		"--select", "A-1",
	)
	require.NoError(t, err)
	assert.Equal(t, ""+
		"Select;Purchase Cost;Name;Asset ID;Row Actions\r\n"+
		"x;12000;Forklift;A-1;edit retire\r\n"+
		";;Generator;A-2;edit retire\r\n",
		out,
	)

	_, err = execute(t, "render", "--data", dbFile)
	require.ErrorIs(t, err, ErrMissingQuery)
}
