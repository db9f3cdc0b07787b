// Command datatable reconciles column orders and row selections
// of table screens described by YAML layouts.
package main

import (
	"log/slog"
	"os"

	"github.com/domonda/go-datatable/internal/cli"
)

func main() {
	logLevel := new(slog.LevelVar)
	logLevel.Set(slog.LevelInfo)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	if err := cli.NewRootCommand(logLevel).Execute(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
