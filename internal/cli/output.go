package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormatter writes command results as text or JSON.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

func newOutputFormatter(opts *RootOptions, w io.Writer) *OutputFormatter {
	return &OutputFormatter{Format: opts.Output, Writer: w}
}

// CLIResponse is the JSON response format of the CLI.
type CLIResponse struct {
	Status string `json:"status"` // "ok"
	Data   any    `json:"data,omitempty"`
}

// Success outputs a successful result in the configured format.
// Text output uses the fmt.Stringer implementation of data if available.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(CLIResponse{Status: "ok", Data: data})
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}
