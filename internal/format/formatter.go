// Package format renders package stats as CSV or as an aligned text table.
package format

import (
	"io"

	"github.com/naka-gawa/pypi-stats/internal/domain"
)

// Format selects the output variant.
type Format int

const (
	// CSV writes one comma-separated row per package as it is produced.
	CSV Format = iota
	// Table buffers every row and prints a single table when the run succeeds.
	Table
)

func (f Format) String() string {
	if f == Table {
		return "table"
	}
	return "csv"
}

// Formatter is a scoped writer for a report. The caller invokes Open once,
// Append for each record, and, on every path after a successful Open, Close
// exactly once with failed set when the run is aborting.
type Formatter interface {
	Open() error
	Append(stats domain.PackageStats) error
	Close(failed bool) error
}

// New returns the formatter for f writing to w.
func New(f Format, w io.Writer) Formatter {
	switch f {
	case Table:
		return NewTableFormatter(w)
	default:
		return NewCSVFormatter(w)
	}
}

func outputError(err error) error {
	if err == nil {
		return nil
	}
	return &domain.OutputError{Err: err}
}
