package format

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/naka-gawa/pypi-stats/internal/domain"
)

var tableHeaders = []string{"Package", "Last Month", "Last Week", "Last Day"}

// packageColumn is the only left-aligned column.
const packageColumn = 0

var (
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	textCell    = cellStyle.Align(lipgloss.Left)
	numericCell = cellStyle.Align(lipgloss.Right)
)

// TableFormatter buffers rows and renders one box-drawn table on a successful Close.
type TableFormatter struct {
	out  io.Writer
	rows [][]string
}

// NewTableFormatter creates a TableFormatter writing to w.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{out: w}
}

// Open is a no-op; nothing is shown until Close.
func (f *TableFormatter) Open() error {
	return nil
}

// Append buffers one row.
func (f *TableFormatter) Append(stats domain.PackageStats) error {
	f.rows = append(f.rows, []string{
		stats.Package,
		strconv.FormatInt(stats.LastMonth, 10),
		strconv.FormatInt(stats.LastWeek, 10),
		strconv.FormatInt(stats.LastDay, 10),
	})
	return nil
}

// Close prints the table unless the run failed.
func (f *TableFormatter) Close(failed bool) error {
	if failed {
		return nil
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(tableHeaders...).
		Rows(f.rows...).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == packageColumn {
				return textCell
			}
			return numericCell
		})
	_, err := fmt.Fprintln(f.out, t.Render())
	return outputError(err)
}
