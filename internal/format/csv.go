package format

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/naka-gawa/pypi-stats/internal/domain"
)

// csvHeader is the fixed header row.
var csvHeader = []string{"package", "last_month", "last_week", "last_day"}

// CSVFormatter writes the header on Open and each record as soon as it is appended.
type CSVFormatter struct {
	w *csv.Writer
}

// NewCSVFormatter creates a CSVFormatter writing to w.
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{w: csv.NewWriter(w)}
}

// Open writes the header row.
func (f *CSVFormatter) Open() error {
	return f.write(csvHeader)
}

// Append writes one record.
func (f *CSVFormatter) Append(stats domain.PackageStats) error {
	return f.write([]string{
		stats.Package,
		strconv.FormatInt(stats.LastMonth, 10),
		strconv.FormatInt(stats.LastWeek, 10),
		strconv.FormatInt(stats.LastDay, 10),
	})
}

// Close flushes any buffered output. Rows already written stay written when failed is set.
func (f *CSVFormatter) Close(_ bool) error {
	f.w.Flush()
	return outputError(f.w.Error())
}

func (f *CSVFormatter) write(record []string) error {
	if err := f.w.Write(record); err != nil {
		return outputError(err)
	}
	f.w.Flush()
	return outputError(f.w.Error())
}
