package usecase

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/naka-gawa/pypi-stats/internal/domain"
)

// Summary holds aggregate figures over a report's last-month downloads.
type Summary struct {
	Packages int
	Total    int64
	Mean     float64
	Median   float64
}

// Summarize computes a Summary for records. An empty input yields the zero Summary.
func Summarize(records []domain.PackageStats) Summary {
	if len(records) == 0 {
		return Summary{}
	}
	data := make(stats.Float64Data, 0, len(records))
	var total int64
	for _, r := range records {
		data = append(data, float64(r.LastMonth))
		total += r.LastMonth
	}
	// Errors are only returned for empty input, which is handled above.
	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)
	return Summary{
		Packages: len(records),
		Total:    total,
		Mean:     mean,
		Median:   median,
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("%d packages, last month: total %d, mean %.1f, median %.1f", s.Packages, s.Total, s.Mean, s.Median)
}
