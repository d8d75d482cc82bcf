// Package domain contains the core data structures and domain logic for the application.
package domain

// PackageStats holds the recent download counts for a single PyPI package.
// It is the core domain entity of this application and is passed by value.
type PackageStats struct {
	Package   string `json:"package"`
	LastMonth int64  `json:"last_month"`
	LastWeek  int64  `json:"last_week"`
	LastDay   int64  `json:"last_day"`
}

// SortMode selects how the report is ordered.
type SortMode int

const (
	// SortNone keeps the order in which packages were resolved.
	SortNone SortMode = iota
	// SortByName orders package names lexicographically before fetching.
	SortByName
	// SortByDownloads orders fetched stats by last-month downloads, highest first.
	SortByDownloads
)

func (m SortMode) String() string {
	switch m {
	case SortByName:
		return "name"
	case SortByDownloads:
		return "downloads"
	default:
		return "none"
	}
}
