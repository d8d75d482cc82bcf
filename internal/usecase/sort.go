package usecase

import (
	"cmp"
	"slices"

	"github.com/naka-gawa/pypi-stats/internal/domain"
)

// SortPackages orders package names byte-wise, in place.
func SortPackages(pkgs []string) {
	slices.Sort(pkgs)
}

// SortStats orders stats by last-month downloads, highest first, in place.
// Equal counts keep their relative order.
func SortStats(stats []domain.PackageStats) {
	slices.SortStableFunc(stats, func(a, b domain.PackageStats) int {
		return cmp.Compare(b.LastMonth, a.LastMonth)
	})
}
