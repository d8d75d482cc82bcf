package usecase

import (
	"context"
	"iter"
	"log"

	"github.com/naka-gawa/pypi-stats/internal/domain"
	"github.com/naka-gawa/pypi-stats/internal/format"
	"github.com/naka-gawa/pypi-stats/internal/gateway"
)

// Request describes one report run.
type Request struct {
	Users    []string
	Packages []string
	Sort     domain.SortMode
}

// Reporter is the use case for reporting PyPI download stats.
// It orchestrates resolving, fetching, sorting and formatting.
type Reporter struct {
	source  *PackageSource
	fetcher gateway.StatsFetcher
	logger  *log.Logger
}

// NewReporter creates a new Reporter instance.
func NewReporter(source *PackageSource, fetcher gateway.StatsFetcher, logger *log.Logger) *Reporter {
	return &Reporter{
		source:  source,
		fetcher: fetcher,
		logger:  logger,
	}
}

// Report performs the main business logic. Packages are fetched one at a time,
// lazily unless sorting by downloads requires every record up front. The first
// error aborts the run. Once out is opened it is closed exactly once, told
// whether the run failed.
func (r *Reporter) Report(ctx context.Context, req Request, out format.Formatter) (err error) {
	r.logger.Printf("Usecase: Starting report (sort: %s)...\n", req.Sort)

	pkgs := r.source.Resolve(ctx, req.Users, req.Packages)
	if req.Sort == domain.SortByName {
		names, err := collect(pkgs)
		if err != nil {
			return err
		}
		SortPackages(names)
		r.logger.Printf("Usecase: Sorted %d packages by name.\n", len(names))
		pkgs = values(names)
	}

	stats := r.fetch(ctx, pkgs)
	if req.Sort == domain.SortByDownloads {
		all, err := collect(stats)
		if err != nil {
			return err
		}
		SortStats(all)
		r.logger.Printf("Usecase: Sorted %d packages by downloads.\n", len(all))
		stats = values(all)
	}

	if err := out.Open(); err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(err != nil); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	var written []domain.PackageStats
	for s, fetchErr := range stats {
		if fetchErr != nil {
			return fetchErr
		}
		if err := out.Append(s); err != nil {
			return err
		}
		written = append(written, s)
	}

	r.logger.Printf("Usecase: Report complete: %s.\n", Summarize(written))
	return nil
}

// fetch maps each resolved package to its stats, stopping at the first error.
func (r *Reporter) fetch(ctx context.Context, pkgs iter.Seq2[string, error]) iter.Seq2[domain.PackageStats, error] {
	return func(yield func(domain.PackageStats, error) bool) {
		for pkg, err := range pkgs {
			if err != nil {
				yield(domain.PackageStats{}, err)
				return
			}
			stats, err := r.fetcher.FetchRecent(ctx, pkg)
			if !yield(stats, err) || err != nil {
				return
			}
		}
	}
}

// collect drains seq, returning the first error it yields.
func collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var out []T
	for v, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// values yields the elements of s with a nil error.
func values[T any](s []T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, v := range s {
			if !yield(v, nil) {
				return
			}
		}
	}
}
