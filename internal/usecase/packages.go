// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"iter"
	"log"

	"github.com/naka-gawa/pypi-stats/internal/gateway"
)

// IndexOpener opens a connection to the PyPI user-lookup service.
type IndexOpener func() (gateway.UserLookup, error)

// PackageSource resolves the deduplicated list of packages to report on.
type PackageSource struct {
	openIndex IndexOpener
	logger    *log.Logger
}

// NewPackageSource creates a new PackageSource instance.
func NewPackageSource(openIndex IndexOpener, logger *log.Logger) *PackageSource {
	return &PackageSource{
		openIndex: openIndex,
		logger:    logger,
	}
}

// Resolve lazily yields every package owned or maintained by users, in user
// order, followed by the explicit packages. A name is yielded only on its first
// occurrence. The index is opened only when users is non-empty and is closed
// when the sequence ends. A lookup failure is yielded once as the error and ends
// the sequence.
func (s *PackageSource) Resolve(ctx context.Context, users, packages []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		seen := make(map[string]struct{})
		emit := func(pkg string) bool {
			if _, ok := seen[pkg]; ok {
				return true
			}
			seen[pkg] = struct{}{}
			return yield(pkg, nil)
		}

		if len(users) > 0 {
			index, err := s.openIndex()
			if err != nil {
				yield("", err)
				return
			}
			defer func() {
				if err := index.Close(); err != nil {
					s.logger.Printf("Usecase: closing PyPI index client: %v\n", err)
				}
			}()
			for _, user := range users {
				owned, err := index.UserPackages(ctx, user)
				if err != nil {
					yield("", err)
					return
				}
				for _, pkg := range owned {
					if !emit(pkg) {
						return
					}
				}
			}
		}

		for _, pkg := range packages {
			if !emit(pkg) {
				return
			}
		}
	}
}
