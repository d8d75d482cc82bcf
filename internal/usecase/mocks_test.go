package usecase

import (
	"context"

	"github.com/naka-gawa/pypi-stats/internal/domain"
	"github.com/stretchr/testify/mock"
)

// mockFetcher is a mock implementation of the gateway.StatsFetcher interface.
// It allows us to simulate the pypistats.org gateway without making real API calls.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchRecent(ctx context.Context, pkg string) (domain.PackageStats, error) {
	args := m.Called(ctx, pkg)
	return args.Get(0).(domain.PackageStats), args.Error(1)
}

// fetchedPackages returns the package names passed to FetchRecent, in call order.
func (m *mockFetcher) fetchedPackages() []string {
	var pkgs []string
	for _, c := range m.Calls {
		if c.Method == "FetchRecent" {
			pkgs = append(pkgs, c.Arguments.String(1))
		}
	}
	return pkgs
}

// mockLookup is a mock implementation of the gateway.UserLookup interface.
type mockLookup struct {
	mock.Mock
}

func (m *mockLookup) UserPackages(ctx context.Context, user string) ([]string, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockLookup) Close() error {
	return m.Called().Error(0)
}

// recordingFormatter records the calls made by the Reporter.
type recordingFormatter struct {
	events  []string
	rows    []domain.PackageStats
	openErr error
}

func (f *recordingFormatter) Open() error {
	f.events = append(f.events, "open")
	return f.openErr
}

func (f *recordingFormatter) Append(stats domain.PackageStats) error {
	f.events = append(f.events, "append:"+stats.Package)
	f.rows = append(f.rows, stats)
	return nil
}

func (f *recordingFormatter) Close(failed bool) error {
	if failed {
		f.events = append(f.events, "close:failed")
	} else {
		f.events = append(f.events, "close:ok")
	}
	return nil
}
