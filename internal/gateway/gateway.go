// Package gateway provides gateways to the PyPI index and the pypistats.org API,
// abstracting away the underlying XML-RPC and JSON clients.
package gateway

import (
	"context"
	"net/http"

	"github.com/naka-gawa/pypi-stats/internal/domain"
)

const (
	// DefaultIndexURL is the PyPI XML-RPC endpoint.
	DefaultIndexURL = "https://pypi.org/pypi"
	// DefaultStatsURL is the base of the pypistats.org JSON API.
	DefaultStatsURL = "https://pypistats.org/api"
)

// StatsFetcher defines the behavior of a gateway for fetching recent download stats.
type StatsFetcher interface {
	FetchRecent(ctx context.Context, pkg string) (domain.PackageStats, error)
}

// UserLookup defines the behavior of a gateway for listing the packages a user
// owns or maintains. Implementations hold a connection and must be closed.
type UserLookup interface {
	UserPackages(ctx context.Context, user string) ([]string, error)
	Close() error
}

// userAgentTransport stamps every outgoing request with a fixed User-Agent.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent != "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(req)
}

// NewHTTPClient returns an HTTP client shared by both gateways. No timeout is set;
// the transport defaults apply.
func NewHTTPClient(userAgent string) *http.Client {
	return &http.Client{
		Transport: &userAgentTransport{
			base:      http.DefaultTransport,
			userAgent: userAgent,
		},
	}
}
