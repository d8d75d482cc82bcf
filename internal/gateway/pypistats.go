package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/naka-gawa/pypi-stats/internal/domain"
)

// PyPIStatsGateway is the concrete implementation of the StatsFetcher interface
// backed by the pypistats.org "recent" endpoint.
type PyPIStatsGateway struct {
	client  *http.Client
	baseURL string
	logger  *log.Logger
}

// recentResponse mirrors the body of GET /packages/{name}/recent. The counts are
// kept raw so a missing or malformed field can be reported by name.
type recentResponse struct {
	Data map[string]json.RawMessage `json:"data"`
}

// NewPyPIStatsGateway creates a gateway that talks to the stats API rooted at baseURL.
func NewPyPIStatsGateway(baseURL string, client *http.Client, logger *log.Logger) *PyPIStatsGateway {
	return &PyPIStatsGateway{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// FetchRecent retrieves the last-month, last-week and last-day download counts for pkg.
func (g *PyPIStatsGateway) FetchRecent(ctx context.Context, pkg string) (domain.PackageStats, error) {
	endpoint := fmt.Sprintf("%s/packages/%s/recent", g.baseURL, url.PathEscape(strings.ToLower(pkg)))
	g.logger.Printf("  Fetching recent stats for %s...\n", pkg)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.PackageStats{}, &domain.StatsError{Package: pkg, Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return domain.PackageStats{}, &domain.StatsError{Package: pkg, Err: fmt.Errorf("failed to request recent stats: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.PackageStats{}, &domain.StatsError{Package: pkg, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.PackageStats{}, &domain.StatsError{Package: pkg, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	var payload recentResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.PackageStats{}, &domain.StatsError{Package: pkg, Err: fmt.Errorf("malformed response body: %w", err)}
	}

	stats := domain.PackageStats{Package: pkg}
	for _, field := range []struct {
		name string
		dst  *int64
	}{
		{"last_month", &stats.LastMonth},
		{"last_week", &stats.LastWeek},
		{"last_day", &stats.LastDay},
	} {
		n, err := parseCount(payload.Data, field.name)
		if err != nil {
			return domain.PackageStats{}, &domain.StatsError{Package: pkg, Field: field.name, Err: err}
		}
		*field.dst = n
	}
	return stats, nil
}

// parseCount extracts a non-negative integer from data[name]. Quoted numbers,
// nulls and fractions are rejected.
func parseCount(data map[string]json.RawMessage, name string) (int64, error) {
	raw, ok := data[name]
	if !ok {
		return 0, domain.ErrFieldMissing
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrFieldNotCount, err)
	}
	num, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("%w: got %s", domain.ErrFieldNotCount, raw)
	}
	n, err := num.Int64()
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: got %s", domain.ErrFieldNotCount, num)
	}
	return n, nil
}
