package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/naka-gawa/pypi-stats/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStatsGateway creates a PyPIStatsGateway that communicates with a mock HTTP server.
func setupTestStatsGateway(t *testing.T, handler http.Handler) *PyPIStatsGateway {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	logger := log.New(io.Discard, "", 0)
	return NewPyPIStatsGateway(server.URL+"/api/", NewHTTPClient("pypi-stats-test"), logger)
}

func TestPyPIStatsGateway_FetchRecent(t *testing.T) {
	testCases := []struct {
		name          string
		pkg           string
		status        int
		body          string
		expected      domain.PackageStats
		expectError   bool
		expectedField string
		expectedCode  int
	}{
		{
			name:     "happy path - decodes all three counts",
			pkg:      "requests",
			status:   http.StatusOK,
			body:     `{"data": {"last_day": 12, "last_month": 3400, "last_week": 560}, "package": "requests", "type": "recent_downloads"}`,
			expected: domain.PackageStats{Package: "requests", LastMonth: 3400, LastWeek: 560, LastDay: 12},
		},
		{
			name:     "mixed case name is kept as given",
			pkg:      "Django",
			status:   http.StatusOK,
			body:     `{"data": {"last_day": 0, "last_month": 0, "last_week": 0}}`,
			expected: domain.PackageStats{Package: "Django"},
		},
		{
			name:         "error case - unknown package",
			pkg:          "no-such-package",
			status:       http.StatusNotFound,
			body:         `Not Found`,
			expectError:  true,
			expectedCode: http.StatusNotFound,
		},
		{
			name:          "error case - missing field",
			pkg:           "foo",
			status:        http.StatusOK,
			body:          `{"data": {"last_day": 1, "last_month": 2}}`,
			expectError:   true,
			expectedField: "last_week",
		},
		{
			name:          "error case - quoted number",
			pkg:           "foo",
			status:        http.StatusOK,
			body:          `{"data": {"last_day": 1, "last_month": "2", "last_week": 3}}`,
			expectError:   true,
			expectedField: "last_month",
		},
		{
			name:          "error case - fractional count",
			pkg:           "foo",
			status:        http.StatusOK,
			body:          `{"data": {"last_day": 1.5, "last_month": 2, "last_week": 3}}`,
			expectError:   true,
			expectedField: "last_day",
		},
		{
			name:          "error case - negative count",
			pkg:           "foo",
			status:        http.StatusOK,
			body:          `{"data": {"last_day": 1, "last_month": -2, "last_week": 3}}`,
			expectError:   true,
			expectedField: "last_month",
		},
		{
			name:          "error case - null data",
			pkg:           "foo",
			status:        http.StatusOK,
			body:          `{"data": null}`,
			expectError:   true,
			expectedField: "last_month",
		},
		{
			name:        "error case - body is not JSON",
			pkg:         "foo",
			status:      http.StatusOK,
			body:        `<html>maintenance</html>`,
			expectError: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gateway := setupTestStatsGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, fmt.Sprintf("/api/packages/%s/recent", strings.ToLower(tc.pkg)), r.URL.Path)
				assert.Equal(t, "pypi-stats-test", r.Header.Get("User-Agent"))
				w.WriteHeader(tc.status)
				fmt.Fprint(w, tc.body)
			}))

			stats, err := gateway.FetchRecent(context.Background(), tc.pkg)

			if tc.expectError {
				require.Error(t, err)
				var statsErr *domain.StatsError
				require.ErrorAs(t, err, &statsErr)
				assert.Equal(t, tc.pkg, statsErr.Package)
				assert.Equal(t, tc.expectedField, statsErr.Field)
				assert.Equal(t, tc.expectedCode, statsErr.StatusCode)
				assert.Contains(t, err.Error(), tc.pkg)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, stats)
			}
		})
	}
}

func TestPyPIStatsGateway_FetchRecent_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	gateway := NewPyPIStatsGateway(server.URL, NewHTTPClient(""), log.New(io.Discard, "", 0))

	_, err := gateway.FetchRecent(context.Background(), "foo")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to request recent stats")
	assert.False(t, domain.IsNotFound(err))
}

func TestParseCount(t *testing.T) {
	_, err := parseCount(nil, "last_day")
	assert.ErrorIs(t, err, domain.ErrFieldMissing)

	_, err = parseCount(map[string]json.RawMessage{"last_day": json.RawMessage(`true`)}, "last_day")
	assert.ErrorIs(t, err, domain.ErrFieldNotCount)

	n, err := parseCount(map[string]json.RawMessage{"last_day": json.RawMessage(`9007199254740993`)}, "last_day")
	assert.NoError(t, err)
	assert.Equal(t, int64(9007199254740993), n)
}

