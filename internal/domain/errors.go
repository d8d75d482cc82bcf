package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Field-level causes carried by a StatsError.
var (
	// ErrFieldMissing indicates the stats response lacked a required count.
	ErrFieldMissing = errors.New("field is missing")

	// ErrFieldNotCount indicates a count that is not a non-negative integer.
	ErrFieldNotCount = errors.New("field is not a non-negative integer")
)

// LookupError reports a failure to expand a PyPI user into their packages.
// User is empty when the index could not be reached at all.
type LookupError struct {
	User string
	Err  error
}

func (e *LookupError) Error() string {
	if e.User == "" {
		return fmt.Sprintf("user lookup: %v", e.Err)
	}
	return fmt.Sprintf("user lookup for %q: %v", e.User, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// StatsError reports a failure to fetch or decode stats for one package.
type StatsError struct {
	Package    string
	Field      string
	StatusCode int
	Err        error
}

func (e *StatsError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("stats for %q: %s: %v", e.Package, e.Field, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("stats for %q: HTTP %d %s", e.Package, e.StatusCode, http.StatusText(e.StatusCode))
	default:
		return fmt.Sprintf("stats for %q: %v", e.Package, e.Err)
	}
}

func (e *StatsError) Unwrap() error { return e.Err }

// OutputError reports a failure to write the report.
type OutputError struct {
	Err error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("failed to write output: %v", e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }

// IsNotFound checks if the error indicates the stats service does not know the package.
func IsNotFound(err error) bool {
	var statsErr *StatsError
	if errors.As(err, &statsErr) {
		return statsErr.StatusCode == http.StatusNotFound
	}
	return false
}
