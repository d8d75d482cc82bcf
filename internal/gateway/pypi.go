package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/kolo/xmlrpc"

	"github.com/naka-gawa/pypi-stats/internal/domain"
)

// PyPIIndex is the concrete implementation of UserLookup over the PyPI XML-RPC API.
type PyPIIndex struct {
	client *xmlrpc.Client
	logger *log.Logger
}

// NewPyPIIndex opens an XML-RPC client for endpoint. A nil transport uses
// http.DefaultTransport.
func NewPyPIIndex(endpoint string, transport http.RoundTripper, logger *log.Logger) (*PyPIIndex, error) {
	client, err := xmlrpc.NewClient(endpoint, transport)
	if err != nil {
		return nil, &domain.LookupError{Err: fmt.Errorf("failed to create XML-RPC client for %s: %w", endpoint, err)}
	}
	logger.Printf("Opened PyPI index client at %s\n", endpoint)
	return &PyPIIndex{client: client, logger: logger}, nil
}

// UserPackages calls user_packages(user) and returns the package names in the
// order the index reported them. The XML-RPC client has no context support, so
// ctx is only checked before the call.
func (p *PyPIIndex) UserPackages(ctx context.Context, user string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.LookupError{User: user, Err: err}
	}
	p.logger.Printf("  Looking up packages for user %s...\n", user)

	var reply []interface{}
	if err := p.client.Call("user_packages", user, &reply); err != nil {
		return nil, &domain.LookupError{User: user, Err: fmt.Errorf("failed to call user_packages: %w", err)}
	}
	pkgs, err := parseUserPackages(reply)
	if err != nil {
		return nil, &domain.LookupError{User: user, Err: err}
	}
	p.logger.Printf("  Found %d packages for user %s.\n", len(pkgs), user)
	return pkgs, nil
}

// Close releases the underlying connection.
func (p *PyPIIndex) Close() error {
	return p.client.Close()
}

// parseUserPackages validates a [[role, name], ...] reply. The whole reply is
// checked before anything is returned.
func parseUserPackages(reply []interface{}) ([]string, error) {
	pkgs := make([]string, 0, len(reply))
	for i, entry := range reply {
		pair, ok := entry.([]interface{})
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("malformed response: entry %d is not a [role, package] pair", i)
		}
		name, ok := pair[1].(string)
		if !ok {
			return nil, fmt.Errorf("malformed response: entry %d has a non-string package name", i)
		}
		pkgs = append(pkgs, name)
	}
	return pkgs, nil
}
