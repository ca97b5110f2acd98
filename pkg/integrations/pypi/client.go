package pypi

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/matzehuels/pypisearch/pkg/buildinfo"
	pserrors "github.com/matzehuels/pypisearch/pkg/errors"
	"github.com/matzehuels/pypisearch/pkg/integrations"
)

// DefaultOrigin is the public Python Package Index.
const DefaultOrigin = "https://pypi.org"

const searchPath = "/search/"

// Package is one search result from the index.
//
// Identity is positional: two searches may return records with the same
// Name, and only the list of the latest search is meaningful.
type Package struct {
	Name        string // Display name as rendered by the index (e.g., "Flask")
	Version     string // Latest version (e.g., "3.0.3")
	Description string // Short summary, may be empty
	URL         string // Absolute detail page URL (e.g., "https://pypi.org/project/Flask/")
}

// Client fetches and parses search result pages from PyPI.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	origin string
}

// NewClient creates a PyPI search client for the given index origin.
// An empty origin means [DefaultOrigin]. Paths in origin are ignored.
func NewClient(origin string) (*Client, error) {
	if strings.TrimSpace(origin) == "" {
		origin = DefaultOrigin
	}
	normalized, err := integrations.NormalizeOrigin(origin)
	if err != nil {
		return nil, pserrors.Wrap(pserrors.ErrCodeInvalidInput, err, "invalid index URL %q", origin)
	}
	return &Client{
		Client: integrations.NewClient(map[string]string{
			"User-Agent": buildinfo.UserAgent(),
			"Accept":     "text/html",
		}),
		origin: normalized,
	}, nil
}

// Origin returns the scheme://host the client talks to.
func (c *Client) Origin() string { return c.origin }

// SearchURL builds the search page URL for query.
// The query is percent-encoded into the q parameter.
func (c *Client) SearchURL(query string) string {
	values := url.Values{}
	values.Set("q", query)
	return c.origin + searchPath + "?" + values.Encode()
}

// FetchSearchPage retrieves the raw HTML of the search page for query.
//
// The query is trimmed and validated first; an invalid query never reaches
// the network. The request is made once.
//
// Returns:
//   - the response body on any 2xx status
//   - an INVALID_INPUT error for empty or malformed queries
//   - a NETWORK_ERROR (or TIMEOUT) error wrapping [integrations.ErrNetwork]
//     for connection failures and non-2xx statuses
func (c *Client) FetchSearchPage(ctx context.Context, query string) ([]byte, error) {
	query = strings.TrimSpace(query)
	if err := pserrors.ValidateQuery(query); err != nil {
		return nil, err
	}

	body, err := c.GetBytes(ctx, c.SearchURL(query))
	if err != nil {
		if isTimeout(err) {
			return nil, pserrors.Wrap(pserrors.ErrCodeTimeout, err, "%s timed out", c.host())
		}
		return nil, pserrors.Wrap(pserrors.ErrCodeNetwork, err, "could not reach %s", c.host())
	}
	return body, nil
}

// Search fetches the search page for query and parses it into packages.
// Fetch strictly precedes parse; parse errors carry PARSE_ERROR.
func (c *Client) Search(ctx context.Context, query string) ([]Package, error) {
	body, err := c.FetchSearchPage(ctx, query)
	if err != nil {
		return nil, err
	}
	return ParseSearchResults(body, c.origin)
}

func (c *Client) host() string {
	if u, err := url.Parse(c.origin); err == nil && u.Host != "" {
		return u.Host
	}
	return c.origin
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
