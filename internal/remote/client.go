// Package remote is the typed client for the backend wiki REST API. It
// distinguishes missing pages from transient backend failures so the web
// layer can surface the two differently.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"hubwiki/internal/models"
)

// ErrNotFound marks a page or revision the backend does not know.
var ErrNotFound = errors.New("wiki page not found")

// ErrUpstream marks a transient backend failure; callers may retry or
// serve stale cached data.
var ErrUpstream = errors.New("wiki backend unavailable")

// Client talks to the backend wiki API. The zero value is not usable;
// construct with NewClient.
type Client struct {
	base *url.URL
	http *http.Client
}

// NewClient builds a client for the backend at baseURL. httpClient may
// be nil to use http.DefaultClient; no timeout policy is imposed beyond
// the client's own.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing backend url: %w", err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{base: base, http: httpClient}, nil
}

// GetWikiPage fetches the rendered content of a wiki page. revisionID
// selects a historical snapshot; empty means the current revision.
func (c *Client) GetWikiPage(ctx context.Context, hub, page, revisionID string) (*models.WikiPage, error) {
	query := url.Values{}
	if revisionID != "" {
		query.Set("rev", revisionID)
	}
	var out models.WikiPage
	if err := c.getJSON(ctx, c.endpoint(hub, page, ""), query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetWikiRevisions fetches one page of the revision listing. after is
// the opaque continuation cursor; empty requests the newest page.
func (c *Client) GetWikiRevisions(ctx context.Context, hub, page, after string) (*models.RevisionList, error) {
	query := url.Values{}
	if after != "" {
		query.Set("after", after)
	}
	var out models.RevisionList
	if err := c.getJSON(ctx, c.endpoint(hub, page, "revisions"), query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CompareRevisions fetches the raw bodies of two revisions of a page.
func (c *Client) CompareRevisions(ctx context.Context, hub, page, fromID, toID string) (*models.RevisionPair, error) {
	query := url.Values{}
	query.Set("from", fromID)
	query.Set("to", toID)
	var out models.RevisionPair
	if err := c.getJSON(ctx, c.endpoint(hub, page, "compare"), query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) endpoint(hub, page, suffix string) []string {
	segments := []string{"api", "hubs", hub, "wiki"}
	for _, seg := range strings.Split(page, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	if suffix != "" {
		segments = append(segments, suffix)
	}
	return segments
}

func (c *Client) getJSON(ctx context.Context, segments []string, query url.Values, out any) error {
	// Segments are decoded names; escaping happens exactly once here.
	// Path carries the decoded form and RawPath the escaped form so
	// URL.String does not escape a second time.
	escaped := make([]string, len(segments))
	for i, seg := range segments {
		escaped[i] = url.PathEscape(seg)
	}
	u := *c.base
	baseRaw := strings.TrimSuffix(u.EscapedPath(), "/")
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.Join(segments, "/")
	u.RawPath = baseRaw + "/" + strings.Join(escaped, "/")
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrUpstream, err)
	}
	return nil
}
