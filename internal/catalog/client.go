// Package catalog searches the SoundCloud catalog by scraping its public
// search page and extracting one Track per result node.
//
// The markup selectors are the integration contract with the remote
// service; extraction is isolated in extractTracks so the parsing strategy
// can be swapped (e.g. for an official API client) without touching
// caching or orchestration.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the SoundCloud web endpoint searches are issued
	// against. Overridable for testing.
	DefaultBaseURL = "https://soundcloud.com"

	// DefaultUserAgent identifies the client to the remote service.
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"

	// DefaultTimeout bounds a single search request.
	DefaultTimeout = 10 * time.Second

	// DefaultCacheSize is the number of query results memoized before
	// least-recently-used entries are evicted.
	DefaultCacheSize = 100
)

// Config holds catalog client configuration.
type Config struct {
	BaseURL    string         // Optional: search endpoint (defaults to SoundCloud, used for testing)
	UserAgent  string         // Optional: User-Agent header for search requests
	Timeout    time.Duration  // Optional: per-request timeout (defaults to 10s)
	CacheSize  int            // Optional: LRU cache capacity (defaults to 100)
	HTTPClient *http.Client   // Optional: HTTP client (a timeout-bounded client is built if nil)
	Resolver   StreamResolver // Optional: stream URL derivation (defaults to TemplateResolver)
	Logger     zerolog.Logger
}

// Client searches SoundCloud and memoizes result sets per query.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	resolver   StreamResolver
	cache      *lru.Cache[string, []Track]
	logger     zerolog.Logger
}

// NewClient creates a catalog client from the given configuration.
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	resolver := cfg.Resolver
	if resolver == nil {
		resolver = TemplateResolver{}
	}

	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, []Track](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create query cache: %w", err)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: httpClient,
		resolver:   resolver,
		cache:      cache,
		logger:     cfg.Logger.With().Str("component", "catalog").Logger(),
	}, nil
}

// Search returns the tracks matching the given free-text query.
//
// The query is forwarded verbatim (URL-encoded); an empty query is
// permitted and left to the remote service to judge. Results, including
// empty ones, are memoized per exact query text; failed searches are not
// cached, so a transient network error does not poison the cache until
// eviction. On failure the returned error is a *SearchError and the track
// slice is nil — callers decide how to present the distinction between a
// failed search and an empty result.
func (c *Client) Search(ctx context.Context, query string) ([]Track, error) {
	if tracks, ok := c.cache.Get(query); ok {
		c.logger.Debug().Str("query", query).Int("tracks", len(tracks)).Msg("Cache hit")
		return tracks, nil
	}

	tracks, err := c.fetch(ctx, query)
	if err != nil {
		c.logger.Warn().Err(err).Str("query", query).Msg("Search failed")
		return nil, &SearchError{Query: query, Cause: err}
	}

	// A search cancelled mid-flight must not populate the cache.
	if err := ctx.Err(); err != nil {
		return nil, &SearchError{Query: query, Cause: err}
	}

	c.cache.Add(query, tracks)
	c.logger.Debug().Str("query", query).Int("tracks", len(tracks)).Msg("Search completed")
	return tracks, nil
}

// fetch issues the search request and extracts tracks from the response.
func (c *Client) fetch(ctx context.Context, query string) ([]Track, error) {
	searchURL := fmt.Sprintf("%s/search/sounds?q=%s", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	tracks, nodes := extractTracks(doc, c.resolver)
	if nodes == 0 {
		return nil, errors.New("no result nodes found, markup may have changed")
	}
	if skipped := nodes - len(tracks); skipped > 0 {
		c.logger.Debug().Str("query", query).Int("skipped", skipped).Msg("Skipped incomplete result nodes")
	}

	return tracks, nil
}

// extractTracks pulls one Track per result node, in document order. Nodes
// missing a required field are skipped rather than failing the whole
// extraction. Returns the tracks and the number of result nodes seen.
func extractTracks(doc *goquery.Document, resolver StreamResolver) ([]Track, int) {
	nodes := doc.Find("li.searchList__item")
	tracks := make([]Track, 0, nodes.Length())

	nodes.Each(func(_ int, sel *goquery.Selection) {
		track, err := extractTrack(sel, resolver)
		if err != nil {
			return
		}
		tracks = append(tracks, track)
	})

	return tracks, nodes.Length()
}

// extractTrack reads a single result node. Selectors mirror SoundCloud's
// search page structure.
func extractTrack(sel *goquery.Selection, resolver StreamResolver) (Track, error) {
	title := strings.TrimSpace(sel.Find("a.soundTitle__title").First().Text())
	if title == "" {
		return Track{}, errors.New("missing title")
	}

	artist := strings.TrimSpace(sel.Find("a.soundTitle__username").First().Text())
	if artist == "" {
		return Track{}, errors.New("missing artist")
	}

	duration, err := ParseDuration(sel.Find("span.sc-visuallyhidden").First().Text())
	if err != nil {
		return Track{}, err
	}

	href, ok := sel.Find("a").First().Attr("href")
	if !ok {
		return Track{}, errors.New("missing result link")
	}
	id := lastPathSegment(href)
	if id == "" {
		return Track{}, errors.New("missing track id")
	}

	artworkURL, ok := sel.Find("img").First().Attr("src")
	if !ok {
		return Track{}, errors.New("missing artwork")
	}

	return Track{
		ID:         id,
		Title:      title,
		Artist:     artist,
		Duration:   duration,
		StreamURL:  resolver.Resolve(id),
		ArtworkURL: artworkURL,
	}, nil
}

// lastPathSegment returns the final non-empty path segment of a link.
func lastPathSegment(href string) string {
	href = strings.TrimRight(href, "/")
	if i := strings.LastIndex(href, "/"); i >= 0 {
		return href[i+1:]
	}
	return href
}
