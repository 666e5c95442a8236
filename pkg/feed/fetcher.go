package feed

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/presshound/pkg/domain"
)

// defaults for the fetcher
const (
	DefaultTimeout    = 10 * time.Second
	DefaultMaxEntries = 20
	DefaultUserAgent  = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
)

// errors returned by Fetch, check with errors.Is
var (
	ErrFetchTimeout = errors.New("feed fetch timeout")
	ErrFetchFailed  = errors.New("feed fetch failed")
)

// Config defines fetcher parameters, zero values replaced by defaults
type Config struct {
	Timeout    time.Duration
	UserAgent  string
	MaxEntries int
}

// Fetcher retrieves RSS/Atom feeds and converts items to raw entries
type Fetcher struct {
	client     *http.Client
	timeout    time.Duration
	userAgent  string
	maxEntries int
	policy     *bluemonday.Policy
}

// NewFetcher creates a new feed fetcher
func NewFetcher(cfg Config) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	return &Fetcher{
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		timeout:    cfg.Timeout,
		userAgent:  cfg.UserAgent,
		maxEntries: cfg.MaxEntries,
		policy:     bluemonday.StrictPolicy(),
	}
}

// Fetch downloads and parses the feed, returning at most maxEntries entries in feed order.
// Each call has its own timeout, independent of other fetches.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string) ([]domain.RawEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	parsed, err := f.fetch(ctx, feedURL)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, fmt.Errorf("%w: %s: %w", ErrFetchTimeout, feedURL, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchFailed, feedURL, err)
	}

	items := parsed.Items
	if len(items) > f.maxEntries {
		items = items[:f.maxEntries]
	}

	res := make([]domain.RawEntry, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		res = append(res, f.toEntry(item))
	}
	return res, nil
}

// fetch retrieves content from a URL and parses it as a feed
func (f *Fetcher) fetch(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	setBrowserHeaders(req, f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return feed, nil
}

// toEntry converts gofeed item to raw entry, byline fields left nil if the item has none
func (f *Fetcher) toEntry(item *gofeed.Item) domain.RawEntry {
	entry := domain.RawEntry{
		Title:     strings.TrimSpace(item.Title),
		Link:      item.Link,
		Published: item.Published,
		Summary:   f.plainText(item.Description),
	}

	var authors []string
	for _, p := range item.Authors {
		if p != nil && p.Name != "" {
			authors = append(authors, p.Name)
		}
	}
	if len(authors) == 0 && item.Author != nil && item.Author.Name != "" {
		authors = append(authors, item.Author.Name)
	}
	if len(authors) > 0 {
		entry.Author = joinNames(authors)
	}

	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 {
		entry.DCCreator = joinNames(item.DublinCoreExt.Creator)
	}

	if v, ok := item.Custom["byline"]; ok {
		entry.Byline = &v
	}

	return entry
}

// plainText strips markup and decodes entities
func (f *Fetcher) plainText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(f.policy.Sanitize(s)))
}

// joinNames combines multiple credited names into a single byline split later on "and"
func joinNames(names []string) *string {
	res := strings.Join(names, " and ")
	return &res
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
