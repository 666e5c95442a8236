// Package scraper runs the journalist discovery pipeline: fetch feeds, match topic, parse bylines,
// aggregate journalists and enrich them with emails.
package scraper

import (
	"context"
	"errors"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/presshound/pkg/byline"
	"github.com/umputun/presshound/pkg/domain"
	"github.com/umputun/presshound/pkg/enrich"
	"github.com/umputun/presshound/pkg/feed"
	"github.com/umputun/presshound/pkg/journalist"
	"github.com/umputun/presshound/pkg/topic"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . FeedFetcher
//go:generate moq -out mocks/enricher.go -pkg mocks -skip-ensure -fmt goimports . Enricher
//go:generate moq -out mocks/registry.go -pkg mocks -skip-ensure -fmt goimports . Registry

// ErrEmptyTopic returned when scrape is requested without a topic
var ErrEmptyTopic = errors.New("topic is required")

// FeedFetcher retrieves entries of a single feed
type FeedFetcher interface {
	Fetch(ctx context.Context, feedURL string) ([]domain.RawEntry, error)
}

// Enricher attaches emails to aggregated journalists
type Enricher interface {
	Enrich(ctx context.Context, records []domain.JournalistRecord) ([]domain.EnrichedJournalist, enrich.Stats)
}

// Registry selects publishers for a geography
type Registry interface {
	Select(geography string) []domain.Publisher
}

// Config holds scraper dependencies and parameters
type Config struct {
	Fetcher     FeedFetcher
	Enricher    Enricher
	Registry    Registry
	Concurrency int // max publishers fetched at once
	MaxArticles int // recent articles kept per journalist
}

// Scraper discovers journalists writing about a topic. Each Scrape call is independent and
// keeps no state after it returns.
type Scraper struct {
	fetcher     FeedFetcher
	enricher    Enricher
	registry    Registry
	concurrency int
	maxArticles int
}

// Stats describes a single scrape run
type Stats struct {
	Publishers        int          `json:"publishers"`
	FailedPublishers  int          `json:"failed_publishers"`
	EntriesInspected  int          `json:"entries_inspected"`
	EntriesMatched    int          `json:"entries_matched"`
	EntriesWithAuthor int          `json:"entries_with_author"`
	UniqueJournalists int          `json:"unique_journalists"`
	Enrichment        enrich.Stats `json:"enrichment"`
}

// Result is the outcome of a scrape run
type Result struct {
	ID          string
	Journalists []domain.EnrichedJournalist
	Stats       Stats
}

// New makes a scraper
func New(cfg Config) *Scraper {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if cfg.MaxArticles <= 0 {
		cfg.MaxArticles = journalist.DefaultMaxArticles
	}
	return &Scraper{
		fetcher:     cfg.Fetcher,
		enricher:    cfg.Enricher,
		registry:    cfg.Registry,
		concurrency: cfg.Concurrency,
		maxArticles: cfg.MaxArticles,
	}
}

// sighting is a matched feed entry with the authors parsed from its byline
type sighting struct {
	entry   domain.RawEntry
	authors []domain.AuthorIdentity
}

// publisherBatch collects everything one publisher contributed to the scrape
type publisherBatch struct {
	failed    bool
	inspected int
	matched   int
	sightings []sighting
}

// Scrape finds journalists covering the topic among publishers selected by geography.
// Failing publishers and lookups degrade the result but never fail the scrape; the only error
// is ErrEmptyTopic.
func (s *Scraper) Scrape(ctx context.Context, topicQuery, geography string) (*Result, error) {
	if strings.TrimSpace(topicQuery) == "" {
		return nil, ErrEmptyTopic
	}

	id := uuid.New().String()
	matcher := topic.NewMatcher(topicQuery)
	if len(matcher.Keywords()) == 0 {
		lgr.Printf("[WARN] scrape %s: topic %q has no usable keywords, nothing will match", id, topicQuery)
	}

	pubs := s.registry.Select(geography)
	lgr.Printf("[INFO] scrape %s: topic %q, geography %q, %d publishers, keywords %v",
		id, topicQuery, geography, len(pubs), matcher.Keywords())

	records, stats := s.collect(ctx, id, matcher, pubs)

	enriched, enrichStats := s.enricher.Enrich(ctx, records)
	stats.Enrichment = enrichStats

	lgr.Printf("[INFO] scrape %s done: inspected %d, matched topic %d, with author %d, unique journalists %d, failed publishers %d/%d",
		id, stats.EntriesInspected, stats.EntriesMatched, stats.EntriesWithAuthor, stats.UniqueJournalists,
		stats.FailedPublishers, stats.Publishers)

	return &Result{ID: id, Journalists: enriched, Stats: stats}, nil
}

// collect fetches publishers concurrently and aggregates their sightings in registry order,
// so the result doesn't depend on which feed answered first
func (s *Scraper) collect(ctx context.Context, id string, matcher *topic.Matcher, pubs []domain.Publisher) ([]domain.JournalistRecord, Stats) {
	batches := make([]publisherBatch, len(pubs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, pub := range pubs {
		g.Go(func() error {
			batches[i] = s.processPublisher(gctx, id, pub, matcher)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, failures stay inside their batch

	stats := Stats{Publishers: len(pubs)}
	agg := journalist.NewAggregator(s.maxArticles)
	for i, b := range batches {
		if b.failed {
			stats.FailedPublishers++
		}
		stats.EntriesInspected += b.inspected
		stats.EntriesMatched += b.matched
		for _, sg := range b.sightings {
			if agg.Add(pubs[i], sg.entry, sg.authors) > 0 {
				stats.EntriesWithAuthor++
			}
		}
	}
	stats.UniqueJournalists = agg.Len()
	return agg.Records(), stats
}

// processPublisher fetches one feed and keeps topic-matched entries with a person byline
func (s *Scraper) processPublisher(ctx context.Context, id string, pub domain.Publisher, matcher *topic.Matcher) publisherBatch {
	entries, err := s.fetcher.Fetch(ctx, pub.FeedURL)
	if err != nil {
		switch {
		case errors.Is(err, feed.ErrFetchTimeout):
			lgr.Printf("[WARN] scrape %s: feed of %s timed out, skipped: %v", id, pub.Name, err)
		default:
			lgr.Printf("[WARN] scrape %s: failed to fetch feed of %s, skipped: %v", id, pub.Name, err)
		}
		return publisherBatch{failed: true}
	}

	var batch publisherBatch
	for _, entry := range entries {
		batch.inspected++
		if !matcher.IsRelevant(entry) {
			continue
		}
		batch.matched++

		authors := byline.ParseName(byline.ExtractAuthor(entry, pub.AuthorFields))
		if len(authors) == 0 {
			continue
		}
		batch.sightings = append(batch.sightings, sighting{entry: entry, authors: authors})
	}

	lgr.Printf("[DEBUG] scrape %s: %s inspected %d, matched %d, with author %d",
		id, pub.Name, batch.inspected, batch.matched, len(batch.sightings))
	return batch
}
