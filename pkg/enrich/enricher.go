package enrich

import (
	"context"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/umputun/presshound/pkg/domain"
)

//go:generate moq -out mocks/finder.go -pkg mocks -skip-ensure -fmt goimports . Finder

// DefaultMinConfidence is the lowest finder score accepted as a verified email
const DefaultMinConfidence = 70

// Finder looks up a person's email at a domain
type Finder interface {
	FindEmail(ctx context.Context, firstName, lastName, domain string) LookupResult
}

// Config defines enrichment parameters
type Config struct {
	MinConfidence int
	Concurrency   int     // max lookups in flight
	RateLimit     float64 // lookups per second, zero or negative means unlimited
}

// Stats summarizes enrichment outcomes
type Stats struct {
	Verified      int
	LowConfidence int
	NotFound      int
	Fallback      int
}

// Enricher attaches emails to journalist records, one lookup per journalist
type Enricher struct {
	finder        Finder
	minConfidence int
	concurrency   int
	limiter       *rate.Limiter
}

// NewEnricher makes an enricher with the given finder
func NewEnricher(finder Finder, cfg Config) *Enricher {
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = DefaultMinConfidence
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	return &Enricher{
		finder:        finder,
		minConfidence: cfg.MinConfidence,
		concurrency:   cfg.Concurrency,
		limiter:       rate.NewLimiter(limit, 1),
	}
}

// Enrich looks up emails for all records concurrently. Result order matches records order.
// Failed lookups degrade to the fallback address, Enrich itself never fails.
func (e *Enricher) Enrich(ctx context.Context, records []domain.JournalistRecord) ([]domain.EnrichedJournalist, Stats) {
	res := make([]domain.EnrichedJournalist, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, rec := range records {
		g.Go(func() error {
			res[i] = e.enrichOne(gctx, rec)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	var stats Stats
	for _, r := range res {
		switch r.EmailSource {
		case domain.EmailSourceHunter:
			stats.Verified++
		case domain.EmailSourceLowConfidence:
			stats.LowConfidence++
		case domain.EmailSourceFallback:
			stats.Fallback++
		default:
			stats.NotFound++
		}
	}

	lgr.Printf("[INFO] enrichment: verified (>=%d confidence) %d, low confidence %d, not found %d, fallback %d, total %d",
		e.minConfidence, stats.Verified, stats.LowConfidence, stats.NotFound, stats.Fallback, len(res))
	return res, stats
}

func (e *Enricher) enrichOne(ctx context.Context, rec domain.JournalistRecord) domain.EnrichedJournalist {
	if rec.FirstName == "" || rec.LastName == "" {
		return Classify(rec, LookupResult{}, e.minConfidence)
	}

	if err := e.limiter.Wait(ctx); err != nil {
		lgr.Printf("[WARN] lookup for %s %s skipped: %v", rec.FirstName, rec.LastName, err)
		return Classify(rec, LookupResult{Status: LookupNotFound}, e.minConfidence)
	}

	return Classify(rec, e.finder.FindEmail(ctx, rec.FirstName, rec.LastName, rec.Domain), e.minConfidence)
}

// Classify turns a lookup result into an enriched journalist.
// Records missing first or last name are never looked up and get the fallback address.
// Found emails below minConfidence are replaced with the fallback address as low_confidence;
// lookups without an email keep their own classification.
func Classify(rec domain.JournalistRecord, res LookupResult, minConfidence int) domain.EnrichedJournalist {
	fallback := "editor@" + rec.Domain

	if rec.FirstName == "" || rec.LastName == "" {
		return domain.EnrichedJournalist{JournalistRecord: rec, Email: fallback, EmailSource: domain.EmailSourceFallback}
	}

	if res.Status == LookupFound && res.Email != "" && res.Score >= minConfidence {
		return domain.EnrichedJournalist{JournalistRecord: rec, Email: res.Email, EmailConfidence: res.Score,
			EmailSource: domain.EmailSourceHunter}
	}

	out := domain.EnrichedJournalist{JournalistRecord: rec, Email: fallback, EmailConfidence: res.Score}
	switch {
	case res.Score > 0 || res.Status == LookupFound:
		out.EmailSource = domain.EmailSourceLowConfidence
	case res.Status == LookupMissingAPIKey:
		out.EmailSource = domain.EmailSourceMissingAPIKey
	case res.Status == LookupAPIError:
		out.EmailSource = domain.EmailSourceAPIError
	default:
		out.EmailSource = domain.EmailSourceNotFound
	}
	return out
}
