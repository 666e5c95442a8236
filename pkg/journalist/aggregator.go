// Package journalist consolidates parsed bylines into per-publication journalist records.
package journalist

import (
	"github.com/umputun/presshound/pkg/domain"
)

// DefaultMaxArticles is the number of recent articles kept per journalist
const DefaultMaxArticles = 5

// Aggregator merges author sightings into journalist records keyed by (first, last, domain).
// It is owned by a single scrape run and is not safe for concurrent use.
type Aggregator struct {
	maxArticles int
	records     map[domain.JournalistKey]*domain.JournalistRecord
	order       []domain.JournalistKey
}

// NewAggregator makes an empty aggregator. Non-positive maxArticles falls back to DefaultMaxArticles.
func NewAggregator(maxArticles int) *Aggregator {
	if maxArticles <= 0 {
		maxArticles = DefaultMaxArticles
	}
	return &Aggregator{
		maxArticles: maxArticles,
		records:     map[domain.JournalistKey]*domain.JournalistRecord{},
	}
}

// Add records one feed entry for every identity parsed from its byline.
// Identities without a first name are ignored. Returns the number of identities accepted.
func (a *Aggregator) Add(pub domain.Publisher, entry domain.RawEntry, authors []domain.AuthorIdentity) int {
	accepted := 0
	for _, author := range authors {
		if author.FirstName == "" {
			continue
		}
		key := domain.JournalistKey{FirstName: author.FirstName, LastName: author.LastName, Domain: pub.Domain}
		rec, ok := a.records[key]
		if !ok {
			rec = &domain.JournalistRecord{}
			a.records[key] = rec
			a.order = append(a.order, key)
		}
		rec.FirstName = author.FirstName
		rec.LastName = author.LastName
		rec.PublicationName = pub.Name
		rec.Domain = pub.Domain
		rec.RecentArticles = append(rec.RecentArticles, domain.NewArticleRef(entry))
		accepted++
	}
	return accepted
}

// Len returns the number of unique journalists seen so far
func (a *Aggregator) Len() int {
	return len(a.records)
}

// Records returns all journalists in first-seen order. Article lists are cut to the first
// maxArticles in append order; accumulated articles are untouched, so Records may be called
// again after more Add calls.
func (a *Aggregator) Records() []domain.JournalistRecord {
	res := make([]domain.JournalistRecord, 0, len(a.order))
	for _, key := range a.order {
		rec := a.records[key]
		articles := rec.RecentArticles
		if len(articles) > a.maxArticles {
			articles = articles[:a.maxArticles]
		}
		res = append(res, domain.JournalistRecord{
			FirstName:       rec.FirstName,
			LastName:        rec.LastName,
			PublicationName: rec.PublicationName,
			Domain:          rec.Domain,
			RecentArticles:  append([]domain.ArticleRef(nil), articles...),
			Topics:          append([]string{}, rec.Topics...),
		})
	}
	return res
}
