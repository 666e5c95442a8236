// Package topic turns a free-text topic query into keywords and checks articles against them.
package topic

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/umputun/presshound/pkg/domain"
)

// minKeywordLen is the shortest token kept as a keyword, in runes
const minKeywordLen = 3

var stopWords = map[string]bool{
	"in": true, "the": true, "of": true, "and": true, "or": true,
	"a": true, "an": true, "to": true, "for": true,
}

var reWord = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// DeriveKeywords splits the topic on commas into phrases and tokenizes them into lowercase keywords.
// Stop words and tokens shorter than three characters are dropped, the result is deduplicated
// preserving first occurrence.
func DeriveKeywords(topic string) []string {
	seen := map[string]bool{}
	res := []string{}
	for _, phrase := range strings.Split(topic, ",") {
		for _, token := range reWord.FindAllString(strings.ToLower(phrase), -1) {
			if stopWords[token] || utf8.RuneCountInString(token) < minKeywordLen {
				continue
			}
			if seen[token] {
				continue
			}
			seen[token] = true
			res = append(res, token)
		}
	}
	return res
}

// Matcher checks feed entries for relevance to a set of keywords
type Matcher struct {
	keywords []string
}

// NewMatcher makes a matcher for the topic query
func NewMatcher(topic string) *Matcher {
	return &Matcher{keywords: DeriveKeywords(topic)}
}

// Keywords returns keywords the matcher looks for
func (m *Matcher) Keywords() []string {
	return m.keywords
}

// IsRelevant reports whether title or summary contains any keyword as a plain substring.
// With no keywords nothing is relevant.
func (m *Matcher) IsRelevant(entry domain.RawEntry) bool {
	text := strings.ToLower(entry.Title + " " + entry.Summary)
	for _, kw := range m.keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
