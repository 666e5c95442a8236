// Package byline extracts author names from feed entries and splits them into person identities.
package byline

import (
	"regexp"
	"strings"

	"github.com/umputun/presshound/pkg/domain"
)

// terms marking a byline as non-person, matched case-insensitively anywhere in the string
var nonPersonTerms = []string{"editorial", "staff", "team", "newsroom"}

const authorDelimiter = "|"

// separators accept unicode spaces too, feeds often carry &nbsp; between names
var (
	reAndSeparator = regexp.MustCompile(`(?i)[\s\p{Zs}]+and[\s\p{Zs}]+`)
	reAmpSeparator = regexp.MustCompile(`[\s\p{Zs}]*&[\s\p{Zs}]*`)
)

// ExtractAuthor returns the raw byline from the first candidate field with a non-empty value.
// The "By " prefix and surrounding whitespace are removed. Returns empty string if no field matches.
func ExtractAuthor(entry domain.RawEntry, fields []domain.BylineField) string {
	for _, f := range fields {
		val, ok := entry.Field(f)
		if !ok || val == "" {
			continue
		}
		val = strings.TrimSpace(val)
		return strings.TrimSpace(strings.TrimPrefix(val, "By "))
	}
	return ""
}

// ParseName splits a byline into author identities. Bylines naming an organization rather than a
// person produce nothing. Duplicates are kept, callers dedupe by aggregation key.
//
// Comma-separated segments where every part is a single word, like "Smith, Jones", are dropped
// as ambiguous surname lists. The check applies only to segments still holding a comma after
// splitting on "and" and "&", so "Smith, Jones and Brown" yields just (Brown, "").
func ParseName(fullName string) []domain.AuthorIdentity {
	if fullName == "" || isNonPerson(fullName) {
		return nil
	}

	normalized := reAndSeparator.ReplaceAllString(fullName, authorDelimiter)
	normalized = reAmpSeparator.ReplaceAllString(normalized, authorDelimiter)

	var names []string
	for _, segment := range strings.Split(normalized, authorDelimiter) {
		segment = strings.TrimSpace(segment)
		if !strings.Contains(segment, ",") {
			names = append(names, segment)
			continue
		}
		parts := strings.Split(segment, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if allSingleWords(parts) {
			continue
		}
		names = append(names, parts...)
	}

	var res []domain.AuthorIdentity
	for _, name := range names {
		tokens := strings.Fields(name)
		switch len(tokens) {
		case 0:
			continue
		case 1:
			res = append(res, domain.AuthorIdentity{FirstName: tokens[0]})
		default:
			res = append(res, domain.AuthorIdentity{FirstName: tokens[0], LastName: strings.Join(tokens[1:], " ")})
		}
	}
	return res
}

func isNonPerson(name string) bool {
	lower := strings.ToLower(name)
	for _, term := range nonPersonTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func allSingleWords(parts []string) bool {
	for _, p := range parts {
		if len(strings.Fields(p)) != 1 {
			return false
		}
	}
	return true
}
