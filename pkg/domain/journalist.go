package domain

// AuthorIdentity is a parsed byline name. FirstName is never empty for a usable identity.
type AuthorIdentity struct {
	FirstName string
	LastName  string
}

// JournalistKey identifies a journalist within a single scrape run. Comparison is case-sensitive.
type JournalistKey struct {
	FirstName string
	LastName  string
	Domain    string
}

// JournalistRecord is an author consolidated across all matched articles of one publisher domain
type JournalistRecord struct {
	FirstName       string       `json:"first_name"`
	LastName        string       `json:"last_name"`
	PublicationName string       `json:"publication_name"`
	Domain          string       `json:"domain"`
	RecentArticles  []ArticleRef `json:"recent_articles"`
	Topics          []string     `json:"topics"`
}

// Key returns the aggregation key of the record
func (r JournalistRecord) Key() JournalistKey {
	return JournalistKey{FirstName: r.FirstName, LastName: r.LastName, Domain: r.Domain}
}

// EmailSource describes where an email address came from
type EmailSource string

// email sources
const (
	EmailSourceHunter        EmailSource = "hunter"
	EmailSourceNotFound      EmailSource = "not_found"
	EmailSourceMissingAPIKey EmailSource = "missing_api_key"
	EmailSourceAPIError      EmailSource = "api_error"
	EmailSourceFallback      EmailSource = "fallback"
	EmailSourceLowConfidence EmailSource = "low_confidence"
)

// EnrichedJournalist is a journalist record with contact email attached
type EnrichedJournalist struct {
	JournalistRecord
	Email           string      `json:"email"`
	EmailConfidence int         `json:"email_confidence"`
	EmailSource     EmailSource `json:"email_source"`
}
