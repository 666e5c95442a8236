package domain

// RawEntry is a single feed item as delivered by the source feed.
// Byline candidates are nil when the feed item doesn't carry the field at all.
type RawEntry struct {
	Title     string
	Link      string
	Published string // raw timestamp as found in the feed
	Summary   string // plain text, markup stripped

	Author    *string
	DCCreator *string
	Byline    *string
}

// Field returns the value of a byline candidate field and whether the entry has it
func (e RawEntry) Field(f BylineField) (string, bool) {
	var v *string
	switch f {
	case FieldAuthor:
		v = e.Author
	case FieldDCCreator:
		v = e.DCCreator
	case FieldByline:
		v = e.Byline
	}
	if v == nil {
		return "", false
	}
	return *v, true
}

// ArticleRef is a short reference to an article attributed to a journalist
type ArticleRef struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Published string `json:"published"`
}

// NewArticleRef makes article reference from the feed entry
func NewArticleRef(e RawEntry) ArticleRef {
	return ArticleRef{Title: e.Title, URL: e.Link, Published: e.Published}
}
