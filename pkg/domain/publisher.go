package domain

// BylineField names a feed entry field that may carry the author attribution
type BylineField string

// supported byline fields, named after the feed elements they come from
const (
	FieldAuthor    BylineField = "author"
	FieldDCCreator BylineField = "dc_creator"
	FieldByline    BylineField = "byline"
)

// Publisher represents a news source from the static registry
type Publisher struct {
	Name         string        `yaml:"name" json:"name"`
	FeedURL      string        `yaml:"rss" json:"rss"`
	Domain       string        `yaml:"domain" json:"domain"`
	Region       string        `yaml:"region,omitempty" json:"region,omitempty"`
	AuthorFields []BylineField `yaml:"author_fields" json:"author_fields"`
}
