// Package publisher provides the static publisher registry and geography-based selection.
package publisher

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/umputun/presshound/pkg/domain"
)

//go:embed publishers.yml
var embeddedRegistry []byte

// Registry is an immutable list of publishers
type Registry struct {
	publishers []domain.Publisher
}

// Default returns the registry embedded into the binary
func Default() (*Registry, error) {
	r, err := Parse(embeddedRegistry)
	if err != nil {
		return nil, fmt.Errorf("embedded registry: %w", err)
	}
	return r, nil
}

// Load reads registry from a YAML file
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read registry file: %w", err)
	}
	return Parse(data)
}

// Parse decodes registry YAML, a list of publishers. Author fields default to "author".
func Parse(data []byte) (*Registry, error) {
	var pubs []domain.Publisher
	if err := yaml.Unmarshal(data, &pubs); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}
	if len(pubs) == 0 {
		return nil, fmt.Errorf("registry is empty")
	}

	for i := range pubs {
		p := &pubs[i]
		if p.Name == "" || p.FeedURL == "" || p.Domain == "" {
			return nil, fmt.Errorf("publisher #%d: name, rss and domain are required", i+1)
		}
		if len(p.AuthorFields) == 0 {
			p.AuthorFields = []domain.BylineField{domain.FieldAuthor}
		}
		for _, f := range p.AuthorFields {
			switch f {
			case domain.FieldAuthor, domain.FieldDCCreator, domain.FieldByline:
			default:
				return nil, fmt.Errorf("publisher %q: unknown author field %q", p.Name, f)
			}
		}
	}
	return &Registry{publishers: pubs}, nil
}

// New makes registry from the given publishers, used by tests and embedding callers
func New(pubs ...domain.Publisher) *Registry {
	return &Registry{publishers: append([]domain.Publisher(nil), pubs...)}
}

// All returns a copy of all publishers in registry order
func (r *Registry) All() []domain.Publisher {
	return append([]domain.Publisher(nil), r.publishers...)
}

// Len returns the number of publishers
func (r *Registry) Len() int {
	return len(r.publishers)
}

// Select returns publishers matching the geography, keeping registry order.
// Empty or "global" geography selects everything, as does any filter matching nothing.
func (r *Registry) Select(geography string) []domain.Publisher {
	geo := strings.ToLower(strings.TrimSpace(geography))
	if geo == "" {
		return r.All()
	}

	regions, known := geographyRegions[geo]
	if known && regions == nil {
		return r.All()
	}

	var res []domain.Publisher
	for _, p := range r.publishers {
		if p.Region == "" {
			continue
		}
		if known {
			if containsRegion(regions, p.Region) {
				res = append(res, p)
			}
			continue
		}
		if strings.Contains(strings.ToLower(p.Region), geo) {
			res = append(res, p)
		}
	}

	if len(res) == 0 {
		return r.All()
	}
	return res
}

func containsRegion(regions []string, region string) bool {
	for _, r := range regions {
		if r == region {
			return true
		}
	}
	return false
}
