package publisher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/presshound/pkg/domain"
)

func TestDefault(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 35, r.Len())

	domains := map[string]bool{}
	for _, p := range r.All() {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.FeedURL)
		assert.NotEmpty(t, p.Region, "publisher %s has no region", p.Name)
		assert.NotEmpty(t, p.AuthorFields)
		assert.False(t, domains[p.Domain], "duplicate domain %s", p.Domain)
		domains[p.Domain] = true
	}

	nyt := r.All()[0]
	assert.Equal(t, "New York Times", nyt.Name)
	assert.Equal(t, []domain.BylineField{domain.FieldDCCreator, domain.FieldByline, domain.FieldAuthor}, nyt.AuthorFields)
}

func TestParse(t *testing.T) {
	t.Run("defaults author field", func(t *testing.T) {
		r, err := Parse([]byte(`
- name: Local News
  rss: https://example.com/feed
  domain: example.com
`))
		require.NoError(t, err)
		require.Equal(t, 1, r.Len())
		assert.Equal(t, []domain.BylineField{domain.FieldAuthor}, r.All()[0].AuthorFields)
		assert.Empty(t, r.All()[0].Region)
	})

	t.Run("missing domain", func(t *testing.T) {
		_, err := Parse([]byte(`- {name: x, rss: https://example.com/feed}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required")
	})

	t.Run("unknown author field", func(t *testing.T) {
		_, err := Parse([]byte(`- {name: x, rss: https://example.com/feed, domain: example.com, author_fields: [writer]}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown author field")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Parse([]byte(``))
		require.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Parse([]byte(`{{{`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse registry")
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pubs.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
- name: A
  rss: https://a.example.com/feed
  domain: a.example.com
  region: Midwest
  author_fields: [dc_creator]
`), 0o600))

	r, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Midwest", r.All()[0].Region)

	_, err = Load("/non/existent/pubs.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read registry file")
}

func TestRegistry_Select(t *testing.T) {
	r := New(
		domain.Publisher{Name: "Boston", Domain: "boston.com", Region: RegionNortheast},
		domain.Publisher{Name: "Philly", Domain: "philly.com", Region: RegionMidAtlantic},
		domain.Publisher{Name: "Atlanta", Domain: "atlanta.com", Region: RegionSoutheast},
		domain.Publisher{Name: "Phoenix", Domain: "phoenix.com", Region: RegionSouthwest},
		domain.Publisher{Name: "Seattle", Domain: "seattle.com", Region: RegionPacificNorthwest},
		domain.Publisher{Name: "BBC", Domain: "bbc.com", Region: RegionInternational},
		domain.Publisher{Name: "NoRegion", Domain: "none.com"},
	)

	names := func(pubs []domain.Publisher) []string {
		res := []string{}
		for _, p := range pubs {
			res = append(res, p.Name)
		}
		return res
	}
	all := []string{"Boston", "Philly", "Atlanta", "Phoenix", "Seattle", "BBC", "NoRegion"}

	tests := []struct {
		geo  string
		want []string
	}{
		{"", all},
		{"global", all},
		{"GLOBAL", all},
		{"us", []string{"Boston", "Philly", "Atlanta", "Phoenix", "Seattle"}},
		{"United States", []string{"Boston", "Philly", "Atlanta", "Phoenix", "Seattle"}},
		{"east coast", []string{"Boston", "Philly"}},
		{"south", []string{"Atlanta", "Phoenix"}},
		{"Northeast", []string{"Boston"}},
		{"international", []string{"BBC"}},
		// unknown names fall back to substring match on region, then to everything
		{"pacific", []string{"Seattle"}},
		{"  west ", []string{"Phoenix", "Seattle"}},
		{"mars", all},
		{"midwest", all},
	}

	for _, tt := range tests {
		t.Run(tt.geo, func(t *testing.T) {
			assert.Equal(t, tt.want, names(r.Select(tt.geo)))
		})
	}
}

func TestRegistry_AllIsCopy(t *testing.T) {
	r := New(domain.Publisher{Name: "A", Domain: "a.com"})
	pubs := r.All()
	pubs[0].Name = "changed"
	assert.Equal(t, "A", r.All()[0].Name)
}
