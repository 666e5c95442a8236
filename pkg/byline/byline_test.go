package byline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/presshound/pkg/domain"
)

func strPtr(s string) *string { return &s }

func TestExtractAuthor(t *testing.T) {
	tests := []struct {
		name   string
		entry  domain.RawEntry
		fields []domain.BylineField
		want   string
	}{
		{
			name:   "first field wins",
			entry:  domain.RawEntry{Author: strPtr("Jane Smith"), DCCreator: strPtr("John Doe")},
			fields: []domain.BylineField{domain.FieldDCCreator, domain.FieldAuthor},
			want:   "John Doe",
		},
		{
			name:   "absent field skipped",
			entry:  domain.RawEntry{Author: strPtr("Jane Smith")},
			fields: []domain.BylineField{domain.FieldDCCreator, domain.FieldByline, domain.FieldAuthor},
			want:   "Jane Smith",
		},
		{
			name:   "empty field skipped",
			entry:  domain.RawEntry{DCCreator: strPtr(""), Author: strPtr("Jane Smith")},
			fields: []domain.BylineField{domain.FieldDCCreator, domain.FieldAuthor},
			want:   "Jane Smith",
		},
		{
			name:   "by prefix stripped",
			entry:  domain.RawEntry{Byline: strPtr("  By Jane Smith ")},
			fields: []domain.BylineField{domain.FieldByline},
			want:   "Jane Smith",
		},
		{
			name:   "lowercase by kept",
			entry:  domain.RawEntry{Author: strPtr("by Jane Smith")},
			fields: []domain.BylineField{domain.FieldAuthor},
			want:   "by Jane Smith",
		},
		{
			name:   "nothing found",
			entry:  domain.RawEntry{Author: strPtr("Jane Smith")},
			fields: []domain.BylineField{domain.FieldDCCreator},
			want:   "",
		},
		{
			name:   "no fields",
			entry:  domain.RawEntry{Author: strPtr("Jane Smith")},
			fields: nil,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractAuthor(tt.entry, tt.fields))
		})
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		in   string
		want []domain.AuthorIdentity
	}{
		{"John Doe and Jane Smith", []domain.AuthorIdentity{{"John", "Doe"}, {"Jane", "Smith"}}},
		{"Editorial Staff", nil},
		{"The Verge team", nil},
		{"NEWSROOM", nil},
		{"Smith, Jones and Brown", []domain.AuthorIdentity{{"Brown", ""}}},
		{"Maria", []domain.AuthorIdentity{{"Maria", ""}}},
		{"", nil},
		{"   ", nil},
		{"Mary Ann van der Berg", []domain.AuthorIdentity{{"Mary", "Ann van der Berg"}}},
		{"John Doe & Jane Smith", []domain.AuthorIdentity{{"John", "Doe"}, {"Jane", "Smith"}}},
		{"John Doe&Jane Smith", []domain.AuthorIdentity{{"John", "Doe"}, {"Jane", "Smith"}}},
		{"John Doe AND Jane Smith", []domain.AuthorIdentity{{"John", "Doe"}, {"Jane", "Smith"}}},
		{"Alexandra Anderson", []domain.AuthorIdentity{{"Alexandra", "Anderson"}}},
		{"John Doe, Jane Smith and Bob Lee", []domain.AuthorIdentity{{"John", "Doe"}, {"Jane", "Smith"}, {"Bob", "Lee"}}},
		{"Smith, Jones", nil},
		{"John Doe, Smith", []domain.AuthorIdentity{{"John", "Doe"}, {"Smith", ""}}},
		{"John Doe and John Doe", []domain.AuthorIdentity{{"John", "Doe"}, {"John", "Doe"}}},
		{"  Jane   Q.   Public  ", []domain.AuthorIdentity{{"Jane", "Q. Public"}}},
		{"John\u00a0Doe\u00a0and\u00a0Jane Smith", []domain.AuthorIdentity{{"John", "Doe"}, {"Jane", "Smith"}}},
		{"John Doe\u00a0&\u00a0Jane\u2009Smith", []domain.AuthorIdentity{{"John", "Doe"}, {"Jane", "Smith"}}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseName(tt.in))
		})
	}
}

func TestParseName_Pure(t *testing.T) {
	in := "John Doe and Jane Smith"
	first := ParseName(in)
	second := ParseName(in)
	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}
