package downloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplate_Render(t *testing.T) {
	fields := map[string]any{
		"show_name":   "Kino+",
		"season_name": "Season 3",
		"episode_id":  12345,
		"month":       4,
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			name:     "plain substitution",
			template: "{show_name}/{season_name}",
			want:     "Kino+/Season 3",
		},
		{
			name:     "zero padding",
			template: "{month:02}",
			want:     "04",
		},
		{
			name:     "missing field",
			template: "{show_name}/{year}",
			want:     "Kino+/-",
		},
		{
			name:     "unknown placeholder",
			template: "{bogus}",
			want:     "-",
		},
		{
			name:     "padding on non-integer passes through",
			template: "{show_name:02}",
			want:     "Kino+",
		},
		{
			name:     "literal text",
			template: "episodes/{episode_id}",
			want:     "episodes/12345",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewTemplate(tt.template, "-").Render(fields)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTemplate_EmptyStringIsMissing(t *testing.T) {
	tpl := NewTemplate("{season_name}", "-")
	assert.Equal(t, "-", tpl.Render(map[string]any{"season_name": ""}))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Kino+", "Kino+"},
		{"Pen & Paper: Europa", "Pen & Paper Europa"},
		{"a/b\\c", "a b c"},
		{"what?!", "what !"},
		{"trailing. ", "trailing"},
		{"dots...everywhere", "dots.everywhere"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in), tt.in)
	}
}
