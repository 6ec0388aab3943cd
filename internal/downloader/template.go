package downloader

import (
	"fmt"
	"regexp"
	"strconv"
)

// Default output templates. The directory template uses placeholder
// keys, the file template is passed through to yt-dlp and uses its
// %(...)s syntax.
const (
	DefaultDirTemplate  = "{show_name}/{season_name}"
	DefaultFileTemplate = "%(title)s.%(ext)s"
)

// placeholderPattern matches {name} or {name:02} style placeholders.
var placeholderPattern = regexp.MustCompile(`\{(\w+)(?::(\d+))?\}`)

// Template substitutes {name} placeholders with field values.
// {name:02} zero-pads integers. Absent fields and empty values render
// as the missing-value placeholder.
type Template struct {
	text    string
	missing string
}

// NewTemplate creates a template with the given missing-value
// placeholder.
func NewTemplate(text, missing string) *Template {
	return &Template{text: text, missing: missing}
}

// Render substitutes the fields into the template.
func (t *Template) Render(fields map[string]any) string {
	return placeholderPattern.ReplaceAllStringFunc(t.text, func(match string) string {
		parts := placeholderPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		val, ok := fields[parts[1]]
		if !ok || val == nil {
			return t.missing
		}
		if s, isString := val.(string); isString && s == "" {
			return t.missing
		}

		if len(parts) >= 3 && parts[2] != "" {
			width, err := strconv.Atoi(parts[2])
			if err == nil {
				switch v := val.(type) {
				case int:
					return fmt.Sprintf("%0*d", width, v)
				case int64:
					return fmt.Sprintf("%0*d", width, v)
				}
			}
		}

		return fmt.Sprintf("%v", val)
	})
}
