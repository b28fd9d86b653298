package models

import "strings"

const (
	// NoThemeLabel marks a post that matched no keyword.
	NoThemeLabel = "None"
	// ThemeSeparator joins matched theme names in a label.
	ThemeSeparator = ", "
)

// Post is one row of the input table. Fields holds the raw CSV values in
// header order; the remaining fields are derived during classification.
type Post struct {
	Index   int
	Fields  []string
	Content string

	Themes       string
	KeywordCount *KeywordCounts
	Language     string
}

// IsMultiTheme reports whether the label lists more than one theme entry.
// In literal label mode this is also true for one theme hit by two keywords.
func (p *Post) IsMultiTheme() bool {
	return strings.Contains(p.Themes, ThemeSeparator)
}
