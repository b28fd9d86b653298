// Package classifier tags post text with themes by case-insensitive keyword
// containment.
package classifier

import (
	"strings"

	"github.com/dtnitsch/post-theme-analyzer/models"
	"golang.org/x/text/unicode/norm"
)

// Options tunes how labels are built and how text is compared.
type Options struct {
	LabelMode models.LabelMode
	// Normalize applies Unicode NFC to text and keywords before lower-casing,
	// so composed and decomposed accents compare equal.
	Normalize bool
}

type foldedTheme struct {
	name     string
	keywords []string // original case, used as count keys
	folded   []string
}

// Classifier holds a keyword mapping with keywords folded once up front.
type Classifier struct {
	themes []foldedTheme
	opts   Options
}

// New builds a Classifier for mapping. The mapping is copied.
func New(mapping models.KeywordMapping, opts Options) *Classifier {
	c := &Classifier{
		themes: make([]foldedTheme, len(mapping)),
		opts:   opts,
	}
	for i, t := range mapping {
		ft := foldedTheme{
			name:     t.Name,
			keywords: append([]string(nil), t.Keywords...),
			folded:   make([]string, len(t.Keywords)),
		}
		for j, word := range t.Keywords {
			ft.folded[j] = c.fold(word)
		}
		c.themes[i] = ft
	}
	return c
}

// Classify is a shortcut for New(mapping, Options{}).Classify(text).
func Classify(text string, mapping models.KeywordMapping) (string, *models.KeywordCounts) {
	return New(mapping, Options{}).Classify(text)
}

// Classify returns the theme label for text and per-keyword hit counts.
//
// Every (theme, keyword) pair whose keyword occurs in text is one hit: the
// theme name is appended to the label and the keyword's count is incremented.
// A keyword listed under two themes therefore counts 2 for a single
// occurrence. With no hits the label is models.NoThemeLabel.
func (c *Classifier) Classify(text string) (string, *models.KeywordCounts) {
	counts := models.NewKeywordCounts()
	contentLower := c.fold(text)

	var matched []string
	var seen map[string]struct{}
	if c.opts.LabelMode == models.LabelModeDedupe {
		seen = make(map[string]struct{})
	}

	for _, theme := range c.themes {
		for i, word := range theme.folded {
			if !strings.Contains(contentLower, word) {
				continue
			}
			counts.Add(theme.keywords[i], 1)

			if seen != nil {
				if _, dup := seen[theme.name]; dup {
					continue
				}
				seen[theme.name] = struct{}{}
			}
			matched = append(matched, theme.name)
		}
	}

	if len(matched) == 0 {
		return models.NoThemeLabel, counts
	}
	return strings.Join(matched, models.ThemeSeparator), counts
}

func (c *Classifier) fold(s string) string {
	if c.opts.Normalize {
		s = norm.NFC.String(s)
	}
	return strings.ToLower(s)
}
