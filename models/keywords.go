package models

import (
	"errors"
	"fmt"
)

// Theme is a named category of interest defined by its trigger keywords.
type Theme struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// KeywordMapping is the ordered set of themes active for one analysis run.
// Classification visits themes, and keywords within a theme, in slice order.
type KeywordMapping []Theme

// Names returns the theme names in mapping order.
func (m KeywordMapping) Names() []string {
	names := make([]string, len(m))
	for i, t := range m {
		names[i] = t.Name
	}
	return names
}

// Find returns the theme with the given name.
func (m KeywordMapping) Find(name string) (Theme, bool) {
	for _, t := range m {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Clone returns a deep copy so callers can't mutate shared keyword lists.
func (m KeywordMapping) Clone() KeywordMapping {
	if m == nil {
		return nil
	}
	out := make(KeywordMapping, len(m))
	for i, t := range m {
		out[i] = Theme{
			Name:     t.Name,
			Keywords: append([]string(nil), t.Keywords...),
		}
	}
	return out
}

// Validate checks that theme names are non-empty and unique.
func (m KeywordMapping) Validate() error {
	seen := make(map[string]struct{}, len(m))
	for i, t := range m {
		if t.Name == "" {
			return fmt.Errorf("theme %d: %w", i, errEmptyThemeName)
		}
		if _, ok := seen[t.Name]; ok {
			return fmt.Errorf("theme %q: %w", t.Name, errDuplicateTheme)
		}
		seen[t.Name] = struct{}{}
	}
	return nil
}

var (
	errEmptyThemeName = errors.New("empty theme name")
	errDuplicateTheme = errors.New("duplicate theme name")
)
