// Package themes builds the keyword mapping for an analysis run from the
// predefined theme table, a user-selected subset and an optional custom theme.
package themes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dtnitsch/post-theme-analyzer/models"
)

// ErrUnknownTheme is returned when a selected name is not in the theme table.
var ErrUnknownTheme = errors.New("unknown theme")

// predefined is never handed out directly; Predefined returns a copy.
var predefined = models.KeywordMapping{
	{Name: "AMAZONIA", Keywords: []string{"Amazônia"}},
	{Name: "Meio Ambiente", Keywords: []string{"Meio Ambiente", "Sustentabilidade", "ONGs", "Movimentos Sociais"}},
	{Name: "Territórios", Keywords: []string{"Índios", "indígenas", "conflitos de terra", "demarcação de terras", "povos da floresta", "queimadas", "comunidades tradicionais"}},
	{Name: "Soberania", Keywords: []string{"Soberania", "Emmanuel Macron"}},
	{Name: "Diplomacia", Keywords: []string{"Diplomacia", "França", "Emmanuel Macron", "Relações Externas"}},
}

// Predefined returns the built-in theme table.
func Predefined() models.KeywordMapping {
	return predefined.Clone()
}

// ParseKeywordList splits a comma-separated keyword string, trimming each
// entry and dropping empty ones.
func ParseKeywordList(raw string) []string {
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if kw := strings.TrimSpace(p); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// Build assembles the mapping for one run. Selected themes are taken from
// table in the order given (repeats are ignored). The custom theme is added
// only when both its name and keyword string are set; if its name matches a
// selected theme it replaces that theme in place.
func Build(table models.KeywordMapping, selected []string, customName, customKeywords string) (models.KeywordMapping, error) {
	mapping := make(models.KeywordMapping, 0, len(selected)+1)
	seen := make(map[string]int, len(selected))

	for _, name := range selected {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		theme, ok := table.Find(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownTheme, name, strings.Join(table.Names(), ", "))
		}
		seen[name] = len(mapping)
		mapping = append(mapping, models.Theme{
			Name:     theme.Name,
			Keywords: append([]string(nil), theme.Keywords...),
		})
	}

	customName = strings.TrimSpace(customName)
	if customName != "" && customKeywords != "" {
		custom := models.Theme{Name: customName, Keywords: ParseKeywordList(customKeywords)}
		if i, ok := seen[customName]; ok {
			mapping[i] = custom
		} else {
			mapping = append(mapping, custom)
		}
	}

	return mapping, nil
}
