package common

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dtnitsch/post-theme-analyzer/models"
	"github.com/dtnitsch/post-theme-analyzer/pkg/themes"
)

// SplitList splits a comma-separated flag value, trimming whitespace and
// dropping empty entries.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LoadThemeTable returns the theme table to select from: the YAML keywords
// file when one is given, the predefined table otherwise.
func LoadThemeTable(keywordsFile string) (models.KeywordMapping, error) {
	if keywordsFile == "" {
		return themes.Predefined(), nil
	}
	table, err := themes.LoadFile(keywordsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load keywords file: %w", err)
	}
	return table, nil
}

// BuildMapping assembles the keyword mapping described by cfg.
// An empty mapping is not an error (every post is labelled None) but is
// logged as a warning.
func BuildMapping(logger *slog.Logger, cfg *models.AnalyzeConfig) (models.KeywordMapping, error) {
	table, err := LoadThemeTable(cfg.KeywordsFile)
	if err != nil {
		return nil, err
	}

	selected := cfg.Themes
	if cfg.AllThemes {
		selected = table.Names()
	}

	mapping, err := themes.Build(table, selected, cfg.CustomTheme, cfg.CustomKeywords)
	if err != nil {
		return nil, err
	}

	if cfg.CustomTheme != "" && cfg.CustomKeywords == "" {
		logger.Warn("Custom theme ignored: no keywords given", "custom_theme", cfg.CustomTheme)
	}
	if len(mapping) == 0 {
		logger.Warn("No themes selected; every post will be labelled None")
	}

	return mapping, nil
}
