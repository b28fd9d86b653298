// Package models defines data structures for configuration and classification.
package models

// AnalyzeConfig holds runtime configuration for one analysis run.
// All values come from CLI flags, not external config files.
type AnalyzeConfig struct {
	InputPath     string
	OutputDir     string
	ContentColumn string

	// Keyword selection
	Themes         []string
	AllThemes      bool
	CustomTheme    string
	CustomKeywords string
	KeywordsFile   string

	// Classification knobs
	LabelMode LabelMode
	Normalize bool

	// Optional enrichment
	StripHTML      bool
	DetectLanguage bool

	// Output
	ChartFormat string
	Preview     int
	TopN        int
}
