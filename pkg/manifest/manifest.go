package manifest

import (
	"github.com/dtnitsch/post-theme-analyzer/models"
	"github.com/dtnitsch/post-theme-analyzer/pkg/export"
)

// SummaryManifest represents the structure of summary.yaml.
// It gives a lightweight overview of one analysis run: how many posts matched,
// which files were written and which keywords drove the classification,
// without opening the exported CSVs.
type SummaryManifest struct {
	GeneratedAt   string                `yaml:"generated_at"`
	SessionID     string                `yaml:"session_id"`
	InputFile     string                `yaml:"input_file"`
	TotalPosts    int                   `yaml:"total_posts"`
	Matched       int                   `yaml:"matched"`
	Unmatched     int                   `yaml:"unmatched"`
	MultiTheme    int                   `yaml:"multi_theme"`
	LabelMode     models.LabelMode      `yaml:"label_mode"`
	Languages     map[string]int        `yaml:"languages,omitempty"`
	Themes        []ThemeSummary        `yaml:"themes"`
	Exports       []export.Artifact     `yaml:"exports"`
	Chart         string                `yaml:"chart,omitempty"`
	KeywordCounts *models.KeywordCounts `yaml:"keyword_counts"`
	TopKeywords   []string              `yaml:"top_keywords"`
}

// ThemeSummary represents one theme of the mapping used for the run.
type ThemeSummary struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Posts    int      `yaml:"posts"`
}
