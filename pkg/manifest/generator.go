package manifest

import (
	"fmt"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/post-theme-analyzer/models"
	"github.com/dtnitsch/post-theme-analyzer/pkg/export"
	"github.com/dtnitsch/post-theme-analyzer/pkg/mapreduce"
	"github.com/dtnitsch/post-theme-analyzer/pkg/storage"
)

// FileName is the manifest written into every session directory.
const FileName = "summary.yaml"

// Frame answers the per-theme and match counts of the session frame.
// *db.DB implements it.
type Frame interface {
	CountByTheme(theme string) (int, error)
	MatchCounts() (matched, unmatched int, err error)
}

// Run collects what one analysis produced.
// This is passed from the analyze command to avoid circular dependencies.
type Run struct {
	SessionID     string
	InputFile     string
	LabelMode     models.LabelMode
	Mapping       models.KeywordMapping
	Frame         Frame
	Posts         []models.Post
	Exports       []export.Artifact
	ChartPath     string
	KeywordCounts *models.KeywordCounts
	TopN          int // top_keywords length, <= 0 lists every keyword
	Languages     map[string]int
	GeneratedAt   time.Time
}

// Build aggregates a run into a manifest. Per-theme and match counts come
// from the frame, so they agree with the theme exports.
func Build(run Run) (SummaryManifest, error) {
	generatedAt := run.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}
	counts := run.KeywordCounts
	if counts == nil {
		counts = models.NewKeywordCounts()
	}

	m := SummaryManifest{
		GeneratedAt:   generatedAt.Format(time.RFC3339),
		SessionID:     run.SessionID,
		InputFile:     run.InputFile,
		TotalPosts:    len(run.Posts),
		LabelMode:     run.LabelMode,
		Languages:     run.Languages,
		Themes:        make([]ThemeSummary, 0, len(run.Mapping)),
		Exports:       run.Exports,
		Chart:         run.ChartPath,
		KeywordCounts: counts,
		TopKeywords:   mapreduce.TopKeywords(counts, run.TopN),
	}
	if m.Exports == nil {
		m.Exports = []export.Artifact{}
	}

	for _, p := range run.Posts {
		if p.IsMultiTheme() {
			m.MultiTheme++
		}
	}

	if run.Frame == nil {
		return SummaryManifest{}, fmt.Errorf("manifest needs a session frame")
	}
	var err error
	m.Matched, m.Unmatched, err = run.Frame.MatchCounts()
	if err != nil {
		return SummaryManifest{}, err
	}

	for _, theme := range run.Mapping {
		posts, err := run.Frame.CountByTheme(theme.Name)
		if err != nil {
			return SummaryManifest{}, err
		}
		m.Themes = append(m.Themes, ThemeSummary{
			Name:     theme.Name,
			Keywords: append([]string{}, theme.Keywords...),
			Posts:    posts,
		})
	}

	return m, nil
}

// GenerateSummary builds the manifest for run and saves it as summary.yaml in
// dir. Returns the path to the generated manifest file.
func GenerateSummary(run Run, s *storage.Storage, dir string) (string, error) {
	m, err := Build(run)
	if err != nil {
		return "", fmt.Errorf("error building manifest: %w", err)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("error marshalling manifest: %w", err)
	}

	manifestPath := filepath.Join(dir, FileName)
	if err := s.SaveFile(manifestPath, data); err != nil {
		return "", fmt.Errorf("error saving manifest: %w", err)
	}

	return manifestPath, nil
}
