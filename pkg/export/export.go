// Package export writes the per-theme and multi-theme CSV artifacts of a run.
package export

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/post-theme-analyzer/models"
	"github.com/dtnitsch/post-theme-analyzer/pkg/db"
	"github.com/dtnitsch/post-theme-analyzer/pkg/posts"
	"github.com/dtnitsch/post-theme-analyzer/pkg/storage"
)

const (
	// MultiThemeFileName is the export of posts labelled with more than one theme.
	MultiThemeFileName = "Twitter_posts_multi_themes.csv"
	// AnnotatedFileName is the export of every post with its derived columns.
	AnnotatedFileName = "Twitter_posts_annotated.csv"
)

// Artifact describes one written export.
type Artifact struct {
	Theme     string        `yaml:"theme,omitempty"`
	FilePath  string        `yaml:"file_path"`
	Rows      int           `yaml:"rows"`
	SizeBytes int64         `yaml:"size_bytes"`
	Posts     []models.Post `yaml:"-"`
}

// Exporter reads filtered posts from the session frame and saves them as CSV.
type Exporter struct {
	Frame   *db.DB
	Storage *storage.Storage
	Dir     string
	Header  []string
	Options posts.WriteOptions
}

var fileNameReplacer = strings.NewReplacer(
	"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
	"\"", "_", "<", "_", ">", "_", "|", "_",
)

// ThemeFileName returns the export file name for a theme.
func ThemeFileName(theme string) string {
	safe := fileNameReplacer.Replace(strings.TrimSpace(theme))
	if safe == "" || safe == "." || safe == ".." {
		safe = "_"
	}
	return fmt.Sprintf("Twitter_posts_%s.csv", safe)
}

// themeFileNames maps every theme to a distinct file name. Names that
// sanitize to an already used file (another theme, or a fixed export) get a
// numeric suffix: Twitter_posts_A_B_2.csv.
func themeFileNames(mapping models.KeywordMapping) []string {
	used := map[string]bool{
		MultiThemeFileName: true,
		AnnotatedFileName:  true,
	}
	names := make([]string, len(mapping))
	for i, theme := range mapping {
		name := ThemeFileName(theme.Name)
		base := strings.TrimSuffix(name, ".csv")
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s_%d.csv", base, n)
		}
		used[name] = true
		names[i] = name
	}
	return names
}

// ExportThemes writes one CSV per theme in mapping order.
func (e *Exporter) ExportThemes(mapping models.KeywordMapping) ([]Artifact, error) {
	fileNames := themeFileNames(mapping)
	artifacts := make([]Artifact, 0, len(mapping))
	for i, theme := range mapping {
		rows, err := e.Frame.PostsByTheme(theme.Name)
		if err != nil {
			return nil, err
		}
		artifact, err := e.save(fileNames[i], rows)
		if err != nil {
			return nil, fmt.Errorf("failed to export theme %q: %w", theme.Name, err)
		}
		artifact.Theme = theme.Name
		artifacts = append(artifacts, artifact)
	}
	return artifacts, nil
}

// ExportMultiTheme writes the CSV of posts with more than one label entry.
func (e *Exporter) ExportMultiTheme() (Artifact, error) {
	rows, err := e.Frame.MultiThemePosts()
	if err != nil {
		return Artifact{}, err
	}
	artifact, err := e.save(MultiThemeFileName, rows)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to export multi-theme posts: %w", err)
	}
	return artifact, nil
}

// ExportAll writes every annotated post to fileName.
func (e *Exporter) ExportAll(fileName string) (Artifact, error) {
	rows, err := e.Frame.AllPosts()
	if err != nil {
		return Artifact{}, err
	}
	return e.save(fileName, rows)
}

func (e *Exporter) save(fileName string, rows []models.Post) (Artifact, error) {
	var buf bytes.Buffer
	if err := posts.Write(&buf, e.Header, rows, e.Options); err != nil {
		return Artifact{}, err
	}

	path := filepath.Join(e.Dir, fileName)
	if err := e.Storage.SaveFile(path, buf.Bytes()); err != nil {
		return Artifact{}, err
	}

	return Artifact{
		FilePath:  path,
		Rows:      len(rows),
		SizeBytes: int64(buf.Len()),
		Posts:     rows,
	}, nil
}
