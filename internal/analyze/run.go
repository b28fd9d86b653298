package analyze

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dtnitsch/post-theme-analyzer/internal/common"
	"github.com/dtnitsch/post-theme-analyzer/models"
	"github.com/dtnitsch/post-theme-analyzer/pkg/chart"
	"github.com/dtnitsch/post-theme-analyzer/pkg/classifier"
	"github.com/dtnitsch/post-theme-analyzer/pkg/db"
	"github.com/dtnitsch/post-theme-analyzer/pkg/detector"
	"github.com/dtnitsch/post-theme-analyzer/pkg/export"
	"github.com/dtnitsch/post-theme-analyzer/pkg/manifest"
	"github.com/dtnitsch/post-theme-analyzer/pkg/mapreduce"
	"github.com/dtnitsch/post-theme-analyzer/pkg/parser"
	"github.com/dtnitsch/post-theme-analyzer/pkg/posts"
	"github.com/dtnitsch/post-theme-analyzer/pkg/session"
	"github.com/dtnitsch/post-theme-analyzer/pkg/storage"
)

// previewContentWidth caps the content column of the preview table.
const previewContentWidth = 60

// Report is what one analysis run produced.
type Report struct {
	SessionID     string
	SessionDir    string
	Mapping       models.KeywordMapping
	Posts         []models.Post
	KeywordCounts *models.KeywordCounts
	Exports       []export.Artifact
	ChartPath     string
	ManifestPath  string
}

// Run executes one analysis: load, classify, aggregate, export, chart and
// summarize. Human-readable output goes to out, diagnostics to logger.
func Run(logger *slog.Logger, cfg *models.AnalyzeConfig, out io.Writer) (*Report, error) {
	if cfg.InputPath == "" {
		return nil, fmt.Errorf("no input file provided via --input flag")
	}
	labelMode, err := models.ParseLabelMode(string(cfg.LabelMode))
	if err != nil {
		return nil, err
	}
	chartFormat, err := chart.ParseFormat(cfg.ChartFormat)
	if err != nil {
		return nil, err
	}

	mapping, err := common.BuildMapping(logger, cfg)
	if err != nil {
		return nil, err
	}

	table, err := posts.LoadFile(cfg.InputPath, posts.LoadOptions{ContentColumn: cfg.ContentColumn})
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded posts", "input", cfg.InputPath, "rows", len(table.Posts), "themes", mapping.Names())

	texts, err := prepareTexts(logger, cfg, table.Posts)
	if err != nil {
		return nil, err
	}

	// --- Map phase ---
	c := classifier.New(mapping, classifier.Options{LabelMode: labelMode, Normalize: cfg.Normalize})
	perRow := mapreduce.MapPosts(table.Posts, texts, c)

	// --- Reduce phase ---
	totals := mapreduce.Reduce(perRow)
	logger.Info("Classification complete", "rows", len(table.Posts), "distinct_keywords", totals.Len())

	frame, err := db.OpenMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to open session frame: %w", err)
	}
	defer frame.Close()

	if err := frame.InsertPosts(table.Posts); err != nil {
		return nil, err
	}

	sessionID := session.GenerateSessionID(cfg.InputPath, mapping.Names(), time.Now())
	sessionDir, err := session.EnsureSessionDir(cfg.OutputDir, sessionID)
	if err != nil {
		return nil, err
	}

	matched, unmatched, err := frame.MatchCounts()
	if err != nil {
		return nil, err
	}
	logger.Info("Session frame ready", "matched", matched, "unmatched", unmatched)

	s := &storage.Storage{}
	if s.HasFile(filepath.Join(sessionDir, manifest.FileName)) {
		logger.Warn("Session directory already used; overwriting its files", "session_dir", sessionDir)
	}
	exporter := &export.Exporter{
		Frame:   frame,
		Storage: s,
		Dir:     sessionDir,
		Header:  table.Header,
		Options: posts.WriteOptions{Language: cfg.DetectLanguage},
	}

	report := &Report{
		SessionID:     sessionID,
		SessionDir:    sessionDir,
		Mapping:       mapping,
		Posts:         table.Posts,
		KeywordCounts: totals,
	}

	themeExports, err := exporter.ExportThemes(mapping)
	if err != nil {
		return nil, err
	}
	for _, artifact := range themeExports {
		logger.Info("Exported theme", "theme", artifact.Theme, "rows", artifact.Rows, "file_path", artifact.FilePath)
		printPreview(out, fmt.Sprintf("Tema: %s", artifact.Theme), artifact, cfg.Preview)
	}

	multi, err := exporter.ExportMultiTheme()
	if err != nil {
		return nil, err
	}
	logger.Info("Exported multi-theme posts", "rows", multi.Rows, "file_path", multi.FilePath)
	printPreview(out, "Postagens com múltiplos temas", multi, cfg.Preview)

	annotated, err := exporter.ExportAll(export.AnnotatedFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to export annotated posts: %w", err)
	}
	logger.Info("Exported annotated posts", "rows", annotated.Rows, "file_path", annotated.FilePath)
	report.Exports = append(themeExports, multi, annotated)

	fmt.Fprintln(out, "\n--- Frequência das Palavras-chave ---")
	mapreduce.PrintTopKeywords(out, totals, cfg.TopN)

	if chartFormat != chart.FormatNone {
		chartPath, err := renderChart(s, sessionDir, totals, chartFormat)
		switch {
		case errors.Is(err, chart.ErrNoData):
			logger.Warn("No keyword matches; skipping chart")
		case err != nil:
			return nil, err
		default:
			report.ChartPath = chartPath
			logger.Info("Chart saved", "file_path", chartPath)
		}
	}

	var languages map[string]int
	if cfg.DetectLanguage {
		languages, err = frame.LanguageCounts()
		if err != nil {
			return nil, err
		}
	}

	manifestPath, err := manifest.GenerateSummary(manifest.Run{
		SessionID:     sessionID,
		InputFile:     cfg.InputPath,
		LabelMode:     labelMode,
		Mapping:       mapping,
		Frame:         frame,
		Posts:         table.Posts,
		Exports:       report.Exports,
		ChartPath:     report.ChartPath,
		KeywordCounts: totals,
		TopN:          cfg.TopN,
		Languages:     languages,
	}, s, sessionDir)
	if err != nil {
		return nil, err
	}
	report.ManifestPath = manifestPath

	fmt.Fprintf(out, "\nResults saved to: %s\n", sessionDir)
	return report, nil
}

// prepareTexts returns the text to classify for each post. It is nil when no
// cleaning is requested, so the classifier reads Post.Content directly.
// Language tags are written onto the posts.
func prepareTexts(logger *slog.Logger, cfg *models.AnalyzeConfig, rows []models.Post) ([]string, error) {
	if !cfg.StripHTML && !cfg.DetectLanguage {
		return nil, nil
	}

	var p *parser.Parser
	if cfg.StripHTML {
		p = &parser.Parser{}
	}
	var d *detector.LanguageDetector
	if cfg.DetectLanguage {
		logger.Info("Loading language models")
		d = detector.NewLanguageDetector()
	}

	texts := make([]string, len(rows))
	for i := range rows {
		text := rows[i].Content
		if p != nil {
			cleaned, err := p.PlainText(text)
			if err != nil {
				return nil, fmt.Errorf("failed to strip HTML from row %d: %w", rows[i].Index, err)
			}
			text = cleaned
		}
		if d != nil {
			rows[i].Language = d.Detect(text)
		}
		texts[i] = text
	}
	return texts, nil
}

func renderChart(s *storage.Storage, dir string, counts *models.KeywordCounts, f chart.Format) (string, error) {
	var buf bytes.Buffer
	if err := chart.Render(&buf, counts, f); err != nil {
		return "", err
	}
	path := filepath.Join(dir, chart.FileName(f))
	if err := s.SaveFile(path, buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to save chart: %w", err)
	}
	return path, nil
}

// printPreview prints the first n rows of an export with their labels.
func printPreview(out io.Writer, title string, artifact export.Artifact, n int) {
	fmt.Fprintf(out, "\n--- %s (%d posts) -> %s ---\n", title, artifact.Rows, artifact.FilePath)
	if n <= 0 || artifact.Rows == 0 {
		return
	}

	fmt.Fprintf(out, "%-6s %-*s %s\n", "Row", previewContentWidth, "Content", "Themes")
	fmt.Fprintln(out, strings.Repeat("-", 100))
	for i, p := range artifact.Posts {
		if i >= n {
			break
		}
		content := truncate(strings.Join(strings.Fields(p.Content), " "), previewContentWidth)
		pad := previewContentWidth - utf8.RuneCountInString(content)
		if pad < 0 {
			pad = 0
		}
		fmt.Fprintf(out, "%-6d %s%s %s\n", p.Index, content, strings.Repeat(" ", pad), p.Themes)
	}
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}
