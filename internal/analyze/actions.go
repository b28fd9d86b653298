package analyze

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dtnitsch/post-theme-analyzer/internal/common"
	"github.com/dtnitsch/post-theme-analyzer/models"
	"github.com/dtnitsch/post-theme-analyzer/pkg/classifier"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// AnalyzeAction runs one analysis of the --input CSV.
func AnalyzeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg := configFromFlags(c)
	cfg.InputPath = c.String("input")
	cfg.OutputDir = c.String("output-dir")
	cfg.ContentColumn = c.String("content-column")
	cfg.StripHTML = c.Bool("strip-html")
	cfg.DetectLanguage = c.Bool("detect-language")
	cfg.ChartFormat = c.String("chart")
	cfg.Preview = c.Int("preview")
	cfg.TopN = c.Int("top")

	report, err := Run(logger, cfg, os.Stdout)
	if err != nil {
		return err
	}

	logger.Info("Analysis complete",
		"session_id", report.SessionID,
		"rows", len(report.Posts),
		"exports", len(report.Exports),
		"manifest", report.ManifestPath,
	)
	return nil
}

// ClassificationResult is the output of the classify command.
type ClassificationResult struct {
	Themes       string                `yaml:"themes"`
	KeywordCount *models.KeywordCounts `yaml:"keyword_count"`
}

// ClassifyAction classifies a single text and prints the result as YAML.
func ClassifyAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	if !c.IsSet("text") {
		return fmt.Errorf("no text provided via --text flag")
	}
	return classifyText(logger, configFromFlags(c), c.String("text"), os.Stdout)
}

func classifyText(logger *slog.Logger, cfg *models.AnalyzeConfig, text string, out io.Writer) error {
	labelMode, err := models.ParseLabelMode(string(cfg.LabelMode))
	if err != nil {
		return err
	}
	mapping, err := common.BuildMapping(logger, cfg)
	if err != nil {
		return err
	}

	label, counts := classifier.New(mapping, classifier.Options{
		LabelMode: labelMode,
		Normalize: cfg.Normalize,
	}).Classify(text)

	data, err := yaml.Marshal(ClassificationResult{Themes: label, KeywordCount: counts})
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	_, err = out.Write(data)
	return err
}

// configFromFlags reads the keyword selection and classification flags
// shared by analyze and classify.
func configFromFlags(c *cli.Context) *models.AnalyzeConfig {
	return &models.AnalyzeConfig{
		Themes:         common.SplitList(c.String("themes")),
		AllThemes:      c.Bool("all"),
		CustomTheme:    c.String("custom-theme"),
		CustomKeywords: c.String("custom-keywords"),
		KeywordsFile:   c.String("keywords-file"),
		LabelMode:      models.LabelMode(c.String("label-mode")),
		Normalize:      c.Bool("normalize"),
	}
}
