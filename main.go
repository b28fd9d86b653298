package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/post-theme-analyzer/internal/analyze"
	"github.com/dtnitsch/post-theme-analyzer/internal/themes"
	"github.com/dtnitsch/post-theme-analyzer/pkg/mapreduce"
	"github.com/dtnitsch/post-theme-analyzer/pkg/posts"
	"github.com/dtnitsch/post-theme-analyzer/pkg/session"
	"github.com/urfave/cli/v2"
)

// keywordFlags select and tune the keyword mapping; shared by analyze and classify.
func keywordFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "themes",
			Usage: `Comma-separated theme names, e.g. "AMAZONIA,Diplomacia"`,
		},
		&cli.BoolFlag{
			Name:  "all",
			Usage: "Select every theme of the table",
		},
		&cli.StringFlag{
			Name:  "custom-theme",
			Usage: "Name of an extra user-defined theme",
		},
		&cli.StringFlag{
			Name:  "custom-keywords",
			Usage: `Comma-separated keywords for --custom-theme, e.g. "aquecimento, COP30"`,
		},
		&cli.StringFlag{
			Name:  "keywords-file",
			Usage: "YAML theme table to use instead of the built-in one",
		},
		&cli.StringFlag{
			Name:    "label-mode",
			Value:   "literal",
			Usage:   "Theme label mode: literal (one entry per matching keyword) or dedupe",
			EnvVars: []string{"THEME_ANALYZER_LABEL_MODE"},
		},
		&cli.BoolFlag{
			Name:  "normalize",
			Usage: "Apply Unicode NFC to text and keywords before matching",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "Only log errors",
		},
	}
}

func main() {
	app := &cli.App{
		Name:  "post-theme-analyzer",
		Usage: "Classify social-media posts by theme keywords and export the results",
		Description: `Loads a CSV of posts, tags every post with the themes whose keywords it
contains (case-insensitive substring match) and writes per-theme exports,
a keyword-frequency chart and a summary.yaml into a session directory.

Run 'post-theme-analyzer quickstart' for examples.`,
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "Classify a CSV of posts and export the results",
				Action: analyze.AnalyzeAction,
				Flags: append(keywordFlags(),
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "CSV file with a header row and a content column",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "content-column",
						Value: posts.DefaultContentColumn,
						Usage: "Name of the column holding the post text",
					},
					&cli.StringFlag{
						Name:    "output-dir",
						Value:   session.DefaultBaseDir,
						Usage:   "Base directory for session output",
						EnvVars: []string{"THEME_ANALYZER_OUTPUT_DIR"},
					},
					&cli.StringFlag{
						Name:  "chart",
						Value: "png",
						Usage: "Keyword chart format: png, svg or none",
					},
					&cli.BoolFlag{
						Name:  "strip-html",
						Usage: "Strip HTML markup from content before matching",
					},
					&cli.BoolFlag{
						Name:  "detect-language",
						Usage: "Add a Language column with the detected ISO-639-1 code",
					},
					&cli.IntFlag{
						Name:  "preview",
						Value: 5,
						Usage: "Rows to preview per export (0 disables)",
					},
					&cli.IntFlag{
						Name:  "top",
						Value: mapreduce.DefaultTopN,
						Usage: "Keywords to print in the frequency table (0 prints all)",
					},
				),
			},
			{
				Name:   "classify",
				Usage:  "Classify a single text and print the result as YAML",
				Action: analyze.ClassifyAction,
				Flags: append(keywordFlags(),
					&cli.StringFlag{
						Name:     "text",
						Aliases:  []string{"t"},
						Usage:    "Text to classify",
						Required: true,
					},
				),
			},
			{
				Name:   "themes",
				Usage:  "Print the theme table as YAML",
				Action: themes.ThemesAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "keywords-file",
						Usage: "YAML theme table to print instead of the built-in one",
					},
				},
			},
			{
				Name:   "quickstart",
				Usage:  "Print a YAML quick start",
				Action: themes.QuickstartAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
