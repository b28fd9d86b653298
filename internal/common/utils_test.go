package common

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dtnitsch/post-theme-analyzer/models"
	"github.com/dtnitsch/post-theme-analyzer/pkg/themes"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"AMAZONIA", []string{"AMAZONIA"}},
		{" AMAZONIA , Meio Ambiente,,", []string{"AMAZONIA", "Meio Ambiente"}},
	}

	for _, tt := range tests {
		got := SplitList(tt.raw)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitList(%q) = %#v, want %#v", tt.raw, got, tt.want)
		}
	}
}

func TestBuildMapping(t *testing.T) {
	tests := []struct {
		name      string
		cfg       models.AnalyzeConfig
		wantNames []string
		wantErr   error
	}{
		{
			name:      "selected in given order",
			cfg:       models.AnalyzeConfig{Themes: []string{"Diplomacia", "AMAZONIA"}},
			wantNames: []string{"Diplomacia", "AMAZONIA"},
		},
		{
			name:      "all themes",
			cfg:       models.AnalyzeConfig{AllThemes: true},
			wantNames: []string{"AMAZONIA", "Meio Ambiente", "Territórios", "Soberania", "Diplomacia"},
		},
		{
			name: "custom theme appended",
			cfg: models.AnalyzeConfig{
				Themes:         []string{"Soberania"},
				CustomTheme:    "Clima",
				CustomKeywords: "aquecimento, COP30",
			},
			wantNames: []string{"Soberania", "Clima"},
		},
		{
			name:      "custom theme without keywords dropped",
			cfg:       models.AnalyzeConfig{CustomTheme: "Clima"},
			wantNames: []string{},
		},
		{
			name:    "unknown theme",
			cfg:     models.AnalyzeConfig{Themes: []string{"Economia"}},
			wantErr: themes.ErrUnknownTheme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			mapping, err := BuildMapping(discardLogger(), &cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("BuildMapping() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildMapping() error = %v", err)
			}
			got := mapping.Names()
			if len(got) == 0 && len(tt.wantNames) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.wantNames) {
				t.Errorf("names = %v, want %v", got, tt.wantNames)
			}
		})
	}
}

func TestBuildMapping_KeywordsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	content := "themes:\n  - name: Clima\n    keywords: [aquecimento, COP30]\n  - name: Energia\n    keywords: [petróleo]\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := models.AnalyzeConfig{KeywordsFile: path, AllThemes: true}
	mapping, err := BuildMapping(discardLogger(), &cfg)
	if err != nil {
		t.Fatalf("BuildMapping() error = %v", err)
	}
	if got := mapping.Names(); !reflect.DeepEqual(got, []string{"Clima", "Energia"}) {
		t.Errorf("names = %v", got)
	}

	cfg = models.AnalyzeConfig{KeywordsFile: path, Themes: []string{"AMAZONIA"}}
	if _, err := BuildMapping(discardLogger(), &cfg); !errors.Is(err, themes.ErrUnknownTheme) {
		t.Errorf("selecting a predefined theme from a keywords file should fail, got %v", err)
	}
}

func TestLoadThemeTable_MissingFile(t *testing.T) {
	if _, err := LoadThemeTable(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing keywords file")
	}
}
