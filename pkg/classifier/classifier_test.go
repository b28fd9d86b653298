package classifier

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dtnitsch/post-theme-analyzer/models"
)

func TestClassify_Examples(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		mapping    models.KeywordMapping
		wantLabel  string
		wantCounts map[string]int
	}{
		{
			name:       "single keyword",
			text:       "A Amazônia está em perigo",
			mapping:    models.KeywordMapping{{Name: "AMAZONIA", Keywords: []string{"Amazônia"}}},
			wantLabel:  "AMAZONIA",
			wantCounts: map[string]int{"Amazônia": 1},
		},
		{
			name: "two themes, partial name does not match",
			text: "Macron fala sobre soberania e diplomacia",
			mapping: models.KeywordMapping{
				{Name: "Soberania", Keywords: []string{"Soberania", "Emmanuel Macron"}},
				{Name: "Diplomacia", Keywords: []string{"Diplomacia"}},
			},
			wantLabel:  "Soberania, Diplomacia",
			wantCounts: map[string]int{"Soberania": 1, "Diplomacia": 1},
		},
		{
			name:       "no match",
			text:       "nada relevante aqui",
			mapping:    models.KeywordMapping{{Name: "AMAZONIA", Keywords: []string{"Amazônia"}}},
			wantLabel:  "None",
			wantCounts: map[string]int{},
		},
		{
			name: "theme repeated once per matching keyword",
			text: "Índios denunciam queimadas na reserva",
			mapping: models.KeywordMapping{
				{Name: "Territórios", Keywords: []string{"Índios", "indígenas", "queimadas"}},
			},
			wantLabel:  "Territórios, Territórios",
			wantCounts: map[string]int{"Índios": 1, "queimadas": 1},
		},
		{
			name: "shared keyword counted per theme",
			text: "Emmanuel Macron visita Belém",
			mapping: models.KeywordMapping{
				{Name: "Soberania", Keywords: []string{"Soberania", "Emmanuel Macron"}},
				{Name: "Diplomacia", Keywords: []string{"Diplomacia", "Emmanuel Macron"}},
			},
			wantLabel:  "Soberania, Diplomacia",
			wantCounts: map[string]int{"Emmanuel Macron": 2},
		},
		{
			name:       "case insensitive both ways",
			text:       "SUSTENTABILIDADE e ongs",
			mapping:    models.KeywordMapping{{Name: "Meio Ambiente", Keywords: []string{"Sustentabilidade", "ONGs"}}},
			wantLabel:  "Meio Ambiente, Meio Ambiente",
			wantCounts: map[string]int{"Sustentabilidade": 1, "ONGs": 1},
		},
		{
			name:       "substring inside a longer word",
			text:       "amazônia-legal",
			mapping:    models.KeywordMapping{{Name: "AMAZONIA", Keywords: []string{"Amazônia"}}},
			wantLabel:  "AMAZONIA",
			wantCounts: map[string]int{"Amazônia": 1},
		},
		{
			name:       "empty text",
			text:       "",
			mapping:    models.KeywordMapping{{Name: "AMAZONIA", Keywords: []string{"Amazônia"}}},
			wantLabel:  "None",
			wantCounts: map[string]int{},
		},
		{
			name:       "empty mapping",
			text:       "A Amazônia está em perigo",
			mapping:    nil,
			wantLabel:  "None",
			wantCounts: map[string]int{},
		},
		{
			name:       "theme with no keywords never matches",
			text:       "qualquer coisa",
			mapping:    models.KeywordMapping{{Name: "Vazio"}},
			wantLabel:  "None",
			wantCounts: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, counts := Classify(tt.text, tt.mapping)
			if label != tt.wantLabel {
				t.Errorf("label = %q, want %q", label, tt.wantLabel)
			}
			if got := counts.Map(); !reflect.DeepEqual(got, tt.wantCounts) {
				t.Errorf("counts = %v, want %v", got, tt.wantCounts)
			}
		})
	}
}

func TestClassify_DedupeMode(t *testing.T) {
	mapping := models.KeywordMapping{
		{Name: "Territórios", Keywords: []string{"Índios", "queimadas"}},
		{Name: "AMAZONIA", Keywords: []string{"Amazônia"}},
	}
	c := New(mapping, Options{LabelMode: models.LabelModeDedupe})

	label, counts := c.Classify("Queimadas e índios na Amazônia")
	if label != "Territórios, AMAZONIA" {
		t.Errorf("label = %q, want %q", label, "Territórios, AMAZONIA")
	}
	want := map[string]int{"Índios": 1, "queimadas": 1, "Amazônia": 1}
	if got := counts.Map(); !reflect.DeepEqual(got, want) {
		t.Errorf("counts = %v, want %v", got, want)
	}

	label, _ = c.Classify("Índios denunciam queimadas")
	if label != "Territórios" {
		t.Errorf("single theme label = %q, want %q", label, "Territórios")
	}
}

func TestClassify_CountOrderFollowsMapping(t *testing.T) {
	mapping := models.KeywordMapping{
		{Name: "B", Keywords: []string{"beta", "alfa"}},
		{Name: "A", Keywords: []string{"gama"}},
	}
	_, counts := Classify("gama alfa beta", mapping)
	if got, want := counts.Keys(), []string{"beta", "alfa", "gama"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestClassify_Normalize(t *testing.T) {
	decomposed := "A Amazo\u0302nia esta\u0301 em perigo"
	mapping := models.KeywordMapping{{Name: "AMAZONIA", Keywords: []string{"Amazônia"}}}

	if label, _ := Classify(decomposed, mapping); label != models.NoThemeLabel {
		t.Errorf("without normalization label = %q, want None", label)
	}

	c := New(mapping, Options{Normalize: true})
	label, counts := c.Classify(decomposed)
	if label != "AMAZONIA" {
		t.Errorf("with normalization label = %q, want AMAZONIA", label)
	}
	if counts.Get("Amazônia") != 1 {
		t.Errorf("count = %d, want 1 keyed by the original keyword", counts.Get("Amazônia"))
	}
}

func TestClassify_Properties(t *testing.T) {
	mapping := models.KeywordMapping{
		{Name: "AMAZONIA", Keywords: []string{"Amazônia"}},
		{Name: "Diplomacia", Keywords: []string{"Diplomacia", "França", "Emmanuel Macron"}},
		{Name: "Territórios", Keywords: []string{"queimadas", "povos da floresta"}},
	}
	texts := []string{
		"",
		"nada",
		"FRANÇA e Amazônia",
		"povos da floresta sofrem com queimadas",
		"emmanuel macron, frança, diplomacia",
	}
	c := New(mapping, Options{})

	for _, text := range texts {
		label, counts := c.Classify(text)
		label2, counts2 := c.Classify(text)

		if label == "" {
			t.Errorf("Classify(%q) returned an empty label", text)
		}
		if label != label2 || !reflect.DeepEqual(counts.Map(), counts2.Map()) {
			t.Errorf("Classify(%q) is not deterministic", text)
		}

		lower := strings.ToLower(text)
		anyHit := false
		for _, theme := range mapping {
			for _, kw := range theme.Keywords {
				if !strings.Contains(lower, strings.ToLower(kw)) {
					continue
				}
				anyHit = true
				if !strings.Contains(label, theme.Name) {
					t.Errorf("Classify(%q) label %q misses theme %q", text, label, theme.Name)
				}
				if counts.Get(kw) < 1 {
					t.Errorf("Classify(%q) count for %q = %d, want >= 1", text, kw, counts.Get(kw))
				}
			}
		}
		if !anyHit && (label != models.NoThemeLabel || counts.Len() != 0) {
			t.Errorf("Classify(%q) = %q %v, want None and empty counts", text, label, counts.Map())
		}
	}
}
