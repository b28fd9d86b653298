package mapreduce

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/dtnitsch/post-theme-analyzer/models"
	"github.com/dtnitsch/post-theme-analyzer/pkg/classifier"
)

func counts(pairs ...interface{}) *models.KeywordCounts {
	kc := models.NewKeywordCounts()
	for i := 0; i < len(pairs); i += 2 {
		kc.Add(pairs[i].(string), pairs[i+1].(int))
	}
	return kc
}

func TestReduce(t *testing.T) {
	rows := []*models.KeywordCounts{
		counts("Amazônia", 1),
		counts(),
		counts("queimadas", 1, "Amazônia", 1),
		nil,
		counts("Emmanuel Macron", 2),
	}

	got := Reduce(rows)

	if want := []string{"Amazônia", "queimadas", "Emmanuel Macron"}; !reflect.DeepEqual(got.Keys(), want) {
		t.Errorf("Keys() = %v, want %v", got.Keys(), want)
	}
	want := map[string]int{"Amazônia": 2, "queimadas": 1, "Emmanuel Macron": 2}
	if !reflect.DeepEqual(got.Map(), want) {
		t.Errorf("Reduce() = %v, want %v", got.Map(), want)
	}
}

func TestReduce_OrderIndependentTotals(t *testing.T) {
	a := counts("x", 1, "y", 2)
	b := counts("y", 1, "z", 4)
	c := counts("x", 3)

	forward := Reduce([]*models.KeywordCounts{a, b, c}).Map()
	backward := Reduce([]*models.KeywordCounts{c, b, a}).Map()
	nested := Reduce([]*models.KeywordCounts{Reduce([]*models.KeywordCounts{a, b}), c}).Map()

	if !reflect.DeepEqual(forward, backward) || !reflect.DeepEqual(forward, nested) {
		t.Errorf("totals differ: %v / %v / %v", forward, backward, nested)
	}
}

func TestReduce_Empty(t *testing.T) {
	if got := Reduce(nil); got.Len() != 0 {
		t.Errorf("Reduce(nil).Len() = %d, want 0", got.Len())
	}
}

func TestMap(t *testing.T) {
	c := classifier.New(models.KeywordMapping{{Name: "AMAZONIA", Keywords: []string{"Amazônia"}}}, classifier.Options{})
	p := models.Post{Content: "amazônia!"}

	got := Map(&p, p.Content, c)
	if got.Get("Amazônia") != 1 {
		t.Errorf("Map() count = %d, want 1", got.Get("Amazônia"))
	}
	if p.Themes != "AMAZONIA" || p.KeywordCount != got {
		t.Errorf("post not annotated: Themes = %q", p.Themes)
	}
}

func TestMapPosts(t *testing.T) {
	c := classifier.New(models.KeywordMapping{{Name: "AMAZONIA", Keywords: []string{"Amazônia"}}}, classifier.Options{})
	posts := []models.Post{
		{Index: 0, Content: "<b>Amaz&ocirc;nia</b>"},
		{Index: 1, Content: "sem tema"},
		{Index: 2, Content: "Amazônia"},
	}

	// Texts override content for the rows they cover; later rows use content.
	perRow := MapPosts(posts, []string{"Amazônia", "sem tema"}, c)

	if len(perRow) != 3 {
		t.Fatalf("len(perRow) = %d, want 3", len(perRow))
	}
	wantThemes := []string{"AMAZONIA", models.NoThemeLabel, "AMAZONIA"}
	for i, want := range wantThemes {
		if posts[i].Themes != want {
			t.Errorf("posts[%d].Themes = %q, want %q", i, posts[i].Themes, want)
		}
		if posts[i].KeywordCount != perRow[i] {
			t.Errorf("posts[%d].KeywordCount is not the returned per-row counts", i)
		}
	}
	if got := Reduce(perRow).Get("Amazônia"); got != 2 {
		t.Errorf("reduced Amazônia = %d, want 2", got)
	}
}

func TestTopKeywords(t *testing.T) {
	kc := counts("ONGs", 1, "Amazônia", 5, "França", 5, "queimadas", 2)

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{name: "ties keep first appearance", n: 3, want: []string{"Amazônia:5", "França:5", "queimadas:2"}},
		{name: "n larger than size", n: 10, want: []string{"Amazônia:5", "França:5", "queimadas:2", "ONGs:1"}},
		{name: "zero means all", n: 0, want: []string{"Amazônia:5", "França:5", "queimadas:2", "ONGs:1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TopKeywords(kc, tt.n); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TopKeywords(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestPrintTopKeywords(t *testing.T) {
	var buf bytes.Buffer
	PrintTopKeywords(&buf, counts("Índios", 2, "ONGs", 3), 25)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "1    ONGs") || !strings.HasSuffix(lines[1], " 3") {
		t.Errorf("first row = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "2    Índios") || !strings.HasSuffix(lines[2], " 2") {
		t.Errorf("second row = %q", lines[2])
	}

	buf.Reset()
	PrintTopKeywords(&buf, models.NewKeywordCounts(), 25)
	if !strings.Contains(buf.String(), "no keywords") {
		t.Errorf("empty table output = %q", buf.String())
	}
}
