package mapreduce

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dtnitsch/post-theme-analyzer/models"
)

// DefaultTopN is the length of the printed frequency table.
const DefaultTopN = 25

// KeywordFrequency is one row of the frequency table.
type KeywordFrequency struct {
	Keyword string `yaml:"keyword"`
	Count   int    `yaml:"count"`
}

// Ranked returns the counts sorted by count (descending). Ties keep
// first-appearance order.
func Ranked(counts *models.KeywordCounts) []KeywordFrequency {
	ss := make([]KeywordFrequency, 0, counts.Len())
	for _, k := range counts.Keys() {
		ss = append(ss, KeywordFrequency{Keyword: k, Count: counts.Get(k)})
	}

	sort.SliceStable(ss, func(i, j int) bool {
		return ss[i].Count > ss[j].Count
	})

	return ss
}

func limitOf(total, n int) int {
	if n <= 0 || n > total {
		return total
	}
	return n
}

// TopKeywords returns the top N keywords as formatted strings.
// Each string is formatted as "keyword:count" (e.g., "Amazônia:42").
// n <= 0 returns every keyword.
func TopKeywords(counts *models.KeywordCounts, n int) []string {
	ss := Ranked(counts)
	limit := limitOf(len(ss), n)

	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = fmt.Sprintf("%s:%d", ss[i].Keyword, ss[i].Count)
	}

	return keywords
}

// PrintTopKeywords writes the top N keywords as a frequency table.
func PrintTopKeywords(w io.Writer, counts *models.KeywordCounts, n int) {
	ss := Ranked(counts)
	limit := limitOf(len(ss), n)

	if limit == 0 {
		fmt.Fprintln(w, "(no keywords found)")
		return
	}

	width := len("Keyword")
	for _, kv := range ss[:limit] {
		if l := len([]rune(kv.Keyword)); l > width {
			width = l
		}
	}

	fmt.Fprintf(w, "%-4s %-*s %s\n", "#", width, "Keyword", "Frequency")
	for i := 0; i < limit; i++ {
		fmt.Fprintf(w, "%-4d %s %d\n", i+1, padRight(ss[i].Keyword, width), ss[i].Count)
	}
}

// padRight pads by rune count; %-*s pads by bytes and misaligns accented words.
func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
