package mapreduce

import (
	"github.com/dtnitsch/post-theme-analyzer/models"
	"github.com/dtnitsch/post-theme-analyzer/pkg/classifier"
)

// Map classifies text as the content of p, records the label and counts on
// p and returns the counts.
func Map(p *models.Post, text string, c *classifier.Classifier) *models.KeywordCounts {
	label, counts := c.Classify(text)
	p.Themes = label
	p.KeywordCount = counts
	return counts
}

// MapPosts runs Map over every post and returns the per-row counts in row
// order. texts[i] is classified in place of posts[i].Content when present.
func MapPosts(posts []models.Post, texts []string, c *classifier.Classifier) []*models.KeywordCounts {
	perRow := make([]*models.KeywordCounts, len(posts))
	for i := range posts {
		text := posts[i].Content
		if i < len(texts) {
			text = texts[i]
		}
		perRow[i] = Map(&posts[i], text, c)
	}
	return perRow
}

// Reduce aggregates per-row keyword counts into a single count map.
// Keys keep the order in which they first appear across rows.
func Reduce(intermediate []*models.KeywordCounts) *models.KeywordCounts {
	finalResults := models.NewKeywordCounts()

	for _, counts := range intermediate {
		for _, keyword := range counts.Keys() {
			finalResults.Add(keyword, counts.Get(keyword))
		}
	}

	return finalResults
}
