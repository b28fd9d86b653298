// Package parser turns post content that carries HTML markup (embedded
// links, <br> breaks, entities) into the plain text the classifier sees.
package parser

import (
	"bufio"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Parser extracts readable text from post content.
type Parser struct{}

// PlainText returns the readable text of content. Content without markup is
// returned unchanged so plain posts are never altered.
func (p *Parser) PlainText(content string) (string, error) {
	if !strings.ContainsAny(content, "<&") {
		return content, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", err
	}

	// Block breaks would otherwise glue neighbouring words together.
	doc.Find("br,p,div,li").Each(func(i int, s *goquery.Selection) {
		s.AppendHtml(" ")
	})
	// Link targets carry handles and hashtags worth matching too.
	var hrefs []string
	doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok && !strings.HasPrefix(href, "http") {
			hrefs = append(hrefs, href)
		}
	})

	text := normalizeText(doc.Text())
	if len(hrefs) > 0 {
		text = strings.TrimSpace(text + " " + strings.Join(hrefs, " "))
	}
	return text, nil
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.Join(strings.Fields(scanner.Text()), " ")
		if line != "" {
			// Write the line and a single space for separation
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	// Return the result, trimming the final space
	return strings.TrimSpace(b.String())
}
