// Package posts reads the input CSV into post records and writes annotated
// records back out.
package posts

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/post-theme-analyzer/models"
)

const (
	DefaultContentColumn = "content"

	ThemesColumn       = "Themes"
	KeywordCountColumn = "Keyword Count"
	LanguageColumn     = "Language"
)

var (
	// ErrEmptyInput is returned for a file with no header row.
	ErrEmptyInput = errors.New("input file is empty")
	// ErrMissingContentColumn is returned when the header lacks the content column.
	ErrMissingContentColumn = errors.New("content column not found")
)

// LoadOptions configures Load.
type LoadOptions struct {
	ContentColumn string // defaults to DefaultContentColumn
}

// Table is a loaded CSV: its header and one Post per data row.
type Table struct {
	Header       []string
	ContentIndex int
	Posts        []models.Post
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string, opts LoadOptions) (*Table, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	return Load(f, opts)
}

// Load reads a CSV with a header row. Short rows are padded with empty
// fields; rows longer than the header are rejected.
func Load(r io.Reader, opts LoadOptions) (*Table, error) {
	column := opts.ContentColumn
	if column == "" {
		column = DefaultContentColumn
	}

	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	contentIndex := -1
	for i, name := range header {
		if name == column {
			contentIndex = i
			break
		}
	}
	if contentIndex < 0 {
		return nil, fmt.Errorf("%w: %q (columns: %s)", ErrMissingContentColumn, column, strings.Join(header, ", "))
	}

	table := &Table{Header: header, ContentIndex: contentIndex}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(table.Posts)+1, err)
		}
		if len(record) > len(header) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: %d fields, header has %d", line, len(record), len(header))
		}
		for len(record) < len(header) {
			record = append(record, "")
		}

		table.Posts = append(table.Posts, models.Post{
			Index:   len(table.Posts),
			Fields:  record,
			Content: record[contentIndex],
		})
	}

	return table, nil
}

// WriteOptions configures Write.
type WriteOptions struct {
	Language bool // add the Language column
}

// OutputHeader returns header with derived columns moved to the end.
// Input columns that share a derived column's name are replaced.
func OutputHeader(header []string, opts WriteOptions) []string {
	out := make([]string, 0, len(header)+3)
	for _, name := range header {
		if !isDerived(name, opts) {
			out = append(out, name)
		}
	}
	out = append(out, ThemesColumn, KeywordCountColumn)
	if opts.Language {
		out = append(out, LanguageColumn)
	}
	return out
}

// Write writes header and rows as CSV, followed by the derived columns.
// Keyword Count is a JSON object in first-match order.
func Write(w io.Writer, header []string, rows []models.Post, opts WriteOptions) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(OutputHeader(header, opts)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, p := range rows {
		record := make([]string, 0, len(header)+3)
		for i, name := range header {
			if isDerived(name, opts) {
				continue
			}
			value := ""
			if i < len(p.Fields) {
				value = p.Fields[i]
			}
			record = append(record, value)
		}

		counts := p.KeywordCount
		if counts == nil {
			counts = models.NewKeywordCounts()
		}
		countJSON, err := json.Marshal(counts)
		if err != nil {
			return fmt.Errorf("failed to encode keyword count for row %d: %w", p.Index, err)
		}
		record = append(record, p.Themes, string(countJSON))
		if opts.Language {
			record = append(record, p.Language)
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", p.Index, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func isDerived(name string, opts WriteOptions) bool {
	switch name {
	case ThemesColumn, KeywordCountColumn:
		return true
	case LanguageColumn:
		return opts.Language
	}
	return false
}
