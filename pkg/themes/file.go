package themes

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/post-theme-analyzer/models"
	"gopkg.in/yaml.v3"
)

// ErrInvalidKeywordsFile wraps every problem found in a keywords file.
var ErrInvalidKeywordsFile = errors.New("invalid keywords file")

// KeywordsFile is the on-disk shape of a custom theme table:
//
//	themes:
//	  - name: AMAZONIA
//	    keywords: [Amazônia, Amazonas]
type KeywordsFile struct {
	Themes models.KeywordMapping `yaml:"themes"`
}

// LoadFile reads a YAML theme table from path.
func LoadFile(path string) (models.KeywordMapping, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open keywords file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load reads a YAML theme table. Keywords are trimmed and empty ones dropped.
func Load(r io.Reader) (models.KeywordMapping, error) {
	var file KeywordsFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: file is empty", ErrInvalidKeywordsFile)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeywordsFile, err)
	}

	mapping := make(models.KeywordMapping, 0, len(file.Themes))
	for _, t := range file.Themes {
		keywords := make([]string, 0, len(t.Keywords))
		for _, kw := range t.Keywords {
			if kw = strings.TrimSpace(kw); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		mapping = append(mapping, models.Theme{Name: strings.TrimSpace(t.Name), Keywords: keywords})
	}

	if len(mapping) == 0 {
		return nil, fmt.Errorf("%w: no themes defined", ErrInvalidKeywordsFile)
	}
	if err := mapping.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeywordsFile, err)
	}
	return mapping, nil
}

// Marshal renders a mapping in the keywords file format.
func Marshal(mapping models.KeywordMapping) ([]byte, error) {
	return yaml.Marshal(KeywordsFile{Themes: mapping})
}
