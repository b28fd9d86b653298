package detector

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Unknown is reported when no language can be determined.
const Unknown = "unknown"

// DefaultLanguages covers the discourse the theme table targets: Brazilian
// Portuguese posts quoting French and English sources, plus Spanish from
// neighbouring Amazon countries.
var DefaultLanguages = []lingua.Language{
	lingua.Portuguese, lingua.French, lingua.English, lingua.Spanish,
}

// LanguageDetector tags posts with an ISO-639-1 language code.
type LanguageDetector struct {
	detector lingua.LanguageDetector
}

// NewLanguageDetector builds a detector restricted to languages
// (DefaultLanguages when empty). Building loads language models, so create
// one per run and reuse it.
func NewLanguageDetector(languages ...lingua.Language) *LanguageDetector {
	if len(languages) == 0 {
		languages = DefaultLanguages
	}
	return &LanguageDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the lower-case ISO-639-1 code for text, or Unknown.
func (d *LanguageDetector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return Unknown
	}

	language, exists := d.detector.DetectLanguageOf(text)
	if !exists {
		return Unknown
	}
	return strings.ToLower(language.IsoCode639_1().String())
}
