package models

import (
	"fmt"
	"strings"
)

// LabelMode controls how matched theme names are joined into a post label.
type LabelMode string

const (
	// LabelModeLiteral appends a theme once per matching keyword, so a post
	// matching two keywords of one theme lists that theme twice.
	LabelModeLiteral LabelMode = "literal"
	LabelModeDedupe  LabelMode = "dedupe" // Each theme at most once, first-match order
)

// ParseLabelMode resolves a flag value to a LabelMode. Empty means literal.
func ParseLabelMode(raw string) (LabelMode, error) {
	switch LabelMode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", LabelModeLiteral:
		return LabelModeLiteral, nil
	case LabelModeDedupe:
		return LabelModeDedupe, nil
	default:
		return "", fmt.Errorf("invalid label mode %q (want literal or dedupe)", raw)
	}
}
