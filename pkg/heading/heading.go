// Package heading provides the heading primitive used by the feature grid:
// level semantics (h1-h6) plus optional anchor ids.
package heading

import (
	"strconv"
	"strings"
	"unicode"
)

// Level is a heading level between 1 and 6.
type Level int

const (
	MinLevel Level = 1
	MaxLevel Level = 6
)

// Clamp returns the level limited to the valid h1-h6 range.
func (l Level) Clamp() Level {
	switch {
	case l < MinLevel:
		return MinLevel
	case l > MaxLevel:
		return MaxLevel
	default:
		return l
	}
}

// Tag returns the HTML element name for the level.
func (l Level) Tag() string {
	return "h" + strconv.Itoa(int(l.Clamp()))
}

// Heading is a heading value ready for rendering.
type Heading struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	ID    string `json:"id,omitempty"`
}

// New builds a heading without an anchor id.
func New(level Level, text string) Heading {
	return Heading{Level: level.Clamp(), Text: strings.TrimSpace(text)}
}

// WithAnchor returns a copy of h with an id derived from its text.
func (h Heading) WithAnchor() Heading {
	h.ID = Slug(h.Text)
	return h
}

// Tag returns the HTML element name for the heading.
func (h Heading) Tag() string {
	return h.Level.Tag()
}

// Slug lowercases text and collapses every run of characters that are not
// letters or digits into a single hyphen.
func Slug(text string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
