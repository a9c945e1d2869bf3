// Package sanitizer strips markup from user-supplied free text.
package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer removes all HTML from text. Safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// New returns a Sanitizer backed by bluemonday's strict policy.
func New() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Text returns s with every tag removed and surrounding space trimmed.
// Script and style bodies are dropped entirely. The result is plain text,
// so entities produced by the policy are decoded back.
func (s *Sanitizer) Text(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
}
