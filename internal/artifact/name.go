// Package artifact names, places, and writes generated images and their
// accessibility metadata sidecars.
package artifact

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

const (
	PrefixGenerate = "imagen"
	PrefixEdit     = "imagen-edit"

	slugWords  = 4
	slugMaxLen = 48
)

// Slug turns free prompt text into a lowercase, hyphenated, length-capped
// filename fragment. Only letters and digits survive; everything else is
// stripped. An empty result falls back to "image".
func Slug(prompt string) string {
	words := strings.Fields(strings.ToLower(prompt))
	if len(words) > slugWords {
		words = words[:slugWords]
	}

	cleaned := make([]string, 0, len(words))
	for _, word := range words {
		w := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, word)
		if w != "" {
			cleaned = append(cleaned, w)
		}
	}

	slug := strings.Join(cleaned, "-")
	slug = truncateRunes(slug, slugMaxLen)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "image"
	}
	return slug
}

// Filename builds the artifact filename for a prompt at a given time.
// Uniqueness relies on second-granularity timestamps: two identical prompts
// within the same second collide.
func Filename(prompt string, edit bool, t time.Time) string {
	prefix := PrefixGenerate
	if edit {
		prefix = PrefixEdit
	}
	return fmt.Sprintf("%s_%s_%s.png", prefix, Slug(prompt), t.Format("20060102-150405"))
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == max {
			return s[:i]
		}
		count++
	}
	return s
}
