package service

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	slugMaxLength = 60
	slugFallback  = "tienda"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a store name: lowercase, diacritics
// stripped, runs of non-alphanumeric characters collapsed to single hyphens,
// trimmed and length-capped. An empty result falls back to a fixed default.
func Slugify(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))

	stripped, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		lowered,
	)
	if err != nil {
		stripped = lowered
	}

	slug := nonAlphanumeric.ReplaceAllString(stripped, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > slugMaxLength {
		slug = strings.Trim(slug[:slugMaxLength], "-")
	}
	if slug == "" {
		return slugFallback
	}
	return slug
}
