package sanitizer

import "regexp"

var (
	dotRegex        = regexp.MustCompile(`\.{2,}`)
	phoneJunkRegex  = regexp.MustCompile(`[^0-9+]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
)
