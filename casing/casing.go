package casing

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// wordRun matches a maximal run of ASCII word characters.
var wordRun = regexp.MustCompile(`\w+`)

// ToCamelCase converts a snake_case key to camelCase.
// Keys without an underscore are returned unchanged.
// Example: "premium_since" -> "premiumSince"
// Example: "MAX_AGE" -> "maxAge"
// Example: "_id" -> "id"
func ToCamelCase(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}

	// Casers keep internal state and must not be shared across goroutines.
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	var result strings.Builder
	result.Grow(len(s))
	for _, segment := range strings.Split(s, "_") {
		if segment == "" {
			continue
		}
		_, size := utf8.DecodeRuneInString(segment)
		result.WriteString(upper.String(segment[:size]))
		result.WriteString(lower.String(segment[size:]))
	}

	joined := result.String()
	if joined == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(joined)
	return lower.String(joined[:size]) + joined[size:]
}

// Acronym returns the first character of every word in name, with all
// whitespace removed. A word is a maximal run of ASCII letters, digits and
// underscores, so "a_b" is a single word. Characters that are neither word
// characters nor whitespace are kept.
// Example: "Hello World" -> "HW"
// Example: "Rock & Roll" -> "R&R"
// Example: "" -> ""
func Acronym(name string) string {
	if name == "" {
		return ""
	}
	initials := wordRun.ReplaceAllStringFunc(name, func(word string) string {
		return word[:1]
	})
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '\uFEFF' {
			return -1
		}
		return r
	}, initials)
}
