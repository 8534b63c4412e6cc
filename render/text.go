package render

import (
	"strings"
	"unicode"
)

// SentenceCase lowercases a title and capitalizes the first letter of each
// colon-delimited segment, the capitalization APA applies to work titles.
// Casing elsewhere in the title is the caller's concern and is not restored.
func SentenceCase(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(strings.ToLower(s))
	capitalizeNext := true
	for i, r := range runes {
		if capitalizeNext && unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)
			capitalizeNext = false
			continue
		}
		if r == ':' {
			capitalizeNext = true
		}
	}
	return string(runes)
}

// Initials reduces given names to period-terminated initials, joined by sep.
// "F. Scott" becomes "F. S." with sep " " and "F.S." with sep "".
func Initials(given string, sep string) string {
	fields := strings.Fields(given)
	if len(fields) == 0 {
		return ""
	}

	initials := make([]string, 0, len(fields))
	for _, f := range fields {
		r := []rune(f)
		if !unicode.IsLetter(r[0]) {
			continue
		}
		initials = append(initials, string(unicode.ToUpper(r[0]))+".")
	}
	return strings.Join(initials, sep)
}

// TruncateWords keeps the first n words of s, appending an ellipsis when
// anything was dropped. Used for title-based in-text citations.
func TruncateWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) <= n {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:n], " ") + "..."
}

// EnsurePeriod appends a period unless s already ends in punctuation.
func EnsurePeriod(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	if unicode.IsPunct(r[len(r)-1]) {
		return s
	}
	return s + "."
}
