// Package normalize canonicalizes the raw values fed into author records:
// personal names and date expressions. Both normalizers are deterministic
// and total; unparseable input degrades to a trimmed passthrough rather
// than an error.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// nameParticles are lowercase family-name particles that keep their case
// when the rest of the name is re-cased.
var nameParticles = map[string]bool{
	"da": true, "de": true, "del": true, "della": true, "der": true,
	"di": true, "dos": true, "du": true, "la": true, "le": true,
	"ter": true, "van": true, "von": true,
}

// Name canonicalizes a raw personal name into "Family, Given" display
// form. Input may be the family name, the given names, or both, in either
// "Family, Given" or "Given Family" order. The empty string maps to the
// empty string.
func Name(raw string) string {
	s := collapseSpaces(norm.NFC.String(raw))
	if s == "" {
		return ""
	}

	var family, given string
	if comma := strings.Index(s, ","); comma >= 0 {
		family = strings.TrimSpace(s[:comma])
		given = strings.TrimSpace(s[comma+1:])
	} else {
		parts := strings.Fields(s)
		family = parts[len(parts)-1]
		given = strings.Join(parts[:len(parts)-1], " ")
	}

	family = recase(family)
	given = recase(given)

	if family == "" {
		return given
	}
	if given == "" {
		return family
	}
	return family + ", " + given
}

// recase title-cases words that arrive fully upper- or lowercased, keeping
// mixed-case names (McMillan, DiMaggio) and name particles untouched.
func recase(name string) string {
	// A cases.Caser is stateful and must not be shared between goroutines.
	titleCaser := cases.Title(language.Und)

	words := strings.Fields(name)
	for i, word := range words {
		if strings.Contains(word, ".") {
			// initials
			words[i] = strings.ToUpper(word)
			continue
		}
		lower := strings.ToLower(word)
		if word != lower && word != strings.ToUpper(word) {
			continue // mixed case, assume intentional
		}
		if nameParticles[lower] {
			words[i] = lower
			continue
		}
		words[i] = titleCaser.String(lower)
	}
	return strings.Join(words, " ")
}

// collapseSpaces trims the string and folds internal whitespace runs into
// single spaces.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
