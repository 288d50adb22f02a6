package classify

import (
	"strings"

	"golang.org/x/text/cases"
)

var foldCaser = cases.Fold()

// fold lower-cases text with full Unicode case folding. Every predicate
// in the cascade evaluates against the folded form, never the raw text.
func fold(text string) string {
	return foldCaser.String(text)
}

func has(text, sub string) bool {
	return strings.Contains(text, sub)
}

func hasAny(text string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

func hasAll(text string, subs ...string) bool {
	for _, s := range subs {
		if !strings.Contains(text, s) {
			return false
		}
	}
	return true
}

func startsAny(text string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(text, p) {
			return true
		}
	}
	return false
}
