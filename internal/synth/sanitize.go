// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"regexp"
	"strings"
)

const (
	minConceptLen = 2
	maxConceptLen = 60
)

// edgePunct is the punctuation stripped from concept boundaries.
const edgePunct = ".,;:!?-\"'()[]{}"

var (
	whitespaceRun = regexp.MustCompile(`\s+`)

	// symbolsOnly matches strings with no alphanumeric content.
	symbolsOnly = regexp.MustCompile(`^[^a-zA-Z0-9]+$`)

	// digitsAndSpaces matches strings of digits and spaces only.
	digitsAndSpaces = regexp.MustCompile(`^[0-9 ]+$`)

	// numericFragment matches letters+digits+letters fragments like
	// "co2" misparsed as standalone concepts. This also rejects
	// legitimate alphanumeric identifiers; a deliberate precision
	// over recall tradeoff.
	numericFragment = regexp.MustCompile(`^[a-zA-Z]* ?[0-9]+[a-zA-Z]*$`)
)

// CleanConcept normalizes a raw concept string for use in a question.
// It returns the empty string when the concept should be rejected.
// Cleaning is idempotent: cleaning an already-clean concept is a no-op.
func CleanConcept(concept string) string {
	c := strings.TrimSpace(whitespaceRun.ReplaceAllString(concept, " "))
	c = strings.TrimSpace(strings.Trim(c, edgePunct))

	if len(c) < minConceptLen || len(c) > maxConceptLen {
		return ""
	}
	if symbolsOnly.MatchString(c) {
		return ""
	}
	if digitsAndSpaces.MatchString(c) {
		return ""
	}
	if numericFragment.MatchString(c) {
		return ""
	}
	return c
}
