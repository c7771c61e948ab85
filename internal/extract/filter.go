// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "strings"

// IsValidConcept reports whether a candidate phrase qualifies as a
// durable concept. The rules are independent exclusion predicates over
// the lower-cased, trimmed text; order does not matter.
func IsValidConcept(text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))

	for _, phrase := range stopPhrases {
		if strings.Contains(text, phrase) {
			return false
		}
	}

	if questionWords[text] {
		return false
	}

	// Short acronyms of >=4 chars survive; short fragments do not.
	if len(strings.Fields(text)) < 2 && len(text) < 4 {
		return false
	}

	if isAllDigits(strings.ReplaceAll(text, ".", "")) {
		return false
	}

	return true
}

// isAllDigits reports whether s is non-empty and contains only ASCII
// digits.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
