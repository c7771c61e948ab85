// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import "strings"

// IsGenericConcept reports whether the concept is too vague to anchor
// a question.
func IsGenericConcept(concept string) bool {
	return genericWords[strings.ToLower(concept)]
}

// IsTautology reports whether source and target name the same concept
// after lower-casing and whitespace removal. Symmetric in its
// arguments.
func IsTautology(source, target string) bool {
	s := strings.ToLower(strings.TrimSpace(source))
	t := strings.ToLower(strings.TrimSpace(target))
	return s == t || strings.ReplaceAll(s, " ", "") == strings.ReplaceAll(t, " ", "")
}

// IsBlacklistedVerb reports whether the verb is a connector word
// misidentified as a relation verb.
func IsBlacklistedVerb(verb string) bool {
	return blacklistedVerbs[verb]
}

// IsIncompleteQuestion reports whether a rendered question is
// structurally unusable: fewer than five words, trailing off on a
// preposition, a copula running straight into a preposition, or
// containing a malformed inflected-verb artifact.
func IsIncompleteQuestion(q string) bool {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(q)) {
		if w = strings.Trim(w, "?.!,"); w != "" {
			words = append(words, w)
		}
	}
	if len(words) < 5 {
		return true
	}

	if trailingPrepositions[words[len(words)-1]] {
		return true
	}
	for i, w := range words {
		if malformedWords[w] {
			return true
		}
		if copulaForms[w] && i+1 < len(words) && trailingPrepositions[words[i+1]] {
			return true
		}
	}
	return false
}
