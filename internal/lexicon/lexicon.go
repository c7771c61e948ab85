// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lexicon provides verb lemmatization, verb-sense validation,
// and word correction. The full capability is an external dictionary
// service; a static table adapter stands in when it is not configured.
// The adapter is chosen once at startup and injected, so the synthesis
// logic never branches on capability availability.
package lexicon

import (
	"context"
	"strings"
)

// Lexicon is the lexical-knowledge capability consumed by question
// synthesis.
type Lexicon interface {
	// LemmatizeVerb reduces a verb to its base form.
	LemmatizeVerb(ctx context.Context, verb string) string

	// IsVerb reports whether the word has a verb sense. This is a
	// hard gate: an unrecognized verb suppresses the whole triple.
	IsVerb(ctx context.Context, word string) bool

	// CorrectWord returns a spelling correction for word, or the word
	// unchanged when no correction is known.
	CorrectWord(ctx context.Context, word string) string
}

// verbSuffixes is the ordered fallback suffix list; the first matching
// suffix is stripped.
var verbSuffixes = []string{"sses", "ies", "es", "s", "ed", "ing"}

// corrections maps observed misspellings produced by mechanical verb
// inflection to their fixed forms.
var corrections = map[string]string{
	"copys":    "copies",
	"supplys":  "supplies",
	"focuss":   "focuses",
	"crosseds": "crosses",
	"emitss":   "emits",
	"identifys": "identifies",
}

// Static is the fallback adapter: suffix stripping, a fixed verb
// whitelist, and a small correction table.
type Static struct{}

// LemmatizeVerb strips the first suffix whose removal yields a known
// verb, restoring a dropped final "e" when that is what makes the stem
// known ("produces" to "produce"). Verbs that no suffix reduces to a
// known form are returned unchanged.
func (Static) LemmatizeVerb(_ context.Context, verb string) string {
	for _, suf := range verbSuffixes {
		if !strings.HasSuffix(verb, suf) {
			continue
		}
		stem := strings.TrimSuffix(verb, suf)
		if commonVerbs[stem] {
			return stem
		}
		if commonVerbs[stem+"e"] {
			return stem + "e"
		}
		if suf == "ies" && commonVerbs[stem+"y"] {
			return stem + "y"
		}
	}
	return verb
}

// IsVerb reports membership in the common-verb whitelist.
func (Static) IsVerb(_ context.Context, word string) bool {
	return commonVerbs[word]
}

// CorrectWord looks the word up in the correction table.
func (Static) CorrectWord(_ context.Context, word string) string {
	if fixed, ok := corrections[word]; ok {
		return fixed
	}
	return word
}
