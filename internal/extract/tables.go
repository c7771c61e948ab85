// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

// Lookup tables for concept filtering and verb exclusion. Kept as data
// so they can be tuned without touching the traversal logic.

// stopPhrases are structural words from textbook layout; any candidate
// phrase containing one of these as a substring is rejected.
var stopPhrases = []string{
	"chapter", "section", "unit", "page", "figure", "table",
	"example", "note", "exercise", "question", "answer",
}

// questionWords are rejected as standalone concepts.
var questionWords = map[string]bool{
	"what": true, "which": true, "when": true, "where": true,
	"who": true, "whom": true, "whose": true, "why": true, "how": true,
}

// genericVerbs are copulas and light verbs too ambiguous to label a
// relation; a dependency arc governed by one of these emits no triple.
var genericVerbs = map[string]bool{
	"has": true, "have": true, "had": true, "made": true, "make": true,
	"take": true, "write": true, "states": true, "called": true,
	"consists": true, "having": true, "give": true, "comes": true,
	"produced": true, "explains": true, "heat": true, "meet": true,
	"obtain": true, "provided": true, "bounded": true, "classified": true,
	"reared": true, "secretes": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "get": true,
	"put": true, "set": true, "use": true, "used": true, "using": true,
	"form": true, "forms": true, "contain": true, "contains": true,
	"including": true, "include": true, "includes": true, "show": true,
	"shows": true, "showing": true, "see": true, "seen": true,
	"found": true, "find": true, "keep": true, "kept": true,
	"become": true, "became": true, "becoming": true, "allow": true,
	"allows": true, "allowed": true, "let": true, "lets": true,
	"let's": true, "help": true, "helps": true, "helped": true,
	"support": true, "supports": true, "supported": true,
}
