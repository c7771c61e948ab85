// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

// Filtering tables for question validation. These are tuned data, not
// control flow; the malformed-inflection list in particular guards
// against specific observed bad outputs and makes no claim of
// grammatical completeness.

// genericWords are concepts too vague to anchor a question.
var genericWords = makeSet(
	"thing", "things", "something", "anything", "everything",
	"object", "item", "aspect", "that", "them", "itself", "it",
	"they", "this", "those",
)

// blacklistedVerbs are prepositions, conjunctions, auxiliaries, and
// question words that dependency parsing sometimes mislabels as the
// governing verb of a relation.
var blacklistedVerbs = makeSet(
	"of", "from", "into", "by", "with", "on", "in", "at", "to", "for",
	"as", "c", "2s", "1s", "vs", "and", "or", "but", "if", "then",
	"else", "than", "so", "because", "although", "though", "while",
	"whereas", "given", "state", "law", "about", "between", "among",
	"during", "after", "before", "above", "below", "under", "over",
	"through", "across", "per", "is", "are", "was", "were", "be",
	"been", "being", "has", "have", "had", "do", "does", "did", "done",
	"doing", "will", "would", "can", "could", "shall", "should", "may",
	"might", "must", "not", "no", "yes", "a", "an", "the", "this",
	"that", "these", "those", "it", "they", "we", "you", "i", "he",
	"she", "who", "whom", "whose", "which", "what", "where", "when",
	"why", "how",
)

// trailingPrepositions end no complete question.
var trailingPrepositions = makeSet(
	"of", "to", "for", "with", "on", "at", "by", "from", "up", "about",
	"into", "over", "after", "beneath", "under", "above",
)

// copulaForms mark the gap left by an empty template slot: a copula
// running straight into a preposition ("What is of the cell?") has
// lost its complement.
var copulaForms = makeSet("is", "are", "was", "were")

// malformedWords are inflected-verb artifacts observed in mechanically
// generated questions; any question containing one is dropped.
var malformedWords = makeSet(
	"ofs", "ins", "betweens", "acceptss", "intros", "returnss",
	"askss", "fors", "concernings", "passeds", "ivs", "ass", "ons",
	"usess", "makess", "writess", "readss", "openss", "closess",
	"deletess", "prepares", "developings", "encourageds", "providess",
	"representss", "identifiess", "selectss", "declares", "executes",
	"supplies", "retrievess", "saves", "modifies", "edits", "returns",
	"asks", "maintainss", "leads", "regulates", "arranges", "controls",
	"enables", "displays", "calculates", "transfers", "sends",
	"receives", "assigns", "chooses", "lists", "sorts", "filters",
	"matches", "marks", "names", "organizes", "plans", "prints",
	"processes", "provides", "removes", "replaces", "resets",
	"restores", "retrieves", "runs", "searches", "shares", "shows",
	"starts", "stops", "stores", "supports", "switches", "tests",
	"trains", "updates", "uploads", "uses", "validates", "verifies",
	"views", "writes",
)

// Verb buckets for template selection, matched by exact lower-cased
// membership.
var (
	causalVerbs        = makeSet("causes", "affects", "leads to", "results in", "influences", "triggers")
	compositionalVerbs = makeSet("contains", "includes", "has", "consists of", "comprises")
	definitionalVerbs  = makeSet("is", "are", "was", "were", "be")
	actionVerbs        = makeSet("uses", "connects", "provides", "follows", "requires")
)

func makeSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
