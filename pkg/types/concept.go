// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Concept is a lower-cased, whitespace-normalized phrase accepted as a
// graph node candidate. Identity is the normalized string.
type Concept = string

// Triple is one (source, verb, target) relation asserted by a single
// sentence. Triples are immutable once emitted; the extraction session
// does not deduplicate them.
type Triple struct {
	// Source is the subject-side concept.
	Source string `json:"source" yaml:"source"`

	// Verb is the relation label, lower-cased surface form of the
	// governing verb token.
	Verb string `json:"relationship" yaml:"relationship"`

	// Target is the object-side concept.
	Target string `json:"target" yaml:"target"`
}

// ConceptGraph is the persisted output of one document's extraction
// pass: the deduplicated concept set and the full relation list. Both
// lists are sorted before serialization for determinism.
type ConceptGraph struct {
	// Concepts lists every accepted concept, sorted.
	Concepts []string `json:"concepts" yaml:"concepts"`

	// Relationships lists every extracted triple, sorted by
	// (source, relationship, target).
	Relationships []Triple `json:"relationships" yaml:"relationships"`
}

// QuestionRecord is one synthesized question with its resolved answer
// and the triple it came from. Answer is never empty: when generative
// answering is unavailable or fails, the templated answer is used.
type QuestionRecord struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
	Source   string `json:"source" yaml:"source"`
	Verb     string `json:"verb" yaml:"verb"`
	Target   string `json:"target" yaml:"target"`
}
