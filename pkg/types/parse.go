// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Token is one token of a parsed sentence as returned by the
// linguistic analyzer.
type Token struct {
	// Text is the token's surface form.
	Text string `json:"text" yaml:"text"`

	// Head is the index of this token's syntactic head within the
	// sentence's token slice. The root token points at itself.
	Head int `json:"head" yaml:"head"`

	// Dep is the analyzer's dependency-role label. The extractor
	// matches by substring ("subj", "obj"), so subtype labels such as
	// "nsubj" or "dobj" pass through unchanged.
	Dep string `json:"dep" yaml:"dep"`
}

// Span is a noun-phrase or named-entity span within one sentence.
type Span struct {
	// Text is the span's surface text.
	Text string `json:"text" yaml:"text"`

	// Head is the index of the span's syntactic head token within the
	// sentence's token slice.
	Head int `json:"head" yaml:"head"`
}

// ParsedSentence is one sentence of analyzer output: the token list
// with dependency arcs plus the noun-phrase and entity spans.
type ParsedSentence struct {
	Tokens      []Token `json:"tokens" yaml:"tokens"`
	NounPhrases []Span  `json:"noun_phrases" yaml:"noun_phrases"`
	Entities    []Span  `json:"entities" yaml:"entities"`
}
