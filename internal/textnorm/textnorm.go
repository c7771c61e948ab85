// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textnorm strips structural noise from raw educational text
// before it is sent to the linguistic analyzer.
package textnorm

import (
	"regexp"
	"strings"
)

// DefaultChunkSize bounds the characters sent to the analyzer per
// request. Chunks are a parsing-unit split only; a sentence cut at a
// chunk boundary degrades gracefully and is not re-stitched.
const DefaultChunkSize = 100000

var (
	// pageNumberPattern matches lines that contain only a page number.
	pageNumberPattern = regexp.MustCompile(`\n\s*\d+\s*\n`)

	// blankRunPattern collapses runs of blank lines.
	blankRunPattern = regexp.MustCompile(`\n\s*\n`)

	// symbolPattern matches characters that carry no linguistic
	// content. Letters and digits in any script, sentence punctuation,
	// and hyphens are kept.
	symbolPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s.,;:?!-]`)
)

// Clean removes page numbers, collapses blank-line runs, and replaces
// non-linguistic symbols with spaces. The result is trimmed.
func Clean(text string) string {
	text = pageNumberPattern.ReplaceAllString(text, "\n")
	text = blankRunPattern.ReplaceAllString(text, "\n")
	text = symbolPattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Chunks splits text into fixed-size pieces of at most size characters.
// A size of zero or less uses DefaultChunkSize. Splitting is by rune
// position so a multi-byte character is never cut in half; the analyzer
// tolerates a sentence cut at a boundary.
func Chunks(text string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if text == "" {
		return nil
	}
	runes := []rune(text)
	var chunks []string
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
