// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/concept-engine/internal/lexicon"
)

// TemplatePair is one candidate question with its mechanically derived
// answer.
type TemplatePair struct {
	Question string
	Answer   string
}

// SelectTemplates classifies the verb into a semantic bucket and
// returns that bucket's question/answer pairs, followed by three
// dependency-inspired variants appended regardless of bucket.
func SelectTemplates(source, verb, target string) []TemplatePair {
	var pairs []TemplatePair

	switch v := strings.ToLower(verb); {
	case causalVerbs[v]:
		pairs = []TemplatePair{
			{fmt.Sprintf("Why does %s %s %s?", source, verb, target), fmt.Sprintf("Because %s %s %s.", source, verb, target)},
			{fmt.Sprintf("How does %s %s %s?", source, verb, target), fmt.Sprintf("%s %s %s.", source, verb, target)},
			{fmt.Sprintf("What effect does %s have on %s?", source, target), fmt.Sprintf("%s %s %s.", source, verb, target)},
		}
	case compositionalVerbs[v]:
		pairs = []TemplatePair{
			{fmt.Sprintf("What does %s %s?", source, verb), target},
			{fmt.Sprintf("List the components of %s.", source), fmt.Sprintf("%s %s %s.", source, verb, target)},
			{fmt.Sprintf("Describe what %s %s.", source, verb), fmt.Sprintf("%s %s %s.", source, verb, target)},
		}
	case definitionalVerbs[v]:
		pairs = []TemplatePair{
			{fmt.Sprintf("What is %s?", source), fmt.Sprintf("%s is %s.", source, target)},
			{fmt.Sprintf("Define %s.", source), fmt.Sprintf("%s is %s.", source, target)},
			{fmt.Sprintf("What are %s and how are they related to %s?", source, target), fmt.Sprintf("%s is related to %s by %s.", source, target, verb)},
		}
	case actionVerbs[v]:
		pairs = []TemplatePair{
			{fmt.Sprintf("How does %s %s %s?", source, verb, target), fmt.Sprintf("%s %s %s.", source, verb, target)},
			{fmt.Sprintf("Describe how %s %s %s.", source, verb, target), fmt.Sprintf("%s %s %s.", source, verb, target)},
			{fmt.Sprintf("What is the role of %s in relation to %s?", source, target), fmt.Sprintf("%s %s %s.", source, verb, target)},
		}
	default:
		pairs = []TemplatePair{
			{fmt.Sprintf("What is the relationship between %s and %s?", source, target), fmt.Sprintf("%s and %s are related by %s.", source, target, verb)},
			{fmt.Sprintf("Explain the connection between %s and %s.", source, target), fmt.Sprintf("%s %s %s.", source, verb, target)},
			{fmt.Sprintf("How are %s and %s related?", source, target), fmt.Sprintf("%s and %s are related by %s.", source, target, verb)},
		}
	}

	pairs = append(pairs,
		TemplatePair{fmt.Sprintf("What %ss %s?", verb, target), source},
		TemplatePair{fmt.Sprintf("What does %s %s?", source, verb), target},
		TemplatePair{fmt.Sprintf("Who or what %ss %s?", verb, target), source},
	)

	return pairs
}

// Question-opener patterns used by the spellcheck repair. Each targets
// the verb token that follows the opener: inflected -s form, -ed form,
// then the bare form.
var (
	openerSForm  = regexp.MustCompile(`\b(Who or what|What|How|Why) ([a-zA-Z]+)s\b`)
	openerEdForm = regexp.MustCompile(`\b(Who or what|What|How|Why) ([a-zA-Z]+)ed\b`)
	openerBare   = regexp.MustCompile(`\b(Who or what|What|How|Why) ([a-zA-Z]+)\b`)
)

// RepairQuestion runs verb-aware spellcheck over a generated question,
// correcting only the verb token after a recognized question opener.
func RepairQuestion(ctx context.Context, q string, lex lexicon.Lexicon) string {
	q = replaceVerbToken(ctx, q, openerSForm, "s", lex)
	q = replaceVerbToken(ctx, q, openerEdForm, "ed", lex)
	q = replaceVerbToken(ctx, q, openerBare, "", lex)
	return q
}

func replaceVerbToken(ctx context.Context, q string, re *regexp.Regexp, suffix string, lex lexicon.Lexicon) string {
	return re.ReplaceAllStringFunc(q, func(match string) string {
		sub := re.FindStringSubmatch(match)
		if sub == nil {
			return match
		}
		token := sub[2] + suffix
		return strings.Replace(match, token, lex.CorrectWord(ctx, token), 1)
	})
}
