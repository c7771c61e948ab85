// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"context"
	"testing"

	"github.com/pdiddy/concept-engine/internal/lexicon"
)

func TestSelectTemplatesBuckets(t *testing.T) {
	tests := []struct {
		name          string
		source, verb  string
		target        string
		firstQuestion string
		firstAnswer   string
	}{
		{
			name:   "causal",
			source: "heat", verb: "causes", target: "expansion",
			firstQuestion: "Why does heat causes expansion?",
			firstAnswer:   "Because heat causes expansion.",
		},
		{
			name:   "compositional",
			source: "the cell", verb: "contains", target: "a nucleus",
			firstQuestion: "What does the cell contains?",
			firstAnswer:   "a nucleus",
		},
		{
			name:   "definitional",
			source: "mitochondria", verb: "is", target: "the powerhouse of the cell",
			firstQuestion: "What is mitochondria?",
			firstAnswer:   "mitochondria is the powerhouse of the cell.",
		},
		{
			name:   "action",
			source: "the heart", verb: "uses", target: "electrical signals",
			firstQuestion: "How does the heart uses electrical signals?",
			firstAnswer:   "the heart uses electrical signals.",
		},
		{
			name:   "general",
			source: "photosynthesis", verb: "produce", target: "glucose",
			firstQuestion: "What is the relationship between photosynthesis and glucose?",
			firstAnswer:   "photosynthesis and glucose are related by produce.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs := SelectTemplates(tt.source, tt.verb, tt.target)
			if len(pairs) != 6 {
				t.Fatalf("SelectTemplates returned %d pairs, want 6 (3 bucket + 3 appended)", len(pairs))
			}
			if pairs[0].Question != tt.firstQuestion {
				t.Errorf("first question = %q, want %q", pairs[0].Question, tt.firstQuestion)
			}
			if pairs[0].Answer != tt.firstAnswer {
				t.Errorf("first answer = %q, want %q", pairs[0].Answer, tt.firstAnswer)
			}
		})
	}
}

func TestSelectTemplatesAppendedVariants(t *testing.T) {
	pairs := SelectTemplates("photosynthesis", "produce", "glucose")
	appended := pairs[len(pairs)-3:]

	want := []TemplatePair{
		{"What produces glucose?", "photosynthesis"},
		{"What does photosynthesis produce?", "glucose"},
		{"Who or what produces glucose?", "photosynthesis"},
	}
	for i, w := range want {
		if appended[i] != w {
			t.Errorf("appended[%d] = %+v, want %+v", i, appended[i], w)
		}
	}
}

func TestRepairQuestion(t *testing.T) {
	lex := lexicon.Static{}
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"s-form correction", "Who or what supplys energy?", "Who or what supplies energy?"},
		{"doubled s correction", "What focuss light?", "What focuses light?"},
		{"ed-plus-s artifact", "How crosseds the membrane?", "How crosses the membrane?"},
		{"already correct", "What produces glucose?", "What produces glucose?"},
		{"no opener verb", "What is the relationship between a and b?", "What is the relationship between a and b?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RepairQuestion(context.Background(), tt.in, lex); got != tt.want {
				t.Errorf("RepairQuestion(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
