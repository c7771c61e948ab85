// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import "testing"

func TestCleanConcept(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "photosynthesis", "photosynthesis"},
		{"whitespace collapse", "  the   cell\nwall  ", "the cell wall"},
		{"edge punctuation", "(photosynthesis).", "photosynthesis"},
		{"punctuation then space", "the cell .", "the cell"},
		{"too short", "x", ""},
		{"too long", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", ""},
		{"symbols only", "&&&&", ""},
		{"digits only", "12 34", ""},
		{"numeric fragment", "co2", ""},
		{"trailing number fragment", "chapter 12", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanConcept(tt.in); got != tt.want {
				t.Errorf("CleanConcept(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanConceptIdempotent(t *testing.T) {
	inputs := []string{
		"photosynthesis", "  the   cell  .", "(mitochondria)", "co2",
		"..cell membrane..", "water cycle ",
	}
	for _, in := range inputs {
		once := CleanConcept(in)
		if twice := CleanConcept(once); twice != once {
			t.Errorf("CleanConcept not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestIsGenericConcept(t *testing.T) {
	for _, c := range []string{"something", "It", "THING", "those"} {
		if !IsGenericConcept(c) {
			t.Errorf("IsGenericConcept(%q) = false, want true", c)
		}
	}
	for _, c := range []string{"cell", "photosynthesis", "water cycle"} {
		if IsGenericConcept(c) {
			t.Errorf("IsGenericConcept(%q) = true, want false", c)
		}
	}
}

func TestIsTautology(t *testing.T) {
	tests := []struct {
		source, target string
		want           bool
	}{
		{"water", "water", true},
		{"Water", "water ", true},
		{"the cell", "thecell", true},
		{"water", "ice", false},
		{"photosynthesis", "glucose", false},
	}
	for _, tt := range tests {
		if got := IsTautology(tt.source, tt.target); got != tt.want {
			t.Errorf("IsTautology(%q, %q) = %v, want %v", tt.source, tt.target, got, tt.want)
		}
		if got := IsTautology(tt.target, tt.source); got != tt.want {
			t.Errorf("IsTautology(%q, %q) = %v, want %v (not symmetric)", tt.target, tt.source, got, tt.want)
		}
	}
}

func TestIsBlacklistedVerb(t *testing.T) {
	for _, v := range []string{"of", "between", "is", "how"} {
		if !IsBlacklistedVerb(v) {
			t.Errorf("IsBlacklistedVerb(%q) = false, want true", v)
		}
	}
	for _, v := range []string{"produce", "contain", "cause"} {
		if IsBlacklistedVerb(v) {
			t.Errorf("IsBlacklistedVerb(%q) = true, want false", v)
		}
	}
}

func TestIsIncompleteQuestion(t *testing.T) {
	tests := []struct {
		name string
		q    string
		want bool
	}{
		{"preposition fragment", "What is of the cell?", true},
		{"are-form preposition fragment", "What are of the membranes made?", true},
		{"trailing preposition", "What is glucose made of?", true},
		{"too short", "What is mitochondria?", true},
		{"components listing kept", "List the components of light.", false},
		{"mid-question of kept", "What is the powerhouse of the cell?", false},
		{"malformed inflection", "Who or what usess the energy supply?", true},
		{"complete relationship question", "What is the relationship between photosynthesis and glucose?", false},
		{"complete how question", "How are photosynthesis and glucose related?", false},
		{"complete explain prompt", "Explain the connection between photosynthesis and glucose.", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsIncompleteQuestion(tt.q); got != tt.want {
				t.Errorf("IsIncompleteQuestion(%q) = %v, want %v", tt.q, got, tt.want)
			}
		})
	}
}
