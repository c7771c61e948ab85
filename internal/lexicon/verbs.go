// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

// commonVerbs is the fallback whitelist of common English verbs used
// when no dictionary service is configured. Curriculum-domain verbs
// (emit, corrode, neutralize, ...) are included alongside the general
// high-frequency set.
var commonVerbs = makeVerbSet(
	"be", "have", "do", "say", "get", "make", "go", "know", "take",
	"see", "come", "think", "look", "want", "give", "use", "find",
	"tell", "ask", "work", "seem", "feel", "try", "leave", "call",
	"put", "keep", "let", "begin", "help", "talk", "turn", "start",
	"show", "hear", "play", "run", "move", "live", "believe", "bring",
	"write", "provide", "sit", "stand", "lose", "pay", "meet",
	"include", "continue", "set", "learn", "change", "lead",
	"understand", "watch", "follow", "stop", "create", "speak", "read",
	"allow", "add", "spend", "grow", "open", "walk", "win", "offer",
	"remember", "love", "consider", "appear", "buy", "wait", "serve",
	"die", "send", "expect", "build", "stay", "fall", "cut", "reach",
	"kill", "remain", "suggest", "raise", "pass", "sell", "require",
	"report", "decide", "pull", "return", "explain", "hope", "develop",
	"carry", "break", "receive", "agree", "support", "hit", "produce",
	"eat", "cover", "catch", "draw", "choose", "cause", "point",
	"listen", "realize", "place", "form", "join", "reduce",
	"establish", "act", "apply", "prepare", "teach", "contain",
	"control", "manage", "describe", "design", "test", "connect",
	"store", "relate", "indicate", "emit", "cross", "regulate",
	"generate", "weigh", "minimize", "protect", "memorize", "drop",
	"resemble", "calculate", "pump", "fuse", "dissociate", "corrode",
	"deplete", "neutralize", "absorb", "release", "supply", "surround",
	"destroy", "combine", "convert", "divide", "occur", "result",
	"trigger", "affect", "influence", "consist", "comprise",
)

func makeVerbSet(verbs ...string) map[string]bool {
	set := make(map[string]bool, len(verbs))
	for _, v := range verbs {
		set[v] = true
	}
	return set
}
