package validator

import "github.com/vilterp/gdlint/pkg/depgraph"

// keyword is one reserved sentence name and the shape the language
// fixes for it.
type keyword struct {
	name      string
	arity     int
	mandatory bool
	hint      string
}

// Every game must define role, terminal, goal, and legal; the rest are
// optional but still arity-checked when present.
var keywords = []keyword{
	{name: "role", arity: 1, mandatory: true, hint: "argument: the player name"},
	{name: "terminal", arity: 0, mandatory: true},
	{name: "goal", arity: 2, mandatory: true, hint: "first argument: the player, second argument: an integer from 0 to 100"},
	{name: "legal", arity: 2, mandatory: true, hint: "first argument: the player, second argument: the move"},
	{name: "does", arity: 2, hint: "first argument: the player, second argument: the move"},
	{name: "init", arity: 1, hint: "argument: a sentence of the game state"},
	{name: "true", arity: 1, hint: "argument: a sentence of the game state"},
	{name: "next", arity: 1, hint: "argument: a sentence of the game state"},
	{name: "base", arity: 1, hint: "argument: a sentence of the game state"},
	{name: "input", arity: 2, hint: "first argument: the player, second argument: the move"},
}

// reservedWords may only name sentences, never functions. The literal
// connectives are reserved too, even though they never show up in the
// arity tables.
var reservedWords = func() map[string]bool {
	words := map[string]bool{
		"not":      true,
		"or":       true,
		"distinct": true,
	}
	for _, kw := range keywords {
		words[kw.name] = true
	}
	return words
}()

func checkKeywordArities(sentenceArities map[string]int, functionArities map[string]int) error {
	for _, kw := range keywords {
		arity, present := sentenceArities[kw.name]
		if !present {
			if kw.mandatory {
				return &missingKeywordError{name: kw.name}
			}
			continue
		}
		if arity != kw.arity {
			return &keywordArityError{keyword: kw}
		}
	}
	for _, name := range sortedNames(functionArities) {
		if reservedWords[name] {
			return &keywordFunctionError{name: name}
		}
	}
	return nil
}

var neverRuleHeads = []string{"role", "true", "does"}
var neverInRuleBodies = []string{"init", "next", "base", "input"}
var turnDependentRoots = map[string]bool{
	"true":     true,
	"does":     true,
	"next":     true,
	"legal":    true,
	"goal":     true,
	"terminal": true,
}
var neverTurnDependent = []string{"init", "base", "input"}
var neverActionDependent = []string{"terminal", "legal", "goal"}

// checkKeywordPlacement enforces where each keyword may sit relative
// to the dependency graph. Roles are ground facts; true and does come
// from the match state, so rules cannot define them; init, base, and
// input describe the game before play and cannot depend on anything
// turn-dependent; and whether the game is over, what is legal, and who
// scores what must not depend on the moves chosen this turn.
func checkKeywordPlacement(graph *depgraph.Graph) error {
	for _, name := range neverRuleHeads {
		if graph.HasOutgoing(name) {
			return &keywordInHeadError{name: name}
		}
	}
	for _, name := range neverInRuleBodies {
		if graph.HasIncoming(name) {
			return &keywordInBodyError{name: name}
		}
	}
	turnDependent := graph.MatchingAndDownstream(func(name string) bool {
		return turnDependentRoots[name]
	})
	for _, name := range neverTurnDependent {
		if turnDependent[name] {
			return &turnDependentKeywordError{name: name}
		}
	}
	actionDependent := graph.Downstream("does")
	for _, name := range neverActionDependent {
		if actionDependent[name] {
			return &actionDependentKeywordError{name: name}
		}
	}
	return nil
}
