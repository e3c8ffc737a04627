// Package validator statically checks a parsed game description for
// conformance with the rules of the game description language: fixed
// arities, safe rules, stratified negation, correct keyword usage, and
// the restriction on recursion through function terms.
//
// Validation is a pure function over the description. It cannot rule
// out every bad game (playability and winnability need simulation),
// but everything it does reject is definitely broken.
package validator

import (
	"github.com/vilterp/gdlint/pkg/games"
	"github.com/vilterp/gdlint/pkg/gdl"
	"github.com/vilterp/gdlint/pkg/parse"
)

// Validate runs the static checks over a description in a fixed
// order, with each check building on what the earlier ones
// established. The first fatal error aborts the pass; warnings
// accumulate and come back only with a successful validation.
func Validate(description gdl.Description) ([]Warning, error) {
	var warnings []Warning

	// Only facts and rules belong at the top level. Bare propositions
	// are tolerated with a warning; usually the author meant to wrap
	// them in true or init.
	var relations []*gdl.Relation
	var rules []*gdl.Rule
	for _, node := range description {
		switch node := node.(type) {
		case *gdl.Relation:
			relations = append(relations, node)
		case *gdl.Rule:
			rules = append(rules, node)
		case gdl.Proposition:
			warnings = append(warnings, Warning{Kind: WarningBareProposition, Name: node.Name().Name()})
		default:
			return nil, &unrecognizedNodeError{node: node}
		}
	}

	if err := checkNonZeroArities(relations, rules); err != nil {
		return nil, err
	}
	for _, rule := range rules {
		for _, literal := range rule.Body() {
			if err := checkProperNegation(literal); err != nil {
				return nil, err
			}
		}
	}
	sentenceArities, functionArities, err := buildArityTables(relations, rules)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, nameOverlapWarnings(sentenceArities, functionArities)...)
	if err := checkKeywordArities(sentenceArities, functionArities); err != nil {
		return nil, err
	}
	for _, rule := range rules {
		if err := checkRuleSafety(rule); err != nil {
			return nil, err
		}
	}
	graph, err := buildDependencyGraph(sentenceArities, rules)
	if err != nil {
		return nil, err
	}
	if err := checkKeywordPlacement(graph); err != nil {
		return nil, err
	}
	ancestors := ancestorsGraph(graph, sentenceArities)
	for _, rule := range rules {
		if err := checkRecursionRestriction(rule, ancestors); err != nil {
			return nil, err
		}
	}
	warnings = append(warnings, undefinedSentenceWarnings(relations, rules)...)
	return warnings, nil
}

// GameValidator checks a single game, returning advisory warnings or
// a fatal error.
type GameValidator interface {
	CheckValidity(game *games.Game) ([]Warning, error)
}

// StaticValidator validates a game's rulesheet without simulating any
// play: first the raw text's parentheses, then a parse, then the full
// static analysis.
type StaticValidator struct{}

var _ GameValidator = StaticValidator{}

func (StaticValidator) CheckValidity(game *games.Game) ([]Warning, error) {
	if err := parse.CheckParens(game.Rulesheet()); err != nil {
		return nil, err
	}
	description, err := game.Rules()
	if err != nil {
		return nil, err
	}
	return Validate(description)
}
