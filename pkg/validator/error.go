package validator

import (
	"fmt"

	"github.com/vilterp/gdlint/pkg/gdl"
)

// Each fatal finding gets its own error type so tests can pin down
// which restriction a description broke.

type unrecognizedNodeError struct {
	node gdl.Node
}

func (e *unrecognizedNodeError) Error() string {
	return fmt.Sprintf("the description contains %s at the top level, which is neither a relation nor a rule", e.node)
}

type zeroArityError struct {
	node gdl.Node
}

func (e *zeroArityError) Error() string {
	switch node := e.node.(type) {
	case *gdl.Function:
		return fmt.Sprintf("%s is written as a zero-arity function; write it as a constant instead (drop the parentheses)", node)
	case *gdl.Relation:
		return fmt.Sprintf("%s is written as a zero-arity relation; write it as a proposition instead (drop the parentheses)", node)
	case *gdl.Rule:
		return fmt.Sprintf("%s is written as a rule with no body; if it should always hold, write it as a relation instead", node)
	}
	return fmt.Sprintf("%s has zero arity", e.node)
}

type improperNegationError struct {
	not *gdl.Not
}

func (e *improperNegationError) Error() string {
	return fmt.Sprintf("the negation %s contains %s, which is not a sentence; only a single sentence can be negated", e.not, e.not.Body())
}

type sentenceArityError struct {
	name      string
	arity     int
	prevArity int
}

func (e *sentenceArityError) Error() string {
	return fmt.Sprintf("the sentence name %s appears with two different arities, %d and %d", e.name, e.arity, e.prevArity)
}

type functionArityError struct {
	name      string
	arity     int
	prevArity int
}

func (e *functionArityError) Error() string {
	return fmt.Sprintf("the function name %s appears with two different arities, %d and %d", e.name, e.arity, e.prevArity)
}

type missingKeywordError struct {
	name string
}

func (e *missingKeywordError) Error() string {
	if e.name == "terminal" {
		return "no terminal proposition found in the game description"
	}
	return fmt.Sprintf("no %s relations found in the game description", e.name)
}

type keywordArityError struct {
	keyword keyword
}

func (e *keywordArityError) Error() string {
	if e.keyword.arity == 0 {
		return fmt.Sprintf("%s should be a proposition, not a relation", e.keyword.name)
	}
	if e.keyword.hint == "" {
		return fmt.Sprintf("the %s relation should have arity %d", e.keyword.name, e.keyword.arity)
	}
	return fmt.Sprintf("the %s relation should have arity %d (%s)", e.keyword.name, e.keyword.arity, e.keyword.hint)
}

type keywordFunctionError struct {
	name string
}

func (e *keywordFunctionError) Error() string {
	return fmt.Sprintf("the keyword %s is used as a function name; keywords can only name sentences", e.name)
}

type unsafeRuleError struct {
	rule     *gdl.Rule
	variable gdl.Variable
}

func (e *unsafeRuleError) Error() string {
	return fmt.Sprintf("unsafe rule %s: the variable %s is not defined in any positive relation in the rule's body", e.rule, e.variable)
}

type negativeCycleError struct {
	from string
	to   string
}

func (e *negativeCycleError) Error() string {
	return fmt.Sprintf("the rules are not stratified: the negative edge from %s to %s lies on a cycle in the dependency graph", e.from, e.to)
}

type keywordInHeadError struct {
	name string
}

func (e *keywordInHeadError) Error() string {
	if e.name == "role" {
		return "the role relation should be defined by ground facts, not by rules"
	}
	return fmt.Sprintf("the %s relation should never be in the head of a rule", e.name)
}

type keywordInBodyError struct {
	name string
}

func (e *keywordInBodyError) Error() string {
	return fmt.Sprintf("the %s relation should never be in the body of a rule", e.name)
}

type turnDependentKeywordError struct {
	name string
}

func (e *turnDependentKeywordError) Error() string {
	return fmt.Sprintf("the %s relation should never depend on a true, does, next, legal, goal, or terminal sentence", e.name)
}

type actionDependentKeywordError struct {
	name string
}

func (e *actionDependentKeywordError) Error() string {
	return fmt.Sprintf("the %s relation should never depend on a does sentence", e.name)
}

type recursionRestrictionError struct {
	rule *gdl.Rule
	term gdl.Term
}

func (e *recursionRestrictionError) Error() string {
	return fmt.Sprintf("recursion restriction violated in rule %s: the term %s must be ground, an argument of the head, or an argument of a conjunct outside the cycle", e.rule, e.term)
}
