package validator

import (
	"sort"

	"github.com/vilterp/gdlint/pkg/gdl"
)

// checkNonZeroArities rejects functions, relations, and rules written
// with zero arguments. Facts first, then rules; within a rule the rule
// form itself, then its head, then its body.
func checkNonZeroArities(relations []*gdl.Relation, rules []*gdl.Rule) error {
	for _, relation := range relations {
		if err := zeroArityCheckSentence(relation); err != nil {
			return err
		}
	}
	for _, rule := range rules {
		if err := zeroArityCheckRule(rule); err != nil {
			return err
		}
	}
	return nil
}

func zeroArityCheckRule(rule *gdl.Rule) error {
	if rule.Arity() == 0 {
		return &zeroArityError{node: rule}
	}
	if err := zeroArityCheckSentence(rule.Head()); err != nil {
		return err
	}
	for _, literal := range rule.Body() {
		if err := zeroArityCheckLiteral(literal); err != nil {
			return err
		}
	}
	return nil
}

func zeroArityCheckLiteral(literal gdl.Literal) error {
	switch literal := literal.(type) {
	case gdl.Sentence:
		return zeroArityCheckSentence(literal)
	case *gdl.Not:
		return zeroArityCheckLiteral(literal.Body())
	case *gdl.Or:
		for _, disjunct := range literal.Disjuncts() {
			if err := zeroArityCheckLiteral(disjunct); err != nil {
				return err
			}
		}
	case *gdl.Distinct:
		if err := zeroArityCheckTerm(literal.Arg1()); err != nil {
			return err
		}
		return zeroArityCheckTerm(literal.Arg2())
	}
	return nil
}

func zeroArityCheckSentence(sentence gdl.Sentence) error {
	if relation, ok := sentence.(*gdl.Relation); ok && relation.Arity() == 0 {
		return &zeroArityError{node: relation}
	}
	return zeroArityCheckTerms(sentence.Args())
}

func zeroArityCheckTerm(term gdl.Term) error {
	if function, ok := term.(*gdl.Function); ok {
		if function.Arity() == 0 {
			return &zeroArityError{node: function}
		}
		return zeroArityCheckTerms(function.Args())
	}
	return nil
}

func zeroArityCheckTerms(terms []gdl.Term) error {
	for _, term := range terms {
		if err := zeroArityCheckTerm(term); err != nil {
			return err
		}
	}
	return nil
}

// buildArityTables records the arity of every sentence name and every
// function name in the description. A name seen with two different
// arities is an error. Sentence names and function names are separate
// namespaces; overlap between them is only a warning, reported by
// nameOverlapWarnings.
func buildArityTables(relations []*gdl.Relation, rules []*gdl.Rule) (map[string]int, map[string]int, error) {
	sentenceArities := map[string]int{}
	functionArities := map[string]int{}
	record := func(sentence gdl.Sentence) error {
		if err := recordSentenceArity(sentence, sentenceArities); err != nil {
			return err
		}
		return recordFunctionArities(sentence, functionArities)
	}
	for _, relation := range relations {
		if err := record(relation); err != nil {
			return nil, nil, err
		}
	}
	for _, rule := range rules {
		for _, sentence := range sentencesInRule(rule) {
			if err := record(sentence); err != nil {
				return nil, nil, err
			}
		}
	}
	return sentenceArities, functionArities, nil
}

func recordSentenceArity(sentence gdl.Sentence, arities map[string]int) error {
	name := sentence.Name().Name()
	prev, seen := arities[name]
	if !seen {
		arities[name] = sentence.Arity()
		return nil
	}
	if prev != sentence.Arity() {
		return &sentenceArityError{name: name, arity: sentence.Arity(), prevArity: prev}
	}
	return nil
}

func recordFunctionArities(sentence gdl.Sentence, arities map[string]int) error {
	for _, function := range functionsInSentence(sentence) {
		name := function.Name().Name()
		prev, seen := arities[name]
		if !seen {
			arities[name] = function.Arity()
			continue
		}
		if prev != function.Arity() {
			return &functionArityError{name: name, arity: function.Arity(), prevArity: prev}
		}
	}
	return nil
}

func nameOverlapWarnings(sentenceArities map[string]int, functionArities map[string]int) []Warning {
	var warnings []Warning
	for _, name := range sortedNames(sentenceArities) {
		if _, ok := functionArities[name]; ok {
			warnings = append(warnings, Warning{Kind: WarningNameOverlap, Name: name})
		}
	}
	return warnings
}

func sortedNames(arities map[string]int) []string {
	names := make([]string, 0, len(arities))
	for name := range arities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
