package validator

import "github.com/vilterp/gdlint/pkg/gdl"

// checkProperNegation rejects any negation whose body is not a plain
// sentence. Later checkers rely on this: once it passes, every
// negation in the description wraps exactly one sentence.
func checkProperNegation(literal gdl.Literal) error {
	switch literal := literal.(type) {
	case *gdl.Not:
		if _, ok := literal.Body().(gdl.Sentence); !ok {
			return &improperNegationError{not: literal}
		}
	case *gdl.Or:
		for _, disjunct := range literal.Disjuncts() {
			if err := checkProperNegation(disjunct); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkRuleSafety requires every variable that occurs in the head,
// under a negation, or in a distinct constraint to also occur in some
// positive sentence of the body. Without that, the variable ranges
// over the whole universe of terms and the rule has no finite
// grounding.
func checkRuleSafety(rule *gdl.Rule) error {
	unsupported := variablesInTerms(rule.Head().Args(), nil)
	for _, literal := range rule.Body() {
		unsupported = unsupportedVariablesInLiteral(literal, unsupported)
	}
	supported := map[gdl.Variable]bool{}
	for _, literal := range rule.Body() {
		for _, variable := range supportedVariablesInLiteral(literal) {
			supported[variable] = true
		}
	}
	for _, variable := range unsupported {
		if !supported[variable] {
			return &unsafeRuleError{rule: rule, variable: variable}
		}
	}
	return nil
}

func unsupportedVariablesInLiteral(literal gdl.Literal, variables []gdl.Variable) []gdl.Variable {
	switch literal := literal.(type) {
	case *gdl.Not:
		// Negated propositions have no arguments, and anything else
		// here was already rejected as an improper negation.
		if relation, ok := literal.Body().(*gdl.Relation); ok {
			variables = variablesInTerms(relation.Args(), variables)
		}
	case *gdl.Or:
		for _, disjunct := range literal.Disjuncts() {
			variables = unsupportedVariablesInLiteral(disjunct, variables)
		}
	case *gdl.Distinct:
		variables = variablesInTerms([]gdl.Term{literal.Arg1(), literal.Arg2()}, variables)
	}
	return variables
}

// supportedVariablesInLiteral returns the variables a literal is
// guaranteed to bind. A disjunction only binds what every one of its
// branches binds, so branches are intersected, not unioned.
func supportedVariablesInLiteral(literal gdl.Literal) []gdl.Variable {
	switch literal := literal.(type) {
	case *gdl.Relation:
		return variablesInTerms(literal.Args(), nil)
	case *gdl.Or:
		disjuncts := literal.Disjuncts()
		if len(disjuncts) == 0 {
			return nil
		}
		common := supportedVariablesInLiteral(disjuncts[0])
		for _, disjunct := range disjuncts[1:] {
			inBranch := map[gdl.Variable]bool{}
			for _, variable := range supportedVariablesInLiteral(disjunct) {
				inBranch[variable] = true
			}
			kept := common[:0]
			for _, variable := range common {
				if inBranch[variable] {
					kept = append(kept, variable)
				}
			}
			common = kept
		}
		return common
	}
	return nil
}
