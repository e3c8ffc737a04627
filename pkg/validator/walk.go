package validator

import "github.com/vilterp/gdlint/pkg/gdl"

// Traversal helpers shared by the checkers. They append to the given
// slice and return it, so call sites can fold over a rule without
// allocating intermediate collections.

// sentencesInRule collects the head and every sentence in the body,
// looking through negations and disjunctions.
func sentencesInRule(rule *gdl.Rule) []gdl.Sentence {
	sentences := []gdl.Sentence{rule.Head()}
	for _, literal := range rule.Body() {
		sentences = sentencesInLiteral(literal, sentences)
	}
	return sentences
}

func sentencesInLiteral(literal gdl.Literal, sentences []gdl.Sentence) []gdl.Sentence {
	switch literal := literal.(type) {
	case gdl.Sentence:
		sentences = append(sentences, literal)
	case *gdl.Not:
		sentences = sentencesInLiteral(literal.Body(), sentences)
	case *gdl.Or:
		for _, disjunct := range literal.Disjuncts() {
			sentences = sentencesInLiteral(disjunct, sentences)
		}
	}
	return sentences
}

// functionsInSentence collects every function term in the sentence's
// arguments, including functions nested inside other functions.
func functionsInSentence(sentence gdl.Sentence) []*gdl.Function {
	return functionsInTerms(sentence.Args(), nil)
}

func functionsInTerms(terms []gdl.Term, functions []*gdl.Function) []*gdl.Function {
	for _, term := range terms {
		if function, ok := term.(*gdl.Function); ok {
			functions = append(functions, function)
			functions = functionsInTerms(function.Args(), functions)
		}
	}
	return functions
}

// variablesInTerms collects every variable occurrence, descending into
// functions. Duplicates are kept.
func variablesInTerms(terms []gdl.Term, variables []gdl.Variable) []gdl.Variable {
	for _, term := range terms {
		switch term := term.(type) {
		case gdl.Variable:
			variables = append(variables, term)
		case *gdl.Function:
			variables = variablesInTerms(term.Args(), variables)
		}
	}
	return variables
}
