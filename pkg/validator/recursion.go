package validator

import (
	"github.com/vilterp/gdlint/pkg/depgraph"
	"github.com/vilterp/gdlint/pkg/gdl"
)

// ancestorsGraph maps every sentence name to itself plus every name
// its definition transitively depends on.
func ancestorsGraph(graph *depgraph.Graph, sentenceArities map[string]int) map[string]map[string]bool {
	ancestors := make(map[string]map[string]bool, len(sentenceArities))
	for name := range sentenceArities {
		ancestors[name] = graph.Upstream(name)
	}
	return ancestors
}

// checkRecursionRestriction bounds the growth of function terms under
// recursion. A body relation is cyclic when its definition can reach
// the rule's head; each argument of a cyclic relation must be ground,
// repeat an argument of the head, or repeat an argument of a positive
// conjunct outside the cycle. Anything else could build ever-larger
// terms as the recursion unwinds.
func checkRecursionRestriction(rule *gdl.Rule, ancestors map[string]map[string]bool) error {
	headName := rule.Head().Name().Name()
	var cyclic, acyclic []*gdl.Relation
	for _, literal := range rule.Body() {
		switch literal := literal.(type) {
		case *gdl.Relation:
			if ancestors[literal.Name().Name()][headName] {
				cyclic = append(cyclic, literal)
			} else {
				acyclic = append(acyclic, literal)
			}
		case *gdl.Or:
			// Look one level deep, and only for cyclic relations: a
			// relation inside a disjunction might not hold, so it
			// cannot pin a term down.
			// TODO: ors nested inside ors aren't scanned for cyclic
			// relations.
			for _, disjunct := range literal.Disjuncts() {
				if relation, ok := disjunct.(*gdl.Relation); ok {
					if ancestors[relation.Name().Name()][headName] {
						cyclic = append(cyclic, relation)
					}
				}
			}
		}
	}
	for _, relation := range cyclic {
		for _, term := range relation.Args() {
			if !recursionSafeTerm(term, rule, acyclic) {
				return &recursionRestrictionError{rule: rule, term: term}
			}
		}
	}
	return nil
}

func recursionSafeTerm(term gdl.Term, rule *gdl.Rule, acyclic []*gdl.Relation) bool {
	if term.Ground() {
		return true
	}
	if head, ok := rule.Head().(*gdl.Relation); ok {
		for _, headTerm := range head.Args() {
			if gdl.Equal(headTerm, term) {
				return true
			}
		}
	}
	for _, relation := range acyclic {
		for _, arg := range relation.Args() {
			if gdl.Equal(arg, term) {
				return true
			}
		}
	}
	return false
}
