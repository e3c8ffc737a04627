package validator

import (
	"github.com/vilterp/gdlint/pkg/depgraph"
	"github.com/vilterp/gdlint/pkg/gdl"
)

// buildDependencyGraph links every rule head to the sentence names its
// body mentions, then checks stratification: a negative edge on a
// cycle means some sentence negatively depends on itself, and the
// description has no well-defined meaning.
func buildDependencyGraph(sentenceArities map[string]int, rules []*gdl.Rule) (*depgraph.Graph, error) {
	graph := depgraph.New()
	for name := range sentenceArities {
		graph.AddNode(name)
	}
	for _, rule := range rules {
		headName := rule.Head().Name().Name()
		for _, literal := range rule.Body() {
			addLiteralEdges(graph, headName, literal, false)
		}
	}
	if err := checkStratification(graph); err != nil {
		return nil, err
	}
	return graph, nil
}

// addLiteralEdges walks one body literal. Distinct constraints relate
// terms, not sentences, so they contribute no edges.
func addLiteralEdges(graph *depgraph.Graph, headName string, literal gdl.Literal, negative bool) {
	switch literal := literal.(type) {
	case gdl.Sentence:
		if negative {
			graph.AddNegativeEdge(headName, literal.Name().Name())
		} else {
			graph.AddEdge(headName, literal.Name().Name())
		}
	case *gdl.Not:
		// Everything under a negation contributes negative edges,
		// however deeply it is nested.
		addLiteralEdges(graph, headName, literal.Body(), true)
	case *gdl.Or:
		for _, disjunct := range literal.Disjuncts() {
			addLiteralEdges(graph, headName, disjunct, negative)
		}
	}
}

func checkStratification(graph *depgraph.Graph) error {
	for _, edge := range graph.NegativeEdges() {
		// A path from the negated sentence back to the rule head
		// closes a cycle through this edge.
		if graph.Upstream(edge.To)[edge.From] {
			return &negativeCycleError{from: edge.From, to: edge.To}
		}
	}
	return nil
}
