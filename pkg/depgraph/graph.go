// Package depgraph implements the sentence dependency graph used to
// analyze game descriptions: nodes are sentence names, and an edge
// from A to B records that some rule with head A mentions B in its
// body. Negative edges additionally record that the mention was under
// a negation.
package depgraph

import "sort"

// Graph is a directed graph over sentence names. It tracks both edge
// directions so that reachability can be computed either way, plus the
// subset of edges introduced under negation.
type Graph struct {
	nodes    map[string]bool
	out      map[string]map[string]bool
	in       map[string]map[string]bool
	negative map[string]map[string]bool
}

// Edge is a single dependency: From's definition mentions To.
type Edge struct {
	From string
	To   string
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:    map[string]bool{},
		out:      map[string]map[string]bool{},
		in:       map[string]map[string]bool{},
		negative: map[string]map[string]bool{},
	}
}

// AddNode registers a name, with or without edges.
func (g *Graph) AddNode(name string) {
	g.nodes[name] = true
}

// AddEdge records that from's definition mentions to. Both endpoints
// are registered as nodes.
func (g *Graph) AddEdge(from string, to string) {
	g.AddNode(from)
	g.AddNode(to)
	addToMultimap(g.out, from, to)
	addToMultimap(g.in, to, from)
}

// AddNegativeEdge records a dependency that occurs under a negation.
// The edge is part of the full graph as well.
func (g *Graph) AddNegativeEdge(from string, to string) {
	g.AddEdge(from, to)
	addToMultimap(g.negative, from, to)
}

// HasOutgoing reports whether any rule with head name depends on
// another sentence.
func (g *Graph) HasOutgoing(name string) bool {
	return len(g.out[name]) > 0
}

// HasIncoming reports whether any rule body mentions name.
func (g *Graph) HasIncoming(name string) bool {
	return len(g.in[name]) > 0
}

// Dependencies returns the names that name's definition mentions
// directly, sorted.
func (g *Graph) Dependencies(name string) []string {
	return sortedKeys(g.out[name])
}

// NegativeEdges returns every negated dependency, sorted by source
// then target.
func (g *Graph) NegativeEdges() []Edge {
	var edges []Edge
	for _, from := range sortedKeys(g.negative) {
		for _, to := range sortedKeys(g.negative[from]) {
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	return edges
}

// MatchingAndUpstream returns the matching nodes plus everything their
// definitions transitively depend on.
func (g *Graph) MatchingAndUpstream(match func(name string) bool) map[string]bool {
	return g.closure(g.out, match)
}

// MatchingAndDownstream returns the matching nodes plus everything
// that transitively depends on them.
func (g *Graph) MatchingAndDownstream(match func(name string) bool) map[string]bool {
	return g.closure(g.in, match)
}

// Upstream returns name plus everything its definition transitively
// depends on.
func (g *Graph) Upstream(name string) map[string]bool {
	return g.MatchingAndUpstream(func(other string) bool {
		return other == name
	})
}

// Downstream returns name plus everything that transitively depends
// on it.
func (g *Graph) Downstream(name string) map[string]bool {
	return g.MatchingAndDownstream(func(other string) bool {
		return other == name
	})
}

// closure does a breadth-first walk along the given adjacency map,
// seeded with every node the predicate matches. Seeds are included in
// the result.
func (g *Graph) closure(adjacency map[string]map[string]bool, match func(name string) bool) map[string]bool {
	result := map[string]bool{}
	var frontier []string
	for node := range g.nodes {
		if match(node) {
			result[node] = true
			frontier = append(frontier, node)
		}
	}
	for len(frontier) > 0 {
		node := frontier[0]
		frontier = frontier[1:]
		for next := range adjacency[node] {
			if !result[next] {
				result[next] = true
				frontier = append(frontier, next)
			}
		}
	}
	return result
}

func addToMultimap(multimap map[string]map[string]bool, key string, value string) {
	values, ok := multimap[key]
	if !ok {
		values = map[string]bool{}
		multimap[key] = values
	}
	values[value] = true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
