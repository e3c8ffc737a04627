package depgraph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// next -> cell -> true; legal -> cell; goal -(not)-> open; open -> cell
func testGraph() *Graph {
	g := New()
	g.AddNode("init")
	g.AddEdge("next", "cell")
	g.AddEdge("cell", "true")
	g.AddEdge("legal", "cell")
	g.AddNegativeEdge("goal", "open")
	g.AddEdge("open", "cell")
	return g
}

func TestEdges(t *testing.T) {
	g := testGraph()

	require.True(t, g.HasOutgoing("next"))
	require.False(t, g.HasOutgoing("true"))
	require.False(t, g.HasOutgoing("init"))
	require.True(t, g.HasIncoming("cell"))
	require.False(t, g.HasIncoming("next"))

	require.Equal(t, []string{"cell"}, g.Dependencies("next"))
	require.Empty(t, g.Dependencies("true"))

	require.Equal(t, []Edge{{From: "goal", To: "open"}}, g.NegativeEdges())
}

func TestClosures(t *testing.T) {
	g := testGraph()

	cases := []struct {
		name     string
		actual   map[string]bool
		expected map[string]bool
	}{
		{
			name:     "upstream of next",
			actual:   g.Upstream("next"),
			expected: map[string]bool{"next": true, "cell": true, "true": true},
		},
		{
			name:     "upstream of true",
			actual:   g.Upstream("true"),
			expected: map[string]bool{"true": true},
		},
		{
			name:   "downstream of true",
			actual: g.Downstream("true"),
			expected: map[string]bool{
				"true": true, "cell": true, "next": true, "legal": true, "open": true, "goal": true,
			},
		},
		{
			name:     "downstream of open",
			actual:   g.Downstream("open"),
			expected: map[string]bool{"open": true, "goal": true},
		},
		{
			name: "matching seeds are unioned",
			actual: g.MatchingAndUpstream(func(name string) bool {
				return name == "legal" || name == "goal"
			}),
			expected: map[string]bool{
				"legal": true, "goal": true, "open": true, "cell": true, "true": true,
			},
		},
		{
			name: "no matches",
			actual: g.MatchingAndDownstream(func(name string) bool {
				return false
			}),
			expected: map[string]bool{},
		},
	}
	for _, testCase := range cases {
		if diff := cmp.Diff(testCase.expected, testCase.actual); diff != "" {
			t.Errorf("%s: closure mismatch (-want +got):\n%s", testCase.name, diff)
		}
	}
}

func TestNegativeEdgesAreInFullGraph(t *testing.T) {
	g := New()
	g.AddNegativeEdge("p", "q")
	g.AddEdge("q", "p")

	// The negative edge participates in ordinary reachability.
	require.True(t, g.Upstream("q")["p"])
	require.True(t, g.Upstream("p")["q"])
}
