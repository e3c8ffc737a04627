package parse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	// Parsing the rendered form again should give the same rendering.
	cases := []struct {
		in  string
		out string
	}{
		{"(role white)", "(role white)"},
		{"(  role\n\twhite )", "(role white)"},
		{"(init (cell 1 1 b))", "(init (cell 1 1 b))"},
		{
			"(<= (next (step ?n)) (true (step ?m)) (succ ?m ?n))",
			"(<= (next (step ?n)) (true (step ?m)) (succ ?m ?n))",
		},
		{
			"(<= (goal ?p 100) (not (blocked ?p)) (distinct ?p unknown))",
			"(<= (goal ?p 100) (not (blocked ?p)) (distinct ?p unknown))",
		},
		{"(<= p (or q (not r)))", "(<= p (or q (not r)))"},
		{"; a comment\n(role white) ; another", "(role white)"},
		{"(role white)\n(role black)", "(role white)\n(role black)"},
		// Forms the validator rejects still parse, so it can explain them.
		{"foo", "foo"},
		{"(foo)", "(foo)"},
		{"(<= head)", "(<= head)"},
		{"(<= p (or))", "(<= p (or))"},
		{"(not p)", "(not p)"},
		{"", ""},
	}
	for idx, testCase := range cases {
		description, err := Parse(testCase.in)
		require.NoError(t, err, "case %d", idx)
		require.Equal(t, testCase.out, description.String(), "case %d", idx)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in  string
		err string
	}{
		{"()", "empty parentheses are not a valid expression"},
		{"(<=)", "a rule needs a head"},
		{"(<= ?x (foo ?x))", "the variable ?x cannot be used as a sentence"},
		{"(<= (foo ?x) ?x)", "the variable ?x cannot be used as a sentence"},
		{"(<= p (not))", "not takes exactly one argument, not 0"},
		{"(<= p (not a b))", "not takes exactly one argument, not 2"},
		{"(<= p (distinct ?x))", "distinct takes exactly two arguments, not 1"},
		{"((a) b)", "a list cannot be used as a sentence name"},
		{"(<= p (f (?x y) z))", "the variable ?x cannot be used as a function name"},
	}
	for idx, testCase := range cases {
		_, err := Parse(testCase.in)
		require.EqualError(t, err, testCase.err, "case %d", idx)
	}

	// Unbalanced input fails at the token level; CheckParens exists to
	// say something more helpful first.
	_, err := Parse("(role white))")
	require.Error(t, err)
}
