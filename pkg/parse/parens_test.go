package parse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckParens(t *testing.T) {
	cases := []struct {
		in  string
		err string
	}{
		{"", ""},
		{"(role white)\n(init (step 1))", ""},
		{"(role white))", "extra close paren at line 1"},
		{"(role white)\n)", "extra close paren at line 2"},
		{"(role white", "unclosed open paren starting at line 1"},
		{"(a)\n(b\n(c)", "unclosed open paren starting at line 2"},
		// The most recently opened paren gets the blame.
		{"(a\n(b", "unclosed open paren starting at line 2"},
		// Parens in comments don't count.
		{"(a) ; ((((", ""},
		{"(a ; )\n)", ""},
	}
	for idx, testCase := range cases {
		err := CheckParens(testCase.in)
		if testCase.err == "" {
			require.NoError(t, err, "case %d", idx)
		} else {
			require.EqualError(t, err, testCase.err, "case %d", idx)
		}
	}
}
