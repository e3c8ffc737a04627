package gdl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGround(t *testing.T) {
	x := NewVariable("x")
	a := NewConstant("a")

	require.True(t, a.Ground())
	require.False(t, x.Ground())
	require.True(t, NewFunction(NewConstant("f"), []Term{a, a}).Ground())
	require.False(t, NewFunction(NewConstant("f"), []Term{a, x}).Ground())
	require.False(t, NewFunction(NewConstant("f"), []Term{
		NewFunction(NewConstant("g"), []Term{x}),
	}).Ground())
}

func TestEqual(t *testing.T) {
	f := func(args ...Term) Term {
		return NewFunction(NewConstant("f"), args)
	}
	cases := []struct {
		a, b  Term
		equal bool
	}{
		{NewConstant("a"), NewConstant("a"), true},
		{NewConstant("a"), NewConstant("b"), false},
		{NewVariable("x"), NewVariable("x"), true},
		{NewVariable("x"), NewVariable("y"), false},
		{NewConstant("a"), NewVariable("a"), false},
		{f(NewConstant("a")), f(NewConstant("a")), true},
		{f(NewConstant("a")), f(NewConstant("b")), false},
		{f(NewConstant("a")), f(NewConstant("a"), NewConstant("a")), false},
		{f(f(NewVariable("x"))), f(f(NewVariable("x"))), true},
		{f(NewConstant("a")), NewConstant("f"), false},
	}
	for idx, testCase := range cases {
		if Equal(testCase.a, testCase.b) != testCase.equal {
			t.Errorf(
				"case %d: expected Equal(%s, %s) = %v", idx, testCase.a, testCase.b, testCase.equal,
			)
		}
	}
}

func TestString(t *testing.T) {
	rule := NewRule(
		NewRelation(NewConstant("next"), []Term{
			NewFunction(NewConstant("step"), []Term{NewVariable("n")}),
		}),
		[]Literal{
			NewRelation(NewConstant("true"), []Term{
				NewFunction(NewConstant("step"), []Term{NewVariable("m")}),
			}),
			NewRelation(NewConstant("succ"), []Term{NewVariable("m"), NewVariable("n")}),
			NewNot(NewProposition(NewConstant("stuck"))),
			NewDistinct(NewVariable("m"), NewConstant("5")),
		},
	)
	require.Equal(
		t,
		"(<= (next (step ?n)) (true (step ?m)) (succ ?m ?n) (not stuck) (distinct ?m 5))",
		rule.String(),
	)

	description := Description{
		NewRelation(NewConstant("role"), []Term{NewConstant("white")}),
		NewProposition(NewConstant("someFact")),
	}
	require.Equal(t, "(role white)\nsomeFact", description.String())

	or := NewOr([]Literal{
		NewProposition(NewConstant("p")),
		NewProposition(NewConstant("q")),
	})
	require.Equal(t, "(or p q)", or.String())
	require.Equal(t, "(or)", NewOr(nil).String())
}
