package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vilterp/gdlint/pkg/games"
	"github.com/vilterp/gdlint/pkg/gdl"
	"github.com/vilterp/gdlint/pkg/parse"
)

func mustParse(t *testing.T, src string) gdl.Description {
	t.Helper()
	description, err := parse.Parse(src)
	require.NoError(t, err)
	return description
}

// A minimal game that passes every check with no warnings.
const validGame = `(role white)
(init (step 1))
(<= (legal white noop) (true (step 1)))
(<= (next (step 2)) (does white noop) (true (step 1)))
(<= terminal (true (step 2)))
(<= (goal white 100) (true (step 2)))`

func TestValidGames(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{
			name: "minimal game",
			src:  validGame,
		},
		{
			name: "recursion pinned by head and acyclic conjunct args",
			src: validGame + `
(num 1)
(num 2)
(succ 1 2)
(<= (lt ?x ?y) (succ ?x ?y))
(<= (lt ?x ?z) (succ ?x ?y) (lt ?y ?z))`,
		},
		{
			name: "variable bound in every branch of a disjunction",
			src: validGame + `
(q a)
(r a)
(<= (p ?x) (or (q ?x) (r ?x)))`,
		},
		{
			name: "empty disjunction is allowed",
			src:  validGame + "\n(<= p (or))",
		},
		// distinct contributes no dependency edges, so a role rule
		// with only a distinct body goes undetected.
		{
			name: "role rule with only a distinct body",
			src:  validGame + "\n(<= (role black) (distinct a b))",
		},
	}
	for _, testCase := range cases {
		warnings, err := Validate(mustParse(t, testCase.src))
		require.NoError(t, err, testCase.name)
		require.Empty(t, warnings, testCase.name)
	}
}

func TestFatalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  string
	}{
		{
			name: "top-level variable",
			src:  "?x",
			err:  "the description contains ?x at the top level, which is neither a relation nor a rule",
		},
		{
			name: "zero-arity relation",
			src:  "(foo)",
			err:  "(foo) is written as a zero-arity relation; write it as a proposition instead (drop the parentheses)",
		},
		{
			name: "facts are scanned for zero arities before rules",
			src:  "(<= (p) q)\n(foo)",
			err:  "(foo) is written as a zero-arity relation; write it as a proposition instead (drop the parentheses)",
		},
		{
			name: "zero-arity function",
			src:  validGame + "\n(init (f))",
			err:  "(f) is written as a zero-arity function; write it as a constant instead (drop the parentheses)",
		},
		{
			name: "zero-arity function inside distinct",
			src:  "(<= (p ?x) (q ?x) (distinct ?x (f)))",
			err:  "(f) is written as a zero-arity function; write it as a constant instead (drop the parentheses)",
		},
		{
			name: "rule with no body",
			src:  "(<= someProp)",
			err:  "(<= someProp) is written as a rule with no body; if it should always hold, write it as a relation instead",
		},
		{
			name: "negated negation",
			src:  "(<= p (not (not q)))",
			err:  "the negation (not (not q)) contains (not q), which is not a sentence; only a single sentence can be negated",
		},
		{
			name: "negated disjunction",
			src:  "(<= p (not (or q r)))",
			err:  "the negation (not (or q r)) contains (or q r), which is not a sentence; only a single sentence can be negated",
		},
		{
			name: "sentence arity mismatch",
			src:  "(p a)\n(p a b)",
			err:  "the sentence name p appears with two different arities, 2 and 1",
		},
		{
			name: "sentence arity mismatch between fact and rule body",
			src:  "(q a b)\n(<= (p ?x) (q ?x))",
			err:  "the sentence name q appears with two different arities, 1 and 2",
		},
		{
			name: "function arity mismatch",
			src:  "(p (f a))\n(q (f a b))",
			err:  "the function name f appears with two different arities, 2 and 1",
		},
		{
			name: "missing role",
			src:  "(p a)",
			err:  "no role relations found in the game description",
		},
		{
			name: "missing terminal",
			src:  "(role white)",
			err:  "no terminal proposition found in the game description",
		},
		{
			name: "missing goal",
			src:  "(role white)\n(<= terminal (true (step 1)))",
			err:  "no goal relations found in the game description",
		},
		{
			name: "missing legal",
			src:  "(role white)\n(<= terminal (true (step 1)))\n(<= (goal white 100) terminal)",
			err:  "no legal relations found in the game description",
		},
		{
			name: "role arity",
			src:  "(role white black)",
			err:  "the role relation should have arity 1 (argument: the player name)",
		},
		{
			name: "terminal with arguments",
			src:  "(role white)\n(<= (terminal ?x) (true (step ?x)))",
			err:  "terminal should be a proposition, not a relation",
		},
		{
			name: "goal arity",
			src:  "(role white)\n(<= terminal (true (step 1)))\n(<= (goal white) (true (step 1)))",
			err:  "the goal relation should have arity 2 (first argument: the player, second argument: an integer from 0 to 100)",
		},
		{
			name: "legal arity",
			src: "(role white)\n(<= terminal (true (step 1)))\n(<= (goal white 100) (true (step 1)))\n" +
				"(<= (legal white) (true (step 1)))",
			err: "the legal relation should have arity 2 (first argument: the player, second argument: the move)",
		},
		{
			name: "does arity",
			src: `(role white)
(init (step 1))
(<= (legal white noop) (true (step 1)))
(<= (next (step 2)) (does white))
(<= terminal (true (step 2)))
(<= (goal white 100) (true (step 2)))`,
			err: "the does relation should have arity 2 (first argument: the player, second argument: the move)",
		},
		{
			name: "init arity",
			src: `(role white)
(init (step 1) (step 2))
(<= (legal white noop) (true (step 1)))
(<= terminal (true (step 2)))
(<= (goal white 100) (true (step 2)))`,
			err: "the init relation should have arity 1 (argument: a sentence of the game state)",
		},
		{
			name: "keyword as function name",
			src:  validGame + "\n(p (true a))",
			err:  "the keyword true is used as a function name; keywords can only name sentences",
		},
		{
			name: "unsafe rule: variable only under negation",
			src: `(role white)
(<= (legal white ?m) (not (blocked ?m)))
(<= (goal white 100) terminal)
(<= terminal (true (step 1)))`,
			err: "unsafe rule (<= (legal white ?m) (not (blocked ?m))): the variable ?m is not defined in any positive relation in the rule's body",
		},
		{
			name: "unsafe rule: variable missing from one disjunct",
			src:  validGame + "\n(q a)\n(<= (p ?x) (or (q ?x) r))",
			err:  "unsafe rule (<= (p ?x) (or (q ?x) r)): the variable ?x is not defined in any positive relation in the rule's body",
		},
		{
			name: "unsafe rule: variable only in distinct",
			src:  validGame + "\n(<= (p a) (distinct ?x b))",
			err:  "unsafe rule (<= (p a) (distinct ?x b)): the variable ?x is not defined in any positive relation in the rule's body",
		},
		{
			name: "unstratified negation",
			src: `(role white)
(r a)
(<= terminal (true (step 1)))
(<= (goal white 100) terminal)
(<= (legal white noop) (true (step 1)))
(<= (p ?x) (r ?x) (not (q ?x)))
(<= (q ?x) (p ?x))`,
			err: "the rules are not stratified: the negative edge from p to q lies on a cycle in the dependency graph",
		},
		{
			name: "unstratified negation through a disjunction",
			src: validGame + `
(q a)
(s a)
(<= (p ?x) (q ?x) (or (not (r ?x)) (s ?x)))
(<= (r ?x) (p ?x))`,
			err: "the rules are not stratified: the negative edge from p to r lies on a cycle in the dependency graph",
		},
		{
			name: "role defined by a rule",
			src: `(player white)
(<= (role ?x) (player ?x))
(<= terminal (true (step 1)))
(<= (goal white 100) terminal)
(<= (legal white noop) (true (step 1)))`,
			err: "the role relation should be defined by ground facts, not by rules",
		},
		{
			name: "true defined by a rule",
			src:  validGame + "\n(p a)\n(<= (true ?x) (p ?x))",
			err:  "the true relation should never be in the head of a rule",
		},
		{
			name: "does defined by a rule",
			src:  validGame + "\n(p a)\n(<= (does white ?x) (p ?x))",
			err:  "the does relation should never be in the head of a rule",
		},
		{
			name: "init in a rule body",
			src:  validGame + "\n(<= (p ?x) (init ?x))",
			err:  "the init relation should never be in the body of a rule",
		},
		{
			name: "next in a rule body",
			src:  validGame + "\n(<= (p ?x) (next ?x))",
			err:  "the next relation should never be in the body of a rule",
		},
		{
			name: "init depending on terminal",
			src:  validGame + "\n(<= (init (step 3)) terminal)",
			err:  "the init relation should never depend on a true, does, next, legal, goal, or terminal sentence",
		},
		{
			name: "base depending on true through another relation",
			src:  validGame + "\n(<= (p ?x) (true ?x))\n(<= (base ?x) (p ?x))",
			err:  "the base relation should never depend on a true, does, next, legal, goal, or terminal sentence",
		},
		{
			name: "terminal depending on does",
			src: `(role white)
(init (step 1))
(<= (legal white noop) (true (step 1)))
(<= (moved ?m) (does white ?m))
(<= terminal (moved noop))
(<= (goal white 100) (true (step 1)))`,
			err: "the terminal relation should never depend on a does sentence",
		},
		{
			name: "recursion growing a function term",
			src:  validGame + "\n(<= (p (f ?x)) (p ?x))",
			err:  "recursion restriction violated in rule (<= (p (f ?x)) (p ?x)): the term ?x must be ground, an argument of the head, or an argument of a conjunct outside the cycle",
		},
	}
	for _, testCase := range cases {
		_, err := Validate(mustParse(t, testCase.src))
		require.EqualError(t, err, testCase.err, testCase.name)
	}
}

func TestWarnings(t *testing.T) {
	cases := []struct {
		name     string
		src      string
		expected []Warning
	}{
		{
			name:     "bare proposition",
			src:      validGame + "\nsomeNote",
			expected: []Warning{{Kind: WarningBareProposition, Name: "someNote"}},
		},
		{
			name:     "name used as both sentence and function",
			src:      validGame + "\n(cell 1 1 b)\n(base (cell 1 1 b))",
			expected: []Warning{{Kind: WarningNameOverlap, Name: "cell"}},
		},
		{
			name:     "reference to an undefined sentence",
			src:      validGame + "\n(<= (p ?x) (q ?x))",
			expected: []Warning{{Kind: WarningUndefined, Name: "q"}},
		},
		{
			name: "warnings accumulate across checks",
			src: validGame + `
someNote
(cell 1 1 b)
(base (cell 1 1 b))
(<= (p ?x) (q ?x))`,
			expected: []Warning{
				{Kind: WarningBareProposition, Name: "someNote"},
				{Kind: WarningNameOverlap, Name: "cell"},
				{Kind: WarningUndefined, Name: "q"},
			},
		},
	}
	for _, testCase := range cases {
		warnings, err := Validate(mustParse(t, testCase.src))
		require.NoError(t, err, testCase.name)
		require.ElementsMatch(t, testCase.expected, warnings, testCase.name)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	description := mustParse(t, validGame+"\nsomeNote\n(<= (p ?x) (q ?x))")
	first, err := Validate(description)
	require.NoError(t, err)
	second, err := Validate(description)
	require.NoError(t, err)
	require.ElementsMatch(t, first, second)
}

func TestWarningMessages(t *testing.T) {
	require.Equal(t,
		"the description contains the bare proposition someNote, which may not be intended",
		Warning{Kind: WarningBareProposition, Name: "someNote"}.String())
	require.Equal(t,
		"the constant cell is used as both a sentence name and a function name; this is probably unintended (are you using true correctly?)",
		Warning{Kind: WarningNameOverlap, Name: "cell"}.String())
	require.Equal(t,
		"a rule references the sentence name q, but no sentence with that name is defined",
		Warning{Kind: WarningUndefined, Name: "q"}.String())
}

func TestStaticValidatorCheckValidity(t *testing.T) {
	var v StaticValidator

	warnings, err := v.CheckValidity(games.NewGame("minimal", validGame))
	require.NoError(t, err)
	require.Empty(t, warnings)

	_, err = v.CheckValidity(games.NewGame("unbalanced", "(role white))"))
	require.EqualError(t, err, "extra close paren at line 1")

	_, err = v.CheckValidity(games.NewGame("malformed", "(<=)"))
	require.EqualError(t, err, "a rule needs a head")

	_, err = v.CheckValidity(games.NewGame("invalid", "(foo)"))
	require.EqualError(t, err, "(foo) is written as a zero-arity relation; write it as a proposition instead (drop the parentheses)")
}

// TestRepositoryGames runs the full analysis over the checked-in
// rulesheets, which are known-good games.
func TestRepositoryGames(t *testing.T) {
	repo := games.NewDirRepository("../games/testdata")
	keys, err := repo.GameKeys()
	require.NoError(t, err)
	require.NotEmpty(t, keys)

	var v StaticValidator
	for _, key := range keys {
		game, err := repo.GetGame(key)
		require.NoError(t, err, key)
		warnings, err := v.CheckValidity(game)
		require.NoError(t, err, key)
		require.Empty(t, warnings, key)
	}
}
