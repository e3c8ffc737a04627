package gdlint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const validGame = `(role white)
(init (step 1))
(<= (legal white noop) (true (step 1)))
(<= (next (step 2)) (does white noop) (true (step 1)))
(<= terminal (true (step 2)))
(<= (goal white 100) (true (step 2)))`

func TestValidateOverSocket(t *testing.T) {
	ref := runValidationScript(t, []validationTestCase{
		{
			rulesheet: validGame,
			valid:     true,
		},
		{
			rulesheet: "(role white))",
			valid:     false,
			error:     "parse error: extra close paren at line 1",
		},
		{
			rulesheet: "(<=)",
			valid:     false,
			error:     "parse error: a rule needs a head",
		},
		{
			rulesheet: validGame + "\n(<= (p ?x) (not (q ?x)))",
			valid:     false,
			error: "validation error: unsafe rule (<= (p ?x) (not (q ?x))): " +
				"the variable ?x is not defined in any positive relation in the rule's body",
		},
	})
	defer ref.Close()
}

func TestVerdictCache(t *testing.T) {
	server, client, err := NewTestServer(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer server.Close()
	defer client.Close()

	first, err := client.Validate(validGame)
	require.NoError(t, err)
	require.True(t, first.Valid)
	require.NotEmpty(t, first.ID)

	// The second validation should be answered from the cache, so the
	// verdict keeps the id it was assigned the first time around.
	second, err := client.Validate(validGame)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
}
