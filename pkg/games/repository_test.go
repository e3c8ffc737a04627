package games

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirRepositoryGameKeys(t *testing.T) {
	repo := NewDirRepository("testdata")

	keys, err := repo.GameKeys()
	require.NoError(t, err)
	require.Equal(t, []string{"buttons", "ticTacToe"}, keys)

	_, err = NewDirRepository("testdata/nope").GameKeys()
	require.Error(t, err)
}

func TestDirRepositoryGetGame(t *testing.T) {
	repo := NewDirRepository("testdata")

	game, err := repo.GetGame("ticTacToe")
	require.NoError(t, err)
	require.Equal(t, "ticTacToe", game.Key())
	require.Contains(t, game.Rulesheet(), "(role xplayer)")

	rules, err := game.Rules()
	require.NoError(t, err)
	require.NotEmpty(t, rules)

	_, err = repo.GetGame("chess")
	require.Error(t, err)
}
