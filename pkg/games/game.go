// Package games supplies game descriptions to validate: a Game pairs
// a key with its raw rulesheet, and a Repository loads games by key.
package games

import (
	"github.com/vilterp/gdlint/pkg/gdl"
	"github.com/vilterp/gdlint/pkg/parse"
)

type Game struct {
	key       string
	rulesheet string
}

func NewGame(key string, rulesheet string) *Game {
	return &Game{key: key, rulesheet: rulesheet}
}

// Key returns the repository key the game was loaded under.
func (g *Game) Key() string { return g.key }

// Rulesheet returns the raw KIF source.
func (g *Game) Rulesheet() string { return g.rulesheet }

// Rules parses the rulesheet. The description is not cached; callers
// that need it more than once should hold on to it.
func (g *Game) Rules() (gdl.Description, error) {
	return parse.Parse(g.rulesheet)
}
