package position

import "github.com/lgbarn/shogi-core-go/internal/shogi"

// PartialGame is a PartialPosition with an optional result.
type PartialGame struct {
	position   PartialPosition
	resolution shogi.OptionGameResolution
}

// NewPartialGame starts an unresolved game at p. p is copied.
func NewPartialGame(p *PartialPosition) *PartialGame {
	return &PartialGame{position: *p}
}

// Position returns the game's position.
func (g *PartialGame) Position() *PartialPosition { return &g.position }

// Resolution returns the result, if the game has ended.
func (g *PartialGame) Resolution() (shogi.GameResolution, bool) { return g.resolution.Get() }

// Resolve records the result. It never touches the position.
func (g *PartialGame) Resolve(r shogi.GameResolution) { g.resolution = shogi.SomeGameResolution(r) }

// Unresolve clears the result.
func (g *PartialGame) Unresolve() { g.resolution = shogi.NoneGameResolution }

// Game is a Position with an optional result.
type Game struct {
	position   Position
	resolution shogi.OptionGameResolution
}

// NewGame starts an unresolved game from pos, taking ownership of it.
func NewGame(pos *Position) *Game {
	return &Game{position: *pos}
}

// Position returns the game's position and history.
func (g *Game) Position() *Position { return &g.position }

// Resolution returns the result, if the game has ended.
func (g *Game) Resolution() (shogi.GameResolution, bool) { return g.resolution.Get() }

// Resolve records the result. It never touches the position.
func (g *Game) Resolve(r shogi.GameResolution) { g.resolution = shogi.SomeGameResolution(r) }

// Unresolve clears the result.
func (g *Game) Unresolve() { g.resolution = shogi.NoneGameResolution }
