package game

import (
	"errors"
	"math/rand"
	"time"
)

var (
	ErrIllegalMove   = errors.New("illegal move")
	ErrUnknownPile   = errors.New("unknown pile")
	ErrEmptyPile     = errors.New("pile is empty")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNotApplicable = errors.New("no move applies")
	ErrNoSelection   = errors.New("no card selected")
)

// Selection identifies the card a player has picked up and where it
// came from. It is ephemeral: it mediates a pick-then-place gesture
// and is never stored in a snapshot
type Selection struct {
	Source PileID
	Index  int    // position within the source pile; negative means the top card
	CardID string // optional check that the pick still matches the live state
}

// TopOf selects the top card of the given pile
func TopOf(source PileID) Selection {
	return Selection{Source: source, Index: -1}
}

// Game owns one live GameState and its undo history. It is the only
// writer of either: every transition goes through a method that
// validates, snapshots and then executes, so an illegal intent can
// never alter the state
type Game struct {
	state    *GameState
	history  *History
	rng      *rand.Rand
	selected *Selection
}

// GameOpts configures a new Game. The zero value plays a random deal
// with the standard ten-deep undo history
type GameOpts struct {
	Seed        int64 // 0 seeds from the clock
	HistorySize int   // 0 means DefaultHistorySize
}

// New constructs a Game and deals the opening layout
func New(opts GameOpts) *Game {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		rng:     rand.New(rand.NewSource(seed)),
		history: NewHistory(opts.HistorySize),
	}
	g.Deal()
	return g
}

// Deal replaces the whole game with a freshly shuffled layout and
// clears the undo history and any pending selection
func (g *Game) Deal() {
	g.state = deal(g.rng)
	g.history.Clear()
	g.selected = nil
}

// State returns a deep copy of the live state. Callers may inspect or
// render it freely without being able to disturb the game
func (g *Game) State() *GameState {
	return g.state.Clone()
}

// Won reports whether all four foundations are complete
func (g *Game) Won() bool {
	return g.state.Won()
}

// Hint returns a suggestion for the current position
func (g *Game) Hint() string {
	return Hint(g.state)
}

// CanUndo reports whether an undo snapshot is available
func (g *Game) CanUndo() bool {
	return g.history.Len() > 0
}

// Undo restores the most recent snapshot and clears any pending
// selection. It returns ErrNothingToUndo when the history is empty
func (g *Game) Undo() error {
	s, ok := g.history.Pop()
	if !ok {
		return ErrNothingToUndo
	}
	g.state = s
	g.selected = nil
	return nil
}

// Select records a pending pick for a two-step pick-then-place
// gesture, rejecting picks that could never move
func (g *Game) Select(sel Selection) error {
	if _, err := g.resolve(sel); err != nil {
		return err
	}
	g.selected = &sel
	return nil
}

// Selected returns the pending selection, if any
func (g *Game) Selected() (Selection, bool) {
	if g.selected == nil {
		return Selection{}, false
	}
	return *g.selected, true
}

// ClearSelection drops any pending selection
func (g *Game) ClearSelection() {
	g.selected = nil
}

// PlaceSelected attempts to move the pending selection to the given
// pile. The selection is consumed whether or not the move lands
func (g *Game) PlaceSelected(to PileID) error {
	if g.selected == nil {
		return ErrNoSelection
	}
	sel := *g.selected
	g.selected = nil
	return g.AttemptMove(sel, to)
}
