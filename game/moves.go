package game

import "github.com/rowanmaher/klondike/deck"

// popTrailing removes the last n cards from a pile, returning them as
// an independent slice in their original order
func popTrailing(pile *[]deck.Card, n int) []deck.Card {
	cut := len(*pile) - n
	moved := make([]deck.Card, n)
	copy(moved, (*pile)[cut:])
	*pile = (*pile)[:cut]
	return moved
}

// resolve maps a selection onto the run of cards it would move,
// without removing anything. Only the top card is movable from the
// waste or a foundation; a tableau pick yields the moveable sequence
// starting at the picked index. Stock cards only ever move via Draw
func (g *Game) resolve(sel Selection) ([]deck.Card, error) {
	if !sel.Source.Valid() {
		return nil, ErrUnknownPile
	}

	var seq []deck.Card
	switch sel.Source.Kind {
	case Stock:
		return nil, ErrIllegalMove
	case Waste, Foundation:
		pile := g.state.pile(sel.Source)
		t, ok := top(pile)
		if !ok {
			return nil, ErrEmptyPile
		}
		if sel.Index >= 0 && sel.Index != len(pile)-1 {
			return nil, ErrIllegalMove
		}
		seq = []deck.Card{t}
	case Tableau:
		col := g.state.Tableau[sel.Source.Index]
		if len(col) == 0 {
			return nil, ErrEmptyPile
		}
		idx := sel.Index
		if idx < 0 {
			idx = len(col) - 1
		}
		seq = MoveableSequence(g.state, sel.Source.Index, idx)
		if len(seq) == 0 {
			return nil, ErrIllegalMove
		}
	}

	if sel.CardID != "" && sel.CardID != seq[0].ID() {
		return nil, ErrIllegalMove
	}
	return seq, nil
}

// execute removes the trailing n cards from the selection's source
// and appends them, order preserved, to the destination. Removing
// cards from a tableau column flips the newly exposed card face-up.
// The move must already have been validated and snapshotted
func (g *Game) execute(from Selection, n int, to PileID) {
	var moved []deck.Card
	switch from.Source.Kind {
	case Waste:
		moved = popTrailing(&g.state.Waste, 1)
	case Foundation:
		moved = popTrailing(&g.state.Foundations[from.Source.Index], 1)
	case Tableau:
		col := &g.state.Tableau[from.Source.Index]
		moved = popTrailing(col, n)
		if t, ok := top(*col); ok && !t.FaceUp {
			(*col)[len(*col)-1].FaceUp = true
		}
	}

	switch to.Kind {
	case Foundation:
		g.state.Foundations[to.Index] = append(g.state.Foundations[to.Index], moved...)
	case Tableau:
		g.state.Tableau[to.Index] = append(g.state.Tableau[to.Index], moved...)
	}
}

// AttemptMove validates a selection against the destination pile and,
// if the placement is legal, snapshots the state and executes the
// move. An illegal intent is rejected with no state change and no
// history entry
func (g *Game) AttemptMove(from Selection, to PileID) error {
	if !to.Valid() {
		return ErrUnknownPile
	}
	seq, err := g.resolve(from)
	if err != nil {
		return err
	}

	switch to.Kind {
	case Foundation:
		if len(seq) != 1 || !CanPlaceOnFoundation(g.state, seq[0], to.Index) {
			return ErrIllegalMove
		}
	case Tableau:
		if from.Source == to || !CanPlaceOnTableau(g.state, seq[0], to.Index) {
			return ErrIllegalMove
		}
	default:
		return ErrIllegalMove
	}

	g.history.Push(g.state)
	g.execute(from, len(seq), to)
	return nil
}

// Draw pops the top of the stock face-up onto the waste. When the
// stock is empty the waste is recycled: reversed and flipped
// face-down, it becomes the new stock. Both forms count as moves and
// are snapshotted. Drawing with both piles empty is rejected
func (g *Game) Draw() error {
	if len(g.state.Stock) == 0 && len(g.state.Waste) == 0 {
		return ErrEmptyPile
	}
	g.history.Push(g.state)

	if len(g.state.Stock) > 0 {
		card := popTrailing(&g.state.Stock, 1)[0]
		card.FaceUp = true
		g.state.Waste = append(g.state.Waste, card)
		return nil
	}

	for i := len(g.state.Waste) - 1; i >= 0; i-- {
		card := g.state.Waste[i]
		card.FaceUp = false
		g.state.Stock = append(g.state.Stock, card)
	}
	g.state.Waste = nil
	return nil
}

// FlipTableauTop turns the face-down top card of a column face-up in
// place. A reveal is not a player decision, so it does not consume a
// history entry and cannot be undone directly
func (g *Game) FlipTableauTop(column int) error {
	if column < 0 || column >= NumTableau {
		return ErrUnknownPile
	}
	col := g.state.Tableau[column]
	if len(col) == 0 {
		return ErrEmptyPile
	}
	if col[len(col)-1].FaceUp {
		return ErrNotApplicable
	}
	col[len(col)-1].FaceUp = true
	return nil
}

// AutoMoveToFoundation tries the foundations in index order and
// executes the first legal placement of the selected card, returning
// the foundation index used. ErrNotApplicable reports that no
// foundation can take the card; the state is untouched
func (g *Game) AutoMoveToFoundation(from Selection) (int, error) {
	seq, err := g.resolve(from)
	if err != nil {
		return -1, err
	}
	if len(seq) != 1 {
		return -1, ErrNotApplicable
	}
	for i := 0; i < NumFoundations; i++ {
		if CanPlaceOnFoundation(g.state, seq[0], i) {
			g.history.Push(g.state)
			g.execute(from, 1, FoundationPile(i))
			return i, nil
		}
	}
	return -1, ErrNotApplicable
}
