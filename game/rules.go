package game

import "github.com/rowanmaher/klondike/deck"

// CanPlaceOnFoundation reports whether card may be placed on the
// given foundation: an ace starts an empty foundation, otherwise the
// card must share the top card's suit and rank exactly one higher
func CanPlaceOnFoundation(s *GameState, card deck.Card, foundation int) bool {
	if foundation < 0 || foundation >= NumFoundations {
		return false
	}
	t, ok := top(s.Foundations[foundation])
	if !ok {
		return card.Rank == deck.Ace
	}
	return card.Suit == t.Suit && card.Rank == t.Rank+1
}

// CanPlaceOnTableau reports whether card may be placed on the given
// tableau column: a king starts an empty column, otherwise the card
// must be the opposite color of the top card and rank exactly one
// lower
func CanPlaceOnTableau(s *GameState, card deck.Card, column int) bool {
	if column < 0 || column >= NumTableau {
		return false
	}
	t, ok := top(s.Tableau[column])
	if !ok {
		return card.Rank == deck.King
	}
	return card.Color() != t.Color() && card.Rank == t.Rank-1
}

// MoveableSequence returns the run of cards in a tableau column that
// may move together, starting at start: consecutive face-up cards in
// alternating color and strictly descending rank. The run ends at the
// first card that breaks the rule. An out-of-range or face-down start
// yields an empty sequence
func MoveableSequence(s *GameState, column, start int) []deck.Card {
	if column < 0 || column >= NumTableau {
		return nil
	}
	col := s.Tableau[column]
	if start < 0 || start >= len(col) || !col[start].FaceUp {
		return nil
	}
	seq := []deck.Card{col[start]}
	for i := start + 1; i < len(col); i++ {
		prev := col[i-1]
		next := col[i]
		if !next.FaceUp || next.Color() == prev.Color() || next.Rank != prev.Rank-1 {
			break
		}
		seq = append(seq, next)
	}
	return seq
}
