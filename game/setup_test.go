package game

import (
	"math/rand"

	"github.com/rowanmaher/klondike/deck"
)

func fdown(s deck.Suit, r deck.Rank) deck.Card {
	return deck.NewCard(s, r)
}

func fup(s deck.Suit, r deck.Rank) deck.Card {
	c := deck.NewCard(s, r)
	c.FaceUp = true
	return c
}

func fullFoundation(s deck.Suit) []deck.Card {
	var cards []deck.Card
	for r := deck.Ace; r <= deck.King; r++ {
		cards = append(cards, fup(s, r))
	}
	return cards
}

// newTestGame wraps a hand-built state in a Game with a fresh history
func newTestGame(s *GameState) *Game {
	return &Game{
		state:   s,
		history: NewHistory(0),
		rng:     rand.New(rand.NewSource(1)),
	}
}
