package game

import (
	"math/rand"

	"github.com/rowanmaher/klondike/deck"
)

// deal lays out a shuffled deck in the classic triangle: column c
// receives c+1 cards with only the last one face-up, and the 24
// remaining cards become the face-down stock. Waste and foundations
// start empty
func deal(rng *rand.Rand) *GameState {
	d := deck.New()
	d.Shuffle(rng)

	s := &GameState{}
	for col := 0; col < NumTableau; col++ {
		cards := d.Deal(col + 1)
		cards[len(cards)-1].FaceUp = true
		s.Tableau[col] = cards
	}
	s.Stock = d.Deal(len(d))
	return s
}
