package deck

import "math/rand"

// Size is the number of cards in a full deck
const Size = 52

// Deck represents a deck of cards
type Deck []Card

// New creates a full deck of 52 cards, all face-down, in suit then
// rank order
func New() Deck {
	cards := make(Deck, 0, Size)
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// Shuffle applies a uniform Fisher-Yates permutation to the deck
// using the supplied source, so a fixed seed reproduces a deal
func (d Deck) Shuffle(rng *rand.Rand) {
	for i := len(d) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Deal deals n cards from the top of the deck (the end of the slice).
// The returned cards are an independent copy, so flipping or moving
// them cannot disturb whatever remains in the deck
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	startingIndex := numCardsInDeck - n
	dealt := make([]Card, n)
	copy(dealt, (*d)[startingIndex:numCardsInDeck])
	*d = (*d)[:startingIndex]
	return dealt
}
