package game

import (
	"fmt"

	"github.com/rowanmaher/klondike/deck"
)

const (
	// NumFoundations is the number of foundation piles
	NumFoundations = 4
	// NumTableau is the number of tableau columns
	NumTableau = 7
)

// PileKind discriminates the four kinds of pile a card can live in
type PileKind int

const (
	Stock PileKind = iota
	Waste
	Foundation
	Tableau
)

var pileKindNames = []string{"stock", "waste", "foundation", "tableau"}

func (k PileKind) String() string {
	return pileKindNames[k]
}

// PileID identifies a single pile. Index is meaningful only for
// foundations (0..3) and tableau columns (0..6)
type PileID struct {
	Kind  PileKind
	Index int
}

// StockPile, WastePile, FoundationPile and TableauPile construct the
// valid pile identifiers
func StockPile() PileID           { return PileID{Kind: Stock} }
func WastePile() PileID           { return PileID{Kind: Waste} }
func FoundationPile(i int) PileID { return PileID{Kind: Foundation, Index: i} }
func TableauPile(i int) PileID    { return PileID{Kind: Tableau, Index: i} }

// Valid reports whether the identifier names a pile that exists
func (p PileID) Valid() bool {
	switch p.Kind {
	case Stock, Waste:
		return p.Index == 0
	case Foundation:
		return p.Index >= 0 && p.Index < NumFoundations
	case Tableau:
		return p.Index >= 0 && p.Index < NumTableau
	}
	return false
}

func (p PileID) String() string {
	switch p.Kind {
	case Foundation, Tableau:
		return fmt.Sprintf("%s-%d", p.Kind, p.Index)
	}
	return p.Kind.String()
}

// GameState holds every card in the game across the four pile kinds.
// All piles are ordered bottom-first, so the top card is the last
// element. A GameState is a self-contained value: cloning it yields a
// snapshot that later moves cannot disturb
type GameState struct {
	Stock       []deck.Card
	Waste       []deck.Card
	Foundations [NumFoundations][]deck.Card
	Tableau     [NumTableau][]deck.Card
}

func cloneCards(cards []deck.Card) []deck.Card {
	if cards == nil {
		return nil
	}
	out := make([]deck.Card, len(cards))
	copy(out, cards)
	return out
}

// Clone returns a deep copy sharing no backing storage with the
// receiver
func (s *GameState) Clone() *GameState {
	c := &GameState{
		Stock: cloneCards(s.Stock),
		Waste: cloneCards(s.Waste),
	}
	for i := range s.Foundations {
		c.Foundations[i] = cloneCards(s.Foundations[i])
	}
	for i := range s.Tableau {
		c.Tableau[i] = cloneCards(s.Tableau[i])
	}
	return c
}

// pile returns the cards in the identified pile
func (s *GameState) pile(id PileID) []deck.Card {
	switch id.Kind {
	case Stock:
		return s.Stock
	case Waste:
		return s.Waste
	case Foundation:
		return s.Foundations[id.Index]
	case Tableau:
		return s.Tableau[id.Index]
	}
	return nil
}

// top returns the top card of a pile, or false if the pile is empty
func top(cards []deck.Card) (deck.Card, bool) {
	if len(cards) == 0 {
		return deck.Card{}, false
	}
	return cards[len(cards)-1], true
}

// Won reports whether the game is over: all four foundations hold a
// complete ace-to-king run
func (s *GameState) Won() bool {
	for i := range s.Foundations {
		if len(s.Foundations[i]) != 13 {
			return false
		}
	}
	return true
}

// VerifyConservation checks that the state holds exactly the 52
// distinct cards of a full deck, no more and no fewer. A non-nil
// return means a logic error somewhere in move execution; it is meant
// for tests, not for recovery during play
func (s *GameState) VerifyConservation() error {
	seen := map[string]int{}
	count := 0
	record := func(cards []deck.Card) {
		for _, c := range cards {
			seen[c.ID()]++
			count++
		}
	}
	record(s.Stock)
	record(s.Waste)
	for i := range s.Foundations {
		record(s.Foundations[i])
	}
	for i := range s.Tableau {
		record(s.Tableau[i])
	}
	if count != deck.Size {
		return fmt.Errorf("expected %d cards, found %d", deck.Size, count)
	}
	for id, n := range seen {
		if n > 1 {
			return fmt.Errorf("card %s appears %d times", id, n)
		}
	}
	if len(seen) != deck.Size {
		return fmt.Errorf("expected %d distinct cards, found %d", deck.Size, len(seen))
	}
	return nil
}
