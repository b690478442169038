package deck

import (
	"fmt"
	"strings"
)

// Suit represents a suit in a deck of cards
type Suit int

var suitNames = []string{"Hearts", "Diamonds", "Clubs", "Spades"}

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

func (s Suit) String() string {
	return suitNames[s]
}

// Color represents the color class of a suit
type Color int

const (
	Red Color = iota
	Black
)

// Color returns the color class of the suit: hearts and diamonds are
// red, clubs and spades are black
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Rank represents a rank in a deck of cards. Aces are low (1) and
// kings are high (13)
type Rank int

var rankNames = []string{"", "Ace", "Two", "Three", "Four", "Five", "Six",
	"Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (r Rank) String() string {
	return rankNames[r]
}

// Card represents a playing card. Identity is the (suit, rank) pair;
// FaceUp is the only mutable property
type Card struct {
	Suit   Suit
	Rank   Rank
	FaceUp bool
}

// NewCard constructs a face-down card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// ID returns a deterministic identifier derived from suit and rank.
// It never changes over the card's lifetime and is independent of
// face orientation
func (c Card) ID() string {
	return fmt.Sprintf("%s-%d", strings.ToLower(c.Suit.String()), c.Rank)
}

// Color returns the card's color class
func (c Card) Color() Color {
	return c.Suit.Color()
}

// Same reports whether two cards share an identity, regardless of
// face orientation
func (c Card) Same(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
