package deck

import (
	"math/rand"
	"testing"

	utils "github.com/rowanmaher/klondike/internal"
	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	d := New()

	utils.AssertEqual(t, len(d), Size)

	seen := map[string]bool{}
	for _, c := range d {
		assert.False(t, c.FaceUp)
		seen[c.ID()] = true
	}
	utils.AssertEqual(t, len(seen), Size)
}

func TestShuffle(t *testing.T) {
	t.Run("same seed gives the same order", func(t *testing.T) {
		d1, d2 := New(), New()
		d1.Shuffle(rand.New(rand.NewSource(42)))
		d2.Shuffle(rand.New(rand.NewSource(42)))

		utils.AssertDeepEqual(t, d1, d2)
	})

	t.Run("keeps all 52 cards", func(t *testing.T) {
		d := New()
		d.Shuffle(rand.New(rand.NewSource(7)))

		seen := map[string]bool{}
		for _, c := range d {
			seen[c.ID()] = true
		}
		utils.AssertEqual(t, len(seen), Size)
	})

	t.Run("different seeds give different orders", func(t *testing.T) {
		d1, d2 := New(), New()
		d1.Shuffle(rand.New(rand.NewSource(1)))
		d2.Shuffle(rand.New(rand.NewSource(2)))

		assert.NotEqual(t, d1, d2)
	})
}

func TestDeal(t *testing.T) {
	t.Run("deals from the top of the deck", func(t *testing.T) {
		d := New()
		want := []Card{d[49], d[50], d[51]}

		dealt := d.Deal(3)

		utils.AssertDeepEqual(t, dealt, want)
		utils.AssertEqual(t, len(d), Size-3)
	})

	t.Run("rejects dealing more cards than the deck holds", func(t *testing.T) {
		d := Deck{NewCard(Hearts, Ace)}
		utils.AssertEqual(t, len(d.Deal(2)), 0)
		utils.AssertEqual(t, len(d), 1)
	})

	t.Run("dealt cards are independent of the deck", func(t *testing.T) {
		d := New()
		first := d.Deal(2)
		second := d.Deal(2)

		first[0].FaceUp = true
		assert.False(t, second[0].FaceUp)
		assert.False(t, second[1].FaceUp)
	})
}
