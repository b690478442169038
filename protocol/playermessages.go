package protocol

import (
	"strings"

	"github.com/rowanmaher/klondike/deck"
	"github.com/rowanmaher/klondike/game"
)

// PickRef locates the card a player picked up. Index is a position
// within the pile; omitting it means the top card. CardID, when
// present, lets the engine verify the pick still matches the live
// state
type PickRef struct {
	Pile   string `json:"pile"`
	Index  *int   `json:"index,omitempty"`
	CardID string `json:"card_id,omitempty"`
}

// Selection converts a wire pick into the engine's form
func (p PickRef) Selection() (game.Selection, error) {
	source, err := ParsePileID(p.Pile)
	if err != nil {
		return game.Selection{}, err
	}
	sel := game.Selection{Source: source, Index: -1, CardID: p.CardID}
	if p.Index != nil {
		sel.Index = *p.Index
	}
	return sel, nil
}

// IntentMessage is one inbound player intent. From, To and Column are
// meaningful only for the commands that need them
type IntentMessage struct {
	Command Cmd      `json:"command"`
	From    *PickRef `json:"from,omitempty"`
	To      string   `json:"to,omitempty"`
	Column  int      `json:"column,omitempty"`
}

// CardMessage is the rendered form of one card
type CardMessage struct {
	ID     string `json:"id"`
	Suit   string `json:"suit"`
	Rank   int    `json:"rank"`
	FaceUp bool   `json:"face_up"`
}

// StateMessage is the rendered form of a whole game, pushed to the
// presentation layer after every accepted intent. The stock is
// face-down so only its size is reported
type StateMessage struct {
	Stock       int             `json:"stock"`
	Waste       []CardMessage   `json:"waste"`
	Foundations [][]CardMessage `json:"foundations"`
	Tableau     [][]CardMessage `json:"tableau"`
	Won         bool            `json:"won"`
	CanUndo     bool            `json:"can_undo"`
}

func renderCard(c deck.Card) CardMessage {
	return CardMessage{
		ID:     c.ID(),
		Suit:   strings.ToLower(c.Suit.String()),
		Rank:   int(c.Rank),
		FaceUp: c.FaceUp,
	}
}

func renderPile(cards []deck.Card) []CardMessage {
	out := make([]CardMessage, len(cards))
	for i, c := range cards {
		out[i] = renderCard(c)
	}
	return out
}

// RenderState builds the outbound view of a game state
func RenderState(s *game.GameState, canUndo bool) StateMessage {
	msg := StateMessage{
		Stock:       len(s.Stock),
		Waste:       renderPile(s.Waste),
		Foundations: make([][]CardMessage, game.NumFoundations),
		Tableau:     make([][]CardMessage, game.NumTableau),
		Won:         s.Won(),
		CanUndo:     canUndo,
	}
	for i := range s.Foundations {
		msg.Foundations[i] = renderPile(s.Foundations[i])
	}
	for i := range s.Tableau {
		msg.Tableau[i] = renderPile(s.Tableau[i])
	}
	return msg
}
