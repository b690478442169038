package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rowanmaher/klondike/game"
)

// Cmd represents a player intent raised by the presentation layer
type Cmd int

const (
	Deal Cmd = iota
	Draw
	Move
	Flip
	AutoMove
	Undo
	Hint
)

var cmdNames = []string{
	"deal",
	"draw",
	"move",
	"flip",
	"automove",
	"undo",
	"hint",
}

func (c Cmd) String() string {
	if c < 0 || int(c) >= len(cmdNames) {
		return "unknown"
	}
	return cmdNames[c]
}

// MarshalText renders the command by name on the wire
func (c Cmd) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= len(cmdNames) {
		return nil, fmt.Errorf("unknown command %d", int(c))
	}
	return []byte(cmdNames[c]), nil
}

// UnmarshalText parses a command name from the wire
func (c *Cmd) UnmarshalText(text []byte) error {
	for i, name := range cmdNames {
		if name == string(text) {
			*c = Cmd(i)
			return nil
		}
	}
	return fmt.Errorf("unknown command %q", string(text))
}

// ParsePileID converts a wire identifier such as "waste" or
// "tableau-3" into the engine's typed pile identifier. Parsing
// happens only here, at the boundary: the engine itself never sees
// pile strings
func ParsePileID(s string) (game.PileID, error) {
	switch s {
	case "stock":
		return game.StockPile(), nil
	case "waste":
		return game.WastePile(), nil
	}
	if kind, idxStr, found := strings.Cut(s, "-"); found {
		if idx, err := strconv.Atoi(idxStr); err == nil {
			var id game.PileID
			switch kind {
			case "foundation":
				id = game.FoundationPile(idx)
			case "tableau":
				id = game.TableauPile(idx)
			default:
				return game.PileID{}, fmt.Errorf("unknown pile %q", s)
			}
			if id.Valid() {
				return id, nil
			}
		}
	}
	return game.PileID{}, fmt.Errorf("unknown pile %q", s)
}
