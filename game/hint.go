package game

import "fmt"

// NoHint is returned when the advisor finds nothing to suggest
const NoHint = "No obvious moves. Try drawing from the stock or undoing."

// Hint scans the state in a fixed priority order and returns the
// first applicable suggestion: waste to foundation, tableau top to
// foundation, flip a face-down top, column to column, then drawing.
// Ties are broken by ascending column index. It is a cheap heuristic,
// not a search for the best line of play
func Hint(s *GameState) string {
	if t, ok := top(s.Waste); ok && t.FaceUp {
		for f := 0; f < NumFoundations; f++ {
			if CanPlaceOnFoundation(s, t, f) {
				return fmt.Sprintf("Move the %s from the waste to a foundation.", t)
			}
		}
	}

	for col := 0; col < NumTableau; col++ {
		t, ok := top(s.Tableau[col])
		if !ok || !t.FaceUp {
			continue
		}
		for f := 0; f < NumFoundations; f++ {
			if CanPlaceOnFoundation(s, t, f) {
				return fmt.Sprintf("Move the %s from column %d to a foundation.", t, col+1)
			}
		}
	}

	for col := 0; col < NumTableau; col++ {
		if t, ok := top(s.Tableau[col]); ok && !t.FaceUp {
			return fmt.Sprintf("Flip the face-down card on column %d.", col+1)
		}
	}

	for src := 0; src < NumTableau; src++ {
		t, ok := top(s.Tableau[src])
		if !ok || !t.FaceUp {
			continue
		}
		for dst := 0; dst < NumTableau; dst++ {
			if dst == src {
				continue
			}
			if CanPlaceOnTableau(s, t, dst) {
				return fmt.Sprintf("Move the %s from column %d to column %d.", t, src+1, dst+1)
			}
		}
	}

	if len(s.Stock) > 0 {
		return "Draw a card from the stock."
	}
	return NoHint
}
