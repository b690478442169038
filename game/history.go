package game

// DefaultHistorySize is the number of undo snapshots retained
const DefaultHistorySize = 10

// History is a bounded LIFO stack of GameState snapshots used for
// undo. Pushing beyond capacity discards the oldest snapshot
type History struct {
	snapshots []*GameState
	limit     int
}

// NewHistory constructs a History retaining at most limit snapshots.
// A non-positive limit falls back to DefaultHistorySize
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	return &History{limit: limit}
}

// Push stores a deep copy of the state, so later mutation of the live
// state cannot corrupt the snapshot
func (h *History) Push(s *GameState) {
	h.snapshots = append(h.snapshots, s.Clone())
	if len(h.snapshots) > h.limit {
		h.snapshots = h.snapshots[len(h.snapshots)-h.limit:]
	}
}

// Pop removes and returns the most recent snapshot, or false if the
// history is empty
func (h *History) Pop() (*GameState, bool) {
	if len(h.snapshots) == 0 {
		return nil, false
	}
	s := h.snapshots[len(h.snapshots)-1]
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return s, true
}

// Len returns the number of stored snapshots
func (h *History) Len() int {
	return len(h.snapshots)
}

// Clear discards all snapshots
func (h *History) Clear() {
	h.snapshots = nil
}
