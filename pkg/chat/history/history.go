package history

import "medequip-support-be/pkg/store"

// History is a bounded, ordered transcript of (user, assistant) turns.
// Appending past the cap evicts the oldest turn first (FIFO); the relative
// order of the remaining turns is preserved.
type History struct {
	turns []store.ConversationTurn
	cap   int
}

// New creates a history bounded to maxTurns. A non-positive cap keeps the
// history empty.
func New(maxTurns int) *History {
	return &History{cap: maxTurns}
}

func (h *History) Append(user, assistant string) {
	if h.cap <= 0 {
		return
	}
	h.turns = append(h.turns, store.ConversationTurn{User: user, Assistant: assistant})
	if len(h.turns) > h.cap {
		h.turns = h.turns[len(h.turns)-h.cap:]
	}
}

// Turns returns a copy of the transcript in arrival order.
func (h *History) Turns() []store.ConversationTurn {
	out := make([]store.ConversationTurn, len(h.turns))
	copy(out, h.turns)
	return out
}

func (h *History) Len() int {
	return len(h.turns)
}
