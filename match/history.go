package match

import "github.com/LilConsul/Endless-TicTacToe/engine"

// HistoryEntry records one applied move. Move is in the grid coordinates of
// the moment it was played; later growth shifts the stone by the Growth of
// the entries that follow.
type HistoryEntry struct {
	Move      engine.Move   `json:"move"`
	Mark      engine.Cell   `json:"mark"`
	IsBot     bool          `json:"is_bot"`
	ElapsedMs float64       `json:"elapsed_ms"`
	Growth    engine.Growth `json:"growth"`
	Value     float64       `json:"value"`
}

type MoveHistory struct {
	entries []HistoryEntry
}

func (h *MoveHistory) Clear() {
	h.entries = nil
}

func (h *MoveHistory) Push(entry HistoryEntry) {
	h.entries = append(h.entries, entry)
}

func (h MoveHistory) Size() int {
	return len(h.entries)
}

func (h MoveHistory) All() []HistoryEntry {
	return append([]HistoryEntry(nil), h.entries...)
}

func (h MoveHistory) Last() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	return h.entries[len(h.entries)-1], true
}
