package sketchpad

// DefaultHistoryLimit is the number of snapshots kept when no limit is set.
const DefaultHistoryLimit = 100

// Snapshot is an immutable serialized copy of the buffer.
type Snapshot struct {
	Width  int
	Height int
	Data   []byte

	// raw marks Data as unencoded RGBA pixels, used when the codec failed.
	raw bool
}

// history is a linear undo stack of snapshots with a cursor.
// Invariant: 0 <= cursor < len(entries) once the first entry is pushed.
type history struct {
	entries []Snapshot
	cursor  int
	limit   int
}

func newHistory(limit int) *history {
	return &history{limit: limit}
}

// push discards everything after the cursor, appends s and moves the cursor
// to it. Oldest entries beyond the limit are dropped.
func (h *history) push(s Snapshot) {
	if len(h.entries) > 0 {
		h.entries = h.entries[:h.cursor+1]
	}
	h.entries = append(h.entries, s)
	if h.limit > 0 && len(h.entries) > h.limit {
		drop := len(h.entries) - h.limit
		// Copy so the dropped snapshots can be collected.
		h.entries = append([]Snapshot(nil), h.entries[drop:]...)
	}
	h.cursor = len(h.entries) - 1
}

// at returns the snapshot at index i.
func (h *history) at(i int) (Snapshot, bool) {
	if i < 0 || i >= len(h.entries) {
		return Snapshot{}, false
	}
	return h.entries[i], true
}

// current returns the snapshot under the cursor.
func (h *history) current() (Snapshot, bool) {
	return h.at(h.cursor)
}

// seek moves the cursor to i if it is in range.
func (h *history) seek(i int) bool {
	if i < 0 || i >= len(h.entries) {
		return false
	}
	h.cursor = i
	return true
}

func (h *history) len() int { return len(h.entries) }

func (h *history) canUndo() bool { return h.cursor > 0 }

func (h *history) canRedo() bool { return h.cursor < len(h.entries)-1 }

// bytes returns the total size of all retained snapshots.
func (h *history) bytes() int {
	n := 0
	for _, e := range h.entries {
		n += len(e.Data)
	}
	return n
}
