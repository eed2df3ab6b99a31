package scene

import "github.com/bimkit/contact"

// DisplayState is the appearance of one element as the viewer shows it.
type DisplayState struct {
	Color   [3]float64
	Opacity float64
}

// Highlight tracks display-state overrides applied while connection
// analysis results are shown, so the viewer can restore the original
// appearance when analysis mode exits. It is an explicit
// snapshot/restore machine; nothing is stashed on scene nodes.
type Highlight struct {
	saved map[contact.ElementID]DisplayState
}

func NewHighlight() *Highlight {
	return &Highlight{saved: make(map[contact.ElementID]DisplayState)}
}

// Snapshot records the current state of an element the first time it is
// highlighted. It returns false if a snapshot already exists, in which
// case the caller must not overwrite it with an already-overridden
// state.
func (h *Highlight) Snapshot(id contact.ElementID, current DisplayState) bool {
	if _, ok := h.saved[id]; ok {
		return false
	}
	h.saved[id] = current
	return true
}

// Restore returns the saved state for an element and forgets it.
func (h *Highlight) Restore(id contact.ElementID) (DisplayState, bool) {
	s, ok := h.saved[id]
	if ok {
		delete(h.saved, id)
	}
	return s, ok
}

// RestoreAll drains every saved state, keyed by element.
func (h *Highlight) RestoreAll() map[contact.ElementID]DisplayState {
	out := h.saved
	h.saved = make(map[contact.ElementID]DisplayState)
	return out
}

// Active returns the number of elements currently overridden.
func (h *Highlight) Active() int { return len(h.saved) }
