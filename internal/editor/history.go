package editor

const DefaultHistoryDepth = 100

// History keeps store snapshots for undo and redo. Since snapshots are
// immutable, an entry is just the document as it was before the step.
type History struct {
	undoStack []Store
	redoStack []Store
	depth     int
}

func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Record pushes the state before a step and drops any redo entries.
func (h *History) Record(before Store) {
	h.undoStack = append(h.undoStack, before)
	if len(h.undoStack) > h.depth {
		h.undoStack = h.undoStack[len(h.undoStack)-h.depth:]
	}
	h.redoStack = h.redoStack[:0]
}

func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// Undo returns the snapshot to restore, given the current one.
func (h *History) Undo(current Store) (Store, bool) {
	if len(h.undoStack) == 0 {
		return current, false
	}
	last := len(h.undoStack) - 1
	prev := h.undoStack[last]
	h.undoStack = h.undoStack[:last]
	h.redoStack = append(h.redoStack, current)
	return prev, true
}

func (h *History) Redo(current Store) (Store, bool) {
	if len(h.redoStack) == 0 {
		return current, false
	}
	last := len(h.redoStack) - 1
	next := h.redoStack[last]
	h.redoStack = h.redoStack[:last]
	h.undoStack = append(h.undoStack, current)
	return next, true
}
