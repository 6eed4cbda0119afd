package bubble

// RecordType names the kind of change a Record describes.
type RecordType string

// RecordMove is emitted after every completed navigation.
const RecordMove RecordType = "move"

// Record is one entry of the undo log. For moves, Object is the view before
// navigation and NewCameraView the view navigation produced.
type Record struct {
	Type          RecordType
	Object        ViewCoord
	NewCameraView ViewCoord
}

// HistorySink receives records after every completed navigation.
type HistorySink interface {
	Push(records ...Record)
}

// History is an in-memory undo/redo log of records.
type History struct {
	undoStack []Record
	redoStack []Record

	// Limit caps the undo stack; the oldest records are dropped first.
	// 0 means unlimited.
	Limit int
}

// Push appends records to the undo stack and clears the redo stack.
func (h *History) Push(records ...Record) {
	h.undoStack = append(h.undoStack, records...)
	h.redoStack = h.redoStack[:0]
	if h.Limit > 0 && len(h.undoStack) > h.Limit {
		h.undoStack = append(h.undoStack[:0], h.undoStack[len(h.undoStack)-h.Limit:]...)
	}
}

// Undo pops the latest record and moves it onto the redo stack.
func (h *History) Undo() (Record, bool) {
	if len(h.undoStack) == 0 {
		return Record{}, false
	}
	last := len(h.undoStack) - 1
	rec := h.undoStack[last]
	h.undoStack = h.undoStack[:last]
	h.redoStack = append(h.redoStack, rec)
	return rec, true
}

// Redo pops the latest undone record and moves it back onto the undo stack.
func (h *History) Redo() (Record, bool) {
	if len(h.redoStack) == 0 {
		return Record{}, false
	}
	last := len(h.redoStack) - 1
	rec := h.redoStack[last]
	h.redoStack = h.redoStack[:last]
	h.undoStack = append(h.undoStack, rec)
	return rec, true
}

// Reframe rewrites both views of every record with fn. Records for which fn
// reports false are dropped from both stacks. Used when the tree changes
// under recorded paths.
func (h *History) Reframe(fn func(ViewCoord) (ViewCoord, bool)) {
	h.undoStack = reframeRecords(h.undoStack, fn)
	h.redoStack = reframeRecords(h.redoStack, fn)
}

func reframeRecords(recs []Record, fn func(ViewCoord) (ViewCoord, bool)) []Record {
	kept := recs[:0]
	for _, r := range recs {
		from, ok1 := fn(r.Object)
		to, ok2 := fn(r.NewCameraView)
		if !ok1 || !ok2 {
			continue
		}
		r.Object, r.NewCameraView = from, to
		kept = append(kept, r)
	}
	return kept
}

func (h *History) peekUndo() (Record, bool) {
	if len(h.undoStack) == 0 {
		return Record{}, false
	}
	return h.undoStack[len(h.undoStack)-1], true
}

func (h *History) peekRedo() (Record, bool) {
	if len(h.redoStack) == 0 {
		return Record{}, false
	}
	return h.redoStack[len(h.redoStack)-1], true
}

// Len returns the number of records that can be undone.
func (h *History) Len() int {
	return len(h.undoStack)
}

// Records returns the undo stack, oldest first. The returned slice MUST NOT
// be mutated.
func (h *History) Records() []Record {
	return h.undoStack
}
