package editor

// Session is the whole editor state for one document: elements,
// viewport, selection, active tool and the gesture in progress. The
// front end owns it and feeds it events.
type Session struct {
	store    Store
	viewport Viewport
	selected string
	tool     Tool
	state    Interaction
	ids      IDGenerator
	history  *History

	// gestureBase is the store as it was at pointer-down.
	gestureBase *Store
}

type Option func(*Session)

func WithIDs(ids IDGenerator) Option {
	return func(s *Session) { s.ids = ids }
}

func WithElements(elements ...Element) Option {
	return func(s *Session) { s.store = NewStore(elements...) }
}

func WithHistoryDepth(depth int) Option {
	return func(s *Session) { s.history = NewHistory(depth) }
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		viewport: NewViewport(),
		tool:     ToolSelect,
		state:    Idle{},
		ids:      UUIDs{},
		history:  NewHistory(DefaultHistoryDepth),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Store() Store { return s.store }
func (s *Session) Elements() []Element { return s.store.Elements() }
func (s *Session) Viewport() Viewport { return s.viewport }
func (s *Session) Tool() Tool { return s.tool }
func (s *Session) State() Interaction { return s.state }
func (s *Session) SelectedID() string { return s.selected }
func (s *Session) CanUndo() bool { return s.history.CanUndo() }
func (s *Session) CanRedo() bool { return s.history.CanRedo() }
func (s *Session) SetTool(t Tool) { s.tool = t }
func (s *Session) SetOrigin(origin Point) { s.viewport.Origin = origin }
func (s *Session) PanBy(delta Point) { s.viewport = s.viewport.PanBy(delta) }
func (s *Session) HandleWheel(ev WheelEvent) { s.viewport = s.viewport.Wheel(ev) }

func (s *Session) Selected() (Element, bool) {
	if s.selected == "" {
		return Element{}, false
	}
	return s.store.Get(s.selected)
}

// Select selects id when it exists; an empty id clears the selection.
func (s *Session) Select(id string) {
	if id == "" {
		s.selected = ""
		return
	}
	if _, ok := s.store.Get(id); ok {
		s.selected = id
	}
}

// ElementAt hit-tests a screen point against the current document.
func (s *Session) ElementAt(screen Point) (Element, bool) {
	return s.store.ElementAt(s.viewport.ToDocument(screen))
}

// HandlePointer advances the interaction state machine and applies the
// resulting commands. A gesture is one undo step, recorded only when the
// document differs from how the gesture found it.
func (s *Session) HandlePointer(ev PointerEvent) {
	if ev.Action == PointerDown {
		base := s.store
		s.gestureBase = &base
	}
	next, cmds := Step(s.state, ev, s.env())
	s.state = next
	s.apply(cmds)

	if ev.Action == PointerUp || ev.Action == PointerLeave {
		if s.gestureBase != nil && !s.gestureBase.Equal(s.store) {
			s.history.Record(*s.gestureBase)
		}
		s.gestureBase = nil
	}
}

func (s *Session) env() Env {
	return Env{
		Tool:     s.tool,
		Viewport: s.viewport,
		Store:    s.store,
		Selected: s.selected,
		IDs:      s.ids,
	}
}

func (s *Session) apply(cmds []Command) {
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case AddElement:
			s.store = s.store.Add(c.Element)
		case PatchElement:
			s.store = s.store.Patch(c.ID, c.Patch)
		case SelectElement:
			s.Select(c.ID)
		case PanViewport:
			s.viewport = s.viewport.PanBy(c.Delta)
		}
	}
}

// commit replaces the store and records an undo step when it changed.
func (s *Session) commit(next Store) bool {
	if next.Revision() == s.store.Revision() {
		return false
	}
	s.history.Record(s.store)
	s.store = next
	if _, ok := s.store.Get(s.selected); !ok {
		s.selected = ""
	}
	return true
}

// Add appends e on top and records it as one step.
func (s *Session) Add(e Element) bool {
	return s.commit(s.store.Add(e))
}

// Update applies an inspector edit to id.
func (s *Session) Update(id string, p Patch) bool {
	return s.commit(s.store.Patch(id, p.sanitize()))
}

// Delete removes id and clears the selection if it pointed there.
func (s *Session) Delete(id string) bool {
	return s.commit(s.store.Remove(id))
}

func (s *Session) Nudge(dx, dy float64) bool {
	e, ok := s.Selected()
	if !ok {
		return false
	}
	return s.commit(s.store.Patch(e.ID, MovePatch(e.X+dx, e.Y+dy)))
}

// Duplicate clones the selected element at a +20,+20 offset on top of the
// stack and selects the clone.
func (s *Session) Duplicate() (Element, bool) {
	e, ok := s.Selected()
	if !ok {
		return Element{}, false
	}
	clone := e
	clone.ID = s.ids.NewID()
	clone.X += duplicateShift
	clone.Y += duplicateShift
	if !s.commit(s.store.Add(clone)) {
		return Element{}, false
	}
	s.selected = clone.ID
	return clone, true
}

func (s *Session) Undo() bool {
	prev, ok := s.history.Undo(s.store)
	if !ok {
		return false
	}
	s.restore(prev)
	return true
}

func (s *Session) Redo() bool {
	next, ok := s.history.Redo(s.store)
	if !ok {
		return false
	}
	s.restore(next)
	return true
}

func (s *Session) restore(snapshot Store) {
	s.store = snapshot
	if _, ok := s.store.Get(s.selected); !ok {
		s.selected = ""
	}
}
