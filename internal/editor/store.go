package editor

import "slices"

// Store is an immutable snapshot of the document's elements in z-order.
// Every mutation returns a new Store; earlier snapshots stay valid.
type Store struct {
	elements []Element
	revision uint64
}

func NewStore(elements ...Element) Store {
	var s Store
	for _, e := range elements {
		s = s.Add(e)
	}
	s.revision = 0
	return s
}

func (s Store) Len() int { return len(s.elements) }

// Revision increases with every mutation that changed the snapshot.
func (s Store) Revision() uint64 { return s.revision }

func (s Store) index(id string) int {
	for i, e := range s.elements {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s Store) Get(id string) (Element, bool) {
	if i := s.index(id); i >= 0 {
		return s.elements[i], true
	}
	return Element{}, false
}

// Add appends e on top of the stack. An id that is already present is
// ignored so ids stay unique.
func (s Store) Add(e Element) Store {
	if s.index(e.ID) >= 0 {
		return s
	}
	next := make([]Element, len(s.elements), len(s.elements)+1)
	copy(next, s.elements)
	return Store{elements: append(next, e), revision: s.revision + 1}
}

// Patch replaces the element with id by its merge with p, keeping its
// position. Unknown ids and patches that change nothing are a no-op.
func (s Store) Patch(id string, p Patch) Store {
	i := s.index(id)
	if i < 0 || p.Empty() {
		return s
	}
	merged := s.elements[i].Apply(p)
	if merged == s.elements[i] {
		return s
	}
	next := make([]Element, len(s.elements))
	copy(next, s.elements)
	next[i] = merged
	return Store{elements: next, revision: s.revision + 1}
}

func (s Store) Remove(id string) Store {
	i := s.index(id)
	if i < 0 {
		return s
	}
	next := make([]Element, 0, len(s.elements)-1)
	next = append(next, s.elements[:i]...)
	next = append(next, s.elements[i+1:]...)
	return Store{elements: next, revision: s.revision + 1}
}

// Elements returns a copy in z-order, bottom first.
func (s Store) Elements() []Element {
	out := make([]Element, len(s.elements))
	copy(out, s.elements)
	return out
}

// Equal reports whether both snapshots hold the same elements in the same
// order, whatever their revisions.
func (s Store) Equal(o Store) bool {
	return slices.Equal(s.elements, o.elements)
}

// Layers returns a copy with the top layer first.
func (s Store) Layers() []Element {
	out := make([]Element, len(s.elements))
	for i, e := range s.elements {
		out[len(s.elements)-1-i] = e
	}
	return out
}

// ElementAt returns the topmost element containing the document point.
func (s Store) ElementAt(p Point) (Element, bool) {
	for i := len(s.elements) - 1; i >= 0; i-- {
		if s.elements[i].Contains(p) {
			return s.elements[i], true
		}
	}
	return Element{}, false
}
