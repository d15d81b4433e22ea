package editor

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator hands out fresh element ids.
type IDGenerator interface {
	NewID() string
}

// IDFunc adapts a plain function to IDGenerator.
type IDFunc func() string

func (f IDFunc) NewID() string { return f() }

// UUIDs generates random version 4 UUIDs.
type UUIDs struct{}

func (UUIDs) NewID() string { return uuid.NewString() }

// Sequence yields prefix1, prefix2, ... and is meant for deterministic use.
type Sequence struct {
	Prefix string
	next   int
}

func (s *Sequence) NewID() string {
	s.next++
	return s.Prefix + strconv.Itoa(s.next)
}
