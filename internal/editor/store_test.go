package editor

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	rect = Element{ID: "r", Kind: KindRectangle, X: 100, Y: 100, Width: 200, Height: 150, Fill: "#4f46e5", Opacity: 1, BorderRadius: 12}
	circ = Element{ID: "c", Kind: KindCircle, X: -40, Y: 10, Width: 80, Height: 40, Fill: "#D9D9D9", Opacity: 0.5}
	text = Element{ID: "t", Kind: KindText, X: 120, Y: 140, Width: 160, Height: 40, Fill: "#ffffff", Opacity: 1, Text: "Hello, Figmini!", FontSize: 24}
)

func TestStore_AddGet(t *testing.T) {
	s := NewStore()
	for _, e := range []Element{rect, circ, text} {
		s = s.Add(e)
		got, ok := s.Get(e.ID)
		if !ok {
			t.Fatalf("Get(%q) not found after Add", e.ID)
		}
		if diff := cmp.Diff(e, got); diff != "" {
			t.Errorf("Get(%q) mismatch (-want +got):\n%s", e.ID, diff)
		}
	}
	if _, ok := s.Get("missing"); ok {
		t.Errorf("Get(missing) found an element")
	}
}

func TestStore_AddKeepsIDsUnique(t *testing.T) {
	s := NewStore(rect)
	dup := rect
	dup.X = 0
	next := s.Add(dup)
	if next.Len() != 1 || next.Revision() != s.Revision() {
		t.Fatalf("Add with existing id changed the store: len=%d", next.Len())
	}
	got, _ := next.Get(rect.ID)
	if got.X != rect.X {
		t.Errorf("existing element replaced: X=%v", got.X)
	}
}

func TestStore_ZOrder(t *testing.T) {
	s := NewStore(rect, circ, text)
	ids := func(es []Element) []string {
		var out []string
		for _, e := range es {
			out = append(out, e.ID)
		}
		return out
	}
	if diff := cmp.Diff([]string{"r", "c", "t"}, ids(s.Elements())); diff != "" {
		t.Errorf("Elements order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"t", "c", "r"}, ids(s.Layers())); diff != "" {
		t.Errorf("Layers order (-want +got):\n%s", diff)
	}
}

func TestStore_Patch(t *testing.T) {
	s := NewStore(rect, circ, text)
	tests := []struct {
		name  string
		id    string
		patch Patch
		want  Element
	}{
		{"move", "r", MovePatch(5, -5), func() Element { e := rect; e.X, e.Y = 5, -5; return e }()},
		{"fill", "c", FillPatch("#000000"), func() Element { e := circ; e.Fill = "#000000"; return e }()},
		{"text and size", "t", Patch{Text: ptr("Hi"), FontSize: ptr(40.0)}, func() Element { e := text; e.Text, e.FontSize = "Hi", 40; return e }()},
		{"empty patch", "r", Patch{}, rect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := s.Patch(tt.id, tt.patch)
			got, _ := next.Get(tt.id)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Patch mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(s.Elements()[0].ID, next.Elements()[0].ID); diff != "" {
				t.Errorf("position changed: %s", diff)
			}
		})
	}
}

func TestStore_PatchKeepsPosition(t *testing.T) {
	s := NewStore(rect, circ, text).Patch("c", MovePatch(0, 0))
	if got := s.Elements()[1].ID; got != "c" {
		t.Errorf("patched element moved to another index, got %q at 1", got)
	}
}

func TestStore_MissingIDIsNoop(t *testing.T) {
	s := NewStore(rect)
	if next := s.Patch("nope", MovePatch(1, 1)); next.Revision() != s.Revision() {
		t.Errorf("Patch(missing) changed revision")
	}
	if next := s.Remove("nope"); next.Revision() != s.Revision() || next.Len() != 1 {
		t.Errorf("Remove(missing) changed the store")
	}
}

func TestStore_UnchangedPatchIsNoop(t *testing.T) {
	s := NewStore(rect)
	for _, p := range []Patch{
		MovePatch(rect.X, rect.Y),
		FillPatch(rect.Fill),
		{Opacity: ptr(rect.Opacity), BorderRadius: ptr(rect.BorderRadius)},
	} {
		if next := s.Patch("r", p); next.Revision() != s.Revision() {
			t.Errorf("Patch(%+v) bumped the revision", p)
		}
	}
}

func TestStore_Equal(t *testing.T) {
	s := NewStore(rect, circ)
	moved := s.Patch("r", MovePatch(0, 0))
	back := moved.Patch("r", MovePatch(rect.X, rect.Y))
	if !s.Equal(back) {
		t.Error("snapshots with the same elements are not equal")
	}
	if back.Revision() == s.Revision() {
		t.Error("revisions should differ")
	}
	if s.Equal(moved) {
		t.Error("snapshots with different elements are equal")
	}
}

func TestStore_SnapshotsStayValid(t *testing.T) {
	before := NewStore(rect, circ)
	after := before.Patch("r", MovePatch(0, 0)).Remove("c").Add(text)

	if diff := cmp.Diff([]Element{rect, circ}, before.Elements()); diff != "" {
		t.Errorf("old snapshot changed (-want +got):\n%s", diff)
	}
	if after.Len() != 2 {
		t.Errorf("after.Len() = %d, want 2", after.Len())
	}
	if after.Revision() != before.Revision()+3 {
		t.Errorf("revision = %d, want %d", after.Revision(), before.Revision()+3)
	}
}

func TestStore_ElementAt(t *testing.T) {
	s := NewStore(rect, circ, text)
	tests := []struct {
		name   string
		p      Point
		wantID string
	}{
		{"text on top of rect", Point{130, 150}, "t"},
		{"rect only", Point{110, 240}, "r"},
		{"circle centre", Point{0, 30}, "c"},
		{"circle bounding corner", Point{-39, 11}, ""},
		{"empty canvas", Point{1000, 1000}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := s.ElementAt(tt.p)
			if tt.wantID == "" {
				if ok {
					t.Errorf("ElementAt(%v) = %q, want none", tt.p, e.ID)
				}
				return
			}
			if !ok || e.ID != tt.wantID {
				t.Errorf("ElementAt(%v) = %q, want %q", tt.p, e.ID, tt.wantID)
			}
		})
	}
}

func TestElement_TextMinimumHitBox(t *testing.T) {
	e := Element{ID: "t", Kind: KindText, X: 0, Y: 0}
	if !e.Contains(Point{15, 15}) {
		t.Errorf("zero-size text should hit inside its 20x20 minimum box")
	}
	if e.Contains(Point{25, 5}) {
		t.Errorf("zero-size text hit outside its minimum box")
	}
}

func TestElement_Label(t *testing.T) {
	tests := []struct {
		e    Element
		want string
	}{
		{rect, "Rectangle"},
		{circ, "Circle"},
		{Element{Kind: KindText, Text: "short"}, "short"},
		{Element{Kind: KindText, Text: "a fairly long caption"}, "a fairly long c..."},
		{Element{Kind: KindText}, "Text"},
	}
	for _, tt := range tests {
		if got := tt.e.Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}

func TestPatch_Sanitize(t *testing.T) {
	p := Patch{Width: ptr(-3.0), Opacity: ptr(1.7), FontSize: ptr(0.0), BorderRadius: ptr(-1.0), X: ptr(-50.0)}
	want := Patch{Width: ptr(0.0), Opacity: ptr(1.0), BorderRadius: ptr(0.0), X: ptr(-50.0)}
	if diff := cmp.Diff(want, p.sanitize(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("sanitize mismatch (-want +got):\n%s", diff)
	}
}

func TestPatch_SanitizeNonFinite(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	p := Patch{X: ptr(nan), Y: ptr(-inf), Width: ptr(inf), Height: ptr(nan), Opacity: ptr(nan), FontSize: ptr(inf), BorderRadius: ptr(nan), Fill: ptr("#000000")}
	want := Patch{Fill: ptr("#000000")}
	if diff := cmp.Diff(want, p.sanitize()); diff != "" {
		t.Errorf("sanitize mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_UpdateRejectsNonFinite(t *testing.T) {
	s := newTestSession(rect)
	s.Update("r", OpacityPatch(math.NaN()))
	s.Update("r", SizePatch(math.Inf(1), math.NaN()))
	got, _ := s.Store().Get("r")
	if diff := cmp.Diff(rect, got); diff != "" {
		t.Errorf("element changed (-want +got):\n%s", diff)
	}
	if s.CanUndo() {
		t.Errorf("non-finite edits recorded an undo step")
	}
}

func TestElement_EffectiveFontSize(t *testing.T) {
	if got := rect.EffectiveFontSize(); got != DefaultFontSize {
		t.Errorf("unset font size = %v, want %v", got, DefaultFontSize)
	}
	if got := text.EffectiveFontSize(); got != 24 {
		t.Errorf("font size = %v, want 24", got)
	}
}
