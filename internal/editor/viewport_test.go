package editor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestViewport_Transforms(t *testing.T) {
	v := Viewport{Pan: Point{30, -10}, Scale: 2, Origin: Point{100, 50}}
	tests := []struct {
		screen, doc Point
	}{
		{Point{130, 40}, Point{0, 0}},
		{Point{170, 80}, Point{20, 20}},
		{Point{100, 50}, Point{-15, 5}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.doc, v.ToDocument(tt.screen), approx); diff != "" {
			t.Errorf("ToDocument(%v) (-want +got):\n%s", tt.screen, diff)
		}
		if diff := cmp.Diff(tt.screen, v.ToScreen(tt.doc), approx); diff != "" {
			t.Errorf("ToScreen(%v) (-want +got):\n%s", tt.doc, diff)
		}
	}
}

func TestViewport_Wheel(t *testing.T) {
	tests := []struct {
		name      string
		start     Viewport
		ev        WheelEvent
		wantScale float64
		wantPan   Point
	}{
		{"zoom out", NewViewport(), WheelEvent{DeltaY: 500, Zoom: true}, 0.5, Point{}},
		{"zoom in clamps at max", NewViewport(), WheelEvent{DeltaY: -10000, Zoom: true}, MaxScale, Point{}},
		{"zoom out clamps at min", NewViewport(), WheelEvent{DeltaY: 5000, Zoom: true}, MinScale, Point{}},
		{"zoom keeps pan", Viewport{Pan: Point{7, 8}, Scale: 1}, WheelEvent{DeltaY: -100, Zoom: true}, 1.1, Point{7, 8}},
		{"plain wheel pans", Viewport{Pan: Point{7, 8}, Scale: 2}, WheelEvent{DeltaX: 3, DeltaY: -40}, 2, Point{4, 48}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.Wheel(tt.ev)
			if diff := cmp.Diff(tt.wantScale, got.Scale, approx); diff != "" {
				t.Errorf("scale (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantPan, got.Pan, approx); diff != "" {
				t.Errorf("pan (-want +got):\n%s", diff)
			}
		})
	}
}

func TestViewport_Grid(t *testing.T) {
	v := Viewport{Pan: Point{45, -45}, Scale: 1.5}
	want := Grid{Spacing: 30, Offset: Point{15, -15}}
	if diff := cmp.Diff(want, v.Grid(), approx); diff != "" {
		t.Errorf("Grid() (-want +got):\n%s", diff)
	}
}

func TestViewport_Status(t *testing.T) {
	v := Viewport{Pan: Point{-120.4, 33}, Scale: 0.75}
	if got, want := v.Status(), "Zoom: 75% | X: 120 Y: -33"; got != want {
		t.Errorf("Status() = %q, want %q", got, want)
	}
}
