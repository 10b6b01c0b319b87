package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"touching edges", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"disjoint", Rect{0, 0, 5, 5}, Rect{20, 20, 5, 5}, false},
		{"contained", Rect{0, 0, 20, 20}, Rect{5, 5, 2, 2}, true},
		{"vertical miss", Rect{0, 0, 10, 5}, Rect{0, 10, 10, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Intersection is symmetric
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{10, 10, 20, 20}

	if !r.Contains(15, 15) {
		t.Error("Contains(15, 15) should be true")
	}
	if !r.Contains(10, 10) {
		t.Error("top-left corner should be contained")
	}
	if r.Contains(30, 30) {
		t.Error("bottom-right corner is exclusive")
	}
	if r.Contains(5, 15) {
		t.Error("point left of rect should not be contained")
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{3, 4}

	if got := v.Len(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Len() = %v, want 5", got)
	}

	sum := v.Add(Vec2{1, -1})
	if sum.X != 4 || sum.Y != 3 {
		t.Errorf("Add = %v, want {4 3}", sum)
	}

	scaled := v.Scale(2)
	if scaled.X != 6 || scaled.Y != 8 {
		t.Errorf("Scale = %v, want {6 8}", scaled)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d, want 5", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1, 0, 10) = %d, want 0", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11, 0, 10) = %d, want 10", got)
	}

	if got := ClampF(0.5, 0, 1); got != 0.5 {
		t.Errorf("ClampF(0.5, 0, 1) = %v, want 0.5", got)
	}
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %v, want 0", got)
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, want 1", got)
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionJump) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionPause)
	if !f.Has(ActionJump) || !f.Has(ActionPause) {
		t.Error("set actions should be present")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionJump) {
		t.Error("cleared frame should have no actions")
	}
	if !clone.Has(ActionJump) {
		t.Error("clone should be independent of the original")
	}
}
