package gfx

import "testing"

// --- Rect containment ---

func TestRectContainsHalfOpen(t *testing.T) {
	r := R(10, 10, 20, 20)
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", P(15, 15), true},
		{"min corner", P(10, 10), true},
		{"max corner", P(30, 30), false},
		{"right edge", P(30, 15), false},
		{"bottom edge", P(15, 30), false},
		{"just inside max", P(29.5, 29.5), true},
		{"left of rect", P(9, 15), false},
		{"above rect", P(15, 9), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("%s: Contains(%v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestRectOriginContains(t *testing.T) {
	r := RectOrigin(S(32, 32))
	if !r.Contains(P(0, 0)) {
		t.Error("origin should be inside")
	}
	if r.Contains(P(32, 0)) {
		t.Error("max edge should be outside")
	}
}

// --- Rect geometry ---

func TestRectCenter(t *testing.T) {
	got := R(10, 20, 30, 40).Center()
	want := P(25, 40)
	if got != want {
		t.Errorf("Center = %v, want %v", got, want)
	}
}

func TestRectIntersects(t *testing.T) {
	a := R(0, 0, 10, 10)
	if !a.Intersects(R(5, 5, 10, 10)) {
		t.Error("overlapping rects should intersect")
	}
	if a.Intersects(R(10, 0, 10, 10)) {
		t.Error("edge-adjacent rects should not intersect")
	}
	if a.Intersects(R(20, 20, 5, 5)) {
		t.Error("disjoint rects should not intersect")
	}
}

func TestRectIntersection(t *testing.T) {
	got := R(0, 0, 10, 10).Intersection(R(5, 5, 10, 10))
	want := R(5, 5, 5, 5)
	if got != want {
		t.Errorf("Intersection = %v, want %v", got, want)
	}

	if got := R(0, 0, 5, 5).Intersection(R(10, 10, 5, 5)); got != (Rect{}) {
		t.Errorf("disjoint Intersection = %v, want zero", got)
	}
}

func TestRectExpand(t *testing.T) {
	got := R(10, 10, 10, 10).Expand(2)
	want := R(8, 8, 14, 14)
	if got != want {
		t.Errorf("Expand = %v, want %v", got, want)
	}
}

func TestRectPoints(t *testing.T) {
	pts := R(0, 0, 4, 2).Points()
	want := [4]Point{{0, 0}, {4, 0}, {4, 2}, {0, 2}}
	if pts != want {
		t.Errorf("Points = %v, want %v", pts, want)
	}
}

func TestBoxRectRoundTrip(t *testing.T) {
	r := R(3, 4, 5, 6)
	if got := r.Box().Rect(); got != r {
		t.Errorf("Box().Rect() = %v, want %v", got, r)
	}
}

// --- Point helpers ---

func TestPointFloor(t *testing.T) {
	got := P(3.7, -1.2).Floor()
	want := P(3, -2)
	if got != want {
		t.Errorf("Floor = %v, want %v", got, want)
	}
}

func TestPointMinMax(t *testing.T) {
	a, b := P(1, 5), P(3, 2)
	if got := a.Min(b); got != P(1, 2) {
		t.Errorf("Min = %v, want (1, 2)", got)
	}
	if got := a.Max(b); got != P(3, 5) {
		t.Errorf("Max = %v, want (3, 5)", got)
	}
}

func TestSizeMin(t *testing.T) {
	got := S(100, 20).Min(S(50, 40))
	want := S(50, 20)
	if got != want {
		t.Errorf("Min = %v, want %v", got, want)
	}
}
