package gfx

import (
	"testing"

	"github.com/chewxy/math32"
)

func approxPoint(t *testing.T, got, want Point, tol float32) {
	t.Helper()
	if math32.Abs(got.X-want.X) > tol || math32.Abs(got.Y-want.Y) > tol {
		t.Errorf("point = %v, want %v", got, want)
	}
}

func TestIdentityApply(t *testing.T) {
	p := P(3, 4)
	if got := Identity().Apply(p); got != p {
		t.Errorf("Identity().Apply(%v) = %v", p, got)
	}
}

func TestTranslationApply(t *testing.T) {
	got := Translation(P(10, -5)).Apply(P(1, 2))
	want := P(11, -3)
	if got != want {
		t.Errorf("Apply = %v, want %v", got, want)
	}
}

func TestScalingApply(t *testing.T) {
	got := Scaling(2).Apply(P(3, 4))
	want := P(6, 8)
	if got != want {
		t.Errorf("Apply = %v, want %v", got, want)
	}
}

func TestRotationApply(t *testing.T) {
	// 90 degrees counter-clockwise in a Y-down system maps +X to +Y.
	got := Rotate(math32.Pi / 2).Apply(P(1, 0))
	approxPoint(t, got, P(0, 1), 1e-6)
}

// --- Composition order ---

func TestMulArgumentAppliesFirst(t *testing.T) {
	scale := Scaling(2)
	move := Translation(P(10, 0))

	// move.Mul(scale): scale first, then translate.
	got := move.Mul(scale).Apply(P(1, 1))
	want := P(12, 2)
	if got != want {
		t.Errorf("move.Mul(scale).Apply = %v, want %v", got, want)
	}

	// scale.Mul(move): translate first, then scale.
	got = scale.Mul(move).Apply(P(1, 1))
	want = P(22, 2)
	if got != want {
		t.Errorf("scale.Mul(move).Apply = %v, want %v", got, want)
	}
}

func TestMulMatchesSequentialApply(t *testing.T) {
	a := Translation(P(3, 7))
	b := Rotate(0.3)
	p := P(2, 5)

	got := a.Mul(b).Apply(p)
	want := a.Apply(b.Apply(p))
	approxPoint(t, got, want, 1e-5)
}

// --- Inversion ---

func TestInvertRoundTrip(t *testing.T) {
	m := Translation(P(5, 9)).Mul(Scaling(3)).Mul(Rotate(1.1))
	p := P(4, -2)
	approxPoint(t, m.Invert().Apply(m.Apply(p)), p, 1e-4)
}

func TestInvertSingular(t *testing.T) {
	singular := Transform{0, 0, 0, 0, 5, 5}
	if got := singular.Invert(); got != Identity() {
		t.Errorf("Invert(singular) = %v, want identity", got)
	}
}

func TestUnapply(t *testing.T) {
	m := Translation(P(16, 16))
	got := m.Unapply(P(20, 20))
	want := P(4, 4)
	if got != want {
		t.Errorf("Unapply = %v, want %v", got, want)
	}
}

func TestApplySizeIgnoresTranslation(t *testing.T) {
	m := Translation(P(100, 100)).Mul(Scaling(2))
	got := m.ApplySize(S(3, 4))
	want := S(6, 8)
	if got != want {
		t.Errorf("ApplySize = %v, want %v", got, want)
	}
}
