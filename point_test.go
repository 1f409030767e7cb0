package ledlayout

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Translate(Vec(-10, 0)))
	diff(t, Vec(3, 4), Pt(4, 6).Sub(Pt(1, 2)))
	diff(t, Pt(5, 5), Pt(0, 0).Midpoint(Pt(10, 10)))
	diff(t, Pt(2.5, 0), Pt(0, 0).Lerp(Pt(10, 0), 0.25))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestVecAngles(t *testing.T) {
	if a := Vec(0, 1).Angle(); !approxEqual(a, math.Pi/2, 1e-12) {
		t.Errorf("got angle %v, want π/2", a)
	}
	diff(t, Vec(1, 0), VecFromAngle(0))

	// Turn90 of a tangent yields the stroke normal convention ⟨y, -x⟩.
	diff(t, Vec(1, 0), Vec(0, 1).Turn90())
	diff(t, Vec(0, -1), Vec(1, 0).Turn90())
}

func TestVecNormalize(t *testing.T) {
	n := Vec(3, 4).Normalize()
	if !approxEqual(n.Hypot(), 1, 1e-12) {
		t.Errorf("got magnitude %v, want 1", n.Hypot())
	}
	// 3/5 is not exact in binary; compare per component with a tolerance.
	if !approxEqual(n.X, 0.6, 1e-12) || !approxEqual(n.Y, 0.8, 1e-12) {
		t.Errorf("got %v, want ⟨0.6, 0.8⟩", n)
	}

	if !Vec(0, 0).Normalize().IsNaN() {
		t.Error("normalizing the zero vector should yield NaN components")
	}
}

func TestNonFiniteClassification(t *testing.T) {
	if Pt(1, 2).IsNaN() || Pt(1, 2).IsInf() || Vec(1, 2).IsNaN() || Vec(1, 2).IsInf() {
		t.Error("finite values classified as non-finite")
	}
	if !Pt(math.NaN(), 0).IsNaN() {
		t.Error("NaN point not detected")
	}
	if !Pt(0, math.Inf(1)).IsInf() {
		t.Error("infinite point not detected")
	}
	if !Vec(math.NaN(), 0).IsNaN() {
		t.Error("NaN vector not detected")
	}
	if !Vec(0, math.Inf(-1)).IsInf() {
		t.Error("infinite vector not detected")
	}
}
