package qrink

import "testing"

func TestMatrixIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity() is not identity")
	}
	p := Pt(3, 4)
	if got := m.TransformPoint(p); got != p {
		t.Errorf("identity transform moved %v to %v", p, got)
	}
}

func TestMatrixTranslate(t *testing.T) {
	m := Translate(10, 20)
	if got := m.TransformPoint(Pt(1, 2)); got != Pt(11, 22) {
		t.Errorf("Translate: got %v, want (11, 22)", got)
	}
}

func TestMatrixScale(t *testing.T) {
	m := Scale(2, 3)
	if got := m.TransformPoint(Pt(4, 5)); got != Pt(8, 15) {
		t.Errorf("Scale: got %v, want (8, 15)", got)
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Translate-then-scale composition: the point is scaled first, then
	// translated, matching how the compositor places cell paths.
	m := Translate(10, 10).Multiply(Scale(2, 2))
	if got := m.TransformPoint(Pt(1, 1)); got != Pt(12, 12) {
		t.Errorf("composed transform: got %v, want (12, 12)", got)
	}
}

func TestMatrixIsIdentity(t *testing.T) {
	if Translate(1, 0).IsIdentity() {
		t.Error("translation reported as identity")
	}
	if Scale(2, 1).IsIdentity() {
		t.Error("scale reported as identity")
	}
	if !Scale(1, 1).IsIdentity() {
		t.Error("unit scale not reported as identity")
	}
}
