package qrink

import (
	"reflect"
	"testing"
)

func TestPathBasics(t *testing.T) {
	p := NewPath()
	if !p.IsEmpty() {
		t.Error("new path is not empty")
	}
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	if p.IsEmpty() {
		t.Error("path with elements reports empty")
	}
	if got := p.CurrentPoint(); got != Pt(3, 4) {
		t.Errorf("CurrentPoint() = %v, want (3,4)", got)
	}
	p.Close()
	if got := p.CurrentPoint(); got != Pt(1, 2) {
		t.Errorf("CurrentPoint() after Close = %v, want subpath start (1,2)", got)
	}
}

func TestPathRectangle(t *testing.T) {
	p := NewPath()
	p.Rectangle(1, 2, 3, 4)
	want := []PathElement{
		MoveTo{Pt(1, 2)},
		LineTo{Pt(4, 2)},
		LineTo{Pt(4, 6)},
		LineTo{Pt(1, 6)},
		Close{},
	}
	if !reflect.DeepEqual(p.Elements(), want) {
		t.Errorf("Rectangle elements = %v, want %v", p.Elements(), want)
	}
}

func TestPathCircle(t *testing.T) {
	p := NewPath()
	p.Circle(5, 5, 2)
	elems := p.Elements()
	// MoveTo + 4 cubic arcs + Close.
	if len(elems) != 6 {
		t.Fatalf("Circle has %d elements, want 6", len(elems))
	}
	if _, ok := elems[0].(MoveTo); !ok {
		t.Errorf("first element is %T, want MoveTo", elems[0])
	}
	for i := 1; i <= 4; i++ {
		if _, ok := elems[i].(CubicTo); !ok {
			t.Errorf("element %d is %T, want CubicTo", i, elems[i])
		}
	}
	if _, ok := elems[5].(Close); !ok {
		t.Errorf("last element is %T, want Close", elems[5])
	}
}

func TestPathRoundedRectangleClampsRadius(t *testing.T) {
	// Radius bigger than half the short edge degrades to the max.
	big := NewPath()
	big.RoundedRectangle(0, 0, 10, 4, 100)
	max := NewPath()
	max.RoundedRectangle(0, 0, 10, 4, 2)
	if !reflect.DeepEqual(big.Elements(), max.Elements()) {
		t.Error("oversized radius was not clamped")
	}

	// Zero radius degrades to a plain rectangle.
	zero := NewPath()
	zero.RoundedRectangle(0, 0, 10, 4, 0)
	rect := NewPath()
	rect.Rectangle(0, 0, 10, 4)
	if !reflect.DeepEqual(zero.Elements(), rect.Elements()) {
		t.Error("zero radius did not degrade to Rectangle")
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(2, 1)
	p.QuadraticTo(3, 2, 2, 2)
	p.Close()

	m := Translate(10, 20).Multiply(Scale(2, 2))
	got := p.Transform(m)
	want := []PathElement{
		MoveTo{Pt(12, 22)},
		LineTo{Pt(14, 22)},
		QuadTo{Control: Pt(16, 24), Point: Pt(14, 24)},
		Close{},
	}
	if !reflect.DeepEqual(got.Elements(), want) {
		t.Errorf("Transform = %v, want %v", got.Elements(), want)
	}
	// The original is untouched.
	if got := p.Elements()[0].(MoveTo).Point; got != Pt(1, 1) {
		t.Error("Transform mutated the receiver")
	}
}

func TestPathReverseLines(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	p.LineTo(1, 1)
	p.Close()

	got := p.Reverse()
	want := []PathElement{
		MoveTo{Pt(1, 1)},
		LineTo{Pt(1, 0)},
		LineTo{Pt(0, 0)},
		Close{},
	}
	if !reflect.DeepEqual(got.Elements(), want) {
		t.Errorf("Reverse = %v, want %v", got.Elements(), want)
	}
}

func TestPathReverseCubic(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.CubicTo(1, 0, 2, 1, 3, 1)

	got := p.Reverse()
	// The reversed curve swaps the control points and runs back to the
	// subpath start.
	want := []PathElement{
		MoveTo{Pt(3, 1)},
		CubicTo{Control1: Pt(2, 1), Control2: Pt(1, 0), Point: Pt(0, 0)},
	}
	if !reflect.DeepEqual(got.Elements(), want) {
		t.Errorf("Reverse = %v, want %v", got.Elements(), want)
	}
}

func TestPathReverseMultipleSubpaths(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 1, 1)
	p.Rectangle(2, 2, 1, 1)

	got := p.Reverse()
	moves, closes := 0, 0
	for _, elem := range got.Elements() {
		switch elem.(type) {
		case MoveTo:
			moves++
		case Close:
			closes++
		}
	}
	if moves != 2 || closes != 2 {
		t.Errorf("reversed path has %d subpaths and %d closes, want 2 and 2", moves, closes)
	}
}

func TestPathReverseTwiceRoundtrips(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 4, 4)
	twice := p.Reverse().Reverse()
	if !reflect.DeepEqual(p.Elements(), twice.Elements()) {
		t.Errorf("Reverse().Reverse() = %v, want %v", twice.Elements(), p.Elements())
	}
}

func TestPathAppend(t *testing.T) {
	a := NewPath()
	a.Rectangle(0, 0, 1, 1)
	b := NewPath()
	b.Rectangle(2, 2, 1, 1)
	a.Append(b)
	if len(a.Elements()) != 10 {
		t.Errorf("appended path has %d elements, want 10", len(a.Elements()))
	}
}

func TestPathClone(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 1, 1)
	c := p.Clone()
	p.LineTo(5, 5)
	if len(c.Elements()) != 5 {
		t.Error("mutating the original changed the clone")
	}
}
