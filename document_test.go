package qrink

import (
	"errors"
	"reflect"
	"testing"
)

// testMatrix builds a version-1 sized (21x21) matrix with the three finder
// patterns drawn and a handful of data modules on.
func testMatrix() *BitMatrix {
	m := NewBitMatrix(21)
	drawFinder := func(ox, oy int) {
		for y := 0; y < 7; y++ {
			for x := 0; x < 7; x++ {
				border := x == 0 || x == 6 || y == 0 || y == 6
				center := x >= 2 && x <= 4 && y >= 2 && y <= 4
				if border || center {
					m.Set(ox+x, oy+y, true)
				}
			}
		}
	}
	drawFinder(0, 0)
	drawFinder(14, 0)
	drawFinder(0, 14)

	for _, pos := range [][2]int{{9, 9}, {10, 9}, {10, 10}, {12, 12}, {8, 12}, {12, 8}, {10, 20}} {
		m.Set(pos[0], pos[1], true)
	}
	return m
}

func TestRenderGroupOrder(t *testing.T) {
	doc := NewDocument(testMatrix(), NewDesign(), 210)
	r, err := doc.Render()
	if err != nil {
		t.Fatal(err)
	}
	wantKinds := []GroupKind{
		GroupPixels,
		GroupEye, GroupEye, GroupEye,
		GroupPupil, GroupPupil, GroupPupil,
	}
	if len(r.Groups) != len(wantKinds) {
		t.Fatalf("got %d groups, want %d", len(r.Groups), len(wantKinds))
	}
	for i, g := range r.Groups {
		if g.Kind != wantKinds[i] {
			t.Errorf("group %d kind = %v, want %v", i, g.Kind, wantKinds[i])
		}
	}
	if r.Logo != nil {
		t.Error("logo group present without a logo")
	}
}

func TestRenderDeterministic(t *testing.T) {
	matrix := testMatrix()
	design := NewDesign()
	a, err := NewDocument(matrix, design, 210).Render()
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewDocument(matrix, design, 210).Render()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two renders of the same document differ")
	}
}

func TestRenderInvalidDimension(t *testing.T) {
	for _, size := range []float64{0, -1, -210} {
		_, err := NewDocument(testMatrix(), NewDesign(), size).Render()
		if !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("Render(size=%v) = %v, want ErrInvalidDimension", size, err)
		}
	}
}

func TestRenderExcludesFinderModules(t *testing.T) {
	// A matrix that is on only inside the finder regions composes an
	// empty pixel group: that geometry belongs to the eye and pupil
	// shapes.
	m := NewBitMatrix(21)
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			m.Set(x, y, true)
			m.Set(14+x, y, true)
			m.Set(x, 14+y, true)
		}
	}
	r, err := NewDocument(m, NewDesign(), 210).Render()
	if err != nil {
		t.Fatal(err)
	}
	if !r.Groups[0].Path.IsEmpty() {
		t.Error("finder modules leaked into the pixel group")
	}
}

func TestRenderExcludesLogoModules(t *testing.T) {
	matrix := testMatrix()
	plain := NewDesign()
	withLogo := NewDesign()
	withLogo.SetLogo(&LogoTemplate{Rect: GridRect{X: 9, Y: 9, W: 3, H: 3}})

	base, err := NewDocument(matrix, plain, 210).Render()
	if err != nil {
		t.Fatal(err)
	}
	covered, err := NewDocument(matrix, withLogo, 210).Render()
	if err != nil {
		t.Fatal(err)
	}

	baseN := len(base.Groups[0].Path.Elements())
	coveredN := len(covered.Groups[0].Path.Elements())
	if coveredN >= baseN {
		t.Errorf("logo exclusion left %d path elements, want fewer than %d", coveredN, baseN)
	}
	if covered.Logo == nil {
		t.Fatal("logo group missing")
	}
}

func TestRenderLogoPlacement(t *testing.T) {
	tests := []struct {
		name string
		rect GridRect
		ok   bool
	}{
		{name: "center", rect: GridRect{X: 8, Y: 8, W: 5, H: 5}, ok: true},
		{name: "touching top-left eye", rect: GridRect{X: 6, Y: 6, W: 3, H: 3}, ok: false},
		{name: "touching top-right eye", rect: GridRect{X: 12, Y: 2, W: 3, H: 3}, ok: false},
		{name: "touching bottom-left eye", rect: GridRect{X: 2, Y: 12, W: 3, H: 3}, ok: false},
		{name: "bottom-right corner is free", rect: GridRect{X: 16, Y: 16, W: 5, H: 5}, ok: true},
		{name: "out of bounds", rect: GridRect{X: 19, Y: 19, W: 5, H: 5}, ok: false},
		{name: "negative origin", rect: GridRect{X: -1, Y: 8, W: 3, H: 3}, ok: false},
		{name: "zero width", rect: GridRect{X: 9, Y: 9, W: 0, H: 3}, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			design := NewDesign()
			design.SetLogo(&LogoTemplate{Rect: tt.rect})
			_, err := NewDocument(testMatrix(), design, 210).Render()
			if tt.ok && err != nil {
				t.Errorf("Render() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidLogoPlacement) {
				t.Errorf("Render() = %v, want ErrInvalidLogoPlacement", err)
			}
		})
	}
}

func TestRenderQuietZone(t *testing.T) {
	matrix := testMatrix()

	// Default quiet zone is two modules wide on every side.
	r, err := NewDocument(matrix, NewDesign(), 250).Render()
	if err != nil {
		t.Fatal(err)
	}
	wantModule := 250.0 / 25
	if r.ModuleSize != wantModule {
		t.Errorf("ModuleSize = %v, want %v", r.ModuleSize, wantModule)
	}
	if r.Offset != 2*wantModule {
		t.Errorf("Offset = %v, want %v", r.Offset, 2*wantModule)
	}

	// Zero quiet zone puts the symbol edge on the canvas edge.
	doc := NewDocument(matrix, NewDesign(), 210)
	doc.SetQuietZone(0)
	r, err = doc.Render()
	if err != nil {
		t.Fatal(err)
	}
	if r.Offset != 0 {
		t.Errorf("Offset = %v with zero quiet zone, want 0", r.Offset)
	}
	if r.ModuleSize != 10 {
		t.Errorf("ModuleSize = %v, want 10", r.ModuleSize)
	}

	// Negative widths are treated as zero.
	doc.SetQuietZone(-3)
	r, err = doc.Render()
	if err != nil {
		t.Fatal(err)
	}
	if r.Offset != 0 {
		t.Errorf("Offset = %v with negative quiet zone, want 0", r.Offset)
	}
}

func TestRenderSnapshotsDesign(t *testing.T) {
	matrix := testMatrix()
	design := NewDesign()
	before, err := NewDocument(matrix, design, 210).Render()
	if err != nil {
		t.Fatal(err)
	}

	// Mutating the design after a render never changes that render's
	// output, and a second render picks the mutation up.
	dot, _ := PixelShapes().Create("dot", nil)
	design.SetPixelShape(dot)
	after, err := NewDocument(matrix, design, 210).Render()
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(before.Groups[0].Path, after.Groups[0].Path) {
		t.Error("pixel shape change had no effect")
	}
}

func TestRenderEyePlacement(t *testing.T) {
	r, err := NewDocument(testMatrix(), NewDesign(), 210).Render()
	if err != nil {
		t.Fatal(err)
	}

	// With no quiet zone adjustments the module size follows from 21+4
	// total modules. Each eye path must stay inside its 7x7 region.
	ms := r.ModuleSize
	regions := [][4]float64{
		{r.Offset, r.Offset, r.Offset + 7*ms, r.Offset + 7*ms},
		{r.Offset + 14*ms, r.Offset, r.Offset + 21*ms, r.Offset + 7*ms},
		{r.Offset, r.Offset + 14*ms, r.Offset + 7*ms, r.Offset + 21*ms},
	}
	eyes := r.Groups[1:4]
	const eps = 1e-9
	for i, g := range eyes {
		reg := regions[i]
		for _, elem := range g.Path.Elements() {
			pt, ok := elementPoint(elem)
			if !ok {
				continue
			}
			if pt.X < reg[0]-eps || pt.X > reg[2]+eps || pt.Y < reg[1]-eps || pt.Y > reg[3]+eps {
				t.Errorf("eye %d point %v outside region %v", i, pt, reg)
			}
		}
	}
}

// elementPoint extracts the endpoint of a drawing element.
func elementPoint(elem PathElement) (Point, bool) {
	switch e := elem.(type) {
	case MoveTo:
		return e.Point, true
	case LineTo:
		return e.Point, true
	case QuadTo:
		return e.Point, true
	case CubicTo:
		return e.Point, true
	}
	return Point{}, false
}

func TestRenderedMatrixAccess(t *testing.T) {
	matrix := testMatrix()
	r, err := NewDocument(matrix, NewDesign(), 210).Render()
	if err != nil {
		t.Fatal(err)
	}
	if r.Matrix() != matrix {
		t.Error("Matrix() does not return the source matrix")
	}
	if r.Modules != 21 {
		t.Errorf("Modules = %d, want 21", r.Modules)
	}
}

func TestGroupKindString(t *testing.T) {
	tests := []struct {
		kind GroupKind
		want string
	}{
		{GroupPixels, "pixels"},
		{GroupEye, "eye"},
		{GroupPupil, "pupil"},
		{GroupKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("GroupKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
