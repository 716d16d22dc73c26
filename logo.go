package qrink

import "image"

// GridRect is a rectangle in module-grid units.
type GridRect struct {
	X, Y int // top-left module
	W, H int // extent in modules
}

// Intersects reports whether the rectangle overlaps [x0,x1) x [y0,y1).
func (r GridRect) Intersects(x0, y0, x1, y1 int) bool {
	return r.X < x1 && r.X+r.W > x0 && r.Y < y1 && r.Y+r.H > y0
}

// Contains reports whether module (x, y) lies inside the rectangle.
func (r GridRect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// LogoTemplate places an image over the symbol. The modules under Rect are
// excluded from pixel rendering and the image is drawn topmost, optionally
// clipped to rounded corners.
//
// Rect must stay clear of the three 7x7 finder regions and inside the
// symbol; violating that is a caller error reported by Document.Render as
// ErrInvalidLogoPlacement, never silently corrected.
type LogoTemplate struct {
	Image image.Image

	// Rect is the exclusion rectangle in module-grid units.
	Rect GridRect

	// CornerRadiusFraction rounds the logo frame; the fraction applies to
	// half the shorter frame edge, 0 is square, 1 fully rounded.
	CornerRadiusFraction float64
}

// validate checks the placement against a symbol of n modules per side.
func (l *LogoTemplate) validate(n int) error {
	r := l.Rect
	if r.W <= 0 || r.H <= 0 {
		return ErrInvalidLogoPlacement
	}
	if r.X < 0 || r.Y < 0 || r.X+r.W > n || r.Y+r.H > n {
		return ErrInvalidLogoPlacement
	}
	// The three finder-eye blocks.
	if r.Intersects(0, 0, 7, 7) ||
		r.Intersects(n-7, 0, n, 7) ||
		r.Intersects(0, n-7, 7, n) {
		return ErrInvalidLogoPlacement
	}
	return nil
}
