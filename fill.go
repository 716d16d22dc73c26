package qrink

import (
	"image"
	"math"
	"sort"
)

// FillStyle represents what a path group is painted with.
// This is a sealed interface - only types in this package implement it.
//
// Supported fill styles:
//   - Solid: a single solid color
//   - LinearGradient: a linear color transition across the canvas
//   - ImageFill: an image sampled across the canvas
//
// ColorAt samples the fill in normalized canvas coordinates: (0,0) is the
// top-left corner of the output canvas and (1,1) the bottom-right. Backends
// that can express a fill natively (SVG gradients, PDF shadings) inspect the
// concrete type instead of sampling.
type FillStyle interface {
	// fillMarker is an unexported method that seals this interface.
	fillMarker()

	// ColorAt returns the color at normalized canvas position (u, v).
	ColorAt(u, v float64) RGBA
}

// Solid is a single-color fill. It returns the same color at every position.
type Solid struct {
	Color RGBA
}

func (Solid) fillMarker() {}

// ColorAt implements FillStyle.
func (f Solid) ColorAt(_, _ float64) RGBA {
	return f.Color
}

// SolidOf creates a Solid fill from an RGBA color.
func SolidOf(c RGBA) Solid {
	return Solid{Color: c}
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// LinearGradient is a linear color transition across the whole canvas.
//
// Angle is in degrees: 0 runs left to right, 90 top to bottom. The gradient
// spans the canvas so that offset 0 maps to the corner the direction vector
// leaves and offset 1 to the corner it enters. Out-of-range positions are
// clamped (pad extend).
type LinearGradient struct {
	Stops []ColorStop
	Angle float64
}

func (*LinearGradient) fillMarker() {}

// NewLinearGradient creates a gradient at the given angle in degrees.
func NewLinearGradient(angle float64, stops ...ColorStop) *LinearGradient {
	return &LinearGradient{Stops: stops, Angle: angle}
}

// AddStop appends a color stop and returns the gradient for chaining.
func (f *LinearGradient) AddStop(offset float64, c RGBA) *LinearGradient {
	f.Stops = append(f.Stops, ColorStop{Offset: offset, Color: c})
	return f
}

// Axis returns the gradient's start and end points in normalized canvas
// coordinates. Vector backends use these to emit a native gradient with the
// same geometry that ColorAt samples.
func (f *LinearGradient) Axis() (x0, y0, x1, y1 float64) {
	rad := f.Angle * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)
	// Span the unit square: the extreme corner projections onto the
	// direction vector sit |dx|+|dy| apart, centered on the square.
	half := (math.Abs(dx) + math.Abs(dy)) / 2
	if half == 0 {
		half = 0.5
	}
	x0 = 0.5 - dx*half
	y0 = 0.5 - dy*half
	x1 = 0.5 + dx*half
	y1 = 0.5 + dy*half
	return x0, y0, x1, y1
}

// ColorAt implements FillStyle by projecting (u, v) onto the gradient axis.
func (f *LinearGradient) ColorAt(u, v float64) RGBA {
	x0, y0, x1, y1 := f.Axis()
	dx := x1 - x0
	dy := y1 - y0
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return firstStopColor(f.Stops)
	}
	t := ((u-x0)*dx + (v-y0)*dy) / lengthSq
	return colorAtOffset(f.Stops, t)
}

// ImageFill samples an image stretched across the canvas.
type ImageFill struct {
	Image image.Image
}

func (*ImageFill) fillMarker() {}

// ColorAt implements FillStyle. A nil image samples as transparent.
func (f *ImageFill) ColorAt(u, v float64) RGBA {
	if f.Image == nil {
		return Transparent
	}
	b := f.Image.Bounds()
	x := b.Min.X + int(clamp01(u)*float64(b.Dx()-1)+0.5)
	y := b.Min.Y + int(clamp01(v)*float64(b.Dy()-1)+0.5)
	return FromColor(f.Image.At(x, y))
}

// sortStops returns the stops ordered by offset. The input is not modified.
func sortStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return stops
	}
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// firstStopColor returns the lowest-offset stop's color, or Transparent.
func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return sortStops(stops)[0].Color
}

// colorAtOffset returns the interpolated color at offset t with pad extend.
// Handles edge cases: empty stops, single stop, out-of-bounds t, coincident
// stop offsets.
func colorAtOffset(stops []ColorStop, t float64) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	sorted := sortStops(stops)
	t = clamp01(t)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	lo := sorted[idx-1]
	hi := sorted[idx]
	if hi.Offset == lo.Offset {
		return lo.Color
	}
	localT := (t - lo.Offset) / (hi.Offset - lo.Offset)
	return lo.Color.Lerp(hi.Color, localT)
}
