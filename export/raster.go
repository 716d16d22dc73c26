package export

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"math"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/qrink/qrink"
)

// Image rasterizes the rendered model into an image.Image. Transient
// display targets (a clipboard backend, a GUI preview) consume this
// directly instead of encoded bytes.
//
// Rounding policy: the real-valued canvas size rounds to the nearest
// device pixel; module boundaries stay in float space and fogleman/gg
// anti-aliases them.
func Image(r *qrink.Rendered) image.Image {
	px := int(math.Round(r.Size))
	if px < 1 {
		px = 1
	}
	dc := gg.NewContext(px, px)

	dc.SetFillStyle(fillPattern{fill: r.Background, size: r.Size})
	dc.DrawRectangle(0, 0, float64(px), float64(px))
	dc.Fill()

	for _, g := range r.Groups {
		if g.Path.IsEmpty() {
			continue
		}
		tracePath(dc, g.Path)
		dc.SetFillStyle(fillPattern{fill: g.Fill, size: r.Size})
		dc.Fill()
	}

	if r.Logo != nil && r.Logo.Template.Image != nil {
		drawLogo(dc, r.Logo)
	}
	return dc.Image()
}

// fillPattern adapts a qrink.FillStyle to the fogleman/gg Pattern
// interface by sampling in normalized canvas coordinates.
type fillPattern struct {
	fill qrink.FillStyle
	size float64
}

func (p fillPattern) ColorAt(x, y int) color.Color {
	return p.fill.ColorAt(float64(x)/p.size, float64(y)/p.size).Color()
}

// tracePath replays a composed path into the drawing context.
func tracePath(dc *gg.Context, path *qrink.Path) {
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case qrink.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case qrink.LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case qrink.QuadTo:
			dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case qrink.CubicTo:
			dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case qrink.Close:
			dc.ClosePath()
		}
	}
}

// drawLogo scales the logo image into its frame and draws it clipped to
// the rounded frame corners.
func drawLogo(dc *gg.Context, logo *qrink.LogoGroup) {
	w := int(math.Round(logo.W))
	h := int(math.Round(logo.H))
	if w < 1 || h < 1 {
		return
	}
	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), logo.Template.Image, logo.Template.Image.Bounds(), xdraw.Over, nil)

	if logo.CornerRadius > 0 {
		dc.DrawRoundedRectangle(logo.X, logo.Y, logo.W, logo.H, logo.CornerRadius)
		dc.Clip()
		defer dc.ResetClip()
	}
	dc.DrawImage(scaled, int(math.Round(logo.X)), int(math.Round(logo.Y)))
}

// encodePNG serializes the rasterized model as PNG.
func encodePNG(r *qrink.Rendered) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Image(r)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeJPEG serializes the rasterized model as JPEG. JPEG has no alpha
// channel, so the image is flattened onto white first.
func encodeJPEG(r *qrink.Rendered, quality float64) ([]byte, error) {
	img := Image(r)
	bounds := img.Bounds()
	flat := image.NewRGBA(bounds)
	draw.Draw(flat, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, bounds, img, bounds.Min, draw.Over)

	q := int(math.Round(quality * 100))
	if q < 1 {
		q = 1
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: q}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
