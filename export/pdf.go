package export

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"strings"

	"github.com/qrink/qrink"
)

// encodePDF serializes the rendered model as a single-page PDF. Paths and
// solid fills map directly to content-stream operators; linear gradients
// become axial shadings with stitching functions; an image fill has no
// native PDF equivalent here and falls back to its sampled center color.
func encodePDF(r *qrink.Rendered) ([]byte, error) {
	var content strings.Builder
	var shadings []string

	// Flip to the composer's top-left y-down coordinates; PDF user space
	// is bottom-up.
	fmt.Fprintf(&content, "1 0 0 -1 0 %s cm\n", fnum(r.Size))

	emitFill := func(path *qrink.Path, fill qrink.FillStyle) {
		switch f := fill.(type) {
		case qrink.Solid:
			if f.Color.A <= 0 {
				return
			}
			fmt.Fprintf(&content, "%s rg\n", pdfColor(f.Color))
			content.WriteString(pdfPathOps(path))
			content.WriteString("f\n")

		case *qrink.LinearGradient:
			stops := sortedStops(f.Stops)
			if len(stops) == 0 {
				return
			}
			if len(stops) == 1 {
				emitSolid(&content, path, stops[0].Color)
				return
			}
			name := fmt.Sprintf("Sh%d", len(shadings))
			x0, y0, x1, y1 := f.Axis()
			shadings = append(shadings, fmt.Sprintf(
				"/%s << /ShadingType 2 /ColorSpace /DeviceRGB /Coords [%s %s %s %s] /Extend [true true] /Function %s >>",
				name,
				fnum(x0*r.Size), fnum(y0*r.Size), fnum(x1*r.Size), fnum(y1*r.Size),
				pdfStitchFunction(stops)))
			content.WriteString("q\n")
			content.WriteString(pdfPathOps(path))
			content.WriteString("W n\n")
			fmt.Fprintf(&content, "/%s sh\nQ\n", name)

		case *qrink.ImageFill:
			// No tiling-pattern emission here; approximate with the
			// image's center color and leave a trace for the caller.
			qrink.Logger().Warn("pdf export approximates image fill with a solid color")
			emitSolid(&content, path, f.ColorAt(0.5, 0.5))
		}
	}

	// Background.
	bg := qrink.NewPath()
	bg.Rectangle(0, 0, r.Size, r.Size)
	emitFill(bg, r.Background)

	for _, g := range r.Groups {
		if g.Path.IsEmpty() {
			continue
		}
		emitFill(g.Path, g.Fill)
	}

	var logoJPEG []byte
	var logoBounds image.Rectangle
	if r.Logo != nil && r.Logo.Template.Image != nil {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, r.Logo.Template.Image, &jpeg.Options{Quality: 90}); err != nil {
			return nil, err
		}
		logoJPEG = buf.Bytes()
		logoBounds = r.Logo.Template.Image.Bounds()

		content.WriteString("q\n")
		if r.Logo.CornerRadius > 0 {
			clip := qrink.NewPath()
			clip.RoundedRectangle(r.Logo.X, r.Logo.Y, r.Logo.W, r.Logo.H, r.Logo.CornerRadius)
			content.WriteString(pdfPathOps(clip))
			content.WriteString("W n\n")
		}
		// Under the page flip, [w 0 0 -h x y+h] places the image upright.
		fmt.Fprintf(&content, "%s 0 0 %s %s %s cm\n/Im0 Do\nQ\n",
			fnum(r.Logo.W), fnum(-r.Logo.H), fnum(r.Logo.X), fnum(r.Logo.Y+r.Logo.H))
	}

	return assemblePDF(r.Size, content.String(), shadings, logoJPEG, logoBounds)
}

// emitSolid paints a path with a single color.
func emitSolid(content *strings.Builder, path *qrink.Path, c qrink.RGBA) {
	fmt.Fprintf(content, "%s rg\n", pdfColor(c))
	content.WriteString(pdfPathOps(path))
	content.WriteString("f\n")
}

// pdfPathOps converts a composed path into content-stream path operators.
func pdfPathOps(path *qrink.Path) string {
	var ops strings.Builder
	var current qrink.Point
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case qrink.MoveTo:
			fmt.Fprintf(&ops, "%s %s m\n", fnum(e.Point.X), fnum(e.Point.Y))
			current = e.Point
		case qrink.LineTo:
			fmt.Fprintf(&ops, "%s %s l\n", fnum(e.Point.X), fnum(e.Point.Y))
			current = e.Point
		case qrink.QuadTo:
			// PDF has no quadratic operator; elevate to cubic.
			c1 := current.Lerp(e.Control, 2.0/3.0)
			c2 := e.Point.Lerp(e.Control, 2.0/3.0)
			fmt.Fprintf(&ops, "%s %s %s %s %s %s c\n",
				fnum(c1.X), fnum(c1.Y), fnum(c2.X), fnum(c2.Y), fnum(e.Point.X), fnum(e.Point.Y))
			current = e.Point
		case qrink.CubicTo:
			fmt.Fprintf(&ops, "%s %s %s %s %s %s c\n",
				fnum(e.Control1.X), fnum(e.Control1.Y),
				fnum(e.Control2.X), fnum(e.Control2.Y),
				fnum(e.Point.X), fnum(e.Point.Y))
			current = e.Point
		case qrink.Close:
			ops.WriteString("h\n")
		}
	}
	return ops.String()
}

// pdfColor formats an RGBA for the rg operator. PDF fills here are opaque;
// alpha is dropped.
func pdfColor(c qrink.RGBA) string {
	return fmt.Sprintf("%s %s %s", fnum(clampUnit(c.R)), fnum(clampUnit(c.G)), fnum(clampUnit(c.B)))
}

// pdfStitchFunction builds the gradient function dictionary: a single
// exponential between two stops, or a stitching function across more.
// Stops are extended to cover the full [0, 1] domain.
func pdfStitchFunction(stops []qrink.ColorStop) string {
	if stops[0].Offset > 0 {
		first := stops[0]
		first.Offset = 0
		stops = append([]qrink.ColorStop{first}, stops...)
	}
	if last := stops[len(stops)-1]; last.Offset < 1 {
		last.Offset = 1
		stops = append(stops, last)
	}

	segment := func(a, b qrink.ColorStop) string {
		return fmt.Sprintf("<< /FunctionType 2 /Domain [0 1] /C0 [%s] /C1 [%s] /N 1 >>",
			pdfColor(a.Color), pdfColor(b.Color))
	}

	if len(stops) == 2 {
		return segment(stops[0], stops[1])
	}

	var funcs, bounds, encode []string
	for i := 0; i+1 < len(stops); i++ {
		funcs = append(funcs, segment(stops[i], stops[i+1]))
		encode = append(encode, "0 1")
		if i+1 < len(stops)-1 {
			bounds = append(bounds, fnum(clampUnit(stops[i+1].Offset)))
		}
	}
	return fmt.Sprintf("<< /FunctionType 3 /Domain [0 1] /Functions [%s] /Bounds [%s] /Encode [%s] >>",
		strings.Join(funcs, " "), strings.Join(bounds, " "), strings.Join(encode, " "))
}

// assemblePDF writes the object table, cross-reference table and trailer.
func assemblePDF(size float64, content string, shadings []string, logoJPEG []byte, logoBounds image.Rectangle) ([]byte, error) {
	var resources strings.Builder
	if len(shadings) > 0 {
		resources.WriteString("/Shading << ")
		for _, sh := range shadings {
			resources.WriteString(sh)
			resources.WriteString(" ")
		}
		resources.WriteString(">> ")
	}
	if logoJPEG != nil {
		resources.WriteString("/XObject << /Im0 5 0 R >> ")
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %s %s] /Resources << %s>> /Contents 4 0 R >>",
			fnum(size), fnum(size), resources.String()),
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
	}
	if logoJPEG != nil {
		objects = append(objects, fmt.Sprintf(
			"<< /Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /DeviceRGB /BitsPerComponent 8 /Filter /DCTDecode /Length %d >>\nstream\n%s\nendstream",
			logoBounds.Dx(), logoBounds.Dy(), len(logoJPEG), string(logoJPEG)))
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n", len(objects)+1)
	out.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return out.Bytes(), nil
}
