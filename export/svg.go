package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/qrink/qrink"
)

// encodeSVG serializes the rendered model as a standalone SVG document.
// The geometry is emitted exactly as composed; gradients and image fills
// become defs referenced by the path groups.
func encodeSVG(r *qrink.Rendered) ([]byte, error) {
	var body strings.Builder
	var defs strings.Builder

	s := fnum(r.Size)

	bgAttr, err := svgFill(&defs, r.Background, "bg", r.Size)
	if err != nil {
		return nil, err
	}
	if bgAttr != "" {
		fmt.Fprintf(&body, `<rect width="%s" height="%s" %s/>`, s, s, bgAttr)
	}

	for i, g := range r.Groups {
		if g.Path.IsEmpty() {
			continue
		}
		attr, err := svgFill(&defs, g.Fill, fmt.Sprintf("f%d", i), r.Size)
		if err != nil {
			return nil, err
		}
		if attr == "" {
			continue
		}
		fmt.Fprintf(&body, `<path d="%s" %s/>`, svgPathData(g.Path), attr)
	}

	if r.Logo != nil && r.Logo.Template.Image != nil {
		if err := svgLogo(&defs, &body, r.Logo); err != nil {
			return nil, err
		}
	}

	var out bytes.Buffer
	out.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintf(&out,
		`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %s %s" width="%s" height="%s">`,
		s, s, s, s)
	if defs.Len() > 0 {
		out.WriteString("<defs>")
		out.WriteString(defs.String())
		out.WriteString("</defs>")
	}
	out.WriteString(body.String())
	out.WriteString("</svg>")
	return out.Bytes(), nil
}

// svgFill returns the fill attribute string for a style, appending a def
// when the style needs one. An invisible fill returns "".
func svgFill(defs *strings.Builder, fill qrink.FillStyle, id string, size float64) (string, error) {
	switch f := fill.(type) {
	case qrink.Solid:
		if f.Color.A <= 0 {
			return "", nil
		}
		attr := fmt.Sprintf(`fill="%s"`, svgColor(f.Color))
		if f.Color.A < 1 {
			attr += fmt.Sprintf(` fill-opacity="%s"`, fnum(f.Color.A))
		}
		return attr, nil

	case *qrink.LinearGradient:
		x0, y0, x1, y1 := f.Axis()
		fmt.Fprintf(defs,
			`<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`,
			id, fnum(x0*size), fnum(y0*size), fnum(x1*size), fnum(y1*size))
		for _, stop := range sortedStops(f.Stops) {
			fmt.Fprintf(defs, `<stop offset="%s%%" stop-color="%s"`,
				fnum(clampUnit(stop.Offset)*100), svgColor(stop.Color))
			if stop.Color.A < 1 {
				fmt.Fprintf(defs, ` stop-opacity="%s"`, fnum(stop.Color.A))
			}
			defs.WriteString("/>")
		}
		defs.WriteString("</linearGradient>")
		return fmt.Sprintf(`fill="url(#%s)"`, id), nil

	case *qrink.ImageFill:
		if f.Image == nil {
			return "", nil
		}
		uri, err := pngDataURI(f.Image)
		if err != nil {
			return "", err
		}
		s := fnum(size)
		fmt.Fprintf(defs,
			`<pattern id="%s" patternUnits="userSpaceOnUse" width="%s" height="%s">`+
				`<image xlink:href="%s" width="%s" height="%s" preserveAspectRatio="none"/></pattern>`,
			id, s, s, uri, s, s)
		return fmt.Sprintf(`fill="url(#%s)"`, id), nil
	}
	return "", fmt.Errorf("export: unsupported fill style %T", fill)
}

// svgLogo emits the logo image clipped to its rounded frame.
func svgLogo(defs, body *strings.Builder, logo *qrink.LogoGroup) error {
	uri, err := pngDataURI(logo.Template.Image)
	if err != nil {
		return err
	}
	clip := ""
	if logo.CornerRadius > 0 {
		fmt.Fprintf(defs, `<clipPath id="logo-clip"><rect x="%s" y="%s" width="%s" height="%s" rx="%s"/></clipPath>`,
			fnum(logo.X), fnum(logo.Y), fnum(logo.W), fnum(logo.H), fnum(logo.CornerRadius))
		clip = ` clip-path="url(#logo-clip)"`
	}
	fmt.Fprintf(body, `<image x="%s" y="%s" width="%s" height="%s" xlink:href="%s" preserveAspectRatio="none"%s/>`,
		fnum(logo.X), fnum(logo.Y), fnum(logo.W), fnum(logo.H), uri, clip)
	return nil
}

// svgPathData converts a composed path into an SVG path data string.
func svgPathData(path *qrink.Path) string {
	var d strings.Builder
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case qrink.MoveTo:
			fmt.Fprintf(&d, "M%s %s", fnum(e.Point.X), fnum(e.Point.Y))
		case qrink.LineTo:
			fmt.Fprintf(&d, "L%s %s", fnum(e.Point.X), fnum(e.Point.Y))
		case qrink.QuadTo:
			fmt.Fprintf(&d, "Q%s %s %s %s",
				fnum(e.Control.X), fnum(e.Control.Y), fnum(e.Point.X), fnum(e.Point.Y))
		case qrink.CubicTo:
			fmt.Fprintf(&d, "C%s %s %s %s %s %s",
				fnum(e.Control1.X), fnum(e.Control1.Y),
				fnum(e.Control2.X), fnum(e.Control2.Y),
				fnum(e.Point.X), fnum(e.Point.Y))
		case qrink.Close:
			d.WriteString("Z")
		}
	}
	return d.String()
}

// svgColor formats an RGBA as an opaque rgb() triple; alpha is emitted
// separately as fill-opacity or stop-opacity.
func svgColor(c qrink.RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)",
		int(math.Round(clampUnit(c.R)*255)),
		int(math.Round(clampUnit(c.G)*255)),
		int(math.Round(clampUnit(c.B)*255)))
}

// pngDataURI encodes an image as a base64 PNG data URI.
func pngDataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// sortedStops returns the gradient stops ordered by offset.
func sortedStops(stops []qrink.ColorStop) []qrink.ColorStop {
	sorted := make([]qrink.ColorStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// fnum formats a coordinate with at most three decimals, trimming zeros.
func fnum(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

// clampUnit restricts a value to [0, 1].
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
