// Command qrink encodes text into a styled QR code image.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/qrink/qrink"
	"github.com/qrink/qrink/export"
)

func main() {
	var (
		text   = flag.String("text", "", "content to encode")
		out    = flag.String("out", "qr.png", "output file")
		format = flag.String("format", "", "output format: png, jpeg, svg, pdf, text (default from file extension)")
		size   = flag.Float64("size", 512, "canvas edge length in pixels")
		pixel  = flag.String("pixel", "square", "pixel shape name")
		eye    = flag.String("eye", "square", "eye shape name")
		pupil  = flag.String("pupil", "square", "pupil shape name")
		fg     = flag.String("fg", "#000000", "foreground color, hex")
		bg     = flag.String("bg", "#ffffff", "background color, hex")
		logo   = flag.String("logo", "", "logo image file, placed over the symbol center")
		quiet  = flag.Int("quiet", 2, "quiet zone width in modules")
		level  = flag.String("level", "medium", "error correction level: low, medium, high, highest")
		list   = flag.Bool("list", false, "list registered shape names and exit")
	)
	flag.Parse()

	if *list {
		fmt.Printf("pixel shapes: %s\n", strings.Join(qrink.PixelShapes().Names(), ", "))
		fmt.Printf("eye shapes:   %s\n", strings.Join(qrink.EyeShapes().Names(), ", "))
		fmt.Printf("pupil shapes: %s\n", strings.Join(qrink.PupilShapes().Names(), ", "))
		return
	}
	if *text == "" {
		log.Fatal("missing -text")
	}

	matrix, err := encodeMatrix(*text, *level)
	if err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}

	design, err := buildDesign(*pixel, *eye, *pupil, *fg, *bg, *logo, matrix.Size())
	if err != nil {
		log.Fatalf("Failed to build design: %v", err)
	}

	doc := qrink.NewDocument(matrix, design, *size)
	doc.SetQuietZone(*quiet)
	rendered, err := doc.Render()
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	f, err := parseFormat(*format, *out)
	if err != nil {
		log.Fatal(err)
	}
	data, err := export.Export(rendered, f, nil)
	if err != nil {
		log.Fatalf("Failed to export: %v", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	log.Printf("Saved %s (%d modules, %s)\n", *out, matrix.Size(), f)
}

// encodeMatrix runs the QR encoder and converts its bitmap to a module
// matrix, stripping the encoder's own quiet zone.
func encodeMatrix(text, level string) (*qrink.BitMatrix, error) {
	var lvl qrcode.RecoveryLevel
	switch strings.ToLower(level) {
	case "low":
		lvl    = qrcode.Low
	case "medium":
		lvl    = qrcode.Medium
	case "high":
		lvl    = qrcode.High
	case "highest":
		lvl    = qrcode.Highest
	default:
		return nil, fmt.Errorf("unknown error correction level %q", level)
	}

	code, err := qrcode.New(text, lvl)
	if err != nil {
		return nil, err
	}
	code.DisableBorder = true
	return qrink.FromBitmap(code.Bitmap())
}

func buildDesign(pixel, eye, pupil, fg, bg, logoPath string, modules int) (*qrink.Design, error) {
	design := qrink.NewDesign()

	ps, err := qrink.PixelShapes().Create(pixel, nil)
	if err != nil {
		return nil, err
	}
	design.SetPixelShape(ps)

	es, err := qrink.EyeShapes().Create(eye, nil)
	if err != nil {
		return nil, err
	}
	design.SetEyeShape(es)

	us, err := qrink.PupilShapes().Create(pupil, nil)
	if err != nil {
		return nil, err
	}
	design.SetPupilShape(us)

	ink := qrink.SolidOf(qrink.Hex(fg))
	design.SetPixelFill(ink)
	design.SetEyeFill(ink)
	design.SetPupilFill(ink)
	design.SetBackground(qrink.SolidOf(qrink.Hex(bg)))

	if logoPath != "" {
		img, err := loadImage(logoPath)
		if err != nil {
			return nil, err
		}
		// Center the logo over roughly a fifth of the symbol.
		w := modules / 5
		if w < 1 {
			w = 1
		}
		x := (modules - w) / 2
		design.SetLogo(&qrink.LogoTemplate{
			Image:                img,
			Rect:                 qrink.GridRect{X: x, Y: x, W: w, H: w},
			CornerRadiusFraction: 0.2,
		})
	}
	return design, nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

func parseFormat(name, out string) (export.Format, error) {
	if name == "" {
		if i := strings.LastIndexByte(out, '.'); i >= 0 {
			name = out[i+1:]
		}
	}
	switch strings.ToLower(name) {
	case "png":
		return export.PNG, nil
	case "jpg", "jpeg":
		return export.JPEG, nil
	case "svg":
		return export.SVG, nil
	case "pdf":
		return export.PDF, nil
	case "text", "txt":
		return export.Text, nil
	case "text-small":
		return export.TextSmall, nil
	}
	return 0, fmt.Errorf("unknown output format %q", name)
}
