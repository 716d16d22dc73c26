// Package export serializes a composed qrink.Rendered model into concrete
// output formats.
//
// Every backend consumes the same ordered path-group list the compositor
// produced; backends rasterize or serialize but never re-derive geometry,
// so the formats stay visually equivalent at a given canvas size. The text
// formats are the one deliberate exception: they ignore styling entirely
// and print the boolean module matrix.
package export

import (
	"errors"
	"fmt"

	"github.com/qrink/qrink"
)

// Format selects an output encoding.
type Format int

const (
	// PNG is the lossless raster format.
	PNG Format = iota
	// JPEG is the lossy raster format; Options.Quality applies.
	JPEG
	// SVG is the vector document format.
	SVG
	// PDF is the paginated vector document format.
	PDF
	// Text renders two characters per module.
	Text
	// TextSmall renders one character per module.
	TextSmall
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case SVG:
		return "svg"
	case PDF:
		return "pdf"
	case Text:
		return "text"
	case TextSmall:
		return "text-small"
	}
	return "unknown"
}

// ErrUnknownFormat is returned for a Format value outside the supported set.
var ErrUnknownFormat = errors.New("export: unknown output format")

// Options tunes format-specific encoding behavior.
type Options struct {
	// Quality is the raster compression factor in [0, 1]; 1 is best.
	// Only JPEG uses it. The default is 1.
	Quality float64
}

// quality returns the clamped quality factor, defaulting to 1.
func (o *Options) quality() float64 {
	if o == nil {
		return 1
	}
	q := o.Quality
	if q < 0 {
		return 0
	}
	if q > 1 {
		return 1
	}
	return q
}

// Export encodes the rendered model into the requested format.
func Export(r *qrink.Rendered, format Format, opts *Options) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("export: nil rendered model")
	}
	switch format {
	case PNG:
		return encodePNG(r)
	case JPEG:
		return encodeJPEG(r, opts.quality())
	case SVG:
		return encodeSVG(r)
	case PDF:
		return encodePDF(r)
	case Text:
		return encodeText(r, 2), nil
	case TextSmall:
		return encodeText(r, 1), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
}
