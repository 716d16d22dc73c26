// Package qrink renders a precomputed QR module matrix into a styled
// artifact: data modules, finder eyes, eye pupils and an optional embedded
// logo each take independently selectable shapes, colors and rounding, and
// the composed geometry exports to raster, vector and text formats.
//
// # Overview
//
// qrink does not encode QR symbols. It consumes the boolean module matrix
// an encoder produced (see [FromBitmap]) and turns it into an ordered set
// of styled vector path groups that export backends serialize without ever
// re-deriving geometry.
//
// # Quick Start
//
//	m, _ := qrink.FromBitmap(bitmap) // from your QR encoder
//
//	design := qrink.NewDesign()
//	pixel, _ := qrink.PixelShapes().Create("rounded", nil)
//	design.SetPixelShape(pixel)
//	design.SetPixelFill(qrink.SolidOf(qrink.Hex("#1a1a2e")))
//
//	doc := qrink.NewDocument(m, design, 512)
//	rendered, err := doc.Render()
//	if err != nil {
//	    // bad canvas size or logo placement
//	}
//	data, err := export.Export(rendered, export.PNG, nil)
//
// # Shape registries
//
// Shapes come in three roles with one registry each: [PixelShapes] for the
// data modules, [EyeShapes] for the three finder frames and [PupilShapes]
// for the finder dots. Registries are built once at startup, enumerate
// their names in sorted order, and create generators by case-insensitive
// name with typed, validated settings.
//
// # Composition rules
//
// The compositor paints in a fixed order: background, on-modules, eye
// frames, pupils, then the logo topmost. Modules inside the three finder
// regions or under the logo rectangle are never drawn as pixels; the logo
// rectangle itself must not touch a finder region.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Pixel shapes draw in a 1x1 cell frame; eye and pupil shapes share a
// 90-unit frame covering the 7x7 finder pattern. The compositor scales and
// translates all paths into document coordinates.
//
// # Concurrency
//
// Rendering is synchronous and stateless across calls. Distinct Documents
// and Designs can render concurrently; mutating one Design while it is
// being rendered is undefined, Render snapshots it at entry.
package qrink
