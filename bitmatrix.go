package qrink

import "fmt"

// BitMatrix is the square boolean module matrix of a QR symbol, as produced
// by an external encoder. On means dark. The rendering core only reads it.
type BitMatrix struct {
	size int
	bits []bool
}

// NewBitMatrix creates an all-off matrix of the given side length.
func NewBitMatrix(size int) *BitMatrix {
	return &BitMatrix{
		size: size,
		bits: make([]bool, size*size),
	}
}

// FromBitmap wraps a row-major [][]bool (such as the bitmap returned by
// skip2/go-qrcode with the border disabled) into a BitMatrix. The input
// must be square and non-empty.
func FromBitmap(rows [][]bool) (*BitMatrix, error) {
	size := len(rows)
	if size == 0 {
		return nil, fmt.Errorf("qrink: empty bitmap")
	}
	m := NewBitMatrix(size)
	for y, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("qrink: bitmap is not square: row %d has %d columns, want %d", y, len(row), size)
		}
		copy(m.bits[y*size:(y+1)*size], row)
	}
	return m, nil
}

// Size returns the side length in modules.
func (m *BitMatrix) Size() int {
	return m.size
}

// At reports whether the module at (x, y) is on. Out-of-range coordinates
// read as off, which lets neighbor lookups run without edge special cases.
func (m *BitMatrix) At(x, y int) bool {
	if x < 0 || x >= m.size || y < 0 || y >= m.size {
		return false
	}
	return m.bits[y*m.size+x]
}

// Set turns the module at (x, y) on or off.
func (m *BitMatrix) Set(x, y int, on bool) {
	if x < 0 || x >= m.size || y < 0 || y >= m.size {
		return
	}
	m.bits[y*m.size+x] = on
}

// Neighbors returns the on-ness of the eight modules around (x, y).
func (m *BitMatrix) Neighbors(x, y int) Neighbors {
	return Neighbors{
		N:  m.At(x, y-1),
		NE: m.At(x+1, y-1),
		E:  m.At(x+1, y),
		SE: m.At(x+1, y+1),
		S:  m.At(x, y+1),
		SW: m.At(x-1, y+1),
		W:  m.At(x-1, y),
		NW: m.At(x-1, y-1),
	}
}

// inFinderRegion reports whether module (x, y) belongs to one of the three
// 7x7 finder-eye blocks. The bottom-right corner has no finder in QR.
func (m *BitMatrix) inFinderRegion(x, y int) bool {
	n := m.size
	if x < 7 && y < 7 {
		return true // top-left
	}
	if x >= n-7 && y < 7 {
		return true // top-right
	}
	if x < 7 && y >= n-7 {
		return true // bottom-left
	}
	return false
}
