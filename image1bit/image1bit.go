// Package image1bit provides a 1-bit monochrome image in the page layout
// used by SH1107 class controllers.
package image1bit

import (
	"image"
	"image/color"
)

// Bit is a monochrome color.
type Bit bool

const (
	Off Bit = false
	On  Bit = true
)

// RGBA converts the Bit to opaque black or white.
func (c Bit) RGBA() (r, g, b, a uint32) {
	if c {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (c Bit) String() string {
	if c {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit. Any nonzero channel is On.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	return Bit(r|g|b != 0)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// VerticalLSB is a 1-bit image stored in pages of 8 rows. Each byte holds
// one column of a page, bit 0 being the top row of the page.
type VerticalLSB struct {
	Pix    []byte          // Pixel data, Stride bytes per page
	Stride int             // Bytes per page, equal to the width
	Rect   image.Rectangle // Image bounds
}

// Pages returns the number of pages needed for h rows.
func Pages(h int) int {
	return (h + 7) / 8
}

// NewVerticalLSB creates a new VerticalLSB image with the specified bounds.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{Rect: r}
	}
	return &VerticalLSB{
		Pix:    make([]byte, w*Pages(h)),
		Stride: w,
		Rect:   r,
	}
}

// NewVerticalLSBFrom wraps an existing buffer. pix must hold at least
// r.Dx()*Pages(r.Dy()) bytes; only that prefix is used.
func NewVerticalLSBFrom(pix []byte, r image.Rectangle) *VerticalLSB {
	n := r.Dx() * Pages(r.Dy())
	if len(pix) < n {
		panic("image1bit: buffer too small")
	}
	return &VerticalLSB{
		Pix:    pix[:n:n],
		Stride: r.Dx(),
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *VerticalLSB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *VerticalLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit at (x, y). Pixels outside the bounds are Off.
func (p *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return p.Pix[offset]&mask != 0
}

// Set sets the color of the pixel at (x, y).
func (p *VerticalLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit at (x, y) without color conversion.
func (p *VerticalLSB) SetBit(x, y int, c Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if c {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// Fill sets every pixel of r that lies inside the image to c.
func (p *VerticalLSB) Fill(r image.Rectangle, c Bit) {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		offset, mask := p.pixOffset(r.Min.X, y)
		row := p.Pix[offset : offset+r.Dx()]
		for i := range row {
			if c {
				row[i] |= mask
			} else {
				row[i] &^= mask
			}
		}
	}
}

// Clear turns every pixel Off.
func (p *VerticalLSB) Clear() {
	clear(p.Pix)
}

// Page returns the Stride bytes of page n, n counted from the top of the
// image.
func (p *VerticalLSB) Page(n int) []byte {
	return p.Pix[n*p.Stride : (n+1)*p.Stride]
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
// Bytes are laid out page by page, one byte per column; bit n of a byte is
// row n of its page.
func (p *VerticalLSB) pixOffset(x, y int) (offset int, mask byte) {
	dy := y - p.Rect.Min.Y
	offset = (dy/8)*p.Stride + (x - p.Rect.Min.X)
	mask = 1 << uint(dy%8)
	return
}
