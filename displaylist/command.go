package displaylist

import (
	"fmt"
	"image"
)

// Generation is the wrapping counter stamped on a command when it is
// assigned or mutated. Only equality is meaningful.
type Generation uint32

// RGB is an 8-bit per channel color. It is always opaque.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xFFFF
}

// IsBlack reports whether every channel is zero. Monochrome renderers
// treat anything else as "on".
func (c RGB) IsBlack() bool {
	return c.R|c.G|c.B == 0
}

// Kind identifies the variant of a Shape.
type Kind uint8

const (
	// KindEmpty draws nothing.
	KindEmpty Kind = iota
	// KindFilledRect fills the command bounds with a solid color.
	KindFilledRect
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindFilledRect:
		return "FilledRect"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Shape is a closed set of drawable variants. The zero value is the empty
// shape.
type Shape struct {
	kind  Kind
	color RGB
}

// FilledRect returns a shape that fills its bounds with c.
func FilledRect(c RGB) Shape {
	return Shape{kind: KindFilledRect, color: c}
}

// Kind returns the variant tag.
func (s Shape) Kind() Kind {
	return s.kind
}

// Color returns the fill color. It is only meaningful for KindFilledRect.
func (s Shape) Color() RGB {
	return s.color
}

func (s Shape) String() string {
	if s.kind == KindFilledRect {
		return fmt.Sprintf("FilledRect(%d,%d,%d)", s.color.R, s.color.G, s.color.B)
	}
	return s.kind.String()
}

// Command is one layer's draw instruction: a shape painted inside Bounds.
//
// Bounds are half-open like image.Rectangle: Min is inclusive and Max is
// exclusive. Callers must not build inverted rectangles.
type Command struct {
	generation Generation
	Bounds     image.Rectangle
	Shape      Shape
}

// NewRect returns a command filling bounds with c.
func NewRect(bounds image.Rectangle, c RGB) Command {
	return Command{Bounds: bounds, Shape: FilledRect(c)}
}

// Empty returns a command that draws nothing. It has no bounds, so
// assigning it to a layer does not clear what the layer painted before; see
// List.Assign.
func Empty() Command {
	return Command{}
}

// Generation returns the stamp given to the command by the List that holds
// it. Commands built by the caller carry 0 until they are assigned.
func (c Command) Generation() Generation {
	return c.generation
}

// Kind is shorthand for c.Shape.Kind().
func (c Command) Kind() Kind {
	return c.Shape.kind
}

// Covers reports whether c paints every pixel of tile.
//
// This is a bounding-box test, exact for filled rectangles. Empty commands
// cover nothing.
func (c Command) Covers(tile image.Rectangle) bool {
	switch c.Shape.kind {
	case KindFilledRect:
		return tile.In(c.Bounds)
	default:
		return false
	}
}

// Overlaps reports whether c's bounds intersect tile.
func (c Command) Overlaps(tile image.Rectangle) bool {
	return c.Bounds.Overlaps(tile)
}

func (c Command) String() string {
	return fmt.Sprintf("%v@%v#%d", c.Shape, c.Bounds, c.generation)
}
