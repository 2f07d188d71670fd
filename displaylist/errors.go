package displaylist

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned for a layer index outside [0, Len()).
	ErrOutOfRange = errors.New("displaylist: index out of range")

	// ErrBackingStore is the single error kind renderers map device and
	// backing library failures to. Renderers wrap it, so test with
	// errors.Is.
	ErrBackingStore = errors.New("displaylist: backing store failure")

	// ErrUnsupportedShape is returned by renderers asked to draw a shape
	// kind they do not implement.
	ErrUnsupportedShape = errors.New("displaylist: unsupported shape")
)

// FlavorMismatchError is returned by Mutate when the requested shape kind
// differs from the committed one. Use Assign to replace a layer with a
// different kind of shape.
type FlavorMismatchError struct {
	Index     int
	Committed Kind
	Requested Kind
}

func (e *FlavorMismatchError) Error() string {
	return fmt.Sprintf("displaylist: mutate layer %d: committed %v, got %v", e.Index, e.Committed, e.Requested)
}

// InvalidOffsetError is returned by Renderer.ClipTo for an origin that is
// not aligned to the chunk size.
type InvalidOffsetError struct {
	X, Y int
}

func (e *InvalidOffsetError) Error() string {
	return fmt.Sprintf("displaylist: chunk offset (%d,%d) is not chunk aligned", e.X, e.Y)
}
