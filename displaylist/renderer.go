package displaylist

// Renderer is a backing store the List repaints tile by tile.
//
// For every dirty tile the List issues exactly one ClipTo, one Clear, zero or
// more Draw calls and one Flush, in that order, and never starts the next
// tile before Flush returns. Implementations may therefore reuse a single
// tile sized buffer.
//
// Renderers are not safe for concurrent use.
type Renderer interface {
	// Width returns the canvas width in pixels.
	Width() int
	// Height returns the canvas height in pixels.
	Height() int
	// ChunkSize returns the tile dimensions used for every partial update.
	// The canvas does not need to be a multiple of them.
	ChunkSize() (w, h int)

	// ClipTo restricts the following Clear and Draw calls to the chunk whose
	// top-left corner is (x, y). It returns an *InvalidOffsetError when the
	// origin is not chunk aligned.
	ClipTo(x, y int) error
	// Clear resets every pixel of the current clip to the background.
	Clear() error
	// Draw paints cmd restricted to the current clip. Empty commands are a
	// no-op.
	Draw(cmd Command) error
	// Flush commits the current clip to its destination. It is the only
	// call that performs device I/O and it blocks until the transfer is
	// done.
	Flush() error
}
