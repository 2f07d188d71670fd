// Package displaylist is a retained-mode, tile based damage engine for
// displays too small to hold a full frame buffer.
//
// A List holds a fixed number of layers. Each layer owns a committed command
// (what is on screen) and a pending command (what the next frame should
// show). Render compares the two per tile and only repaints tiles whose
// content may have changed, driving a Renderer one chunk at a time.
//
// Layer index is paint order: layer 0 is the bottom-most.
package displaylist

import (
	"fmt"
	"image"
	"log/slog"
)

// FrameStats describes the work done by the last successful Render.
type FrameStats struct {
	Tiles     int // tiles visited
	Repainted int // tiles cleared, drawn and flushed
	Draws     int // Draw calls issued
}

// List is a fixed-capacity, double-buffered collection of layered draw
// commands.
//
// A List is not safe for concurrent use.
type List struct {
	gen       Generation
	committed []Command
	pending   []Command
	stats     FrameStats
}

// New returns a List with n layers, all empty. The capacity never changes.
// New panics if n is negative.
func New(n int) *List {
	if n < 0 {
		panic("displaylist: negative capacity")
	}
	return &List{
		gen:       1,
		committed: make([]Command, n),
		pending:   make([]Command, n),
	}
}

// Len returns the number of layers.
func (l *List) Len() int {
	return len(l.pending)
}

// Generation returns the stamp the next Assign or Mutate will use.
func (l *List) Generation() Generation {
	return l.gen
}

// Stats returns statistics about the last successful Render.
func (l *List) Stats() FrameStats {
	return l.stats
}

// Assign replaces the pending command of layer index with cmd. Any shape
// kind is accepted.
//
// Assigning Empty does not erase what the layer painted: tiles under the
// committed bounds redraw the committed command. To erase a layer, assign
// a black rectangle over its old bounds.
func (l *List) Assign(index int, cmd Command) error {
	if index < 0 || index >= len(l.pending) {
		return ErrOutOfRange
	}
	cmd.generation = l.gen
	l.pending[index] = cmd
	return nil
}

// Mutate is like Assign but requires cmd to be of the same shape kind as
// the committed command of layer index. It expresses moving or recoloring
// the element already on screen. On mismatch it returns a
// *FlavorMismatchError and leaves the layer untouched.
func (l *List) Mutate(index int, cmd Command) error {
	if index < 0 || index >= len(l.pending) {
		return ErrOutOfRange
	}
	if committed := l.committed[index].Kind(); committed != cmd.Kind() {
		return &FlavorMismatchError{Index: index, Committed: committed, Requested: cmd.Kind()}
	}
	cmd.generation = l.gen
	l.pending[index] = cmd
	return nil
}

// Read returns the pending command of layer index.
func (l *List) Read(index int) (Command, error) {
	if index < 0 || index >= len(l.pending) {
		return Command{}, ErrOutOfRange
	}
	return l.pending[index], nil
}

// Render repaints every tile of r whose content may have changed since the
// last successful Render, then commits the pending state.
//
// The first renderer error aborts the frame. Tiles flushed before the error
// stay as painted, and nothing is committed, so the next Render evaluates
// the same damage again.
func (l *List) Render(r Renderer) error {
	width, height := r.Width(), r.Height()
	cw, ch := r.ChunkSize()
	if cw <= 0 || ch <= 0 {
		return fmt.Errorf("displaylist: invalid chunk size %dx%d", cw, ch)
	}

	var stats FrameStats
	for x := 0; x < width; x += cw {
		for y := 0; y < height; y += ch {
			tile := image.Rect(x, y, min(x+cw, width), min(y+ch, height))
			stats.Tiles++

			floor, dirty := l.damage(tile)
			if !dirty {
				continue
			}
			draws, err := l.repaint(r, tile, floor)
			stats.Draws += draws
			if err != nil {
				return fmt.Errorf("displaylist: tile (%d,%d): %w", x, y, err)
			}
			stats.Repainted++
		}
	}

	l.commit()
	l.stats = stats
	Logger().Debug("displaylist: frame",
		slog.Uint64("generation", uint64(l.gen)),
		slog.Int("tiles", stats.Tiles),
		slog.Int("repainted", stats.Repainted),
		slog.Int("draws", stats.Draws))
	return nil
}

// damage returns the lowest layer that must be painted for tile and whether
// the tile needs a repaint at all.
func (l *List) damage(tile image.Rectangle) (floor int, dirty bool) {
	for i := range l.pending {
		cur, next := &l.committed[i], &l.pending[i]
		if next.Covers(tile) {
			floor = i
		}
		if cur.generation != next.generation && (cur.Overlaps(tile) || next.Overlaps(tile)) {
			dirty = true
		}
	}
	return floor, dirty
}

// repaint runs one clip, clear, draw, flush cycle for tile.
func (l *List) repaint(r Renderer, tile image.Rectangle, floor int) (draws int, err error) {
	if err := r.ClipTo(tile.Min.X, tile.Min.Y); err != nil {
		return 0, err
	}
	if err := r.Clear(); err != nil {
		return 0, err
	}
	for i := floor; i < len(l.pending); i++ {
		cmd := &l.pending[i]
		if !cmd.Overlaps(tile) {
			cmd = &l.committed[i]
			if !cmd.Overlaps(tile) {
				continue
			}
		}
		if err := r.Draw(*cmd); err != nil {
			return draws, err
		}
		draws++
	}
	return draws, r.Flush()
}

// commit promotes pending commands and advances the generation.
func (l *List) commit() {
	for i := range l.pending {
		cur, next := &l.committed[i], &l.pending[i]
		if cur.generation != next.generation {
			*cur = *next
		}
		cur.generation = l.gen
		next.generation = l.gen
	}
	l.gen++
}
