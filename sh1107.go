package sh1107

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/sh1107/displaylist"
	"periph.io/x/devices/v3/sh1107/image1bit"
)

const (
	maxWidth  = 128
	maxHeight = 128

	// maxCommandLen is the longest command batch Dev sends in one call.
	maxCommandLen = 3

	// DefaultBufferSize is the chunk buffer size used when Opts.BufferSize
	// is zero: 16 columns by 16 pages.
	DefaultBufferSize = 256
)

// ErrHalted is returned by device operations after Halt.
var ErrHalted = errors.New("sh1107: halted")

// Opts is the configuration for the SH1107 display.
type Opts struct {
	// Canvas dimensions in pixels
	W int // Width (default: 128, must be ≤128)
	H int // Height (default: 128, must be ≤128)

	// Chunk dimensions in pixels. Leave both zero to derive them from
	// BufferSize. ChunkH must be a multiple of 8.
	ChunkW int
	ChunkH int

	// BufferSize is the number of bytes buffering one chunk. It must be a
	// perfect square s*s; the derived chunk is s columns by s pages, that
	// is s by s*8 pixels.
	BufferSize int

	// Optional hardware reset pin
	RST gpio.PinIO
}

// Dev is the device handle for the SH1107 display.
type Dev struct {
	// Communication
	ch  Channel
	rst gpio.PinIO

	// Geometry
	rect           image.Rectangle
	chunkW, chunkH int
	clip           image.Rectangle

	// Chunk buffer, wrapped by img whose bounds follow the clip.
	buffer []byte
	img    *image1bit.VerticalLSB
	cmd    [maxCommandLen]byte

	halted bool
}

// New creates a Dev talking over ch, resets the panel if opts.RST is set
// and runs Init.
//
// opts can be nil to use defaults (128x128 display, 256 byte buffer).
func New(ch Channel, opts *Opts) (*Dev, error) {
	o, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	return newDev(ch, &o)
}

// NewI2C creates a Dev on an I²C bus. addr is usually 0x3C or 0x3D.
func NewI2C(bus i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	o, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	return newDev(newI2CChannel(bus, addr, max(o.ChunkW, maxCommandLen)), &o)
}

// NewSPI creates a Dev on a 4-wire SPI port.
//
// The port is configured for 10MHz, Mode0, 8-bit transfers. The dc
// (Data/Command) GPIO pin must be provided.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil {
		return nil, errors.New("sh1107: dc pin is required")
	}
	o, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("sh1107: %w", err)
	}
	return newDev(&spiChannel{c: c, dc: dc}, &o)
}

// resolve applies defaults and validates the options.
func (opts *Opts) resolve() (Opts, error) {
	o := Opts{W: maxWidth, H: maxHeight}
	if opts != nil {
		o = *opts
	}
	if o.BufferSize == 0 {
		o.BufferSize = DefaultBufferSize
	}

	if o.W <= 0 || o.W > maxWidth {
		return o, fmt.Errorf("sh1107: width must be between 1 and %d", maxWidth)
	}
	if o.H <= 0 || o.H > maxHeight {
		return o, fmt.Errorf("sh1107: height must be between 1 and %d", maxHeight)
	}
	side := isqrt(o.BufferSize)
	if o.BufferSize < 0 || side*side != o.BufferSize {
		return o, fmt.Errorf("sh1107: buffer size %d is not a perfect square", o.BufferSize)
	}
	switch {
	case o.ChunkW == 0 && o.ChunkH == 0:
		o.ChunkW, o.ChunkH = side, ChunkEdge(o.BufferSize)
	case o.ChunkW <= 0 || o.ChunkH <= 0:
		return o, errors.New("sh1107: chunk dimensions must both be set or both be zero")
	}
	if o.ChunkH%8 != 0 {
		return o, fmt.Errorf("sh1107: chunk height %d is not a multiple of 8", o.ChunkH)
	}
	if need := o.ChunkW * o.ChunkH / 8; need > o.BufferSize {
		return o, fmt.Errorf("sh1107: %dx%d chunk needs %d bytes, buffer holds %d", o.ChunkW, o.ChunkH, need, o.BufferSize)
	}
	return o, nil
}

// ChunkEdge returns the number of rows a buffer of size bytes spans when
// laid out as a square of bytes: sqrt(size) pages of 8 pixels.
func ChunkEdge(size int) int {
	return isqrt(size) * 8
}

func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

func newDev(ch Channel, o *Opts) (*Dev, error) {
	d := &Dev{
		ch:     ch,
		rst:    o.RST,
		rect:   image.Rect(0, 0, o.W, o.H),
		chunkW: o.ChunkW,
		chunkH: o.ChunkH,
		clip:   image.Rect(0, 0, o.ChunkW, o.ChunkH),
		buffer: make([]byte, o.BufferSize),
	}
	d.img = image1bit.NewVerticalLSBFrom(d.buffer, d.clip)

	if err := d.reset(); err != nil {
		return nil, err
	}
	if err := d.Init(o.H); err != nil {
		return nil, err
	}
	return d, nil
}

// reset pulses the RST pin if one was provided.
func (d *Dev) reset() error {
	if d.rst == nil {
		return nil
	}
	if err := d.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("sh1107: failed to pull RST low: %w", err)
	}
	time.Sleep(10 * time.Millisecond)
	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("sh1107: failed to pull RST high: %w", err)
	}
	time.Sleep(10 * time.Millisecond)
	return nil
}

// Init configures the panel for page addressing with column 0 on the left,
// switches it on and blanks every chunk of the canvas.
//
// All configuration is sent before the display is switched on.
func (d *Dev) Init(displayHeight int) error {
	if displayHeight <= 0 || displayHeight > maxHeight {
		return fmt.Errorf("sh1107: display height must be between 1 and %d", maxHeight)
	}
	d.halted = false
	for _, cmd := range configSequence(displayHeight) {
		if err := d.send(cmd...); err != nil {
			return err
		}
	}
	if err := d.send(opDisplayOn); err != nil {
		return err
	}

	for x := 0; x < d.rect.Dx(); x += d.chunkW {
		for y := 0; y < d.rect.Dy(); y += d.chunkH {
			if err := d.ClipTo(x, y); err != nil {
				return err
			}
			if err := d.Clear(); err != nil {
				return err
			}
			if err := d.Flush(); err != nil {
				return err
			}
		}
	}
	displaylist.Logger().Debug("sh1107: initialized",
		slog.String("dev", d.String()),
		slog.Int("chunk_w", d.chunkW),
		slog.Int("chunk_h", d.chunkH))
	return nil
}

// send sends commands and maps failures to the backing store error.
func (d *Dev) send(cmds ...byte) error {
	if err := d.ch.SendCommands(cmds...); err != nil {
		return backingError(err)
	}
	return nil
}

func backingError(err error) error {
	return fmt.Errorf("sh1107: %w: %w", displaylist.ErrBackingStore, err)
}

// Width returns the canvas width in pixels.
func (d *Dev) Width() int {
	return d.rect.Dx()
}

// Height returns the canvas height in pixels.
func (d *Dev) Height() int {
	return d.rect.Dy()
}

// ChunkSize returns the chunk dimensions in pixels.
func (d *Dev) ChunkSize() (w, h int) {
	return d.chunkW, d.chunkH
}

// ClipTo selects the chunk whose top-left corner is (x, y).
func (d *Dev) ClipTo(x, y int) error {
	if x%d.chunkW != 0 || y%d.chunkH != 0 || !(image.Point{X: x, Y: y}.In(d.rect)) {
		return &displaylist.InvalidOffsetError{X: x, Y: y}
	}
	d.clip = image.Rect(x, y, x+d.chunkW, y+d.chunkH)
	d.img.Rect = d.clip
	return nil
}

// Clear zeroes the chunk buffer.
func (d *Dev) Clear() error {
	clear(d.buffer)
	return nil
}

// Draw paints cmd into the chunk buffer, restricted to the current clip.
// Black fills clear pixels, any other color sets them.
func (d *Dev) Draw(cmd displaylist.Command) error {
	switch cmd.Kind() {
	case displaylist.KindEmpty:
		return nil
	case displaylist.KindFilledRect:
		d.img.Fill(cmd.Bounds, image1bit.Bit(!cmd.Shape.Color().IsBlack()))
		return nil
	default:
		return fmt.Errorf("sh1107: %w: %v", displaylist.ErrUnsupportedShape, cmd.Kind())
	}
}

// Flush streams the chunk to display RAM, one page at a time. Columns and
// rows past the canvas edge are not sent.
func (d *Dev) Flush() error {
	if d.halted {
		return ErrHalted
	}
	vis := d.clip.Intersect(d.rect)
	if vis.Empty() {
		return nil
	}
	firstPage := d.clip.Min.Y / 8
	for p := 0; p < image1bit.Pages(vis.Dy()); p++ {
		d.cmd = [3]byte{
			pageAddress(firstPage + p),
			columnLow(vis.Min.X),
			columnHigh(vis.Min.X),
		}
		if err := d.send(d.cmd[:]...); err != nil {
			return err
		}
		if err := d.ch.SendData(d.img.Page(p)[:vis.Dx()]); err != nil {
			return backingError(err)
		}
	}
	return nil
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the canvas bounds.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return ErrHalted
	}
	return d.send(opContrast, contrast)
}

// Invert inverts the display colors (black becomes white and vice versa).
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return ErrHalted
	}
	return d.send(flag(opInvert, invert))
}

// Halt powers off the display.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	return d.send(opDisplayOff)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("sh1107.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

var _ displaylist.Renderer = (*Dev)(nil)
