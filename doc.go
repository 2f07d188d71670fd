// Package sh1107 drives SH1107 monochrome OLED displays one chunk at a time.
//
// The SH1107 is a 1-bit controller with up to 128×128 pixels. Display RAM is
// organised in pages of 8 rows; each byte holds one column of a page with the
// least significant bit on top. Dev implements displaylist.Renderer: it holds
// a single chunk of the canvas in a small fixed size buffer and streams it to
// the panel on Flush, so the whole frame never needs to fit in memory.
//
// # Display Characteristics
//
// - 1-bit monochrome, any non-black color lights a pixel
// - Page/column addressing, 16 pages of 8 rows on a 128 row panel
// - Adjustable contrast (0-255)
// - Display inversion
// - I²C or 4-wire SPI transport
//
// # Hardware Connection
//
// Connect the SH1107 display via I²C:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → I²C Clock (SCL)
//	SDA         → I²C Data (SDA)
//	RES         → Optional: GPIO for hardware reset
//
// Or via SPI, in which case the DC pin selects between command and data
// bytes:
//
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (or GND if always selected)
//
// # Basic Usage
//
// Build a display list, assign commands to its slots and render it to the
// device. Only chunks whose content changed since the previous frame are
// cleared, drawn and flushed:
//
//	package main
//
//	import (
//		"image"
//
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/devices/v3/sh1107"
//		"periph.io/x/devices/v3/sh1107/displaylist"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		dev, _ := sh1107.NewI2C(bus, 0x3C, nil)
//		defer dev.Halt()
//
//		list := displaylist.New(2)
//		list.Assign(0, displaylist.NewRect(dev.Bounds(), displaylist.RGB{}))
//		list.Assign(1, displaylist.NewRect(image.Rect(16, 16, 48, 48), displaylist.RGB{R: 255}))
//		list.Render(dev)
//
//		list.Mutate(1, displaylist.NewRect(image.Rect(24, 16, 56, 48), displaylist.RGB{R: 255}))
//		list.Render(dev) // only the chunks under the old or new rectangle
//	}
//
// # Chunk Buffer
//
// Opts.BufferSize sets how many bytes buffer one chunk. It must be a perfect
// square s*s, which gives chunks of s columns by s pages (s*8 rows). The
// default of 256 bytes gives 16×128 pixel chunks, one column strip of a
// 128×128 panel per chunk. Set Opts.ChunkW and Opts.ChunkH to pick another
// shape that fits in the buffer; ChunkH must be a multiple of 8.
//
//	dev, _ := sh1107.NewI2C(bus, 0x3C, &sh1107.Opts{
//		W:          128,
//		H:          64,
//		BufferSize: 64, // 8×64 chunks
//	})
//
// Chunks on the right and bottom edges may extend past the canvas; Flush only
// sends the visible part.
//
// # Using Hardware Reset Pin (Optional)
//
// If the RES pin is wired to a GPIO, pass it in Opts.RST. The driver pulls it
// low for 10ms and high again before sending the configuration. Without it
// the driver relies on power-on reset.
//
// # Logging
//
// The displaylist package logs frame statistics and device bring-up at debug
// level through log/slog. Logging is disabled until a logger is installed:
//
//	displaylist.SetLogger(slog.Default())
//
// # Datasheet
//
// Register descriptions and timing are in the Sino Wealth SH1107 datasheet.
package sh1107
