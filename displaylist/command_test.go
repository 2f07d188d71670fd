package displaylist

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandPredicates(t *testing.T) {
	tile := image.Rect(16, 16, 32, 32)

	tests := []struct {
		name         string
		cmd          Command
		wantCovers   bool
		wantOverlaps bool
	}{
		{"exact fit", NewRect(tile, grey), true, true},
		{"larger", NewRect(image.Rect(0, 0, 64, 64), grey), true, true},
		{"partial", NewRect(image.Rect(20, 0, 64, 64), grey), false, true},
		{"inside", NewRect(image.Rect(20, 20, 24, 24), grey), false, true},
		{"touching edge", NewRect(image.Rect(0, 16, 16, 32), grey), false, false},
		{"disjoint", NewRect(image.Rect(100, 100, 120, 120), grey), false, false},
		{"empty shape", Command{Bounds: image.Rect(0, 0, 64, 64)}, false, true},
		{"zero command", Empty(), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCovers, tt.cmd.Covers(tile), "Covers")
			assert.Equal(t, tt.wantOverlaps, tt.cmd.Overlaps(tile), "Overlaps")
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Empty", KindEmpty.String())
	assert.Equal(t, "FilledRect", KindFilledRect.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestRGB(t *testing.T) {
	tests := []struct {
		name      string
		rgb       RGB
		wantBlack bool
	}{
		{"black", RGB{}, true},
		{"red", RGB{R: 1}, false},
		{"green", RGB{G: 1}, false},
		{"blue", RGB{B: 0x80}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantBlack, tt.rgb.IsBlack())
		})
	}

	got := color.RGBAModel.Convert(RGB{0x12, 0x34, 0x56}).(color.RGBA)
	assert.Equal(t, color.RGBA{0x12, 0x34, 0x56, 0xFF}, got)
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "Empty", Shape{}.String())
	assert.Equal(t, "FilledRect(0,64,128)", FilledRect(blue).String())
}
