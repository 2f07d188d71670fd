// Package image1bit provides a 1-bit monochrome image format for page
// addressed OLED controllers such as the SH1107.
//
// These controllers organise their memory in pages: each byte holds 8
// vertically stacked pixels, least significant bit on top. A page is one
// byte per column, so the bytes of a page can be streamed to the device
// after a single page and column address.
//
// Memory layout example for an image 3 pixels wide and 16 pixels tall:
//
//	Byte:   0      1      2      3      4      5
//	Page:   0      0      0      1      1      1
//	Column: 0      1      2      0      1      2
//	Rows:   0..7   0..7   0..7   8..15  8..15  8..15
//
// Bit n of a byte is row 8*page+n.
//
// This package provides:
//
// - Bit: A color type with two states, On and Off
// - BitModel: A color model turning any non-black color On
// - VerticalLSB: An image.Image implementation in page layout
//
// Example usage:
//
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 16))
//	img.Fill(image.Rect(10, 2, 20, 12), image1bit.On)
//	page := img.Page(0) // 128 bytes for rows 0..7
package image1bit
