package sh1107

// SH1107 opcodes. Single byte commands carrying a value in their low bits
// are built by the helpers below; the others are followed by one argument
// byte.
const (
	opColumnLow     = 0x00 // | column bits 0-3
	opColumnHigh    = 0x10 // | column bits 4-7
	opAddressMode   = 0x20 // page addressing
	opContrast      = 0x81 // + level
	opChargePump    = 0xAD // + 0x8A | on
	opAllOn         = 0xA4 // | on
	opInvert        = 0xA6 // | on
	opMultiplex     = 0xA8 // + ratio-1
	opDisplayOff    = 0xAE
	opDisplayOn     = 0xAF
	opPageAddress   = 0xB0 // | page
	opDisplayOffset = 0xD3 // + offset
	opClockDiv      = 0xD5 // + osc<<4 | div
	opPreCharge     = 0xD9 // + discharge<<4 | precharge
	opVcomh         = 0xDB // + level
	opStartLine     = 0xDC // + line
)

func pageAddress(page int) byte {
	return opPageAddress | byte(page)&0x0F
}

func columnLow(col int) byte {
	return opColumnLow | byte(col)&0x0F
}

func columnHigh(col int) byte {
	return opColumnHigh | byte(col>>4)&0x0F
}

func flag(op byte, on bool) byte {
	if on {
		return op | 1
	}
	return op
}

// configSequence returns the power and configuration commands sent before
// the panel is switched on, one command per element.
func configSequence(displayHeight int) [][]byte {
	return [][]byte{
		{opDisplayOff},
		{opClockDiv, 0x8<<4 | 0x0},
		{opMultiplex, byte(displayHeight - 1)},
		{opStartLine, 0x00},
		// The panel must be off while the charge pump is switched.
		{opChargePump, flag(0x8A, true)},
		{opContrast, 0x80},
		{opPreCharge, 0xF<<4 | 0x1},
		{opVcomh, 0x35},
		{flag(opAllOn, false)},
		{flag(opInvert, false)},
		{opDisplayOffset, 0x00},
		{opAddressMode},
	}
}
