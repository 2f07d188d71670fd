package sh1107

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
)

// Channel carries command and pixel bytes to the controller.
//
// Implementations report bus failures (no acknowledge, timeout) as plain
// errors; Dev maps all of them to displaylist.ErrBackingStore.
type Channel interface {
	// SendCommands sends command bytes. Several commands may be batched in
	// one call; they are executed in order.
	SendCommands(cmds ...byte) error
	// SendData sends bytes to display RAM at the current address.
	SendData(data []byte) error
}

// I2C control bytes selecting how the following bytes are interpreted.
const (
	i2cCommand = 0x00
	i2cData    = 0x40
)

// i2cChannel frames every transfer with a control byte. buf is allocated
// once so transfers never allocate.
type i2cChannel struct {
	d   i2c.Dev
	buf []byte
}

func newI2CChannel(bus i2c.Bus, addr uint16, maxTransfer int) *i2cChannel {
	return &i2cChannel{
		d:   i2c.Dev{Bus: bus, Addr: addr},
		buf: make([]byte, maxTransfer+1),
	}
}

func (c *i2cChannel) SendCommands(cmds ...byte) error {
	return c.tx(i2cCommand, cmds)
}

func (c *i2cChannel) SendData(data []byte) error {
	return c.tx(i2cData, data)
}

func (c *i2cChannel) tx(control byte, b []byte) error {
	if len(b) >= len(c.buf) {
		return fmt.Errorf("sh1107: transfer of %d bytes exceeds %d byte buffer", len(b), len(c.buf)-1)
	}
	c.buf[0] = control
	n := copy(c.buf[1:], b)
	return c.d.Tx(c.buf[:n+1], nil)
}

func (c *i2cChannel) String() string {
	return c.d.String()
}

// spiChannel uses the D/C pin to tell commands (low) from data (high).
type spiChannel struct {
	c  conn.Conn
	dc gpio.PinOut
}

func (s *spiChannel) SendCommands(cmds ...byte) error {
	if err := s.dc.Out(gpio.Low); err != nil {
		return err
	}
	return s.c.Tx(cmds, nil)
}

func (s *spiChannel) SendData(data []byte) error {
	if err := s.dc.Out(gpio.High); err != nil {
		return err
	}
	return s.c.Tx(data, nil)
}

func (s *spiChannel) String() string {
	return s.c.String()
}
