// Package periphspi adapts periph.io/x/conn/v3's spi.Conn and gpio.PinIO to
// the flash25.Transport and flash25.ChipSelect interfaces, so the core
// driver package never has to import periph.io itself.
package periphspi

import (
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// Conn adapts a periph.io spi.Conn to flash25.Transport.
type Conn struct {
	C spi.Conn
}

// Exchange implements flash25.Transport by performing an in-place transfer:
// the same buffer is used for both the write and the read half.
func (c Conn) Exchange(buf []byte) error {
	return c.C.Tx(buf, buf)
}

// Pin adapts a periph.io gpio.PinIO to flash25.ChipSelect.
type Pin struct {
	P gpio.PinIO
}

// SetLow implements flash25.ChipSelect.
func (p Pin) SetLow() error { return p.P.Out(gpio.Low) }

// SetHigh implements flash25.ChipSelect.
func (p Pin) SetHigh() error { return p.P.Out(gpio.High) }

// SleepDelayer implements flash25.Delayer with time.Sleep.
type SleepDelayer struct{}

// DelayMicros implements flash25.Delayer.
func (SleepDelayer) DelayMicros(us uint8) {
	time.Sleep(time.Duration(us) * time.Microsecond)
}
