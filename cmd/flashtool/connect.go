package main

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/jonas-schievink/flash25"
	"github.com/jonas-schievink/flash25/internal/periphspi"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/ftdi"
)

const (
	ftdiVendorID  = 0x0403 // FTDI
	ftdiProductID = 0x6010 // FT2232H
)

var hostInitialized atomic.Bool

// openFT2232H finds the first attached FT2232H, initializing the periph.io
// host registry on first use.
func openFT2232H() (*ftdi.FT232H, error) {
	if hostInitialized.CompareAndSwap(false, true) {
		if _, err := host.Init(); err != nil {
			return nil, fmt.Errorf("host initialization failed: %w", err)
		}
	}

	info := ftdi.Info{}
	for _, dev := range ftdi.All() {
		dev.Info(&info)
		if info.VenID != ftdiVendorID || info.DevID != ftdiProductID {
			continue
		}
		if ft, ok := dev.(*ftdi.FT232H); ok {
			return ft, nil
		}
	}
	return nil, errors.New("no FT2232H device found")
}

// connectFlash opens the FT2232H's MPSSE SPI engine at clockHz and wires
// ADBUS4 as chip-select, returning a ready flash25.Flash. [FTDI AN_114|1.2]
// limits the MPSSE engine to SPI mode 0 or mode 2; every 25-series chip in
// this driver's scope supports mode 0.
func connectFlash(clockHz int64) (*flash25.Flash, *ftdi.FT232H, error) {
	ft, err := openFT2232H()
	if err != nil {
		return nil, nil, err
	}

	port, err := ft.SPI()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get SPI port: %w", err)
	}

	clk := physic.Frequency(clockHz) * physic.Hertz
	conn, err := port.Connect(clk, spi.Mode0, 8)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect SPI: %w", err)
	}

	cs := ft.D4 // ADBUS4, wired as iCE_SS_B
	if err := cs.Out(gpio.High); err != nil {
		return nil, nil, fmt.Errorf("failed to idle chip-select: %w", err)
	}

	f, err := flash25.New(periphspi.Conn{C: conn}, periphspi.Pin{P: cs})
	if err != nil {
		return nil, nil, fmt.Errorf("flash init failed: %w", err)
	}
	return f, ft, nil
}
