// Package stacked implements the W25M-style stacked-die package: two
// 25-series-compatible dies behind one shared SPI/CS pair, switched with an
// internal 0xC2 die-select command.
package stacked

import (
	"fmt"

	"github.com/jonas-schievink/flash25"
)

// Die names which of the two stacked dies is currently addressable.
type Die int

const (
	Die0 Die = iota
	Die1
)

func (d Die) String() string {
	switch d {
	case Die0:
		return "Die0"
	case Die1:
		return "Die1"
	default:
		return "Die(invalid)"
	}
}

func (d Die) opposite() Die {
	if d == Die0 {
		return Die1
	}
	return Die0
}

// dieSelectByte is the byte the 0xC2 die-select command addresses to pick d.
func (d Die) dieSelectByte() byte {
	if d == Die1 {
		return 0x01
	}
	return 0x00
}

// Flash composes two Flash25 drivers behind a shared transport+chip-select,
// exposing whichever die is currently active. Exactly one of the two dies is
// ever constructed at a time; SwitchDie tears down the active one, issues
// the die-select command, and rebuilds the other, mirroring the original
// crate's type-state Inner::Die0/Die1/Dummy enum. In Go the "Dummy" state is
// a nil inner driver: it exists during SwitchDie's body, and it remains after
// a SwitchDie that failed mid-sequence, in which case forwarded operations
// and further SwitchDie calls panic.
type Flash struct {
	active Die
	flash  *flash25.Flash // nil inside SwitchDie, and after a failed SwitchDie
}

// New constructs the wrapper with Die0 active.
func New(t flash25.Transport, cs flash25.ChipSelect) (*Flash, error) {
	d0, err := flash25.New(t, cs)
	if err != nil {
		return nil, err
	}
	return &Flash{active: Die0, flash: d0}, nil
}

// ActiveDie reports which die currently receives forwarded operations.
func (s *Flash) ActiveDie() Die { return s.active }

func (s *Flash) live() *flash25.Flash {
	if s.flash == nil {
		panic(fmt.Sprintf("flash25/stacked: Flash used while %s was mid-switch", s.active))
	}
	return s.flash
}

// SwitchDie frees the currently active die, issues the 0xC2 die-select
// command for the opposite die, and rebuilds the wrapper bound to it. It is
// an atomic "unbuild -> issue 0xC2 -> rebuild" sequence: on a transport or
// chip-select error mid-sequence, s is left with no live driver and any
// further forwarded operation or SwitchDie call panics (ActiveDie still
// reports the die that was active before the failed switch), since that
// error already means the shared SPI connection is in an unknown state.
func (s *Flash) SwitchDie() error {
	t, cs := s.live().Free()
	s.flash = nil

	target := s.active.opposite()
	buf := []byte{byte(flash25.OpcodeDieSelect), target.dieSelectByte()}
	if err := transactRaw(t, cs, buf); err != nil {
		return err
	}

	next, err := flash25.New(t, cs)
	if err != nil {
		return err
	}
	s.active = target
	s.flash = next
	return nil
}

// transactRaw brackets a single die-select transaction with CS-low/CS-high,
// the same discipline flash25.Flash.transact uses for every command.
func transactRaw(t flash25.Transport, cs flash25.ChipSelect, buf []byte) error {
	if err := cs.SetLow(); err != nil {
		return err
	}
	exchErr := t.Exchange(buf)
	if csErr := cs.SetHigh(); csErr != nil {
		if exchErr != nil {
			return exchErr
		}
		return csErr
	}
	return exchErr
}

// Read forwards to the active die.
func (s *Flash) Read(addr uint32, buf []byte) error { return s.live().Read(addr, buf) }

// EraseSectors forwards to the active die.
func (s *Flash) EraseSectors(addr uint32, count int) error {
	return s.live().EraseSectors(addr, count)
}

// EraseAll forwards to the active die.
func (s *Flash) EraseAll() error { return s.live().EraseAll() }

// WriteBytes forwards to the active die.
func (s *Flash) WriteBytes(addr uint32, data []byte) error {
	return s.live().WriteBytes(addr, data)
}

var (
	_ flash25.Read[uint32]        = (*Flash)(nil)
	_ flash25.BlockDevice[uint32] = (*Flash)(nil)
)

// ReadAt implements flash25.Read[uint32].
func (s *Flash) ReadAt(addr uint32, buf []byte) error { return s.Read(addr, buf) }

// WriteAt implements flash25.BlockDevice[uint32].
func (s *Flash) WriteAt(addr uint32, data []byte) error { return s.WriteBytes(addr, data) }
