package flash25

import (
	"fmt"
	"strings"
)

// StatusRegister is a typed view of the 8-bit status register returned by
// OpcodeReadStatus.
//
//	Bit | Name  | Meaning
//	----+-------+------------------------------------------
//	0   | BUSY  | erase/program cycle in progress
//	1   | WEL   | write-enable latch set
//	4:2 | PROT  | block-protect region bits
//	7   | SRWD  | status register write disable
//
// Bits 5 and 6 are ignored.
type StatusRegister byte

const (
	statusBitBusy  = 1 << 0
	statusBitWel   = 1 << 1
	statusMaskProt = 0b0001_1100
	statusBitSrwd  = 1 << 7
)

// Busy reports whether an erase or program cycle is in progress.
func (s StatusRegister) Busy() bool { return s&statusBitBusy != 0 }

// WriteEnabled reports whether the write-enable latch is set.
func (s StatusRegister) WriteEnabled() bool { return s&statusBitWel != 0 }

// BlockProtect returns the 3-bit block-protect region value (bits 4:2).
func (s StatusRegister) BlockProtect() byte { return byte(s&statusMaskProt) >> 2 }

// StatusRegisterWriteDisable reports the SRWD bit.
func (s StatusRegister) StatusRegisterWriteDisable() bool { return s&statusBitSrwd != 0 }

func (s StatusRegister) String() string {
	b := fmt.Sprintf("%08b", byte(s))
	var flags []string
	if s.StatusRegisterWriteDisable() {
		flags = append(flags, "SRWD")
	}
	if bp := s.BlockProtect(); bp != 0 {
		flags = append(flags, fmt.Sprintf("PROT=%03b", bp))
	}
	if s.WriteEnabled() {
		flags = append(flags, "WEL")
	}
	if s.Busy() {
		flags = append(flags, "BUSY")
	}
	if len(flags) == 0 {
		return b
	}
	return b + " " + strings.Join(flags, ",")
}
