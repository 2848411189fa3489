package flash25

import "time"

// pageSize is the page-program granule: at most this many bytes may be
// written by a single PageProgram command.
const pageSize = 256

// eraseStride is the address advance per EraseSectors iteration. 25-series
// sector granularity is typically 4 KiB (a true sector is count=16), but
// this driver's erase-loop stride has always advanced by 256 bytes per
// iteration; preserved intentionally, not a bug.
const eraseStride = 256

// busyPollInterval is the pause between BUSY polls in waitDone. The loop
// itself never gives up; it only sleeps briefly between reads so it doesn't
// spin a CPU core at full tilt on platforms with cooperative scheduling.
const busyPollInterval = time.Millisecond

// tRES1Micros is the minimum delay after ReleasePowerDown, per
// [W25Q128] 9.6 AC Electrical Characteristics (datasheet minimum ~3us;
// 6us gives margin).
const tRES1Micros = 6

// Flash drives one 25-series SPI flash or EEPROM die. It exclusively owns
// its Transport and ChipSelect for its lifetime; callers who need to share
// either with another chip-select (e.g. the W25M stacked-die package) must
// go through Free and reconstruct via New.
type Flash struct {
	t  Transport
	cs ChipSelect
}

// New reads the status register and returns a driver for the chip attached
// via t/cs. It fails with ErrUnexpectedStatus if BUSY or WEL is already set,
// since that indicates an in-progress erase/program cycle or a lingering
// write-enable latch from an earlier, improperly terminated session; no
// further commands are issued in that case.
func New(t Transport, cs ChipSelect) (*Flash, error) {
	f := &Flash{t: t, cs: cs}
	status, err := f.ReadStatus()
	if err != nil {
		return nil, err
	}
	if status.Busy() || status.WriteEnabled() {
		return nil, ErrUnexpectedStatus
	}
	return f, nil
}

// Free returns the Transport and ChipSelect this driver owns, for reuse by
// another driver instance (the stacked-die wrapper's SwitchDie uses this).
func (f *Flash) Free() (Transport, ChipSelect) {
	return f.t, f.cs
}

// transact brackets a single in-place exchange with CS-low/CS-high. The
// reported error is the first one encountered: a CS-low failure is returned
// immediately without attempting the exchange; an exchange failure still
// gets CS driven high unconditionally, and wins over any subsequent CS-high
// error; a CS-high failure after a successful exchange is reported.
func (f *Flash) transact(buf []byte) error {
	if err := f.cs.SetLow(); err != nil {
		return chipSelectErr(err)
	}
	exchErr := f.t.Exchange(buf)
	if csErr := f.cs.SetHigh(); csErr != nil {
		if exchErr != nil {
			return transportErr(exchErr)
		}
		return chipSelectErr(csErr)
	}
	return transportErr(exchErr)
}

// transactSplit brackets a two-phase exchange (a command header, then a
// bulk payload) with a single CS-low/CS-high pair. A header failure skips
// the payload phase entirely; a zero-length payload is never exchanged (so
// Read with an empty buf never emits a second transfer phase).
func (f *Flash) transactSplit(header, payload []byte) (err error) {
	if err = f.cs.SetLow(); err != nil {
		return chipSelectErr(err)
	}
	defer func() {
		if csErr := f.cs.SetHigh(); csErr != nil && err == nil {
			err = chipSelectErr(csErr)
		}
	}()

	if err = f.t.Exchange(header); err != nil {
		err = transportErr(err)
		return
	}
	if len(payload) == 0 {
		return nil
	}
	if err = f.t.Exchange(payload); err != nil {
		err = transportErr(err)
	}
	return
}

// ReadJedecID reads the JEDEC manufacturer/device identification, tolerating
// any number of 0x7F continuation-prefix bytes a chip returns ahead of its
// real ID (e.g. the Cypress/Ramtron FM25V02A returns six of them).
func (f *Flash) ReadJedecID() (Identification, error) {
	buf := make([]byte, 12)
	buf[0] = byte(OpcodeReadJedecID)
	if err := f.transact(buf); err != nil {
		return Identification{}, err
	}
	return ParseIdentification(buf[1:]), nil
}

// ReadStatus reads the 8-bit status register.
func (f *Flash) ReadStatus() (StatusRegister, error) {
	buf := []byte{byte(OpcodeReadStatus), 0}
	if err := f.transact(buf); err != nil {
		return 0, err
	}
	return StatusRegister(buf[1]), nil
}

// Read fills buf with flash contents starting at addr. Only the low 24 bits
// of addr are transmitted; the chip mirrors its density-masked view of the
// address space for anything beyond its real size. buf may be empty or any
// length; an empty buf succeeds without a second transfer phase.
func (f *Flash) Read(addr uint32, buf []byte) error {
	header := []byte{
		byte(OpcodeRead),
		byte(addr >> 16),
		byte(addr >> 8),
		byte(addr),
	}
	return f.transactSplit(header, buf)
}

// ReadAt implements Read[uint32].
func (f *Flash) ReadAt(addr uint32, buf []byte) error { return f.Read(addr, buf) }

// writeEnable sets the write-enable latch. Every program/erase command must
// be immediately preceded by this, since the chip clears WEL automatically
// at the end of each program/erase cycle.
func (f *Flash) writeEnable() error {
	return f.transact([]byte{byte(OpcodeWriteEnable)})
}

// WriteDisable clears the write-enable latch. Defined for completeness (and
// for callers who want to leave a chip in a known-safe state); the core's
// own erase/write paths never call it, since the chip already clears WEL on
// its own after each program/erase cycle.
func (f *Flash) WriteDisable() error {
	return f.transact([]byte{byte(OpcodeWriteDisable)})
}

// waitDone busy-polls the status register until BUSY clears. There is no
// timeout: a chip that never clears BUSY hangs this call forever. Callers
// needing a deadline must wrap the call with their own context/goroutine.
func (f *Flash) waitDone() error {
	for {
		status, err := f.ReadStatus()
		if err != nil {
			return err
		}
		if !status.Busy() {
			return nil
		}
		time.Sleep(busyPollInterval)
	}
}

func eraseFrame(opcode Opcode, addr uint32) []byte {
	return []byte{byte(opcode), byte(addr >> 16), byte(addr >> 8), byte(addr)}
}

// EraseSectors erases count sectors starting at addr, advancing the address
// by 256 bytes per iteration. Note: real 25-series sector granularity is
// typically 4 KiB, so a true sector corresponds to count=16; this stride is
// kept exactly as it has always been rather than "corrected" to 4 KiB.
// Each iteration reissues WriteEnable before its SectorErase and waits for
// BUSY to clear before advancing.
func (f *Flash) EraseSectors(addr uint32, count int) error {
	cur := addr
	for i := 0; i < count; i++ {
		if err := f.writeEnable(); err != nil {
			return err
		}
		if err := f.transact(eraseFrame(OpcodeSectorErase, cur)); err != nil {
			return err
		}
		if err := f.waitDone(); err != nil {
			return err
		}
		cur += eraseStride
	}
	return nil
}

// EraseBlock64KB erases a single 64 KiB block at addr (opcode 0xD8),
// preceded by WriteEnable and followed by a BUSY wait, the same shape as
// EraseSectors's per-iteration body.
func (f *Flash) EraseBlock64KB(addr uint32) error {
	if err := f.writeEnable(); err != nil {
		return err
	}
	if err := f.transact(eraseFrame(OpcodeBlockErase64KB, addr)); err != nil {
		return err
	}
	return f.waitDone()
}

// EraseAll issues a chip erase. Full erase can take tens of seconds; the
// wait has no timeout.
func (f *Flash) EraseAll() error {
	if err := f.writeEnable(); err != nil {
		return err
	}
	if err := f.transact([]byte{byte(OpcodeChipErase)}); err != nil {
		return err
	}
	return f.waitDone()
}

// WriteBytes programs data at addr, splitting it into page-program chunks of
// at most 256 bytes. Each chunk is preceded by its own WriteEnable (the
// chip's WEL is cleared automatically at the end of each program cycle) and
// followed by a BUSY wait before the next chunk starts. The caller is
// responsible for ensuring the target pages have already been erased; this
// does not erase implicitly.
func (f *Flash) WriteBytes(addr uint32, data []byte) error {
	cur := addr
	for len(data) > 0 {
		n := len(data)
		if n > pageSize {
			n = pageSize
		}
		chunk := data[:n]

		if err := f.writeEnable(); err != nil {
			return err
		}
		header := []byte{
			byte(OpcodePageProgram),
			byte(cur >> 16),
			byte(cur >> 8),
			byte(cur),
		}
		if err := f.transactSplit(header, chunk); err != nil {
			return err
		}
		if err := f.waitDone(); err != nil {
			return err
		}

		cur += uint32(n)
		data = data[n:]
	}
	return nil
}

// WriteAt implements BlockDevice[uint32].
func (f *Flash) WriteAt(addr uint32, data []byte) error { return f.WriteBytes(addr, data) }

// PowerDown puts the chip into its low-power mode. While powered down the
// chip answers only ReleasePowerDown.
func (f *Flash) PowerDown() error {
	return f.transact([]byte{byte(OpcodePowerDown)})
}

// ReleasePowerDown wakes the chip from power-down and blocks for tRES1
// (datasheet minimum ~3us; this uses 6us for margin) via d before returning,
// since the chip won't answer any other command until tRES1 has elapsed.
func (f *Flash) ReleasePowerDown(d Delayer) error {
	if err := f.transact([]byte{byte(OpcodeReleasePowerDown)}); err != nil {
		return err
	}
	d.DelayMicros(tRES1Micros)
	return nil
}
