package flash25_test

import "github.com/jonas-schievink/flash25"

// fakeTransport is a from-scratch record/playback double for
// flash25.Transport, in the spirit of google-periph's spitest.Record,
// reimplemented against this repo's own narrow interface.
type fakeTransport struct {
	calls   [][]byte
	overlay func(callIndex int, buf []byte)
	err     error
}

func (f *fakeTransport) Exchange(buf []byte) error {
	n := len(f.calls)
	f.calls = append(f.calls, append([]byte(nil), buf...))
	if f.overlay != nil {
		f.overlay(n, buf)
	}
	return f.err
}

// fakeChipSelect is a from-scratch record/playback double for
// flash25.ChipSelect.
type fakeChipSelect struct {
	lowCount, highCount int
	lowErr, highErr     error
	events              []string
}

func (c *fakeChipSelect) SetLow() error {
	c.lowCount++
	c.events = append(c.events, "low")
	return c.lowErr
}

func (c *fakeChipSelect) SetHigh() error {
	c.highCount++
	c.events = append(c.events, "high")
	return c.highErr
}

// quiescentStatus arranges for every ReadStatus exchange (opcode byte
// OpcodeReadStatus) to answer with status, so New/waitDone callers see a
// ready chip without needing a full busy-poll sequence.
func quiescentStatus(status byte) func(int, []byte) {
	return func(_ int, buf []byte) {
		if len(buf) >= 2 && buf[0] == byte(flash25.OpcodeReadStatus) {
			buf[1] = status
		}
	}
}

// busySequence answers successive ReadStatus exchanges with the bytes in
// seq in order (and the last byte of seq for any call beyond len(seq)),
// modeling a chip that is BUSY for a few polls before clearing.
func busySequence(seq ...byte) func(int, []byte) {
	idx := 0
	return func(_ int, buf []byte) {
		if len(buf) >= 2 && buf[0] == byte(flash25.OpcodeReadStatus) {
			i := idx
			if i >= len(seq) {
				i = len(seq) - 1
			}
			buf[1] = seq[i]
			idx++
		}
	}
}

// fakeDelayer is a flash25.Delayer double that records every requested delay
// instead of actually sleeping.
type fakeDelayer struct {
	delays []uint8
}

func (d *fakeDelayer) DelayMicros(us uint8) {
	d.delays = append(d.delays, us)
}
