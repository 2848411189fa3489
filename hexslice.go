package flash25

import "strings"

// HexSlice renders a byte slice for debug output as "[xx, yy, ...]" with
// lowercase, zero-padded, two-digit hex. A zero-length slice renders "[]".
type HexSlice []byte

func (h HexSlice) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range h {
		if i != 0 {
			b.WriteString(", ")
		}
		const hexDigits = "0123456789abcdef"
		b.WriteByte(hexDigits[v>>4])
		b.WriteByte(hexDigits[v&0xf])
	}
	b.WriteByte(']')
	return b.String()
}
