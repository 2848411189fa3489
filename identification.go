package flash25

import "fmt"

// Identification is a 3-byte JEDEC manufacturer/device ID, plus the number
// of 0x7F continuation bytes that preceded it in the chip's response.
type Identification struct {
	bytes             [3]byte
	continuationCount int
}

// ParseIdentification scans resp for the first byte that is not the 0x7F
// continuation prefix; the three bytes starting there are the manufacturer
// and device ID, and the number of 0x7F bytes skipped is the continuation
// count. If resp never leaves a non-0x7F byte followed by two more bytes,
// the scan falls back to k=0 and the first three bytes of resp verbatim.
// This is not an error; it simply reflects whatever bytes the (presumably
// malfunctioning or disconnected) device returned.
func ParseIdentification(resp []byte) Identification {
	k := 0
	for k < len(resp) && k+2 < len(resp) && resp[k] == 0x7F {
		k++
	}
	if k+3 > len(resp) {
		k = 0
	}
	var id Identification
	id.continuationCount = k
	for i := 0; i < 3 && k+i < len(resp); i++ {
		id.bytes[i] = resp[k+i]
	}
	return id
}

// MfrCode returns the manufacturer ID byte.
func (id Identification) MfrCode() byte { return id.bytes[0] }

// DeviceID returns the two device-ID bytes, most significant first.
func (id Identification) DeviceID() [2]byte { return [2]byte{id.bytes[1], id.bytes[2]} }

// ContinuationCount returns the number of 0x7F continuation bytes that
// preceded the manufacturer/device ID in the chip's response.
func (id Identification) ContinuationCount() int { return id.continuationCount }

// Bytes returns the 3 significant identification bytes (manufacturer,
// device-high, device-low), with any continuation prefix already stripped.
func (id Identification) Bytes() [3]byte { return id.bytes }

func (id Identification) String() string {
	return fmt.Sprintf("Identification(%s, continuation=%d)", HexSlice(id.bytes[:]), id.continuationCount)
}

// knownChips maps a bare (continuation-stripped) JEDEC ID to a human name,
// for the chips named across the protocol's reference datasheets.
var knownChips = map[[3]byte]string{
	{0x20, 0xBA, 0x16}: "Micron N25Q032",
	{0xEF, 0x70, 0x18}: "Winbond W25Q128JV",
	{0xC2, 0x22, 0x08}: "Cypress/Ramtron FM25V02A",
}

// LookupName returns the known name for id's bare JEDEC bytes, if any.
func LookupName(id Identification) (string, bool) {
	name, ok := knownChips[id.bytes]
	return name, ok
}
