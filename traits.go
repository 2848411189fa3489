package flash25

// Read abstracts a read-only memory chip addressed by Addr, so higher layers
// can be written against more than one flash geometry.
type Read[Addr any] interface {
	// ReadAt reads len(buf) bytes starting at addr into buf.
	ReadAt(addr Addr, buf []byte) error
}

// BlockDevice abstracts the erase/program operations of a memory chip
// addressed by Addr.
type BlockDevice[Addr any] interface {
	// EraseSectors erases count sectors starting at addr.
	EraseSectors(addr Addr, count int) error
	// EraseAll erases the entire chip.
	EraseAll() error
	// WriteAt programs data starting at addr. The caller is responsible for
	// ensuring the target region has already been erased.
	WriteAt(addr Addr, data []byte) error
}

var (
	_ Read[uint32]        = (*Flash)(nil)
	_ BlockDevice[uint32] = (*Flash)(nil)
)
