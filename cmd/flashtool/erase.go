package main

import (
	"github.com/spf13/pflag"
)

// eraseCmd mirrors the original crate's util.rs EraseBlocks/EraseAll
// operations.
func eraseCmd(args []string) {
	fs := pflag.NewFlagSet("erase", pflag.ExitOnError)
	addr := fs.Uint32P("addr", "a", 0, "start address")
	sectors := fs.IntP("sectors", "n", 1, "number of sectors to erase")
	block64 := fs.Bool("block", false, "erase a single 64KiB block at addr instead")
	all := fs.Bool("all", false, "erase the entire chip")
	clockHz := fs.Int64P("clock", "c", 30_000_000, "SPI clock rate in Hz")
	fs.Parse(args)

	f, _, err := connectFlash(*clockHz)
	if err != nil {
		fatalf("connect failed: %v", err)
	}

	switch {
	case *all:
		err = f.EraseAll()
	case *block64:
		err = f.EraseBlock64KB(*addr)
	default:
		err = f.EraseSectors(*addr, *sectors)
	}
	if err != nil {
		fatalf("erase failed: %v", err)
	}
}
