package main

import (
	"os"

	"github.com/spf13/pflag"
)

// writeCmd programs a flat binary file at addr, restoring the dump/load
// round-trip the distilled spec dropped (the original crate's util.rs
// Load/Dump operations); no ihex-format parser exists in the retrieval
// pack, so a flat binary file plays the role the original's .hex file did.
func writeCmd(args []string) {
	fs := pflag.NewFlagSet("write", pflag.ExitOnError)
	addr := fs.Uint32P("addr", "a", 0, "start address")
	filename := fs.StringP("file", "f", "", "input file (required)")
	clockHz := fs.Int64P("clock", "c", 30_000_000, "SPI clock rate in Hz")
	skipErase := fs.Bool("no-erase", false, "assume target sectors are already erased")
	fs.Parse(args)

	if *filename == "" {
		fatalf("input file is required (-f)")
	}
	data, err := os.ReadFile(*filename)
	if err != nil {
		fatalf("failed to read input file: %v", err)
	}

	f, _, err := connectFlash(*clockHz)
	if err != nil {
		fatalf("connect failed: %v", err)
	}

	if !*skipErase {
		sectors := (len(data) + 255) / 256
		if err := f.EraseSectors(*addr, sectors); err != nil {
			fatalf("erase before write failed: %v", err)
		}
	}

	if err := f.WriteBytes(*addr, data); err != nil {
		fatalf("write failed: %v", err)
	}
}
