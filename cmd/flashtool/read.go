package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

func readCmd(args []string) {
	fs := pflag.NewFlagSet("read", pflag.ExitOnError)
	addr := fs.Uint32P("addr", "a", 0, "start address")
	n := fs.IntP("count", "n", 256, "number of bytes to read")
	outFile := fs.StringP("output", "o", "", "output file (default: hexdump to stdout)")
	clockHz := fs.Int64P("clock", "c", 30_000_000, "SPI clock rate in Hz")
	fs.Parse(args)

	f, _, err := connectFlash(*clockHz)
	if err != nil {
		fatalf("connect failed: %v", err)
	}

	buf := make([]byte, *n)
	if err := f.Read(*addr, buf); err != nil {
		fatalf("read failed: %v", err)
	}

	if *outFile == "" {
		fmt.Print(hex.Dump(buf))
		return
	}
	if err := os.WriteFile(*outFile, buf, 0644); err != nil {
		fatalf("write output file failed: %v", err)
	}
}
