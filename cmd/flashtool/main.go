// Command flashtool bridges an FT2232H's MPSSE SPI engine to a 25-series
// flash chip, exposing info/read/write/erase over the flash25 driver.
package main

import (
	"fmt"
	"os"
)

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
	flashtool <command> [arguments]

Commands:
	info	 print FT2232H and flash identification
	read	 read flash memory to stdout or a file
	write	 program flash memory from a file
	erase	 erase sectors, 64KiB blocks, or the whole chip
`)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "info":
		infoCmd(args)
	case "read":
		readCmd(args)
	case "write":
		writeCmd(args)
	case "erase":
		eraseCmd(args)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %q\n", cmd)
		usage()
	}
}
