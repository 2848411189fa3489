package main

import (
	"fmt"

	"github.com/jonas-schievink/flash25"
	"github.com/spf13/pflag"
	"periph.io/x/host/v3/ftdi"
)

func infoCmd(args []string) {
	fs := pflag.NewFlagSet("info", pflag.ExitOnError)
	clockHz := fs.Int64P("clock", "c", 30_000_000, "SPI clock rate in Hz")
	fs.Parse(args)

	f, ft, err := connectFlash(*clockHz)
	if err != nil {
		fatalf("connect failed: %v", err)
	}

	i := ftdi.Info{}
	ft.Info(&i)
	fmt.Printf("FTDI type:       %s\n", i.Type)
	fmt.Printf("FTDI vendor ID:  %#04x\n", i.VenID)
	fmt.Printf("FTDI device ID:  %#04x\n", i.DevID)

	id, err := f.ReadJedecID()
	if err != nil {
		fatalf("read JEDEC ID failed: %v", err)
	}
	name, known := flash25.LookupName(id)
	fmt.Printf("Flash ID:        %s\n", id)
	if known {
		fmt.Printf("Flash type:      %s\n", name)
	} else {
		fmt.Printf("Flash type:      unknown\n")
	}

	status, err := f.ReadStatus()
	if err != nil {
		fatalf("read status failed: %v", err)
	}
	fmt.Printf("Status:          %s\n", status)
}
