// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/tebeka/atexit"

	"github.com/ezrec/mcsim/cpu"
	"github.com/ezrec/mcsim/emulator"
)

func main() {
	var source string
	var config string
	var cores int
	var memorySize int
	var registers int
	var table bool
	var listing bool
	var verbose bool

	flag.StringVar(&source, "f", "assembly.txt", "Assembly source file")
	flag.StringVar(&config, "c", "", ".yaml machine configuration")
	flag.IntVar(&cores, "n", emulator.CORE_COUNT, "Number of cores")
	flag.IntVar(&memorySize, "m", emulator.MEMORY_SIZE, "Shared memory size, in bytes")
	flag.IntVar(&registers, "r", cpu.REGISTER_COUNT, "Registers per core")
	flag.BoolVar(&table, "t", false, "Report registers as a table")
	flag.BoolVar(&listing, "l", false, "Print the decoded program listing")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg := emulator.DefaultConfig()
	if len(config) != 0 {
		var err error
		cfg, err = emulator.LoadConfig(config)
		if err != nil {
			atexit.Fatalf("%v: %v", config, err)
		}
	}

	// Explicit flags override the configuration file.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "n":
			cfg.Cores = cores
		case "m":
			cfg.MemorySize = memorySize
		case "r":
			cfg.Registers = registers
		}
	})

	emu, err := emulator.NewEmulator(cfg)
	if err != nil {
		atexit.Fatalf("%v: %v", os.Args[0], err)
	}
	emu.Verbose = verbose

	err = emu.Load(source)
	if err != nil {
		atexit.Fatalf("%v", err)
	}

	if listing {
		err = emu.Listing(os.Stdout)
		if err != nil {
			atexit.Fatalf("%v", err)
		}
	}

	err = emu.Run()
	if err != nil {
		atexit.Fatalf("%v", err)
	}

	if table {
		err = emu.ReportTable(os.Stdout)
	} else {
		err = emu.Report(os.Stdout)
	}
	if err != nil {
		atexit.Fatalf("%v", err)
	}

	atexit.Exit(0)
}
