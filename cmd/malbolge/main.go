// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/ezrec/malbolge/emulator"
	"github.com/ezrec/malbolge/vm"
)

// Exit codes, one per failure class.
const (
	exitLoad  = 1 // Malformed source; nothing executed.
	exitCrash = 2 // The machine crashed at runtime.
	exitIo    = 3 // A host stream failed.
)

func main() {
	var input string
	var output string
	var normalize bool
	var strict bool
	var steps int
	var verbose bool

	flag.StringVar(&input, "i", "-", "Program input")
	flag.StringVar(&output, "o", "-", "Program output")
	flag.BoolVar(&normalize, "n", false, "Print the normalized program, do not execute")
	flag.BoolVar(&strict, "strict", false, "Reject source bytes that do not encode an instruction")
	flag.IntVar(&steps, "steps", 0, "Terminate after this many cycles (0 for no limit)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("Usage: %v [options] FILE", os.Args[0])
	}

	path := flag.Arg(0)
	src, err := os.ReadFile(path)
	if err != nil {
		log.Printf("%v", errors.Wrap(err, path))
		os.Exit(exitIo)
	}

	if normalize {
		ops, err := vm.Normalize(src)
		if err != nil {
			log.Printf("%v: %v", path, err)
			os.Exit(exitLoad)
		}
		for _, op := range ops {
			fmt.Println(op)
		}
		return
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Strict = strict
	emu.MaxSteps = steps

	if input == "-" {
		emu.Tape.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Printf("%v", errors.Wrap(err, input))
			os.Exit(exitIo)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Printf("%v", errors.Wrap(err, output))
			os.Exit(exitIo)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	err = emu.Load(bytes.NewReader(src))
	if err != nil {
		log.Printf("%v: %v", path, err)
		os.Exit(exitLoad)
	}

	err = emu.Run()
	if err != nil {
		log.Printf("%v: %v", path, err)

		var eio *vm.ErrIo
		if errors.As(err, &eio) {
			os.Exit(exitIo)
		}
		os.Exit(exitCrash)
	}
}
