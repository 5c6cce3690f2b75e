package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/segmentio/bitpacking-go"
	"github.com/segmentio/bitpacking-go/internal/debug"
)

type packFlags struct {
	_      struct{} `help:"Bit-pack decimal values read from a file or standard input"`
	Debug  bool     `flag:"--debug" help:"Display debugging logs" default:"false"`
	Width  int      `flag:"-w,--width" help:"Bit width the values are packed on" default:"8"`
	Output string   `flag:"-o,--output" help:"File the packed stream is written to" default:"-"`
}

func packCommand(flags packFlags, path string) {
	debug.Toggle(flags.Debug)

	in, err := openInput(path)
	if err != nil {
		perrorf("could not open input: %s", err)
		return
	}
	defer in.Close()

	out, err := openOutput(flags.Output)
	if err != nil {
		perrorf("could not open output: %s", err)
		return
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	n, err := packStream(w, in, flags.Width)
	if err != nil {
		perrorf("error: %s", err)
		return
	}
	if err := w.Flush(); err != nil {
		perrorf("error: %s", err)
		return
	}
	pdebugf("packed %d values on %d bits each", n, flags.Width)
}

// packStream packs the whitespace-separated decimal values read from r on
// bitWidth bits each, writing the packed stream to w and returning the
// number of values packed.
func packStream(w io.Writer, r io.Reader, bitWidth int) (int, error) {
	p, err := bitpacking.NewPacker(w, bitWidth)
	if err != nil {
		return 0, err
	}

	n := 0
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)

	for s.Scan() {
		v, err := strconv.ParseUint(s.Text(), 10, 8)
		if err != nil {
			return n, fmt.Errorf("value %d: %w", n, err)
		}
		if bitpacking.BitWidthOf(uint8(v)) > bitWidth {
			return n, fmt.Errorf("value %d: %d does not fit on %d bits", n, v, bitWidth)
		}
		if err := p.Pack(uint8(v)); err != nil {
			return n, err
		}
		n++
	}
	if err := s.Err(); err != nil {
		return n, err
	}
	return n, p.Close()
}
