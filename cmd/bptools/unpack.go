package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/segmentio/bitpacking-go"
	"github.com/segmentio/bitpacking-go/internal/debug"
)

type unpackFlags struct {
	_      struct{} `help:"Decode a bit-packed stream to decimal values, one per line"`
	Debug  bool     `flag:"--debug" help:"Display debugging logs" default:"false"`
	Width  int      `flag:"-w,--width" help:"Bit width the stream was packed on" default:"8"`
	Count  int      `flag:"-n,--count" help:"Number of values to decode, -1 decodes until the stream is exhausted" default:"-1"`
	Output string   `flag:"-o,--output" help:"File the values are written to" default:"-"`
}

func unpackCommand(flags unpackFlags, path string) {
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
	n, err := unpackStream(w, in, flags.Width, flags.Count)
	if err != nil {
		perrorf("error: %s", err)
		return
	}
	if err := w.Flush(); err != nil {
		perrorf("error: %s", err)
		return
	}
	pdebugf("unpacked %d values of %d bits each", n, flags.Width)
}

// unpackStream decodes values of the given bit width from r and writes them
// to w in decimal, one per line. A negative count decodes until the source
// is exhausted, which for the zero bit width means no value at all since
// such a stream is empty.
func unpackStream(w io.Writer, r io.Reader, bitWidth, count int) (int, error) {
	u, err := bitpacking.NewUnpacker(bufio.NewReader(r), bitWidth)
	if err != nil {
		return 0, err
	}
	if bitWidth == 0 && count < 0 {
		return 0, nil
	}

	scratch := make([]byte, 0, 4)
	n := 0
	for count < 0 || n < count {
		v, err := u.Unpack()
		if err == io.EOF {
			if count < 0 {
				break
			}
			return n, fmt.Errorf("stream exhausted after %d of %d values", n, count)
		}
		if err != nil {
			return n, err
		}
		scratch = strconv.AppendUint(scratch[:0], uint64(v), 10)
		scratch = append(scratch, '\n')
		if _, err := w.Write(scratch); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
