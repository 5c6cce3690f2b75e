package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/segmentio/encoding/json"

	"github.com/segmentio/bitpacking-go"
	"github.com/segmentio/bitpacking-go/internal/bits"
	"github.com/segmentio/bitpacking-go/internal/debug"
)

type inspectFlags struct {
	_     struct{} `help:"Print the group layout of a bit-packed stream"`
	Debug bool     `flag:"--debug" help:"Display debugging logs" default:"false"`
	Width int      `flag:"-w,--width" help:"Bit width the stream was packed on" default:"8"`
	JSON  bool     `flag:"-j,--json" help:"Print a JSON summary of the stream instead of the group table" default:"false"`
}

type streamSummary struct {
	BitWidth   int `json:"bitWidth"`
	GroupSize  int `json:"groupSize"`
	GroupBytes int `json:"groupBytes"`
	NumBytes   int `json:"numBytes"`
	NumGroups  int `json:"numGroups"`
	NumValues  int `json:"numValues"`
	PadBits    int `json:"padBits"`
}

func inspectCommand(flags inspectFlags, path string) {
	debug.Toggle(flags.Debug)

	in, err := openInput(path)
	if err != nil {
		perrorf("could not open input: %s", err)
		return
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		perrorf("could not read input: %s", err)
		return
	}
	pdebugf("inspecting a stream of %d bytes at bit width %d", len(data), flags.Width)

	if flags.JSON {
		err = inspectJSON(os.Stdout, data, flags.Width)
	} else {
		err = inspectTable(os.Stdout, data, flags.Width)
	}
	if err != nil {
		perrorf("error: %s", err)
	}
}

func summarize(data []byte, bitWidth int) (streamSummary, error) {
	if bitWidth < 0 || bitWidth > bitpacking.MaxBitWidth {
		return streamSummary{}, fmt.Errorf("bit width %d is not supported", bitWidth)
	}
	s := streamSummary{
		BitWidth:   bitWidth,
		GroupSize:  int(bits.GroupSize(uint(bitWidth))),
		GroupBytes: int(bits.GroupBytes(uint(bitWidth))),
		NumBytes:   len(data),
	}
	if bitWidth != 0 {
		s.NumValues = (8 * len(data)) / bitWidth
		s.NumGroups = (len(data) + s.GroupBytes - 1) / s.GroupBytes
		s.PadBits = 8*len(data) - s.NumValues*bitWidth
	}
	return s, nil
}

func inspectJSON(w io.Writer, data []byte, bitWidth int) error {
	summary, err := summarize(data, bitWidth)
	if err != nil {
		return err
	}
	return json.NewEncoder(w).Encode(summary)
}

func inspectTable(w io.Writer, data []byte, bitWidth int) error {
	summary, err := summarize(data, bitWidth)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"GROUP", "OFFSET", "BYTES", "VALUES"})

	for g := 0; g < summary.NumGroups; g++ {
		offset := g * summary.GroupBytes
		group := data[offset:]
		if len(group) > summary.GroupBytes {
			group = group[:summary.GroupBytes]
		}

		count := (8 * len(group)) / bitWidth
		values, err := bitpacking.UnpackAll(nil, group, bitWidth, count)
		if err != nil {
			return err
		}

		table.Append([]string{
			strconv.Itoa(g),
			strconv.Itoa(offset),
			hexBytes(group),
			decimalValues(values),
		})
	}

	table.Render()
	return nil
}

func hexBytes(b []byte) string {
	s := make([]string, len(b))
	for i := range b {
		s[i] = fmt.Sprintf("%02x", b[i])
	}
	return strings.Join(s, " ")
}

func decimalValues(v []uint8) string {
	s := make([]string, len(v))
	for i := range v {
		s[i] = strconv.Itoa(int(v[i]))
	}
	return strings.Join(s, " ")
}
