// This program exposes the bit-packing codec as a command line tool: it
// packs streams of decimal values into their bit-packed representation,
// unpacks them back, and prints the group layout of packed streams.
//
// The packed format carries no width marker, so every command requires the
// bit width to be passed explicitly.
package main

import (
	"fmt"
	"os"
	"strings"

	color "github.com/logrusorgru/aurora/v3"
	"github.com/segmentio/cli"

	"github.com/segmentio/bitpacking-go/internal/debug"
)

func main() {
	cli.Exec(cli.CommandSet{
		"pack":    cli.Command(packCommand),
		"unpack":  cli.Command(unpackCommand),
		"inspect": cli.Command(inspectCommand),
	})
}

func perrorf(format string, args ...interface{}) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, color.Red(format).String(), args...)
}

func pdebugf(format string, args ...interface{}) {
	debug.Format(color.Gray(12, format).String(), args...)
}

func openInput(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdin, nil
	}
	return os.Open(path)
}

func openOutput(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdout, nil
	}
	return os.Create(path)
}
