// Package bitpacking implements a streaming codec which writes sequences of
// small unsigned integers to a byte stream using a fixed number of bits per
// value, and reads them back losslessly.
//
// The codec is intended for columnar encoding pipelines where small-range
// integers (repetition levels, dictionary indexes, run lengths) must be
// stored with minimal overhead. It is a pure transform: the stream carries
// no header or width marker, the bit width used for packing must be carried
// out-of-band and supplied again for unpacking.
//
// Values are packed most-significant-bit first: the first value written
// occupies the high bits of the first byte of the stream. Values are
// grouped on byte boundaries; for a bit width w, a group holds 8/gcd(w,8)
// values spanning w*groupSize/8 bytes. Closing a Packer pads the trailing
// partial group with zero bits.
package bitpacking

import (
	"errors"
	"fmt"
	"io"

	"github.com/segmentio/bitpacking-go/internal/bitpack"
	"github.com/segmentio/bitpacking-go/internal/bits"
)

// MaxBitWidth is the largest bit width supported by the codec. Wider values
// must be composed by the caller from multiple byte-wide passes.
const MaxBitWidth = 8

var (
	// ErrUnsupportedWidth is an error returned when constructing a Packer
	// or Unpacker with a bit width outside of the [0,8] range.
	//
	// This error may be wrapped with context about the requested width,
	// applications must use errors.Is rather than equality comparisons to
	// test the error values returned by the constructors.
	ErrUnsupportedWidth = errors.New("bit width outside of the supported range")

	// ErrClosed is an error returned when packing values to a Packer that
	// has already been closed.
	ErrClosed = errors.New("packer already closed")
)

func errUnsupportedWidth(bitWidth int) error {
	return fmt.Errorf("bit width %d: %w", bitWidth, ErrUnsupportedWidth)
}

func checkBitWidth(bitWidth int) error {
	if bitWidth < 0 || bitWidth > MaxBitWidth {
		return errUnsupportedWidth(bitWidth)
	}
	return nil
}

// BitWidthOf returns the number of bits needed to pack values no greater
// than maxValue; it is zero when maxValue is zero.
func BitWidthOf(maxValue uint8) int {
	return bits.Len8(maxValue)
}

// PackAll appends to dst the packed representation of all values of src at
// the given bit width and returns the extended slice. The output is what a
// Packer produces for the same sequence after being closed: the trailing
// partial group, if any, is zero-padded to the next byte boundary, for a
// total of ceil(len(src)*bitWidth/8) bytes.
//
// Only the low bitWidth bits of each value are retained.
func PackAll(dst []byte, src []uint8, bitWidth int) ([]byte, error) {
	if err := checkBitWidth(bitWidth); err != nil {
		return dst, err
	}
	i := len(dst)
	n := bits.ByteCount(uint(len(src)) * uint(bitWidth))
	dst = append(dst, make([]byte, n)...)
	bitpack.Pack(dst[i:], src, uint(bitWidth))
	return dst, nil
}

// UnpackAll appends to dst the first count values unpacked from src at the
// given bit width and returns the extended slice.
//
// The function errors with io.ErrUnexpectedEOF when src is too short to
// hold count values.
func UnpackAll(dst []uint8, src []byte, bitWidth, count int) ([]uint8, error) {
	if err := checkBitWidth(bitWidth); err != nil {
		return dst, err
	}
	if count < 0 {
		return dst, fmt.Errorf("cannot unpack %d values", count)
	}
	if bits.ByteCount(uint(count)*uint(bitWidth)) > len(src) {
		return dst, fmt.Errorf("cannot unpack %d values of bit width %d from %d bytes: %w",
			count, bitWidth, len(src), io.ErrUnexpectedEOF)
	}
	i := len(dst)
	dst = append(dst, make([]uint8, count)...)
	bitpack.Unpack(dst[i:], src, uint(bitWidth))
	return dst, nil
}
