package bitpacking

import (
	"io"

	"github.com/segmentio/bitpacking-go/internal/bits"
)

// Unpacker reads back a sequence of values packed on bitWidth bits by a
// Packer, consuming the underlying io.Reader strictly sequentially, one
// byte-aligned group at a time.
//
// Unpackers are not safe to use concurrently from multiple goroutines.
type Unpacker struct {
	reader     io.Reader
	bitWidth   uint
	groupSize  uint
	groupBytes uint
	mask       uint8
	buffer     uint64
	remain     uint
	scratch    [8]byte
}

// NewUnpacker constructs an Unpacker reading values of the given bit width
// from r. The width is not recorded in the stream, it must be the width the
// stream was packed with.
//
// The bit width must be in the range [0,8] or the function errors with
// ErrUnsupportedWidth.
func NewUnpacker(r io.Reader, bitWidth int) (*Unpacker, error) {
	if err := checkBitWidth(bitWidth); err != nil {
		return nil, err
	}
	return &Unpacker{
		reader:     r,
		bitWidth:   uint(bitWidth),
		groupSize:  bits.GroupSize(uint(bitWidth)),
		groupBytes: bits.GroupBytes(uint(bitWidth)),
		mask:       uint8((1 << bitWidth) - 1),
	}, nil
}

// BitWidth returns the bit width that values are unpacked from.
func (u *Unpacker) BitWidth() int { return int(u.bitWidth) }

// Unpack returns the next value of the stream.
//
// When the buffered group is exhausted, up to one group of bytes is read
// from the underlying reader before extracting the value; a shorter read at
// the end of the stream yields the values of the zero-padded trailing group
// written by (*Packer).Close. Exhaustion of the reader is reported as
// io.EOF, which tells the end of the stream apart from a genuine I/O error;
// reader errors propagate as-is.
//
// With a bit width of zero, Unpack returns 0 without ever touching the
// reader.
func (u *Unpacker) Unpack() (uint8, error) {
	if u.bitWidth == 0 {
		return 0, nil
	}
	if u.remain == 0 {
		if err := u.refill(); err != nil {
			return 0, err
		}
	}
	u.remain--
	return uint8(u.buffer>>(u.remain*u.bitWidth)) & u.mask, nil
}

// refill reads up to one group from the source and assembles its bytes into
// the accumulator, most significant byte first. A short read at the end of
// the stream holds the trailing group: the whole values it contains are
// kept and the padding bits below them are discarded.
func (u *Unpacker) refill() error {
	n, err := io.ReadFull(u.reader, u.scratch[:u.groupBytes])
	if err != nil && !(n > 0 && err == io.ErrUnexpectedEOF) {
		return err
	}
	buffer := uint64(0)
	for _, b := range u.scratch[:n] {
		buffer = (buffer << 8) | uint64(b)
	}
	bitCount := 8 * uint(n)
	u.remain = bitCount / u.bitWidth
	u.buffer = buffer >> (bitCount - u.remain*u.bitWidth)
	return nil
}
