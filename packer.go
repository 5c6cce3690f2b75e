package bitpacking

import (
	"io"

	"github.com/segmentio/bitpacking-go/internal/bits"
	"github.com/segmentio/bitpacking-go/internal/ioext"
)

// Packer writes a sequence of values to an io.Writer, packing each value on
// bitWidth bits.
//
// The zero bit width packs every value to nothing, and the 8 bit width
// degenerates to a plain byte copy; both flow through the same group
// accumulation as the other widths, with group sizes of 0 and 1.
//
// Packers are not safe to use concurrently from multiple goroutines.
type Packer struct {
	writer     ioext.OffsetTrackingWriter
	bitWidth   uint
	groupSize  uint
	groupBytes uint
	mask       uint8
	buffer     uint64
	count      uint
	scratch    [8]byte
	closed     bool
}

// NewPacker constructs a Packer writing values of the given bit width to w.
//
// The bit width must be in the range [0,8] or the function errors with
// ErrUnsupportedWidth.
func NewPacker(w io.Writer, bitWidth int) (*Packer, error) {
	if err := checkBitWidth(bitWidth); err != nil {
		return nil, err
	}
	p := &Packer{
		bitWidth:   uint(bitWidth),
		groupSize:  bits.GroupSize(uint(bitWidth)),
		groupBytes: bits.GroupBytes(uint(bitWidth)),
		mask:       uint8((1 << bitWidth) - 1),
	}
	p.writer.Reset(w)
	return p, nil
}

// BitWidth returns the bit width that values are packed on.
func (p *Packer) BitWidth() int { return int(p.bitWidth) }

// NumBytes returns the number of bytes flushed to the underlying writer so
// far. After Close it equals ceil(n*bitWidth/8) for n packed values;
// mid-stream it is an exact multiple of the group byte span.
func (p *Packer) NumBytes() int64 { return p.writer.Offset() }

// Pack appends value to the stream. Only the low bitWidth bits of the
// value are packed, upper bits are silently discarded.
//
// The value is buffered until it completes a byte-aligned group, at which
// point the group is flushed to the underlying writer; errors returned by
// the writer abort the pass and leave the accumulated state undefined.
//
// Pack errors with ErrClosed after Close was called.
func (p *Packer) Pack(value uint8) error {
	if p.closed {
		return ErrClosed
	}
	if p.bitWidth == 0 {
		return nil
	}
	p.buffer = (p.buffer << p.bitWidth) | uint64(value&p.mask)
	p.count++
	if p.count == p.groupSize {
		return p.flush(p.groupBytes)
	}
	return nil
}

// flush splits the accumulator into its constituent bytes, most significant
// byte first, and writes the first numBytes of them out.
func (p *Packer) flush(numBytes uint) error {
	shift := 8 * p.groupBytes
	for i := uint(0); i < numBytes; i++ {
		shift -= 8
		p.scratch[i] = byte(p.buffer >> shift)
	}
	p.buffer = 0
	p.count = 0
	_, err := p.writer.Write(p.scratch[:numBytes])
	return err
}

// Close completes the stream: a partial trailing group is padded with zero
// bits up to the next byte boundary and flushed, so a stream of n values
// always spans ceil(n*bitWidth/8) bytes. The Packer transitions to a
// terminal state where further calls to Pack fail with ErrClosed; Close
// itself is idempotent and does not close the underlying writer.
func (p *Packer) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if p.count > 0 {
		// Pad the group with zero bits, then emit only the bytes that
		// carry value bits.
		numBytes := uint(bits.ByteCount(p.count * p.bitWidth))
		p.buffer <<= p.bitWidth * (p.groupSize - p.count)
		return p.flush(numBytes)
	}
	return nil
}
