// Package bitpack implements bit packing and unpacking of small unsigned
// integers over byte slices.
//
// Values are laid out most-significant-bit first: the first value of a
// buffer occupies the high bits of its first byte, and each value follows
// the previous one with no padding in between. This is the layout produced
// by the streaming Packer of the parent package, which the functions of
// this package mirror in batch form.
package bitpack

import (
	"github.com/segmentio/bitpacking-go/internal/bits"
)

// Pack packs values of the given bit width from src to dst, returning the
// number of values that were packed.
//
// Only the low bitWidth bits of each source value are retained, upper bits
// are discarded. The bytes covered by the packed values are fully
// overwritten; if the last value does not end on a byte boundary, the
// remaining low bits of the last byte are set to zero.
//
// The bit width must be in the range [0,8]; with a bit width of zero every
// source value packs to nothing and the function simply returns len(src).
func Pack(dst []byte, src []uint8, bitWidth uint) int {
	if bitWidth == 0 {
		return len(src)
	}
	if bitWidth == 8 {
		return copy(dst, src)
	}

	wordCount := bits.BitCount(len(dst)) / bitWidth
	if n := uint(len(src)); wordCount > n {
		wordCount = n
	}
	if wordCount == 0 {
		return 0
	}
	dst = dst[:bits.ByteCount(wordCount*bitWidth)]

	for i := range dst {
		dst[i] = 0
	}

	di := uint(0)
	for _, v := range src[:wordCount] {
		store(dst, di, bitWidth, v)
		di += bitWidth
	}

	return int(wordCount)
}

// Unpack unpacks values of the given bit width from src to dst, returning
// the number of values that were unpacked.
//
// The bit width must be in the range [0,8]; with a bit width of zero the
// destination is filled with zeros since zero-bit values carry no
// information.
func Unpack(dst []uint8, src []byte, bitWidth uint) int {
	if bitWidth == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return len(dst)
	}
	if bitWidth == 8 {
		return copy(dst, src)
	}

	wordCount := bits.BitCount(len(src)) / bitWidth
	if n := uint(len(dst)); wordCount > n {
		wordCount = n
	}

	si := uint(0)
	for i := uint(0); i < wordCount; i++ {
		dst[i] = load(src, si, bitWidth)
		si += bitWidth
	}

	return int(wordCount)
}

// load reads count bits of src starting at the given bit index, counting
// bit indexes from the most significant bit of src[0] down. The window may
// span two bytes but never more since count is at most 8.
func load(src []byte, bitIndex, count uint) byte {
	i, j := bitIndex/8, bitIndex%8
	v := uint16(src[i]) << 8

	if (j + count) > 8 {
		v |= uint16(src[i+1])
	}

	return byte(v>>(16-j-count)) & byte((1<<count)-1)
}

// store writes the low count bits of value to dst starting at the given
// bit index, in the same most-significant-bit-first order read by load.
// The destination bits must be zero prior to the call.
func store(dst []byte, bitIndex, count uint, value byte) {
	i, j := bitIndex/8, bitIndex%8
	v := uint16(value&byte((1<<count)-1)) << (16 - j - count)
	dst[i] |= byte(v >> 8)

	if (j + count) > 8 {
		dst[i+1] |= byte(v)
	}
}
