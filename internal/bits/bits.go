// Package bits implements the arithmetic shared by the bit-packing codec:
// bit/byte count conversions and the group geometry of each bit width.
package bits

import (
	"math/bits"
)

func BitCount(count int) uint {
	return 8 * uint(count)
}

func ByteCount(count uint) int {
	return int((count + 7) / 8)
}

func Len8(i uint8) int {
	return bits.Len8(i)
}

// GroupSize returns the number of values forming a byte-aligned group for
// the given bit width: the smallest count of values whose combined bit
// length is a multiple of 8. The group size of the zero bit width is zero
// since zero-bit values occupy no space at all.
func GroupSize(bitWidth uint) uint {
	if bitWidth == 0 {
		return 0
	}
	return 8 / gcd(bitWidth, 8)
}

// GroupBytes returns the number of bytes spanned by one full group of
// values of the given bit width.
func GroupBytes(bitWidth uint) uint {
	return (bitWidth * GroupSize(bitWidth)) / 8
}

func gcd(a, b uint) uint {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
