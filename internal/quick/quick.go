// Package quick contains a property-test driver for the codec packages.
package quick

import (
	"fmt"
	"math/rand"
)

// Check is inspired by the standard quick.Check package, but enhances the
// API and tests arrays of larger sizes than the maximum of 50 hardcoded in
// testing/quick. Inputs are byte arrays only, which is all the codec
// operates on; callers mask the generated values down to the bit width
// under test.
func Check(f func([]byte) bool) error {
	r := rand.New(rand.NewSource(0))

	for _, n := range [...]int{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
		10, 11, 12, 13, 14, 15, 16, 17, 18, 19,
		20, 21, 22, 23, 24, 25, 26, 27, 28, 29,
		30, 31, 32, 33, 34, 35, 36, 37, 38, 39,
		99, 100, 101,
		127, 128, 129,
		255, 256, 257,
		1000, 1023, 1024, 1025,
		2000, 2095, 2048, 2049,
		4000, 4095, 4096, 4097,
	} {
		for i := 0; i < 3; i++ {
			in := make([]byte, n)
			r.Read(in)
			if !f(in) {
				return fmt.Errorf("test #%d: failed on input of size %d: %#v\n", i+1, n, in)
			}
		}
	}
	return nil
}
