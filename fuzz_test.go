//go:build go1.18
// +build go1.18

package bitpacking_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/segmentio/bitpacking-go"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte{}, 1)
	f.Add([]byte{5, 3, 2, 7, 0, 1, 6, 4}, 3)
	f.Add([]byte{1, 2, 3, 4, 5, 6, 7, 8}, 5)
	f.Add([]byte("bit packing"), 8)

	f.Fuzz(func(t *testing.T, values []byte, bitWidth int) {
		if bitWidth < 0 || bitWidth > bitpacking.MaxBitWidth {
			t.Skip()
		}
		mask := uint8((1 << bitWidth) - 1)

		buf := new(bytes.Buffer)
		p, err := bitpacking.NewPacker(buf, bitWidth)
		if err != nil {
			t.Fatal(err)
		}
		for _, v := range values {
			if err := p.Pack(v); err != nil {
				t.Fatal("packing:", err)
			}
		}
		if err := p.Close(); err != nil {
			t.Fatal("closing:", err)
		}

		if want := (len(values)*bitWidth + 7) / 8; buf.Len() != want {
			t.Fatalf("wrong number of bytes emitted for %d values: want=%d got=%d", len(values), want, buf.Len())
		}

		u, err := bitpacking.NewUnpacker(buf, bitWidth)
		if err != nil {
			t.Fatal(err)
		}
		for i, v := range values {
			x, err := u.Unpack()
			if err != nil {
				t.Fatalf("unpacking value %d/%d: %v", i, len(values), err)
			}
			if x != v&mask {
				t.Fatalf("wrong value at index %d/%d: want=%d got=%d", i, len(values), v&mask, x)
			}
		}
		// Whatever remains of the stream is zero padding.
		if bitWidth > 0 {
			for {
				v, err := u.Unpack()
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatal("unpacking padding:", err)
				}
				if v != 0 {
					t.Fatalf("wrong padding value unpacked: want=0 got=%d", v)
				}
			}
		}
	})
}
