package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
)

func TestPackStream(t *testing.T) {
	buf := new(bytes.Buffer)

	n, err := packStream(buf, strings.NewReader("5 3 2 7 0 1 6 4"), 3)
	assert.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, []byte{0xAD, 0x70, 0x74}, buf.Bytes())
}

func TestPackStreamRejectsWideValues(t *testing.T) {
	_, err := packStream(new(bytes.Buffer), strings.NewReader("1 2 9"), 3)
	assert.Error(t, err)
}

func TestUnpackStream(t *testing.T) {
	buf := new(bytes.Buffer)

	n, err := unpackStream(buf, bytes.NewReader([]byte{0xAD, 0x70, 0x74}), 3, -1)
	assert.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, "5\n3\n2\n7\n0\n1\n6\n4\n", buf.String())
}

func TestUnpackStreamCount(t *testing.T) {
	buf := new(bytes.Buffer)

	n, err := unpackStream(buf, bytes.NewReader([]byte{0xAD, 0x70, 0x74}), 3, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "5\n3\n2\n", buf.String())
}

func TestUnpackStreamExhausted(t *testing.T) {
	_, err := unpackStream(new(bytes.Buffer), bytes.NewReader([]byte{0xAD}), 3, 10)
	assert.Error(t, err)
}

func TestPackUnpackStreams(t *testing.T) {
	values := "0 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15"

	packed := new(bytes.Buffer)
	n, err := packStream(packed, strings.NewReader(values), 4)
	assert.NoError(t, err)
	assert.Equal(t, 16, n)
	assert.Equal(t, 8, packed.Len())

	unpacked := new(bytes.Buffer)
	n, err = unpackStream(unpacked, packed, 4, -1)
	assert.NoError(t, err)
	assert.Equal(t, 16, n)
	assert.Equal(t, strings.ReplaceAll(values, " ", "\n")+"\n", unpacked.String())
}

func TestInspectTable(t *testing.T) {
	buf := new(bytes.Buffer)
	err := inspectTable(buf, []byte{0xAD, 0x70, 0x74, 0xA0}, 3)
	assert.NoError(t, err)

	want := strings.Join([]string{
		"+-------+--------+----------+-----------------+",
		"| GROUP | OFFSET |  BYTES   |     VALUES      |",
		"+-------+--------+----------+-----------------+",
		"|     0 |      0 | ad 70 74 | 5 3 2 7 0 1 6 4 |",
		"|     1 |      3 | a0       | 5 0             |",
		"+-------+--------+----------+-----------------+",
		"",
	}, "\n")

	if buf.String() != want {
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A: difflib.SplitLines(want),
			B: difflib.SplitLines(buf.String()),
		})
		assert.NoError(t, err)
		t.Errorf("wrong table rendered:\n%s", diff)
	}
}

func TestInspectJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	err := inspectJSON(buf, []byte{0xAD, 0x70, 0x74}, 3)
	assert.NoError(t, err)

	want := `{"bitWidth":3,"groupSize":8,"groupBytes":3,"numBytes":3,"numGroups":1,"numValues":8,"padBits":0}` + "\n"
	assert.Equal(t, want, buf.String())
}
