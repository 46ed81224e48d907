package encode

import (
	"bytes"
	"testing"
)

func TestBitmapWordsLayout(t *testing.T) {
	// bit 0 must land in the lowest bit of the first byte on disk.
	buf := make([]byte, 8)
	EncodeBitmapWords(buf, []uint32{1, 0x80000000})

	wanted := []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80}
	if !bytes.Equal(buf, wanted) {
		t.Fatalf("EncodeBitmapWords(): wanted `%x`; found `%x`", wanted, buf)
	}

	found := make([]uint32, 2)
	DecodeBitmapWords(found, buf)
	if found[0] != 1 || found[1] != 0x80000000 {
		t.Fatalf(
			"DecodeBitmapWords(): wanted `[1 0x80000000]`; found `%#x`",
			found,
		)
	}
}
