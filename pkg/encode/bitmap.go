package encode

import (
	. "wfs/pkg/types"
)

// EncodeBitmapWords serializes a bitmap's 32-bit words little-endian into b,
// which must hold at least 4 bytes per word.
func EncodeBitmapWords(b []byte, words []uint32) {
	for i, word := range words {
		putU32(b, Byte(i)*4, word)
	}
}

// DecodeBitmapWords fills words from the serialized bitmap region in b.
func DecodeBitmapWords(words []uint32, b []byte) {
	for i := range words {
		words[i] = getU32(b, Byte(i)*4)
	}
}
