package alloc

import (
	"wfs/pkg/math"
	. "wfs/pkg/types"
)

const (
	// BitsPerWord is the bitmap's packing granularity. On disk a bitmap is a
	// dense array of little-endian 32-bit words.
	BitsPerWord = 32

	// WordSize is the serialized size of one bitmap word.
	WordSize Byte = 4
)

// Bitmap tracks allocation state one bit per entity, packed into 32-bit
// words. Bit `i` lives in word `i/32` at position `i%32`, LSB first, which
// is the order the on-disk bitmap regions use.
type Bitmap struct {
	words []uint32
}

func New(bits uint64) Bitmap {
	return Bitmap{make([]uint32, math.DivRoundUp(bits, BitsPerWord))}
}

// FromWords wraps an existing word slice, e.g. one decoded from a disk's
// bitmap region. The bitmap shares the slice, so mutations are visible to
// the caller.
func FromWords(words []uint32) Bitmap { return Bitmap{words} }

func (bm Bitmap) Alloc() (uint64, bool) {
	i, bit, ok := wordsFirstZero(bm.words)
	if !ok {
		return 0, false
	}
	bm.words[i] = wordSetHigh(bm.words[i], bit)
	return uint64(i)*BitsPerWord + uint64(bit), true
}

func (bm Bitmap) Free(value uint64) {
	w := &bm.words[value/BitsPerWord]
	*w = wordSetLow(*w, uint8(value%BitsPerWord))
}

func (bm Bitmap) Reserve(value uint64) {
	w := &bm.words[value/BitsPerWord]
	*w = wordSetHigh(*w, uint8(value%BitsPerWord))
}

func (bm Bitmap) Test(value uint64) bool {
	return !wordIsZero(bm.words[value/BitsPerWord], uint8(value%BitsPerWord))
}

func (bm Bitmap) Words() []uint32 { return bm.words }

// Size is the serialized length of the bitmap in bytes.
func (bm Bitmap) Size() Byte { return Byte(len(bm.words)) * WordSize }

func wordsFirstZero(words []uint32) (int, uint8, bool) {
	for i, word := range words {
		if bit := wordFirstZero(word); bit != 0xFF {
			return i, bit, true
		}
	}
	return 0, 0, false
}

func wordIsZero(word uint32, bit uint8) bool {
	return word&(1<<bit) == 0
}

func wordSetHigh(word uint32, bit uint8) uint32 {
	return word | (1 << bit)
}

func wordSetLow(word uint32, bit uint8) uint32 {
	return word & ^(uint32(1) << bit)
}

func wordFirstZero(word uint32) uint8 {
	for bit := uint8(0); bit < BitsPerWord; bit++ {
		if wordIsZero(word, bit) {
			return bit
		}
	}
	return 0xFF
}
