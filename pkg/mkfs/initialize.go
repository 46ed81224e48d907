package mkfs

import (
	"fmt"

	"wfs/pkg/alloc"
	"wfs/pkg/encode"
	"wfs/pkg/io"
	. "wfs/pkg/types"
)

func writeSuperblock(v io.Volume, super *Superblock) error {
	var buf [SuperblockSize]byte
	encode.EncodeSuperblock(super, &buf)
	if err := v.WriteAt(0, buf[:]); err != nil {
		return fmt.Errorf("writing superblock: %w", err)
	}
	return nil
}

// writeBitmap installs an all-free bitmap tracking `bits` entities: the full
// region is built in memory and committed with a single write.
func writeBitmap(v io.Volume, offset Byte, bits uint64) error {
	bitmap := alloc.New(bits)
	buf := make([]byte, bitmap.Size())
	encode.EncodeBitmapWords(buf, bitmap.Words())
	if err := v.WriteAt(offset, buf); err != nil {
		return fmt.Errorf("writing bitmap at offset `%d`: %w", offset, err)
	}
	return nil
}

// writeInodeTable zeroes every slot in the table, one BlockSize write per
// inode. The whole slot is cleared, not just the record bytes.
func writeInodeTable(v io.Volume, layout *Layout) error {
	slot := make([]byte, BlockSize)
	for ino := Ino(0); uint64(ino) < layout.InodeCount; ino++ {
		if err := v.WriteAt(layout.InodeOffset(ino), slot); err != nil {
			return fmt.Errorf("zeroing inode table slot `%d`: %w", ino, err)
		}
	}
	return nil
}
