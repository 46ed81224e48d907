package mkfs

import (
	"fmt"

	"wfs/pkg/alloc"
	"wfs/pkg/encode"
	"wfs/pkg/io"
	. "wfs/pkg/types"
)

// newRootInode builds the root directory record: slot 0, an empty directory
// whose link count covers `.` and `..`.
func newRootInode(uid, gid uint32, now int64) Inode {
	return Inode{
		Num:    InoRoot,
		Mode:   ModeDir | 0o755,
		UID:    uid,
		GID:    gid,
		Nlinks: 2,
		Size:   0,
		Atime:  now,
		Mtime:  now,
		Ctime:  now,
	}
}

// writeRootInode encodes the record once and installs it in slot 0 on every
// disk, then marks inode bitmap bit 0 on every disk. Root metadata is
// mirrored identically regardless of RAID mode.
func writeRootInode(disks []io.Disk, layout *Layout, inode *Inode) error {
	var record [InodeRecordSize]byte
	encode.EncodeInode(inode, &record)

	for i, disk := range disks {
		if err := disk.WriteAt(
			layout.InodeOffset(inode.Num),
			record[:],
		); err != nil {
			return fmt.Errorf("installing root inode on disk `%d`: %w", i, err)
		}
		if err := reserveInodeBit(disk, layout, inode.Num); err != nil {
			return fmt.Errorf("reserving root inode on disk `%d`: %w", i, err)
		}
	}
	return nil
}

// reserveInodeBit sets the inode bitmap bit for `ino` with a read-modify-
// write of the containing 32-bit word.
func reserveInodeBit(v io.Volume, layout *Layout, ino Ino) error {
	wordOffset := layout.InodeBitmapOffset() +
		Byte(ino/alloc.BitsPerWord)*alloc.WordSize

	var buf [alloc.WordSize]byte
	if err := v.ReadAt(wordOffset, buf[:]); err != nil {
		return fmt.Errorf("reading inode bitmap word: %w", err)
	}

	words := make([]uint32, 1)
	encode.DecodeBitmapWords(words, buf[:])
	alloc.FromWords(words).Reserve(uint64(ino) % alloc.BitsPerWord)
	encode.EncodeBitmapWords(buf[:], words)

	if err := v.WriteAt(wordOffset, buf[:]); err != nil {
		return fmt.Errorf("writing inode bitmap word: %w", err)
	}
	return nil
}
