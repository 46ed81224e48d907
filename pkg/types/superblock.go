package types

import (
	"github.com/google/uuid"
)

const (
	SuperblockMagic   uint64 = 0x7766735f6469736b // ascii "wfs_disk"
	SuperblockVersion uint64 = 1

	// SuperblockSize is the number of encoded superblock bytes. The inode
	// bitmap begins at exactly this offset, with no padding between.
	SuperblockSize Byte = 112
)

const (
	InvalidMagicErr       ConstError = "invalid superblock magic"
	UnsupportedVersionErr ConstError = "unsupported format version"
	InvalidBlockSizeErr   ConstError = "invalid block size"
)

// Superblock describes the layout of one disk image. Every disk in a set
// carries a byte-identical superblock. The fixed fields (magic, version,
// block size) are validated on decode rather than stored.
type Superblock struct {
	RaidMode          RaidMode  `json:"raidMode"`
	DiskCount         uint64    `json:"diskCount"`
	InodeCount        uint64    `json:"inodeCount"`
	DataBlockCount    uint64    `json:"dataBlockCount"`
	InodeBitmapOffset Byte      `json:"inodeBitmapOffset"`
	DataBitmapOffset  Byte      `json:"dataBitmapOffset"`
	InodeTableOffset  Byte      `json:"inodeTableOffset"`
	DataRegionOffset  Byte      `json:"dataRegionOffset"`
	CreatedAt         int64     `json:"createdAt"`
	FilesystemID      uuid.UUID `json:"filesystemID"`
}
