package encode

import (
	"fmt"

	. "wfs/pkg/types"
)

func EncodeSuperblock(super *Superblock, b *[SuperblockSize]byte) {
	p := b[:]

	putU64(p, superMagicStart, SuperblockMagic)
	putU64(p, superVersionStart, SuperblockVersion)
	putU64(p, superBlockSizeStart, uint64(BlockSize))
	putU64(p, superRaidModeStart, uint64(super.RaidMode))
	putU64(p, superDiskCountStart, super.DiskCount)
	putU64(p, superInodeCountStart, super.InodeCount)
	putU64(p, superDataBlockCountStart, super.DataBlockCount)
	putBytePointer(p, superInodeBitmapStart, super.InodeBitmapOffset)
	putBytePointer(p, superDataBitmapStart, super.DataBitmapOffset)
	putBytePointer(p, superInodeTableStart, super.InodeTableOffset)
	putBytePointer(p, superDataRegionStart, super.DataRegionOffset)
	putI64(p, superCreatedAtStart, super.CreatedAt)
	copy(p[superFilesystemIDStart:superFilesystemIDEnd], super.FilesystemID[:])
}

func DecodeSuperblock(super *Superblock, b *[SuperblockSize]byte) error {
	p := b[:]

	// validate the fixed fields before mutating the `super` pointee; we
	// strongly prefer to avoid touching the caller's struct until we're sure
	// that no errors will be returned.
	if magic := getU64(p, superMagicStart); magic != SuperblockMagic {
		return fmt.Errorf(
			"decoding superblock: magic `%#x`: %w",
			magic,
			InvalidMagicErr,
		)
	}
	if version := getU64(p, superVersionStart); version != SuperblockVersion {
		return fmt.Errorf(
			"decoding superblock: version `%d`: %w",
			version,
			UnsupportedVersionErr,
		)
	}
	if blockSize := getU64(p, superBlockSizeStart); blockSize != uint64(BlockSize) {
		return fmt.Errorf(
			"decoding superblock: block size `%d`: %w",
			blockSize,
			InvalidBlockSizeErr,
		)
	}
	raidMode := RaidMode(getU64(p, superRaidModeStart))
	if err := raidMode.Validate(); err != nil {
		return fmt.Errorf("decoding superblock: %w", err)
	}

	super.RaidMode = raidMode
	super.DiskCount = getU64(p, superDiskCountStart)
	super.InodeCount = getU64(p, superInodeCountStart)
	super.DataBlockCount = getU64(p, superDataBlockCountStart)
	super.InodeBitmapOffset = getBytePointer(p, superInodeBitmapStart)
	super.DataBitmapOffset = getBytePointer(p, superDataBitmapStart)
	super.InodeTableOffset = getBytePointer(p, superInodeTableStart)
	super.DataRegionOffset = getBytePointer(p, superDataRegionStart)
	super.CreatedAt = getI64(p, superCreatedAtStart)
	copy(super.FilesystemID[:], p[superFilesystemIDStart:superFilesystemIDEnd])

	return nil
}

const (
	superMagicStart = 0
	superMagicSize  = 8
	superMagicEnd   = superMagicStart + superMagicSize

	superVersionStart = superMagicEnd
	superVersionSize  = 8
	superVersionEnd   = superVersionStart + superVersionSize

	superBlockSizeStart = superVersionEnd
	superBlockSizeSize  = 8
	superBlockSizeEnd   = superBlockSizeStart + superBlockSizeSize

	superRaidModeStart = superBlockSizeEnd
	superRaidModeSize  = 8
	superRaidModeEnd   = superRaidModeStart + superRaidModeSize

	superDiskCountStart = superRaidModeEnd
	superDiskCountSize  = 8
	superDiskCountEnd   = superDiskCountStart + superDiskCountSize

	superInodeCountStart = superDiskCountEnd
	superInodeCountSize  = 8
	superInodeCountEnd   = superInodeCountStart + superInodeCountSize

	superDataBlockCountStart = superInodeCountEnd
	superDataBlockCountSize  = 8
	superDataBlockCountEnd   = superDataBlockCountStart + superDataBlockCountSize

	superInodeBitmapStart = superDataBlockCountEnd
	superInodeBitmapSize  = BytePointerSize
	superInodeBitmapEnd   = superInodeBitmapStart + superInodeBitmapSize

	superDataBitmapStart = superInodeBitmapEnd
	superDataBitmapSize  = BytePointerSize
	superDataBitmapEnd   = superDataBitmapStart + superDataBitmapSize

	superInodeTableStart = superDataBitmapEnd
	superInodeTableSize  = BytePointerSize
	superInodeTableEnd   = superInodeTableStart + superInodeTableSize

	superDataRegionStart = superInodeTableEnd
	superDataRegionSize  = BytePointerSize
	superDataRegionEnd   = superDataRegionStart + superDataRegionSize

	superCreatedAtStart = superDataRegionEnd
	superCreatedAtSize  = 8
	superCreatedAtEnd   = superCreatedAtStart + superCreatedAtSize

	superFilesystemIDStart = superCreatedAtEnd
	superFilesystemIDSize  = 16
	superFilesystemIDEnd   = superFilesystemIDStart + superFilesystemIDSize
)
