package mkfs

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"wfs/pkg/alloc"
	"wfs/pkg/math"
	. "wfs/pkg/types"
)

const (
	DiskTooSmallErr  ConstError = "disk too small for layout"
	ZeroCountErr     ConstError = "count must be positive"
	CountTooLargeErr ConstError = "count too large for layout"
)

// counts are rounded up so each bitmap fills whole 32-bit words.
const countAlignment = alloc.BitsPerWord

// countLimit caps a requested count so that every region offset, and
// MinDiskSize itself, stays within Byte. 2^48 slots of BlockSize each make a
// 2^57-byte region, well inside the int64 range.
const countLimit uint64 = 1 << 48

// Layout fixes where each on-disk region lives for a given pair of counts.
// Offsets are derived, not stored: two layouts with equal counts are
// interchangeable. The regions are contiguous in the order superblock, inode
// bitmap, data bitmap, inode table, data region, with the table and data
// region aligned to BlockSize.
type Layout struct {
	InodeCount     uint64
	DataBlockCount uint64
}

// CheckCounts rejects count pairs no layout can represent: zero counts and
// counts past countLimit. Layout arithmetic on unchecked counts can overflow
// Byte, so run this before ComputeLayout.
func CheckCounts(inodeCount, dataBlockCount uint64) error {
	if inodeCount == 0 {
		return fmt.Errorf("checking counts: inodes: %w", ZeroCountErr)
	}
	if dataBlockCount == 0 {
		return fmt.Errorf("checking counts: blocks: %w", ZeroCountErr)
	}
	if inodeCount > countLimit {
		return fmt.Errorf(
			"checking counts: `%d` inodes: %w",
			inodeCount,
			CountTooLargeErr,
		)
	}
	if dataBlockCount > countLimit {
		return fmt.Errorf(
			"checking counts: `%d` blocks: %w",
			dataBlockCount,
			CountTooLargeErr,
		)
	}
	return nil
}

func ComputeLayout(inodeCount, dataBlockCount uint64) Layout {
	return Layout{
		InodeCount:     math.RoundUp(inodeCount, countAlignment),
		DataBlockCount: math.RoundUp(dataBlockCount, countAlignment),
	}
}

func (layout *Layout) InodeBitmapOffset() Byte {
	return SuperblockSize
}

func (layout *Layout) InodeBitmapSize() Byte {
	return BitmapSize(layout.InodeCount)
}

func (layout *Layout) DataBitmapOffset() Byte {
	return DataBitmapOffset(layout.InodeCount)
}

func DataBitmapOffset(inodeCount uint64) Byte {
	return SuperblockSize + BitmapSize(inodeCount)
}

func (layout *Layout) DataBitmapSize() Byte {
	return BitmapSize(layout.DataBlockCount)
}

func (layout *Layout) InodeTableOffset() Byte {
	return InodeTableOffset(layout.InodeCount, layout.DataBlockCount)
}

func InodeTableOffset(inodeCount, dataBlockCount uint64) Byte {
	return math.RoundUp(
		DataBitmapOffset(inodeCount)+BitmapSize(dataBlockCount),
		BlockSize,
	)
}

func (layout *Layout) InodeTableSize() Byte {
	return InodeTableSize(layout.InodeCount)
}

// InodeTableSize is the table's full footprint: every inode record owns a
// whole BlockSize slot.
func InodeTableSize(inodeCount uint64) Byte {
	return Byte(inodeCount) * BlockSize
}

func (layout *Layout) DataRegionOffset() Byte {
	return DataRegionOffset(layout.InodeCount, layout.DataBlockCount)
}

func DataRegionOffset(inodeCount, dataBlockCount uint64) Byte {
	return math.RoundUp(
		InodeTableOffset(inodeCount, dataBlockCount)+InodeTableSize(inodeCount),
		BlockSize,
	)
}

// BitmapSize is the serialized footprint of a bitmap tracking `count`
// entities: whole 32-bit words, 4 bytes each.
func BitmapSize(count uint64) Byte {
	return Byte(math.DivRoundUp(count, alloc.BitsPerWord)) * alloc.WordSize
}

func (layout *Layout) InodeOffset(ino Ino) Byte {
	return layout.InodeTableOffset() + Byte(ino)*BlockSize
}

func (layout *Layout) MinDiskSize() Byte {
	return layout.DataRegionOffset() + Byte(layout.DataBlockCount)*BlockSize
}

// Check reports whether a disk of `diskSize` bytes can hold the layout.
func (layout *Layout) Check(diskSize Byte) error {
	if minSize := layout.MinDiskSize(); minSize > diskSize {
		return fmt.Errorf(
			"layout needs `%d` bytes but disk holds `%d`: %w",
			minSize,
			diskSize,
			DiskTooSmallErr,
		)
	}
	return nil
}

// Superblock assembles the superblock every disk in the set will carry.
func (layout *Layout) Superblock(
	raidMode RaidMode,
	diskCount uint64,
	createdAt time.Time,
	filesystemID uuid.UUID,
) Superblock {
	return Superblock{
		RaidMode:          raidMode,
		DiskCount:         diskCount,
		InodeCount:        layout.InodeCount,
		DataBlockCount:    layout.DataBlockCount,
		InodeBitmapOffset: layout.InodeBitmapOffset(),
		DataBitmapOffset:  layout.DataBitmapOffset(),
		InodeTableOffset:  layout.InodeTableOffset(),
		DataRegionOffset:  layout.DataRegionOffset(),
		CreatedAt:         createdAt.Unix(),
		FilesystemID:      filesystemID,
	}
}
