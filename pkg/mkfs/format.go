package mkfs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"wfs/pkg/io"
	. "wfs/pkg/types"
)

const TooFewDisksErr ConstError = "at least two disks required"

// Formatter formats a set of disk images as one filesystem, writing
// identical metadata to every member. Populate the counts and RaidMode; Now,
// NewID and Logger fall back to time.Now, uuid.New and slog.Default when
// unset. Fixing Now and NewID makes a format byte-reproducible.
type Formatter struct {
	Inodes   uint64
	Blocks   uint64
	RaidMode RaidMode
	UID      uint32
	GID      uint32

	Now    func() time.Time
	NewID  func() uuid.UUID
	Logger *slog.Logger
}

// Format lays out and writes every disk in the set. The raid mode, the
// counts and every disk are validated against the layout before the first
// write reaches any of them; a failure after writing has begun leaves earlier
// members formatted.
func (f *Formatter) Format(disks []io.Disk) error {
	if err := f.RaidMode.Validate(); err != nil {
		return err
	}
	if len(disks) < 2 {
		return fmt.Errorf(
			"formatting `%d` disks: %w",
			len(disks),
			TooFewDisksErr,
		)
	}
	if err := CheckCounts(f.Inodes, f.Blocks); err != nil {
		return err
	}

	layout := ComputeLayout(f.Inodes, f.Blocks)
	logger := f.logger()
	logger.Debug(
		"computed layout",
		"inodes", layout.InodeCount,
		"dataBlocks", layout.DataBlockCount,
		"inodeTableOffset", layout.InodeTableOffset(),
		"dataRegionOffset", layout.DataRegionOffset(),
		"minDiskSize", layout.MinDiskSize(),
	)

	for i, disk := range disks {
		size, err := disk.Size()
		if err != nil {
			return fmt.Errorf("sizing disk `%d`: %w", i, err)
		}
		if err := layout.Check(size); err != nil {
			return fmt.Errorf("checking disk `%d`: %w", i, err)
		}
	}

	super := layout.Superblock(
		f.RaidMode,
		uint64(len(disks)),
		f.now(),
		f.newID(),
	)
	logger.Debug(
		"staged superblock",
		"raid", super.RaidMode,
		"disks", super.DiskCount,
		"filesystemID", super.FilesystemID,
	)

	for i, disk := range disks {
		if err := f.formatDisk(disk, &layout, &super); err != nil {
			return fmt.Errorf("formatting disk `%d`: %w", i, err)
		}
		logger.Debug("initialized disk", "disk", i)
	}

	root := newRootInode(f.UID, f.GID, super.CreatedAt)
	if err := writeRootInode(disks, &layout, &root); err != nil {
		return err
	}
	logger.Debug("installed root inode", "ino", uint64(root.Num))

	return nil
}

func (f *Formatter) formatDisk(
	disk io.Disk,
	layout *Layout,
	super *Superblock,
) error {
	if err := writeSuperblock(disk, super); err != nil {
		return err
	}
	if err := writeBitmap(
		disk,
		layout.InodeBitmapOffset(),
		layout.InodeCount,
	); err != nil {
		return fmt.Errorf("inode bitmap: %w", err)
	}
	if err := writeBitmap(
		disk,
		layout.DataBitmapOffset(),
		layout.DataBlockCount,
	); err != nil {
		return fmt.Errorf("data bitmap: %w", err)
	}
	return writeInodeTable(disk, layout)
}

func (f *Formatter) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

func (f *Formatter) newID() uuid.UUID {
	if f.NewID != nil {
		return f.NewID()
	}
	return uuid.New()
}

func (f *Formatter) logger() *slog.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return slog.Default()
}
