package types

// Byte is a byte offset or byte length within a disk image.
type Byte int64

type Block uint64

type Ino uint64

const (
	// BlockSize is the fixed unit of allocation. Inode slots and data
	// blocks are both addressed at this granularity.
	BlockSize Byte = 512

	// BlockPointerSize is the encoded size of a single block pointer.
	BlockPointerSize Byte = 8

	// BytePointerSize is the encoded size of a byte offset field.
	BytePointerSize Byte = 8

	BlockNil Block = 0

	// InoRoot is the root directory's inode number. Slot 0 always.
	InoRoot Ino = 0
)
