package types

const (
	// BlockPointerCount is the length of an inode's block pointer array:
	// slots 0 through 5 are direct pointers, slot 6 is the singly indirect
	// pointer.
	BlockPointerCount = 7

	IndirectBlockSlot = BlockPointerCount - 1

	// InodeRecordSize is the number of encoded bytes in an inode record.
	// Each record owns a full BlockSize slot in the inode table; the
	// remainder of the slot is zero.
	InodeRecordSize Byte = 112
)

// Mode is a POSIX-style file mode: type bits under ModeTypeMask plus
// permission bits below them.
type Mode uint32

const (
	ModeTypeMask Mode = 0o170000

	ModeDir Mode = 0o040000
)

func (m Mode) IsDir() bool { return m&ModeTypeMask == ModeDir }

// Inode is one on-disk inode record. The zero value is a well-formed free
// slot.
type Inode struct {
	Num    Ino                      `json:"num"`
	Mode   Mode                     `json:"mode"`
	UID    uint32                   `json:"uid"`
	GID    uint32                   `json:"gid"`
	Nlinks uint32                   `json:"nlinks"`
	Size   Byte                     `json:"size"`
	Atime  int64                    `json:"atime"`
	Mtime  int64                    `json:"mtime"`
	Ctime  int64                    `json:"ctime"`
	Blocks [BlockPointerCount]Block `json:"blocks"`
}

func (inode *Inode) IsFree() bool { return *inode == Inode{} }
