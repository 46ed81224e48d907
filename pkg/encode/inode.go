package encode

import (
	. "wfs/pkg/types"
)

// EncodeInode serializes one inode record. The record occupies the first
// InodeRecordSize bytes of the inode's BlockSize table slot; the slot's
// remaining bytes are zero and are not the codec's concern.
func EncodeInode(inode *Inode, b *[InodeRecordSize]byte) {
	p := b[:]

	putIno(p, inodeNumStart, inode.Num)
	putU32(p, inodeModeStart, uint32(inode.Mode))
	putU32(p, inodeUIDStart, inode.UID)
	putU32(p, inodeGIDStart, inode.GID)
	putU32(p, inodeNlinksStart, inode.Nlinks)
	putBytePointer(p, inodeSizeStart, inode.Size)
	putI64(p, inodeAtimeStart, inode.Atime)
	putI64(p, inodeMtimeStart, inode.Mtime)
	putI64(p, inodeCtimeStart, inode.Ctime)

	for i := Byte(0); i < Byte(BlockPointerCount); i++ {
		putBlock(p, inodeBlocksStart+i*BlockPointerSize, inode.Blocks[i])
	}
}

// DecodeInode deserializes one inode record. Any record bytes decode
// cleanly; an all-zero record yields a free inode.
func DecodeInode(inode *Inode, b *[InodeRecordSize]byte) {
	p := b[:]

	inode.Num = getIno(p, inodeNumStart)
	inode.Mode = Mode(getU32(p, inodeModeStart))
	inode.UID = getU32(p, inodeUIDStart)
	inode.GID = getU32(p, inodeGIDStart)
	inode.Nlinks = getU32(p, inodeNlinksStart)
	inode.Size = getBytePointer(p, inodeSizeStart)
	inode.Atime = getI64(p, inodeAtimeStart)
	inode.Mtime = getI64(p, inodeMtimeStart)
	inode.Ctime = getI64(p, inodeCtimeStart)

	for i := Byte(0); i < Byte(BlockPointerCount); i++ {
		inode.Blocks[i] = getBlock(p, inodeBlocksStart+i*BlockPointerSize)
	}
}

const (
	inodeNumStart = 0
	inodeNumSize  = 8
	inodeNumEnd   = inodeNumStart + inodeNumSize

	inodeModeStart = inodeNumEnd
	inodeModeSize  = 4
	inodeModeEnd   = inodeModeStart + inodeModeSize

	inodeUIDStart = inodeModeEnd
	inodeUIDSize  = 4
	inodeUIDEnd   = inodeUIDStart + inodeUIDSize

	inodeGIDStart = inodeUIDEnd
	inodeGIDSize  = 4
	inodeGIDEnd   = inodeGIDStart + inodeGIDSize

	inodeNlinksStart = inodeGIDEnd
	inodeNlinksSize  = 4
	inodeNlinksEnd   = inodeNlinksStart + inodeNlinksSize

	inodeSizeStart = inodeNlinksEnd
	inodeSizeSize  = BytePointerSize
	inodeSizeEnd   = inodeSizeStart + inodeSizeSize

	inodeAtimeStart = inodeSizeEnd
	inodeAtimeSize  = 8
	inodeAtimeEnd   = inodeAtimeStart + inodeAtimeSize

	inodeMtimeStart = inodeAtimeEnd
	inodeMtimeSize  = 8
	inodeMtimeEnd   = inodeMtimeStart + inodeMtimeSize

	inodeCtimeStart = inodeMtimeEnd
	inodeCtimeSize  = 8
	inodeCtimeEnd   = inodeCtimeStart + inodeCtimeSize

	inodeBlocksStart = inodeCtimeEnd
	inodeBlocksSize  = Byte(BlockPointerCount) * BlockPointerSize
	inodeBlocksEnd   = inodeBlocksStart + inodeBlocksSize
)
