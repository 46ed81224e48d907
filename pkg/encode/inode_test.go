package encode

import (
	"encoding/binary"
	"encoding/json"
	"testing"

	. "wfs/pkg/types"
)

func TestInodeEncodeDecode(t *testing.T) {
	wanted := Inode{
		Num:    InoRoot,
		Mode:   ModeDir | 0o755,
		UID:    1000,
		GID:    1000,
		Nlinks: 2,
		Size:   0,
		Atime:  1700000000,
		Mtime:  1700000000,
		Ctime:  1700000000,
		Blocks: [BlockPointerCount]Block{1, 2, 3, 4, 5, 6, 7},
	}

	var buf [InodeRecordSize]byte
	EncodeInode(&wanted, &buf)

	var found Inode
	DecodeInode(&found, &buf)

	if wanted != found {
		wantedData, err := json.Marshal(&wanted)
		if err != nil {
			t.Fatalf("marshaling `wanted` Inode: %v", err)
		}
		foundData, err := json.Marshal(&found)
		if err != nil {
			t.Fatalf("marshaling `found` Inode: %v", err)
		}
		t.Fatalf(
			"DecodeInode(): wanted `%s`; found `%s`",
			wantedData,
			foundData,
		)
	}
}

func TestInodeDecodeZeroRecord(t *testing.T) {
	var buf [InodeRecordSize]byte
	var found Inode
	DecodeInode(&found, &buf)
	if !found.IsFree() {
		t.Fatalf(
			"DecodeInode(): wanted a free inode from a zero record; found %+v",
			found,
		)
	}
}

func TestInodeEncodeOffsets(t *testing.T) {
	inode := Inode{
		Num:    5,
		Mode:   ModeDir | 0o755,
		Nlinks: 2,
		Blocks: [BlockPointerCount]Block{9},
	}
	inode.Blocks[IndirectBlockSlot] = 11

	var buf [InodeRecordSize]byte
	EncodeInode(&inode, &buf)

	if num := binary.LittleEndian.Uint64(buf[0:8]); num != 5 {
		t.Fatalf("wanted inode number `5` at offset 0; found `%d`", num)
	}
	if mode := Mode(binary.LittleEndian.Uint32(buf[8:12])); mode != ModeDir|0o755 {
		t.Fatalf(
			"wanted mode `%o` at offset 8; found `%o`",
			ModeDir|0o755,
			mode,
		)
	}
	if nlinks := binary.LittleEndian.Uint32(buf[20:24]); nlinks != 2 {
		t.Fatalf("wanted nlinks `2` at offset 20; found `%d`", nlinks)
	}
	if block := binary.LittleEndian.Uint64(buf[56:64]); block != 9 {
		t.Fatalf("wanted first block pointer `9` at offset 56; found `%d`", block)
	}
	if block := binary.LittleEndian.Uint64(buf[104:112]); block != 11 {
		t.Fatalf(
			"wanted indirect block pointer `11` at offset 104; found `%d`",
			block,
		)
	}
}
