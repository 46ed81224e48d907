package io

import (
	"fmt"
	"io"

	. "wfs/pkg/types"
)

// Buffer is a fixed-size in-memory Disk. It stands in for disk image files
// in tests; unlike a bytes.Buffer it never grows, so size-validation
// behavior matches a real image.
type Buffer struct {
	data []byte
}

func NewBuffer(data []byte) *Buffer { return &Buffer{data: data} }

func (b *Buffer) ReadAt(offset Byte, p []byte) error {
	if offset < 0 || offset+Byte(len(p)) > Byte(len(b.data)) {
		return fmt.Errorf(
			"reading `%d` bytes at offset `%d` from `%d`-byte buffer: %w",
			len(p),
			offset,
			len(b.data),
			io.EOF,
		)
	}
	copy(p, b.data[offset:])
	return nil
}

func (b *Buffer) WriteAt(offset Byte, p []byte) error {
	if offset < 0 || offset+Byte(len(p)) > Byte(len(b.data)) {
		return fmt.Errorf(
			"writing `%d` bytes at offset `%d` to `%d`-byte buffer: %w",
			len(p),
			offset,
			len(b.data),
			io.ErrShortWrite,
		)
	}
	copy(b.data[offset:], p)
	return nil
}

func (b *Buffer) Size() (Byte, error) { return Byte(len(b.data)), nil }

func (b *Buffer) Bytes() []byte { return b.data }
