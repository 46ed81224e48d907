package io

import (
	"fmt"
	"os"

	. "wfs/pkg/types"
)

// File is a Disk backed by a disk image file. Writes land via pwrite; there
// is no buffering and no retry.
type File struct {
	file *os.File
}

// OpenFile opens a disk image for formatting, creating an empty file when
// none exists. A fresh zero-byte image fails the layout size check, not the
// open.
func OpenFile(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening disk image `%s`: %w", path, err)
	}
	return &File{file: f}, nil
}

// Open opens an existing disk image read-only.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening disk image `%s`: %w", path, err)
	}
	return &File{file: f}, nil
}

func (f *File) ReadAt(offset Byte, p []byte) error {
	if _, err := f.file.ReadAt(p, int64(offset)); err != nil {
		return fmt.Errorf(
			"reading `%d` bytes at offset `%d` from `%s`: %w",
			len(p),
			offset,
			f.file.Name(),
			err,
		)
	}
	return nil
}

func (f *File) WriteAt(offset Byte, p []byte) error {
	if _, err := f.file.WriteAt(p, int64(offset)); err != nil {
		return fmt.Errorf(
			"writing `%d` bytes at offset `%d` to `%s`: %w",
			len(p),
			offset,
			f.file.Name(),
			err,
		)
	}
	return nil
}

func (f *File) Size() (Byte, error) {
	stat, err := f.file.Stat()
	if err != nil {
		return 0, fmt.Errorf("measuring disk image `%s`: %w", f.file.Name(), err)
	}
	return Byte(stat.Size()), nil
}

func (f *File) Close() error { return f.file.Close() }
