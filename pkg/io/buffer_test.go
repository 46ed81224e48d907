package io

import (
	"bytes"
	"errors"
	stdio "io"
	"testing"
)

func TestBufferReadWriteAt(t *testing.T) {
	b := NewBuffer(make([]byte, 16))

	if err := b.WriteAt(4, []byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("WriteAt(): unexpected err: %v", err)
	}

	found := make([]byte, 4)
	if err := b.ReadAt(4, found); err != nil {
		t.Fatalf("ReadAt(): unexpected err: %v", err)
	}
	if !bytes.Equal(found, []byte{1, 2, 3, 4}) {
		t.Fatalf("ReadAt(): wanted `01020304`; found `%x`", found)
	}

	size, err := b.Size()
	if err != nil {
		t.Fatalf("Size(): unexpected err: %v", err)
	}
	if size != 16 {
		t.Fatalf("Size(): wanted `16`; found `%d`", size)
	}
}

func TestBufferOutOfRange(t *testing.T) {
	b := NewBuffer(make([]byte, 8))

	if err := b.ReadAt(5, make([]byte, 4)); !errors.Is(err, stdio.EOF) {
		t.Fatalf("ReadAt(): wanted err `%v`; found `%v`", stdio.EOF, err)
	}
	if err := b.WriteAt(5, make([]byte, 4)); !errors.Is(
		err,
		stdio.ErrShortWrite,
	) {
		t.Fatalf(
			"WriteAt(): wanted err `%v`; found `%v`",
			stdio.ErrShortWrite,
			err,
		)
	}

	// a failed write leaves the buffer untouched.
	if !bytes.Equal(b.Bytes(), make([]byte, 8)) {
		t.Fatalf("WriteAt(): out-of-range write mutated the buffer")
	}
}
