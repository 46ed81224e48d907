package io

import (
	. "wfs/pkg/types"
)

type ReadAt interface {
	ReadAt(offset Byte, p []byte) error
}

type WriteAt interface {
	WriteAt(offset Byte, p []byte) error
}

type Volume interface {
	ReadAt
	WriteAt
}

// Disk is a volume whose total size is known up front. The formatter
// validates a computed layout against every disk's size before any write.
type Disk interface {
	Volume
	Size() (Byte, error)
}
