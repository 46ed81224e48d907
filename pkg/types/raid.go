package types

import (
	"fmt"
)

// RaidMode is the data-block placement policy recorded for the driver. It
// never changes how metadata is written: superblock, bitmaps, and inode
// table are mirrored on every disk in either mode.
type RaidMode uint64

const (
	RaidStriped  RaidMode = 0
	RaidMirrored RaidMode = 1
)

func (m RaidMode) String() string {
	switch m {
	case RaidStriped:
		return "striped"
	case RaidMirrored:
		return "mirrored"
	default:
		return fmt.Sprintf("invalid(%d)", uint64(m))
	}
}

func (m RaidMode) MarshalJSON() ([]byte, error) {
	s := m.String()
	out := make([]byte, len(s)+2)
	out[0] = '"'
	out[len(out)-1] = '"'
	copy(out[1:], s)
	return out, nil
}

func (m RaidMode) Validate() error {
	if m != RaidStriped && m != RaidMirrored {
		return fmt.Errorf(
			"validating raid mode `%d`: %w",
			uint64(m),
			InvalidRaidModeErr,
		)
	}
	return nil
}

const (
	InvalidRaidModeErr ConstError = "invalid raid mode"
)
