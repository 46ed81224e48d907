package mkfs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	. "wfs/pkg/types"
)

const MalformedManifestErr ConstError = "malformed manifest"

// Manifest is the file form of a format job, an alternative to spelling the
// job out in flags:
//
//	raid: 1
//	disks:
//	  - disk0.img
//	  - disk1.img
//	inodes: 32
//	blocks: 200
type Manifest struct {
	Raid   RaidMode `yaml:"raid"`
	Disks  []string `yaml:"disks"`
	Inodes uint64   `yaml:"inodes"`
	Blocks uint64   `yaml:"blocks"`
}

func LoadManifest(data []byte) (manifest Manifest, err error) {
	if err = yaml.UnmarshalStrict(data, &manifest); err != nil {
		err = fmt.Errorf("loading manifest: %w: %v", MalformedManifestErr, err)
	}
	return
}

func LoadManifestFile(path string) (manifest Manifest, err error) {
	var data []byte
	if data, err = os.ReadFile(path); err != nil {
		err = fmt.Errorf("loading manifest file `%s`: %w", path, err)
		return
	}

	return LoadManifest(data)
}

// Validate applies the format job rules: a known raid mode, at least two
// disks, counts a layout can represent.
func (manifest *Manifest) Validate() error {
	if err := manifest.Raid.Validate(); err != nil {
		return fmt.Errorf("validating manifest: %w", err)
	}
	if len(manifest.Disks) < 2 {
		return fmt.Errorf(
			"validating manifest: `%d` disks: %w",
			len(manifest.Disks),
			TooFewDisksErr,
		)
	}
	if err := CheckCounts(manifest.Inodes, manifest.Blocks); err != nil {
		return fmt.Errorf("validating manifest: %w", err)
	}
	return nil
}
