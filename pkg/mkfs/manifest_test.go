package mkfs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "wfs/pkg/types"
)

func TestLoadManifest(t *testing.T) {
	data := []byte(`raid: 1
disks:
  - disk0.img
  - disk1.img
inodes: 32
blocks: 200
`)

	manifest, err := LoadManifest(data)
	if err != nil {
		t.Fatalf("LoadManifest(): unexpected err: %v", err)
	}
	if err := manifest.Validate(); err != nil {
		t.Fatalf("Validate(): unexpected err: %v", err)
	}

	if manifest.Raid != RaidMirrored {
		t.Fatalf(
			"LoadManifest(): wanted raid `%s`; found `%s`",
			RaidMirrored,
			manifest.Raid,
		)
	}
	if len(manifest.Disks) != 2 || manifest.Disks[0] != "disk0.img" ||
		manifest.Disks[1] != "disk1.img" {
		t.Fatalf("LoadManifest(): wanted 2 disks; found `%v`", manifest.Disks)
	}
	if manifest.Inodes != 32 || manifest.Blocks != 200 {
		t.Fatalf(
			"LoadManifest(): wanted counts `32`/`200`; found `%d`/`%d`",
			manifest.Inodes,
			manifest.Blocks,
		)
	}
}

func TestLoadManifestUnknownKey(t *testing.T) {
	_, err := LoadManifest([]byte("raid: 1\nstripesize: 4096\n"))
	if !errors.Is(err, MalformedManifestErr) {
		t.Fatalf(
			"LoadManifest(): wanted err `%v`; found `%v`",
			MalformedManifestErr,
			err,
		)
	}
}

func TestManifestValidate(t *testing.T) {
	type testCase struct {
		name        string
		mutate      func(manifest *Manifest)
		wantedError error
	}

	testCases := []testCase{{
		name:   "valid",
		mutate: func(manifest *Manifest) {},
	}, {
		name:        "unknown raid mode",
		mutate:      func(manifest *Manifest) { manifest.Raid = 2 },
		wantedError: InvalidRaidModeErr,
	}, {
		name: "one disk",
		mutate: func(manifest *Manifest) {
			manifest.Disks = manifest.Disks[:1]
		},
		wantedError: TooFewDisksErr,
	}, {
		name:        "no disks",
		mutate:      func(manifest *Manifest) { manifest.Disks = nil },
		wantedError: TooFewDisksErr,
	}, {
		name:        "zero inodes",
		mutate:      func(manifest *Manifest) { manifest.Inodes = 0 },
		wantedError: ZeroCountErr,
	}, {
		name:        "zero blocks",
		mutate:      func(manifest *Manifest) { manifest.Blocks = 0 },
		wantedError: ZeroCountErr,
	}, {
		name:        "blocks past the layout limit",
		mutate:      func(manifest *Manifest) { manifest.Blocks = 1 << 54 },
		wantedError: CountTooLargeErr,
	}}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			manifest := Manifest{
				Raid:   RaidStriped,
				Disks:  []string{"disk0.img", "disk1.img"},
				Inodes: 32,
				Blocks: 200,
			}
			tc.mutate(&manifest)

			err := manifest.Validate()
			if tc.wantedError == nil {
				if err != nil {
					t.Fatalf("Validate(): unexpected err: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantedError) {
				t.Fatalf(
					"Validate(): wanted err `%v`; found `%v`",
					tc.wantedError,
					err,
				)
			}
		})
	}
}

func TestLoadManifestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.yaml")
	data := []byte("raid: 0\ndisks: [disk0.img, disk1.img]\ninodes: 32\nblocks: 64\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing manifest file: %v", err)
	}

	manifest, err := LoadManifestFile(path)
	if err != nil {
		t.Fatalf("LoadManifestFile(): unexpected err: %v", err)
	}
	if manifest.Raid != RaidStriped || len(manifest.Disks) != 2 {
		t.Fatalf("LoadManifestFile(): wrong manifest: %+v", manifest)
	}

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := LoadManifestFile(missing); err == nil {
		t.Fatalf("LoadManifestFile(): wanted err for a missing file; found nil")
	}
}
