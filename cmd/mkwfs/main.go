package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"wfs/pkg/io"
	"wfs/pkg/mkfs"
	. "wfs/pkg/types"
)

const (
	errorCodeOK           = 0
	errorCodeUsage        = 1
	errorCodeDiskTooSmall = 2
	errorCodeIO           = 3
)

const (
	missingRaidErr ConstError = "raid mode required"
	badArgsErr     ConstError = "malformed arguments"
)

func main() {
	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(errorCodeUsage)
	}
	level, err := config.Level()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(errorCodeUsage)
	}
	slog.SetLogLoggerLevel(level)

	app := newApp(config)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(exitCode(err))
	}
	os.Exit(errorCodeOK)
}

func newApp(config *Config) *cli.App {
	return &cli.App{
		Name:  appName,
		Usage: "format disk images as one wfs disk set",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:    "raid",
				Aliases: []string{"r"},
				Usage:   "raid mode: 0 striped, 1 mirrored",
			},
			&cli.StringSliceFlag{
				Name:    "disk",
				Aliases: []string{"d"},
				Usage:   "disk image path, repeated once per member",
			},
			&cli.Uint64Flag{
				Name:    "inodes",
				Aliases: []string{"i"},
				Usage:   "inode count, rounded up to a multiple of 32",
			},
			&cli.Uint64Flag{
				Name:    "blocks",
				Aliases: []string{"b"},
				Usage:   "data block count, rounded up to a multiple of 32",
			},
			&cli.StringFlag{
				Name:    "manifest",
				Aliases: []string{"m"},
				Usage:   "format job manifest; replaces the other flags",
			},
		},
		OnUsageError: func(ctx *cli.Context, err error, isSubcommand bool) error {
			return fmt.Errorf("parsing arguments: %w: %v", badArgsErr, err)
		},
		Action: func(ctx *cli.Context) error {
			manifest, err := loadJob(ctx)
			if err != nil {
				return err
			}
			return run(config, &manifest)
		},
	}
}

// loadJob assembles the format job from the manifest file if one was given,
// otherwise from the flags, and validates it before any disk is opened. The
// raid flag has no default: a job built from flags must name a raid mode.
func loadJob(ctx *cli.Context) (mkfs.Manifest, error) {
	var manifest mkfs.Manifest
	if path := ctx.String("manifest"); path != "" {
		var err error
		if manifest, err = mkfs.LoadManifestFile(path); err != nil {
			return manifest, err
		}
	} else {
		if !ctx.IsSet("raid") {
			return manifest, fmt.Errorf(
				"loading format job: %w",
				missingRaidErr,
			)
		}
		manifest = mkfs.Manifest{
			Raid:   RaidMode(ctx.Uint64("raid")),
			Disks:  ctx.StringSlice("disk"),
			Inodes: ctx.Uint64("inodes"),
			Blocks: ctx.Uint64("blocks"),
		}
	}
	if err := manifest.Validate(); err != nil {
		return manifest, err
	}
	return manifest, nil
}

func run(config *Config, manifest *mkfs.Manifest) error {
	disks := make([]io.Disk, len(manifest.Disks))
	for i, path := range manifest.Disks {
		file, err := io.OpenFile(config.ResolvePath(path))
		if err != nil {
			return err
		}
		defer file.Close()
		disks[i] = file
	}

	formatter := mkfs.Formatter{
		Inodes:   manifest.Inodes,
		Blocks:   manifest.Blocks,
		RaidMode: manifest.Raid,
		UID:      uint32(os.Getuid()),
		GID:      uint32(os.Getgid()),
		Logger:   slog.Default().With("component", "FORMATTER"),
	}
	if err := formatter.Format(disks); err != nil {
		return err
	}

	slog.Info(
		"formatted disk set",
		"disks", len(disks),
		"raid", manifest.Raid,
		"inodes", manifest.Inodes,
		"blocks", manifest.Blocks,
	)
	return nil
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, mkfs.TooFewDisksErr),
		errors.Is(err, mkfs.ZeroCountErr),
		errors.Is(err, mkfs.CountTooLargeErr),
		errors.Is(err, mkfs.MalformedManifestErr),
		errors.Is(err, InvalidRaidModeErr),
		errors.Is(err, missingRaidErr),
		errors.Is(err, badArgsErr):
		return errorCodeUsage
	case errors.Is(err, mkfs.DiskTooSmallErr):
		return errorCodeDiskTooSmall
	}
	return errorCodeIO
}
