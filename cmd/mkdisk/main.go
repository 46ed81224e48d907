package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	. "wfs/pkg/types"
)

const (
	errorCodeOK    = 0
	errorCodeUsage = 1
	errorCodeIO    = 3
)

const (
	noPathsErr ConstError = "at least one image path required"
	badSizeErr ConstError = "size must be positive"
	badArgsErr ConstError = "malformed arguments"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(exitCode(err))
	}
	os.Exit(errorCodeOK)
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "mkdisk",
		Usage:     "create blank disk images for formatting",
		ArgsUsage: "PATH [PATH ...]",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:    "size",
				Aliases: []string{"s"},
				Usage:   "image size in bytes",
			},
		},
		OnUsageError: func(ctx *cli.Context, err error, isSubcommand bool) error {
			return fmt.Errorf("parsing arguments: %w: %v", badArgsErr, err)
		},
		Action: func(ctx *cli.Context) error {
			size := Byte(ctx.Int64("size"))
			if size <= 0 {
				return fmt.Errorf("size `%d`: %w", size, badSizeErr)
			}
			if ctx.NArg() < 1 {
				return fmt.Errorf("creating disk images: %w", noPathsErr)
			}
			for _, path := range ctx.Args().Slice() {
				if err := createSparse(path, size); err != nil {
					return err
				}
				slog.Info("created disk image", "path", path, "size", size)
			}
			return nil
		},
	}
}

// createSparse makes a sparse file of exactly `size` bytes by writing a
// single zero at the final offset.
func createSparse(path string, size Byte) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating disk image `%s`: %w", path, err)
	}
	defer file.Close()

	if _, err := file.WriteAt([]byte{0}, int64(size)-1); err != nil {
		return fmt.Errorf(
			"extending disk image `%s` to `%d` bytes: %w",
			path,
			size,
			err,
		)
	}
	return nil
}

func exitCode(err error) int {
	if errors.Is(err, noPathsErr) ||
		errors.Is(err, badSizeErr) ||
		errors.Is(err, badArgsErr) {
		return errorCodeUsage
	}
	return errorCodeIO
}
