package main

import (
	"encoding/json"
	"errors"
	"fmt"
	stdio "io"
	"os"

	"wfs/pkg/encode"
	"wfs/pkg/io"
	. "wfs/pkg/types"
)

const (
	errorCodeOK        = 0
	errorCodeUsage     = 1
	errorCodeBadFormat = 2
	errorCodeIO        = 3
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "USAGE: wfsinfo IMAGE\n")
		os.Exit(errorCodeUsage)
	}

	super, err := readSuperblock(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(exitCode(err))
	}

	data, err := json.MarshalIndent(&super, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshaling superblock to JSON: %v\n", err)
		os.Exit(errorCodeIO)
	}
	fmt.Printf("%s\n", data)
	os.Exit(errorCodeOK)
}

func readSuperblock(path string) (super Superblock, err error) {
	file, err := io.Open(path)
	if err != nil {
		return super, err
	}
	defer file.Close()

	var buf [SuperblockSize]byte
	if err := file.ReadAt(0, buf[:]); err != nil {
		return super, err
	}
	if err := encode.DecodeSuperblock(&super, &buf); err != nil {
		return super, fmt.Errorf("inspecting `%s`: %w", path, err)
	}
	return super, nil
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, InvalidMagicErr),
		errors.Is(err, UnsupportedVersionErr),
		errors.Is(err, InvalidBlockSizeErr),
		errors.Is(err, InvalidRaidModeErr),
		errors.Is(err, stdio.EOF):
		return errorCodeBadFormat
	}
	return errorCodeIO
}
