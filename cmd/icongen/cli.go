package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"icongen/internal/config"
	"icongen/internal/icon"
)

// Function vars for testability — tests swap these to inject faults.
var (
	generateICO = icon.GenerateSizes
	generatePNG = icon.GeneratePNG
)

// cliGenerate parses flags, writes the icon, and prints the confirmation
// line. Returns the process exit code.
func cliGenerate(w io.Writer, args []string) int {
	fs := flag.NewFlagSet("icongen", flag.ContinueOnError)
	fs.SetOutput(w)
	out := fs.String("o", config.EnvOr(config.EnvOutput, config.DefaultOutput),
		"Output file path")
	sizesArg := fs.String("sizes", "",
		"Comma-separated embedded sizes, e.g. 16,32,48 (default 16)")
	asPNG := fs.Bool("png", false, "Write a PNG instead of an ICO container")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() > 0 {
		_, _ = fmt.Fprintf(w, "unexpected argument: %s\n", fs.Arg(0))
		return 1
	}

	sizes, err := parseSizes(*sizesArg)
	if err != nil {
		_, _ = fmt.Fprintf(w, "error: %v\n", err)
		return 1
	}

	if *asPNG {
		if len(sizes) > 1 {
			_, _ = fmt.Fprintln(w, "error: -png writes a single image; pass at most one size")
			return 1
		}
		size := icon.BaseSize
		if len(sizes) == 1 {
			size = sizes[0]
		}
		err = generatePNG(*out, size)
	} else {
		err = generateICO(*out, sizes)
	}
	if err != nil {
		_, _ = fmt.Fprintf(w, "error: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintf(w, "Icon created: %s\n", *out)
	return 0
}

// parseSizes parses a comma-separated size list. Empty input means the
// default single 16px entry.
func parseSizes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid size %q", strings.TrimSpace(p))
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
