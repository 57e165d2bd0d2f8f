// icongen renders the green-dot tray icon and writes it as an ICO file.
package main

import (
	"fmt"
	"os"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v":
			fmt.Printf("icongen %s\n", Version)
			return
		case "--help", "-h":
			fmt.Print(usage)
			return
		}
	}
	os.Exit(cliGenerate(os.Stdout, os.Args[1:]))
}

const usage = `icongen — tray icon generator

Usage:
  icongen [flags]       Render the icon and write it to disk
  icongen --version     Print version and exit
  icongen --help        Show this help

Flags:
  -o path      Output file (default icon.ico, env ICONGEN_OUTPUT)
  -sizes list  Comma-separated embedded sizes, e.g. 16,32,48 (default 16)
  -png         Write a PNG instead of an ICO container

The tray preview lives in its own binary: icongen-tray.
`
