// icongen-tray shows the rendered icon live in the system tray so it can be
// checked against the real tray bar before shipping it.
package main

import (
	"fmt"
	"os"

	"fyne.io/systray"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

func main() {
	initTrayLog()
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v":
			fmt.Printf("icongen-tray %s\n", Version)
			return
		case "--help", "-h":
			fmt.Print(usage)
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown argument: %s\n", os.Args[1])
			fmt.Fprint(os.Stderr, usage)
			os.Exit(1)
		}
	}
	systray.Run(onReady, onExit)
}

const usage = `icongen-tray — live preview of the generated tray icon

Usage:
  icongen-tray             Show the icon in the system tray
  icongen-tray --version   Print version and exit
  icongen-tray --help      Show this help
`

func onReady() {
	setupMenu()
}

func onExit() {}
