package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"icongen/internal/config"
)

// trayLog is the package-level logger for the preview app. It writes to both
// stderr and ~/.icongen/tray.log.
var trayLog *log.Logger

func initTrayLog() {
	writers := []io.Writer{os.Stderr}

	if dir := config.AppDirPath(); dir != "" {
		_ = os.MkdirAll(dir, 0o700)
		f, err := os.OpenFile(filepath.Join(dir, "tray.log"),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err == nil {
			writers = append(writers, f)
		}
	}

	trayLog = log.New(io.MultiWriter(writers...), "[tray] ", log.LstdFlags)
}
