// Package config provides shared defaults and environment helpers for the
// icongen CLI and the tray preview app.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultOutput is the destination written when no path is given.
const DefaultOutput = "icon.ico"

// Environment variable names
const (
	EnvOutput = "ICONGEN_OUTPUT"
)

// AppDir is the base directory for icongen runtime files.
const AppDir = ".icongen"

// AppDirPath returns the absolute path to ~/.icongen, or "" when the home
// directory cannot be determined.
func AppDirPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir)
}

// EnvOr returns the trimmed value of the environment variable key, or
// fallback when unset or blank.
func EnvOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
