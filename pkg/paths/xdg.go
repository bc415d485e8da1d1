// Package paths provides XDG-compliant path resolution for zism.
//
// Resolution order:
// 1. ZISM_HOME (portable root) → $ZISM_HOME/{config,state}
// 2. XDG env vars → $XDG_*_HOME/zism
// 3. Platform defaults → ~/.config/zism, ~/.local/state/zism
package paths

import (
	"os"
	"path/filepath"
)

const appName = "zism"

// getConfigHome returns the base config home directory.
func getConfigHome() string {
	if zismHome := os.Getenv("ZISM_HOME"); zismHome != "" {
		return filepath.Join(zismHome, "config")
	}
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

// getStateHome returns the base state home directory.
func getStateHome() string {
	if zismHome := os.Getenv("ZISM_HOME"); zismHome != "" {
		return filepath.Join(zismHome, "state")
	}
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return xdgStateHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state")
	}
	return ""
}

// ConfigDir returns the zism configuration directory (zism.yml lives here).
func ConfigDir() string {
	base := getConfigHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, appName)
}

// StateDir returns the zism state directory.
func StateDir() string {
	base := getStateHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, appName)
}

// LogDir returns the directory default log files are written to.
func LogDir() string {
	state := StateDir()
	if state == "" {
		return ""
	}
	return filepath.Join(state, "logs")
}
