//go:build !windows

// fleetdesk/install/registry_other.go
package install

import (
	"os"
	"path/filepath"
	"runtime"
)

// PlatformRegistry returns NoRegistry; only Windows has a registry.
func PlatformRegistry() Registry { return NoRegistry{} }

// DefaultInstallDir is the stock Steam library location of the game.
func DefaultInstallDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "~"
	}
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Application Support", "Steam", GameSubdir)
	}
	return filepath.Join(home, ".local", "share", "Steam", GameSubdir)
}
