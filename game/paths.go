// fleetdesk/game/paths.go
package game

import (
	"path/filepath"
)

// GameDirName is the game's folder under the user's Documents directory.
const GameDirName = "Euro Truck Simulator 2"

// Locations derives the game's per-user paths from the Documents directory.
// An empty DocumentsDir means it could not be determined; every derived
// path is then empty.
type Locations struct {
	DocumentsDir string
}

// NewLocations uses override when set, otherwise detects the Documents directory.
func NewLocations(override string) (Locations, error) {
	if override != "" {
		return Locations{DocumentsDir: override}, nil
	}
	docs, err := DocumentsDir()
	if err != nil {
		return Locations{}, err
	}
	return Locations{DocumentsDir: docs}, nil
}

// GameDir is <Documents>/Euro Truck Simulator 2.
func (l Locations) GameDir() string {
	if l.DocumentsDir == "" {
		return ""
	}
	return filepath.Join(l.DocumentsDir, GameDirName)
}

// ProfileRoots lists the local and Steam Cloud profile directories.
func (l Locations) ProfileRoots() []string {
	if l.DocumentsDir == "" {
		return nil
	}
	return []string{
		filepath.Join(l.GameDir(), "profiles"),
		filepath.Join(l.GameDir(), "steam_profiles"),
	}
}

// GlobalConfigPath is the game's config.cfg.
func (l Locations) GlobalConfigPath() string {
	if l.DocumentsDir == "" {
		return ""
	}
	return filepath.Join(l.GameDir(), "config.cfg")
}
