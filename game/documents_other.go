//go:build !windows

// fleetdesk/game/documents_other.go
package game

import (
	"os"
	"path/filepath"
	"strings"
)

// DocumentsDir returns $XDG_DOCUMENTS_DIR, else ~/Documents.
func DocumentsDir() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); xdg != "" {
		return xdg, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Documents"), nil
}
