//go:build windows

// fleetdesk/game/documents_windows.go
package game

import (
	"errors"
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

// DocumentsDir returns the user's Documents known folder, which may be
// redirected (OneDrive, network share).
func DocumentsDir() (string, error) {
	path, err := windows.KnownFolderPath(windows.FOLDERID_Documents, windows.KF_FLAG_DEFAULT)
	if err == nil && path != "" {
		return path, nil
	}
	if profile := os.Getenv("USERPROFILE"); profile != "" {
		return filepath.Join(profile, "Documents"), nil
	}
	if err == nil {
		err = errors.New("empty known folder path")
	}
	return "", err
}
