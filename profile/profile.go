// fleetdesk/profile/profile.go
package profile

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Descriptor is one discovered profile directory.
type Descriptor struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// List enumerates the subdirectories of each root and decodes their names.
// Roots that do not exist or cannot be read contribute nothing. Order follows
// the roots, then directory enumeration order within each root.
func List(logger *zap.Logger, roots ...string) []Descriptor {
	out := []Descriptor{}
	for _, root := range roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			if logger != nil {
				logger.Debug("skipping profile root", zap.String("root", root), zap.Error(err))
			}
			continue
		}
		for _, e := range entries {
			if !isDir(root, e) {
				continue
			}
			out = append(out, Descriptor{
				Name: DecodeName(e.Name()),
				Path: filepath.Join(root, e.Name()),
			})
		}
	}
	return out
}

// isDir follows symlinks, which Steam Cloud setups sometimes use for profile dirs.
func isDir(root string, e os.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(root, e.Name()))
	return err == nil && info.IsDir()
}
