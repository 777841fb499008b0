// fleetdesk/install/resolver.go
package install

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// GameSubdir is the game's location under a Steam library root.
var GameSubdir = filepath.Join("steamapps", "common", "Euro Truck Simulator 2")

// Registry looks up the Steam base install directory in the platform's
// package-manager registry. Implementations report ok=false on any miss.
type Registry interface {
	SteamInstallPath() (path string, ok bool)
}

// NoRegistry is a Registry that never finds anything.
type NoRegistry struct{}

func (NoRegistry) SteamInstallPath() (string, bool) { return "", false }

// Resolver picks the game's installation directory. The chain is: an explicit
// path, verbatim; then the registry's Steam path joined with GameSubdir, only
// if that directory exists; then Default. Resolve never fails and never
// creates anything.
type Resolver struct {
	Registry Registry
	Default  string
	Logger   *zap.Logger
}

// NewResolver returns a Resolver using the platform registry and default path.
func NewResolver(logger *zap.Logger) *Resolver {
	return &Resolver{
		Registry: PlatformRegistry(),
		Default:  DefaultInstallDir(),
		Logger:   logger,
	}
}

// Resolve returns the installation directory. An empty explicit means none was given.
func (r *Resolver) Resolve(explicit string) string {
	if explicit != "" {
		r.log("install path from explicit input", explicit)
		return explicit
	}
	if p, ok := r.fromRegistry(); ok {
		r.log("install path from registry", p)
		return p
	}
	r.log("install path from default", r.Default)
	return r.Default
}

func (r *Resolver) fromRegistry() (string, bool) {
	if r.Registry == nil {
		return "", false
	}
	steam, ok := r.Registry.SteamInstallPath()
	if !ok || steam == "" {
		return "", false
	}
	p := filepath.Join(steam, GameSubdir)
	if !dirExists(p) {
		return "", false
	}
	return p, true
}

func (r *Resolver) log(msg, path string) {
	if r.Logger != nil {
		r.Logger.Debug(msg, zap.String("path", path))
	}
}

func dirExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
