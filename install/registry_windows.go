//go:build windows

// fleetdesk/install/registry_windows.go
package install

import (
	"golang.org/x/sys/windows/registry"
)

const steamRegistryPath = `SOFTWARE\WOW6432Node\Valve\Steam`

type windowsRegistry struct{}

// PlatformRegistry returns the Windows registry lookup.
func PlatformRegistry() Registry { return windowsRegistry{} }

func (windowsRegistry) SteamInstallPath() (string, bool) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, steamRegistryPath, registry.QUERY_VALUE)
	if err != nil {
		return "", false
	}
	defer key.Close()

	path, _, err := key.GetStringValue("InstallPath")
	if err != nil || path == "" {
		return "", false
	}
	return path, true
}

// DefaultInstallDir is the stock Steam library location of the game.
func DefaultInstallDir() string {
	return `C:\Program Files (x86)\Steam\steamapps\common\Euro Truck Simulator 2`
}
