package install

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRegistry struct {
	path string
	ok   bool
}

func (f fakeRegistry) SteamInstallPath() (string, bool) { return f.path, f.ok }

func TestResolve_ExplicitWins(t *testing.T) {
	steam := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(steam, GameSubdir), 0755))
	r := &Resolver{Registry: fakeRegistry{steam, true}, Default: "/default", Logger: zap.NewNop()}

	assert.Equal(t, "/does/not/exist", r.Resolve("/does/not/exist"))
}

func TestResolve_RegistryWhenGameDirExists(t *testing.T) {
	steam := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(steam, GameSubdir), 0755))
	r := &Resolver{Registry: fakeRegistry{steam, true}, Default: "/default"}

	assert.Equal(t, filepath.Join(steam, GameSubdir), r.Resolve(""))
}

func TestResolve_DefaultWhenRegistryDirMissing(t *testing.T) {
	r := &Resolver{Registry: fakeRegistry{t.TempDir(), true}, Default: "/default"}
	assert.Equal(t, "/default", r.Resolve(""))
}

func TestResolve_DefaultOnRegistryMiss(t *testing.T) {
	for name, reg := range map[string]Registry{
		"miss":        fakeRegistry{},
		"empty value": fakeRegistry{"", true},
		"none":        NoRegistry{},
		"nil":         nil,
	} {
		t.Run(name, func(t *testing.T) {
			r := &Resolver{Registry: reg, Default: "/default"}
			assert.Equal(t, "/default", r.Resolve(""))
		})
	}
}

func TestResolve_DoesNotCreateDirectories(t *testing.T) {
	steam := filepath.Join(t.TempDir(), "steam")
	r := &Resolver{Registry: fakeRegistry{steam, true}, Default: filepath.Join(t.TempDir(), "default")}
	r.Resolve("")
	_, err := os.Stat(steam)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(r.Default)
	assert.True(t, os.IsNotExist(err))
}

func TestNewResolver_UsesPlatformDefaults(t *testing.T) {
	r := NewResolver(nil)
	assert.Equal(t, DefaultInstallDir(), r.Default)
	assert.NotNil(t, r.Registry)
	assert.Contains(t, r.Default, "Euro Truck Simulator 2")
}
