package install

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_SubsetOfMarkers(t *testing.T) {
	root := t.TempDir()
	dlc := filepath.Join(root, ContentDir)
	require.NoError(t, os.Mkdir(dlc, 0755))
	for _, m := range []string{"dlc_east.scs", "dlc_blke.scs", "dlc_greece.scs"} {
		require.NoError(t, os.WriteFile(filepath.Join(dlc, m), nil, 0644))
	}

	got := Detect(root)

	assert.Equal(t, DlcFlags{Base: true, East: true, Rbs: true, Greece: true}, got)
	assert.Equal(t, []string{"east", "rbs", "greece"}, got.Installed())
}

func TestDetect_AllMarkers(t *testing.T) {
	root := t.TempDir()
	dlc := filepath.Join(root, ContentDir)
	require.NoError(t, os.Mkdir(dlc, 0755))
	for _, p := range Packages {
		require.NoError(t, os.WriteFile(filepath.Join(dlc, p.Marker), nil, 0644))
	}

	got := Detect(root)

	assert.True(t, got.Base)
	assert.Len(t, got.Installed(), len(Packages))
}

func TestDetect_MissingInstall(t *testing.T) {
	got := Detect(filepath.Join(t.TempDir(), "nope"))
	assert.Equal(t, DlcFlags{}, got)
	assert.Empty(t, got.Installed())
}

func TestDetect_NoContentDir(t *testing.T) {
	got := Detect(t.TempDir())
	assert.Equal(t, DlcFlags{Base: true}, got)
}

func TestPackages_EveryKeyHasAField(t *testing.T) {
	var f DlcFlags
	seen := map[string]bool{}
	for _, p := range Packages {
		assert.NotNil(t, f.field(p.Key), p.Key)
		assert.False(t, seen[p.Marker], "duplicate marker %s", p.Marker)
		seen[p.Marker] = true
	}
}

func TestDetect_IgnoresPackageWithoutField(t *testing.T) {
	saved := Packages
	t.Cleanup(func() { Packages = saved })
	Packages = append(append([]Package{}, saved...), Package{"scandinavia_2", "dlc_north2.scs"})

	root := t.TempDir()
	dlc := filepath.Join(root, ContentDir)
	require.NoError(t, os.Mkdir(dlc, 0755))
	for _, m := range []string{"dlc_north2.scs", "dlc_it.scs"} {
		require.NoError(t, os.WriteFile(filepath.Join(dlc, m), nil, 0644))
	}

	got := Detect(root)

	assert.Equal(t, DlcFlags{Base: true, It: true}, got)
	assert.Equal(t, []string{"it"}, got.Installed())
}
