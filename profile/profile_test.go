package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestList(t *testing.T) {
	local := t.TempDir()
	cloud := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(local, EncodeName("MyDriver")), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(cloud, "plainname"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(local, "profiles.sii"), []byte("x"), 0644))

	got := List(zap.NewNop(), local, filepath.Join(t.TempDir(), "missing"), cloud)

	assert.Equal(t, []Descriptor{
		{Name: "MyDriver", Path: filepath.Join(local, EncodeName("MyDriver"))},
		{Name: "plainname", Path: filepath.Join(cloud, "plainname")},
	}, got)
}

func TestList_NoRootsYieldsEmpty(t *testing.T) {
	got := List(nil, filepath.Join(t.TempDir(), "missing"))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
