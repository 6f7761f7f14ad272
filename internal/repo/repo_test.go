package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRoot_WalksUpToGit(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, MarkerDir), 0755))
	nested := filepath.Join(root, "scripts", "deep")
	require.NoError(t, os.MkdirAll(nested, 0755))

	got, err := FindRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindRoot_NoMarkerReturnsStart(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a")
	require.NoError(t, os.Mkdir(nested, 0755))

	got, err := FindRoot(nested)
	require.NoError(t, err)
	// Some ancestor of the temp dir may itself be a repository.
	if _, statErr := os.Stat(filepath.Join(got, MarkerDir)); statErr != nil {
		assert.Equal(t, nested, got)
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, filepath.Join("/repo", "meta/logs/heartbeat.log"), Resolve("/repo", "meta/logs/heartbeat.log"))
	assert.Equal(t, "/var/log/hb.log", Resolve("/repo", "/var/log/hb.log"))
}

func TestRel(t *testing.T) {
	assert.Equal(t, filepath.Join("meta", "logs", "heartbeat.log"), Rel("/repo", "/repo/meta/logs/heartbeat.log"))
	assert.Equal(t, "README.md", Rel("/repo", "/repo/README.md"))
}
