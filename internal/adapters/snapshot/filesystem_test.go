package snapshot_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentalflow/backend/internal/adapters/snapshot"
)

func TestFilesystem_AbsentSnapshotIsNotAnError(t *testing.T) {
	provider := snapshot.NewFilesystem(filepath.Join(t.TempDir(), "clinic.json"))

	data, err := provider.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, data)

	logo, err := provider.LoadLogo(context.Background())
	require.NoError(t, err)
	assert.Empty(t, logo)
}

func TestFilesystem_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "clinic.json")
	provider := snapshot.NewFilesystem(path)

	blob := []byte(`{"patients":[]}`)
	require.NoError(t, provider.Save(ctx, blob))

	loaded, err := provider.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, blob, loaded)

	// Each save fully replaces the previous snapshot
	replacement := []byte(`{"patients":[],"users":[]}`)
	require.NoError(t, provider.Save(ctx, replacement))

	loaded, err = provider.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, replacement, loaded)

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFilesystem_LogoIsStoredBesideTheSnapshot(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	provider := snapshot.NewFilesystem(filepath.Join(dir, "clinic.json"))

	require.NoError(t, provider.SaveLogo(ctx, "bG9nbw=="))

	logo, err := provider.LoadLogo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bG9nbw==", logo)

	// The logo write must not create or touch the snapshot file
	data, err := provider.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, data)

	_, err = os.Stat(filepath.Join(dir, "logo.b64"))
	assert.NoError(t, err)
}
