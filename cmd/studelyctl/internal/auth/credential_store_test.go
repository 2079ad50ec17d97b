package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arden28/studely-client/pkg/sdk"
)

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileStore(dir, nil)
	require.NoError(t, err)
	assert.Empty(t, store.Token())
	assert.Nil(t, store.CachedIdentity())

	store.SetToken("tok-abc")
	store.SetCachedIdentity(&sdk.Identity{ID: 7, Name: "Amina Diallo", Role: sdk.RoleCollegeAdmin})

	// A fresh store over the same directory sees the persisted state.
	reloaded, err := NewFileStore(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", reloaded.Token())
	id := reloaded.CachedIdentity()
	require.NotNil(t, id)
	assert.Equal(t, "Amina Diallo", id.Name)
	assert.Equal(t, sdk.RoleCollegeAdmin, id.Role)
}

func TestFileStoreClearRemovesFile(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileStore(dir, nil)
	require.NoError(t, err)
	store.SetToken("tok-abc")
	store.SetCachedIdentity(&sdk.Identity{ID: 7, Name: "Amina Diallo"})

	path := filepath.Join(dir, credentialsFile)
	_, err = os.Stat(path)
	require.NoError(t, err)

	store.RemoveToken()
	store.SetCachedIdentity(nil)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "cleared store must not leave credentials on disk")

	// Clearing an already-empty store stays a no-op.
	store.RemoveToken()
	store.SetCachedIdentity(nil)
	assert.Empty(t, store.Token())
}

func TestFileStoreCorruptFileStartsLoggedOut(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, credentialsFile), []byte("{not json"), 0600))

	store, err := NewFileStore(dir, nil)
	require.NoError(t, err)
	assert.Empty(t, store.Token())
	assert.Nil(t, store.CachedIdentity())
}

func TestFileStorePermissions(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileStore(dir, nil)
	require.NoError(t, err)
	store.SetToken("tok-abc")

	info, err := os.Stat(filepath.Join(dir, credentialsFile))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	var payload map[string]any
	data, err := os.ReadFile(filepath.Join(dir, credentialsFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, "tok-abc", payload["token"])
}
