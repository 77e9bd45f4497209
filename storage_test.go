package finances

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirStorage(t *testing.T) {
	storage := NewDirStorage(filepath.Join(t.TempDir(), "data"))

	_, ok, err := storage.Read("app")
	require.NoError(t, err)
	assert.False(t, ok, "missing key reads as absent, not as an error")

	require.NoError(t, storage.Write("app", `{"hello":"world"}`))

	value, ok, err := storage.Read("app")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"hello":"world"}`, value)

	// overwrite
	require.NoError(t, storage.Write("app", "v2"))
	value, _, _ = storage.Read("app")
	assert.Equal(t, "v2", value)
}

func TestDirStorage_IndependentKeys(t *testing.T) {
	storage := NewDirStorage(t.TempDir())
	require.NoError(t, storage.Write(AppDocumentKey, "doc"))
	require.NoError(t, storage.Write(InstallmentsKey, "plans"))
	require.NoError(t, storage.Write(ActiveTabKey, "stocks"))

	value, ok, err := storage.Read(InstallmentsKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "plans", value)
}
