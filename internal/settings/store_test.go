package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnicalc/backend/internal/logging"
	"github.com/omnicalc/backend/internal/navigation"
)

type staticGate struct {
	available bool
	enabled   bool
}

func (g staticGate) FeatureAvailable() bool { return g.available }
func (g staticGate) FeatureEnabled() bool   { return g.available && g.enabled }

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "settings.toml"), logging.NewNop())
}

func TestStoreRoundTrip(t *testing.T) {
	m := navigation.BuildManifest(staticGate{available: false})
	store := newTestStore(t)

	require.NoError(t, store.Save(m, navigation.ModeScientific))

	stored := store.Load()
	assert.Equal(t, navigation.ModeScientific, m.Deserialize(stored))
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := newTestStore(t)

	stored := store.Load()
	_, ok := stored.ID()
	assert.False(t, ok)
}

func TestStoreLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("selected_mode = \"not a number\""), 0o644))

	store := NewStore(path, logging.NewNop())
	stored := store.Load()
	_, ok := stored.ID()
	assert.False(t, ok)
}

func TestStoreRejectsAbsentMode(t *testing.T) {
	m := navigation.BuildManifest(staticGate{available: false})
	store := newTestStore(t)

	err := store.Save(m, navigation.ModeGraphing)
	assert.Error(t, err)

	// Nothing was written.
	_, ok := store.Load().ID()
	assert.False(t, ok)
}

func TestStoredGraphingFallsBackWhenRevoked(t *testing.T) {
	enabled := navigation.BuildManifest(staticGate{available: true, enabled: true})
	store := newTestStore(t)

	require.NoError(t, store.Save(enabled, navigation.ModeGraphing))

	// Same file, rebuilt manifest with the feature revoked by policy.
	revoked := navigation.BuildManifest(staticGate{available: true, enabled: false})
	assert.Equal(t, navigation.ModeNone, revoked.Deserialize(store.Load()))
}

func TestStoreOverwrite(t *testing.T) {
	m := navigation.BuildManifest(staticGate{available: false})
	store := newTestStore(t)

	require.NoError(t, store.Save(m, navigation.ModeStandard))
	require.NoError(t, store.Save(m, navigation.ModeCurrency))

	assert.Equal(t, navigation.ModeCurrency, m.Deserialize(store.Load()))
}
