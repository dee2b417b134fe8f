package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticGate struct {
	available bool
	enabled   bool
}

func (g staticGate) FeatureAvailable() bool { return g.available }
func (g staticGate) FeatureEnabled() bool   { return g.available && g.enabled }

func TestBuildManifest(t *testing.T) {
	t.Run("graphing unavailable", func(t *testing.T) {
		m := BuildManifest(staticGate{available: false})

		assert.Equal(t, 17, m.Len())
		assert.False(t, m.IsValid(ModeGraphing))

		wantOrder := []ViewMode{
			ModeStandard, ModeScientific, ModeProgrammer, ModeDate,
			ModeCurrency, ModeVolume, ModeLength, ModeWeight, ModeTemperature,
			ModeEnergy, ModeArea, ModeSpeed, ModeTime, ModePower, ModeData,
			ModePressure, ModeAngle,
		}
		categories := m.Categories()
		require.Len(t, categories, len(wantOrder))
		for i, c := range categories {
			assert.Equal(t, wantOrder[i], c.Mode, "record %d", i)
		}
	})

	t.Run("graphing available", func(t *testing.T) {
		m := BuildManifest(staticGate{available: true, enabled: true})

		assert.Equal(t, 18, m.Len())
		assert.True(t, m.IsValid(ModeGraphing))
		assert.True(t, m.IsEnabled(ModeGraphing))

		// Graphing slots in right after Scientific.
		assert.Equal(t, 3, m.Position(ModeGraphing))
		assert.Equal(t, 4, m.Position(ModeProgrammer))
	})

	t.Run("graphing available but disabled by policy", func(t *testing.T) {
		m := BuildManifest(staticGate{available: true, enabled: false})

		assert.True(t, m.IsValid(ModeGraphing))
		assert.False(t, m.IsEnabled(ModeGraphing))

		// Everything else stays enabled.
		assert.True(t, m.IsEnabled(ModeStandard))
		assert.True(t, m.IsEnabled(ModeCurrency))
	})

	t.Run("accelerators shift when graphing is present", func(t *testing.T) {
		without := BuildManifest(staticGate{available: false})
		with := BuildManifest(staticGate{available: true, enabled: true})

		assert.Equal(t, ModeProgrammer, without.ModeForVirtualKey(KeyNumber3))
		assert.Equal(t, ModeDate, without.ModeForVirtualKey(KeyNumber4))

		assert.Equal(t, ModeGraphing, with.ModeForVirtualKey(KeyNumber3))
		assert.Equal(t, ModeProgrammer, with.ModeForVirtualKey(KeyNumber4))
		assert.Equal(t, ModeDate, with.ModeForVirtualKey(KeyNumber5))
	})

	t.Run("access keys follow the running cursor", func(t *testing.T) {
		without := BuildManifest(staticGate{available: false})
		with := BuildManifest(staticGate{available: true, enabled: true})

		find := func(m *Manifest, mode ViewMode) Category {
			for _, c := range m.Categories() {
				if c.Mode == mode {
					return c
				}
			}
			t.Fatalf("mode %s not found", mode)
			return Category{}
		}

		assert.Equal(t, "1", find(without, ModeStandard).AccessKey)
		assert.Equal(t, "2", find(without, ModeScientific).AccessKey)
		assert.Equal(t, "3", find(without, ModeProgrammer).AccessKey)
		assert.Equal(t, "4", find(without, ModeDate).AccessKey)

		assert.Equal(t, "3", find(with, ModeGraphing).AccessKey)
		assert.Equal(t, "4", find(with, ModeProgrammer).AccessKey)
		assert.Equal(t, "5", find(with, ModeDate).AccessKey)
	})

	t.Run("converter records never carry accelerators", func(t *testing.T) {
		m := BuildManifest(staticGate{available: true, enabled: true})
		for _, c := range m.Categories() {
			if c.Group == GroupConverter {
				assert.Equal(t, KeyNone, c.AcceleratorKey, "mode %s", c.Mode)
				assert.Empty(t, c.AccessKey, "mode %s", c.Mode)
			}
		}
	})

	t.Run("negative support table", func(t *testing.T) {
		m := BuildManifest(staticGate{available: false})

		negatives := map[ViewMode]bool{
			ModeTemperature: true,
			ModePower:       true,
			ModeAngle:       true,
		}
		for _, c := range m.Categories() {
			if c.Group != GroupConverter {
				assert.True(t, c.SupportsNegative, "calculator mode %s", c.Mode)
				continue
			}
			assert.Equal(t, negatives[c.Mode], c.SupportsNegative, "converter mode %s", c.Mode)
		}
	})

	t.Run("rebuild is idempotent for a fixed gate outcome", func(t *testing.T) {
		for _, gate := range []staticGate{
			{available: false},
			{available: true, enabled: false},
			{available: true, enabled: true},
		} {
			a := BuildManifest(gate)
			b := BuildManifest(gate)
			assert.Equal(t, a.Categories(), b.Categories())
		}
	})

	t.Run("serialization ids are stable across gate outcomes", func(t *testing.T) {
		without := BuildManifest(staticGate{available: false})
		with := BuildManifest(staticGate{available: true, enabled: true})

		for _, c := range without.Categories() {
			assert.Equal(t, c.SerializationID, with.Serialize(c.Mode), "mode %s", c.Mode)
		}
	})
}

func TestManifestInvariants(t *testing.T) {
	base := Category{
		Mode: ModeStandard, SerializationID: standardID,
		FriendlyName: "Standard", Group: GroupCalculator, Enabled: true,
	}

	t.Run("duplicate view mode panics", func(t *testing.T) {
		dup := base
		dup.SerializationID = 99
		assert.Panics(t, func() { newManifest([]Category{base, dup}) })
	})

	t.Run("duplicate serialization id panics", func(t *testing.T) {
		dup := base
		dup.Mode = ModeScientific
		assert.Panics(t, func() { newManifest([]Category{base, dup}) })
	})

	t.Run("duplicate accelerator key panics", func(t *testing.T) {
		a := base
		a.AcceleratorKey = KeyNumber1
		b := base
		b.Mode = ModeScientific
		b.SerializationID = scientificID
		b.AcceleratorKey = KeyNumber1
		assert.Panics(t, func() { newManifest([]Category{a, b}) })
	})

	t.Run("categories returns a copy", func(t *testing.T) {
		m := BuildManifest(staticGate{available: false})
		categories := m.Categories()
		categories[0].FriendlyName = "Mutated"
		assert.Equal(t, "Standard", m.FriendlyName(ModeStandard))
	})
}
