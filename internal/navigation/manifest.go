package navigation

import (
	"fmt"
	"strconv"
)

// PolicyGate reports whether the feature-gated graphing mode is available
// on this platform and enabled by policy for the current user.
type PolicyGate interface {
	FeatureAvailable() bool
	FeatureEnabled() bool
}

// Manifest is the ordered, immutable table of category records. Record
// order is the menu order and the order used by every positional query.
//
// A manifest is never mutated after BuildManifest returns; when policy
// state changes, build a fresh one.
type Manifest struct {
	categories []Category
}

// BuildManifest assembles the manifest for the given policy gate outcome.
// The result is deterministic for a fixed gate outcome.
//
// The graphing record is inserted after Scientific only when the platform
// supports it, which shifts the accelerators and access keys of the
// calculator modes that follow. Converter records are fixed.
func BuildManifest(gate PolicyGate) *Manifest {
	categories := []Category{
		{Mode: ModeStandard, SerializationID: standardID, FriendlyName: "Standard", NameResourceKey: "StandardMode", Glyph: "", Group: GroupCalculator, AcceleratorKey: KeyNumber1, AccessKey: "1", SupportsNegative: supportsAll, Enabled: true},
		{Mode: ModeScientific, SerializationID: scientificID, FriendlyName: "Scientific", NameResourceKey: "ScientificMode", Glyph: "", Group: GroupCalculator, AcceleratorKey: KeyNumber2, AccessKey: "2", SupportsNegative: supportsAll, Enabled: true},
	}

	cursor := 3
	graphingAvailable := gate.FeatureAvailable()
	if graphingAvailable {
		categories = append(categories, Category{
			Mode:             ModeGraphing,
			SerializationID:  graphingID,
			FriendlyName:     "Graphing",
			NameResourceKey:  "GraphingCalculatorMode",
			Glyph:            "",
			Group:            GroupCalculator,
			AcceleratorKey:   KeyNumber3,
			AccessKey:        "3",
			SupportsNegative: supportsAll,
			Enabled:          gate.FeatureEnabled(),
		})
		cursor++
	}

	programmerKey, dateKey := KeyNumber3, KeyNumber4
	if graphingAvailable {
		programmerKey, dateKey = KeyNumber4, KeyNumber5
	}

	categories = append(categories,
		Category{Mode: ModeProgrammer, SerializationID: programmerID, FriendlyName: "Programmer", NameResourceKey: "ProgrammerMode", Glyph: "", Group: GroupCalculator, AcceleratorKey: programmerKey, AccessKey: strconv.Itoa(cursor), SupportsNegative: supportsAll, Enabled: true},
	)
	cursor++
	categories = append(categories,
		Category{Mode: ModeDate, SerializationID: dateID, FriendlyName: "Date", NameResourceKey: "DateCalculationMode", Glyph: "", Group: GroupCalculator, AcceleratorKey: dateKey, AccessKey: strconv.Itoa(cursor), SupportsNegative: supportsAll, Enabled: true},
	)
	cursor++

	categories = append(categories, converterCategories()...)

	return newManifest(categories)
}

// newManifest validates manifest invariants before handing the table out.
// A violation is a programming error in the static definitions, so it
// panics rather than returning an error.
func newManifest(categories []Category) *Manifest {
	modes := make(map[ViewMode]bool, len(categories))
	ids := make(map[int]bool, len(categories))
	keys := make(map[VirtualKey]bool)

	for _, c := range categories {
		if modes[c.Mode] {
			panic(fmt.Sprintf("navigation: duplicate view mode %s in manifest", c.Mode))
		}
		if ids[c.SerializationID] {
			panic(fmt.Sprintf("navigation: duplicate serialization id %d in manifest", c.SerializationID))
		}
		if c.AcceleratorKey != KeyNone && keys[c.AcceleratorKey] {
			panic(fmt.Sprintf("navigation: duplicate accelerator key %s in manifest", c.AcceleratorKey))
		}
		modes[c.Mode] = true
		ids[c.SerializationID] = true
		if c.AcceleratorKey != KeyNone {
			keys[c.AcceleratorKey] = true
		}
	}

	return &Manifest{categories: categories}
}

// Len returns the number of records in the manifest.
func (m *Manifest) Len() int {
	return len(m.categories)
}

// Categories returns a copy of the ordered records.
func (m *Manifest) Categories() []Category {
	return append([]Category(nil), m.categories...)
}

// find returns the first record matching the predicate, scanning in
// manifest order. Every lookup goes through a linear scan; the manifest
// is small and fixed, so an index would buy nothing.
func (m *Manifest) find(match func(Category) bool) (Category, bool) {
	for _, c := range m.categories {
		if match(c) {
			return c, true
		}
	}
	return Category{}, false
}
