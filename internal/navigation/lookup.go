package navigation

// Serialize returns the stable id persisted for the given mode, or -1 when
// the mode is not in the manifest. This is the only value that should ever
// be written to storage for a mode; serialization ids bear no relation to
// manifest position.
func (m *Manifest) Serialize(mode ViewMode) int {
	c, ok := m.find(func(c Category) bool { return c.Mode == mode })
	if !ok {
		return -1
	}
	return c.SerializationID
}

// Deserialize maps a stored selection back to its view mode. It returns
// ModeNone when nothing is stored, when the id is unknown, and when the id
// names the graphing mode while the feature is disabled, so stale saved
// selections silently fall back to the default mode.
func (m *Manifest) Deserialize(stored StoredSelection) ViewMode {
	id, ok := stored.ID()
	if !ok {
		return ModeNone
	}

	c, ok := m.find(func(c Category) bool { return c.SerializationID == id })
	if !ok {
		return ModeNone
	}
	if c.Mode == ModeGraphing && !c.Enabled {
		return ModeNone
	}
	return c.Mode
}

// IsValid reports whether the mode is present in the manifest, regardless
// of whether it is enabled.
func (m *Manifest) IsValid(mode ViewMode) bool {
	_, ok := m.find(func(c Category) bool { return c.Mode == mode })
	return ok
}

// IsEnabled reports whether the mode is present and currently enabled.
func (m *Manifest) IsEnabled(mode ViewMode) bool {
	_, ok := m.find(func(c Category) bool { return c.Mode == mode && c.Enabled })
	return ok
}

// IsInGroup reports whether the mode is present with the given group type.
func (m *Manifest) IsInGroup(mode ViewMode, group CategoryGroupType) bool {
	_, ok := m.find(func(c Category) bool { return c.Mode == mode && c.Group == group })
	return ok
}

// IsCalculatorMode reports whether the mode is one of the classic
// calculator modes. Historically these are Standard, Scientific, and
// Programmer; Date and Graphing live in the calculator group but have
// their own predicates.
func (m *Manifest) IsCalculatorMode(mode ViewMode) bool {
	return !IsDateMode(mode) && !IsGraphingMode(mode) && m.IsInGroup(mode, GroupCalculator)
}

// IsConverterMode reports whether the mode is in the converter group.
func (m *Manifest) IsConverterMode(mode ViewMode) bool {
	return m.IsInGroup(mode, GroupConverter)
}

// IsDateMode reports whether the mode is the date calculator.
func IsDateMode(mode ViewMode) bool {
	return mode == ModeDate
}

// IsGraphingMode reports whether the mode is the graphing calculator.
func IsGraphingMode(mode ViewMode) bool {
	return mode == ModeGraphing
}

// FriendlyName returns the display name of the mode, or "None" when the
// mode is not in the manifest.
func (m *Manifest) FriendlyName(mode ViewMode) string {
	c, ok := m.find(func(c Category) bool { return c.Mode == mode })
	if !ok {
		return "None"
	}
	return c.FriendlyName
}

// NameResourceKey returns the resource key the presentation layer resolves
// for the mode's localized name, or "" when the mode is absent.
func (m *Manifest) NameResourceKey(mode ViewMode) string {
	c, ok := m.find(func(c Category) bool { return c.Mode == mode })
	if !ok {
		return ""
	}
	return c.NameResourceKey + "Text"
}

// GroupType returns the group the mode belongs to, or GroupNone.
func (m *Manifest) GroupType(mode ViewMode) CategoryGroupType {
	c, ok := m.find(func(c Category) bool { return c.Mode == mode })
	if !ok {
		return GroupNone
	}
	return c.Group
}

// ModeForFriendlyName is the reverse lookup by exact display name.
func (m *Manifest) ModeForFriendlyName(name string) ViewMode {
	c, ok := m.find(func(c Category) bool { return c.FriendlyName == name })
	if !ok {
		return ModeNone
	}
	return c.Mode
}

// ModeForVirtualKey routes a keyboard accelerator to its mode.
func (m *Manifest) ModeForVirtualKey(key VirtualKey) ViewMode {
	if key == KeyNone {
		return ModeNone
	}
	c, ok := m.find(func(c Category) bool { return c.AcceleratorKey == key })
	if !ok {
		return ModeNone
	}
	return c.Mode
}

// Position returns the 1-based ordinal of the mode in manifest order, or
// -1 when absent. Index is the 0-based companion.
func (m *Manifest) Position(mode ViewMode) int {
	for i, c := range m.categories {
		if c.Mode == mode {
			return i + 1
		}
	}
	return -1
}

// Index returns the 0-based position of the mode, floored at -1 for an
// absent mode.
func (m *Manifest) Index(mode ViewMode) int {
	position := m.Position(mode)
	if position-1 > -1 {
		return position - 1
	}
	return -1
}

// FlatIndex returns the mode's 0-based index in the flattened menu list,
// where every group transition contributes one synthetic header slot
// before its first record. Returns -1 when the mode is absent.
func (m *Manifest) FlatIndex(mode ViewMode) int {
	index := -1
	group := GroupNone
	for _, c := range m.categories {
		index++
		if c.Group != group {
			group = c.Group
			index++
		}
		if c.Mode == mode {
			return index
		}
	}
	return -1
}

// IndexInGroup returns the 0-based position of the mode counting only the
// records of the given group, or -1 when the mode is absent or belongs to
// a different group.
func (m *Manifest) IndexInGroup(mode ViewMode, group CategoryGroupType) int {
	index := -1
	for _, c := range m.categories {
		if c.Group != group {
			continue
		}
		index++
		if c.Mode == mode {
			return index
		}
	}
	return -1
}

// AcceleratorKeys returns every accelerator assigned in the manifest, in
// manifest order.
func (m *Manifest) AcceleratorKeys() []VirtualKey {
	var keys []VirtualKey
	for _, c := range m.categories {
		if c.AcceleratorKey != KeyNone {
			keys = append(keys, c.AcceleratorKey)
		}
	}
	return keys
}
