package navigation

// StoredSelection is the typed wrapper around a persisted mode id.
//
// The host stores a bare integer; anything it hands back that is absent or
// not an integer becomes the zero value, which Deserialize maps to
// ModeNone. The zero value is a valid "nothing stored" selection.
type StoredSelection struct {
	id    int
	valid bool
}

// StoredID wraps a serialization id read back from storage.
func StoredID(id int) StoredSelection {
	return StoredSelection{id: id, valid: true}
}

// NoStoredSelection represents absent or unreadable storage.
func NoStoredSelection() StoredSelection {
	return StoredSelection{}
}

// ID returns the wrapped id and whether one is present.
func (s StoredSelection) ID() (int, bool) {
	return s.id, s.valid
}
