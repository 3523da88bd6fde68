package domain

// Scope identifies the storage partition preferences live under. Anonymous
// and per-user partitions never share keys, so switching identity cannot leak
// another identity's state.
type Scope string

// ScopeAnonymous is the partition used before login.
const ScopeAnonymous Scope = "anonymous"

// UserScope returns the partition for an authenticated user.
func UserScope(userID string) Scope {
	return Scope("user:" + userID)
}

// PreferencesVersion tags persisted blobs. The source format carried no
// version; the tag is here so future shape changes stay readable.
const PreferencesVersion = 1

// Preferences bundles the persisted display state for one scope.
type Preferences struct {
	Version   int             `json:"version"`
	Settings  DisplaySettings `json:"settings"`
	TimeZones TrackedList     `json:"time_zones"`
}

// Clone returns a copy whose tracked list shares no backing storage with the
// receiver. Snapshots handed outside a lock must use it.
func (p Preferences) Clone() Preferences {
	p.TimeZones = p.TimeZones.Clone()
	return p
}

// DefaultPreferences returns the state a fresh scope starts with.
func DefaultPreferences(defaults TrackedList) Preferences {
	return Preferences{
		Version:   PreferencesVersion,
		Settings:  DefaultDisplaySettings(),
		TimeZones: defaults.Clone(),
	}
}
