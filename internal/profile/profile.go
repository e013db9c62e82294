package profile

// Profile describes what to run, where, and with which arguments. The
// environment path must resolve to an activatable runtime before the
// working directory is entered; arguments are opaque strings forwarded
// verbatim to the executable.
type Profile struct {
	Slug             string `gorm:"primaryKey"`
	EnvironmentPath  string `gorm:"not null"`
	WorkingDirectory string `gorm:"not null"`
	Executable       string `gorm:"not null"`
	// Replace selects process replacement over a supervised child.
	// The legacy startup scripts were inconsistent about this, so it
	// is an explicit per-profile choice here.
	Replace bool
}

// ProfileArgument is a single positional argument of a launch profile.
// Arguments are reassembled ordered by Position.
type ProfileArgument struct {
	Id        uint   `gorm:"primaryKey"`
	ProfileID string `gorm:"not null"`
	Profile   Profile
	Position  int    `gorm:"not null"`
	Value     string `gorm:"not null"`
}
