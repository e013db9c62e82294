package database

import "github.com/ruminansiart-arch/Installer/internal/profile"

func (d *Database) GetProfiles() ([]profile.Profile, error) {
	return d.delegate.GetProfiles()
}

func (d *Database) GetProfileBySlug(slug string) (profile.Profile, error) {
	return d.delegate.GetProfileBySlug(slug)
}

func (d *Database) GetProfileArguments(profileSlug string) ([]string, error) {
	return d.delegate.GetProfileArguments(profileSlug)
}
