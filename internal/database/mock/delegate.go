package mock

import (
	"errors"

	"github.com/ruminansiart-arch/Installer/internal/asset"
	"github.com/ruminansiart-arch/Installer/internal/database/importer"
	"github.com/ruminansiart-arch/Installer/internal/profile"
)

type MockDelegate struct {
	FailOpen      bool
	FailMigration bool
	Error         error
	CurrentHash   *[]byte
	StoredHash    []byte
	Stored        bool

	Profiles  []profile.Profile
	Arguments map[string][]string
	Assets    []asset.Asset
}

func (m *MockDelegate) Open() error {
	if m.FailOpen {
		return m.Error
	}
	return nil
}

func (m *MockDelegate) Close() error {
	return nil
}

func (m *MockDelegate) Migrate() error {
	if m.FailMigration {
		return m.Error
	}
	return nil
}

func (m *MockDelegate) StoreImported(profiles []importer.Profile, assets []importer.Asset) error {
	m.Stored = true
	return nil
}

func (m *MockDelegate) GetStoredCatalogHash() ([]byte, error) {
	if m.CurrentHash == nil {
		return nil, m.Error
	}
	return *m.CurrentHash, nil
}

func (m *MockDelegate) SetStoredCatalogHash(catalogHash []byte) error {
	m.StoredHash = catalogHash
	return nil
}

func (m *MockDelegate) GetProfiles() ([]profile.Profile, error) {
	return m.Profiles, nil
}

func (m *MockDelegate) GetProfileBySlug(slug string) (profile.Profile, error) {
	for _, entity := range m.Profiles {
		if entity.Slug == slug {
			return entity, nil
		}
	}
	return profile.Profile{}, errors.New("record not found")
}

func (m *MockDelegate) GetProfileArguments(profileSlug string) ([]string, error) {
	return m.Arguments[profileSlug], nil
}

func (m *MockDelegate) GetAssets() ([]asset.Asset, error) {
	return m.Assets, nil
}
