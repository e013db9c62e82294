package delegate

import (
	"github.com/ruminansiart-arch/Installer/internal/asset"
	"github.com/ruminansiart-arch/Installer/internal/database/importer"
	"github.com/ruminansiart-arch/Installer/internal/profile"
)

type DatabaseDelegate interface {
	Open() error
	Close() error
	Migrate() error
	StoreImported(profiles []importer.Profile, assets []importer.Asset) error
	GetStoredCatalogHash() ([]byte, error)
	SetStoredCatalogHash(catalogHash []byte) error
	GetProfiles() ([]profile.Profile, error)
	GetProfileBySlug(slug string) (profile.Profile, error)
	GetProfileArguments(profileSlug string) ([]string, error)
	GetAssets() ([]asset.Asset, error)
}
