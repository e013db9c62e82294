package importer

import (
	_ "embed"
)

//go:embed catalog.toml
var defaultCatalog []byte

// EmbeddedImporter falls back to the catalog compiled into the binary.
// It is registered after the plain importer so an on-disk catalog
// always wins.
type EmbeddedImporter struct {
	profiles []Profile
	assets   []Asset
}

func NewEmbeddedImporter() *EmbeddedImporter {
	return &EmbeddedImporter{}
}

func (e *EmbeddedImporter) CanImport() bool {
	return true
}

func (e *EmbeddedImporter) Import(currentCatalogHash []byte) (importedCatalogHash []byte, err error) {
	delegate := PlainImporter{}
	if importedCatalogHash, err = delegate.load(defaultCatalog, currentCatalogHash); err != nil {
		return
	}
	e.profiles = delegate.profiles
	e.assets = delegate.assets
	return
}

func (e EmbeddedImporter) GetProfiles() []Profile {
	return e.profiles
}

func (e EmbeddedImporter) GetAssets() []Asset {
	return e.assets
}
