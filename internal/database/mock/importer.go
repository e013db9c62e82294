package mock

import "github.com/ruminansiart-arch/Installer/internal/database/importer"

type MockImporter struct {
	CanImportFlag bool
	Imported      bool
	ImportStarted bool
	Error         error
	CatalogHash   []byte
	Profiles      []importer.Profile
	Assets        []importer.Asset
}

func (m *MockImporter) Import(currentCatalogHash []byte) (importedCatalogHash []byte, err error) {
	m.ImportStarted = true
	if m.CanImportFlag {
		return m.CatalogHash, m.Error
	}
	return nil, nil
}

func (m *MockImporter) CanImport() bool {
	return m.CanImportFlag
}

func (m *MockImporter) GetProfiles() []importer.Profile {
	m.Imported = true
	return m.Profiles
}

func (m *MockImporter) GetAssets() []importer.Asset {
	m.Imported = true
	return m.Assets
}
