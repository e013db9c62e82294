package importer

import (
	"bytes"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/zeebo/blake3"
)

// PlainImporter loads the catalog from a TOML file on disk.
type PlainImporter struct {
	catalogPath string
	profiles    []Profile
	assets      []Asset
}

func NewPlainImporter(catalogPath string) *PlainImporter {
	return &PlainImporter{catalogPath: catalogPath}
}

func (p *PlainImporter) CanImport() bool {
	logrus.Debug("Checking if a catalog file could be imported")
	if p.catalogPath == "" {
		return false
	}
	_, existenceFlag := os.Stat(p.catalogPath)
	canImport := !os.IsNotExist(existenceFlag)
	if !canImport {
		logrus.Debugf("The catalog file %s is not present", p.catalogPath)
	}
	return canImport
}

func (p *PlainImporter) Import(currentCatalogHash []byte) (importedCatalogHash []byte, err error) {
	if !p.CanImport() {
		return
	}
	var catalogData []byte
	if catalogData, err = os.ReadFile(p.catalogPath); err != nil {
		logrus.Error("Cannot read the catalog file")
		return
	}
	return p.load(catalogData, currentCatalogHash)
}

func (p *PlainImporter) load(catalogData []byte, currentCatalogHash []byte) (importedCatalogHash []byte, err error) {
	logrus.Info("Calculating the catalog hash")
	hashEncoder := blake3.New()
	hashEncoder.Write(catalogData)
	importedCatalogHash = hashEncoder.Sum(nil)

	// Parse the catalog only if it has never been imported or if its
	// hash differs from the one stored in the local database
	if len(currentCatalogHash) > 0 && bytes.Equal(currentCatalogHash, importedCatalogHash) {
		logrus.Info("No catalog updates")
		importedCatalogHash = nil
		return
	}

	logrus.Info("The catalog hash does not match the one stored into the local database. Updating the local database")
	if p.profiles, p.assets, err = parseCatalog(catalogData); err != nil {
		logrus.Error("Cannot parse the catalog file")
		importedCatalogHash = nil
		return
	}
	return
}

func (p PlainImporter) GetProfiles() []Profile {
	return p.profiles
}

func (p PlainImporter) GetAssets() []Asset {
	return p.assets
}
