package database

import (
	"sync"

	"github.com/ruminansiart-arch/Installer/internal/database/delegate"
	"github.com/ruminansiart-arch/Installer/internal/database/importer"
	"github.com/sirupsen/logrus"
)

type Database struct {
	delegate  delegate.DatabaseDelegate
	importers []importer.Importer
}

func NewDatabase(delegate delegate.DatabaseDelegate, importers []importer.Importer) (instance *Database) {
	instance = &Database{
		delegate:  delegate,
		importers: importers,
	}
	return
}

func (d *Database) Initialize(waitGroup *sync.WaitGroup) {
	var err error
	// Create or update the database if needed
	logrus.Info("Connecting to database")
	if err = d.connectToDatabase(); err != nil {
		panic(err)
	}
	logrus.Info("Applying database migrations")
	if err = d.applyMigrations(); err != nil {
		panic(err)
	}

	// Check whether the catalog hash has been already saved on the database
	var storedCatalogHash []byte
	if storedCatalogHash, err = d.delegate.GetStoredCatalogHash(); err != nil {
		logrus.Error("Cannot decode the stored catalog hash")
		panic(err)
	}

	// Import the catalog from the higher priority importer to the lower
	var importedCatalogHash []byte
	var (
		importedProfiles []importer.Profile
		importedAssets   []importer.Asset
	)
	for _, catalogImporter := range d.importers {
		if !catalogImporter.CanImport() {
			continue
		}
		if importedCatalogHash, err = catalogImporter.Import(storedCatalogHash); err != nil {
			// A broken catalog is an input problem, not a programming
			// one: reject it with a diagnostic instead of a stack trace
			logrus.Fatalf("Cannot import the catalog: %+v", err)
		}
		if importedCatalogHash != nil {
			importedProfiles = catalogImporter.GetProfiles()
			importedAssets = catalogImporter.GetAssets()
		}
		break
	}

	// Store the catalog data read, if any
	if importedCatalogHash != nil {
		logrus.Info("Storing the new imported catalog")
		if err = d.delegate.StoreImported(importedProfiles, importedAssets); err != nil {
			logrus.Error(err)
		} else if err = d.delegate.SetStoredCatalogHash(importedCatalogHash); err != nil {
			panic(err)
		}
	}

	// End the routine
	waitGroup.Done()
}

func (d *Database) Deinitialize() {
	d.delegate.Close()
}

func (d *Database) connectToDatabase() error {
	return d.delegate.Open()
}

func (d Database) applyMigrations() (err error) {
	if err = d.delegate.Migrate(); err != nil {
		return err
	}
	return
}
