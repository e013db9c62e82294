package sqlite

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"github.com/ruminansiart-arch/Installer/internal/asset"
	"github.com/ruminansiart-arch/Installer/internal/database/importer"
	"github.com/ruminansiart-arch/Installer/internal/entity"
	"github.com/ruminansiart-arch/Installer/internal/folder"
	"github.com/ruminansiart-arch/Installer/internal/profile"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SQLiteDelegate struct {
	BasePath string
	database *gorm.DB
}

func (d *SQLiteDelegate) Open() (err error) {
	databasePath := filepath.Join(d.BasePath, folder.DatabasePath)
	if err = os.MkdirAll(filepath.Dir(databasePath), 0755); err != nil {
		return
	}
	dialector := sqlite.Open(databasePath)
	if d.database, err = gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	}); err != nil {
		return
	}
	return
}

func (d *SQLiteDelegate) Migrate() (err error) {
	if d.database == nil {
		return errors.New("the database has not been opened")
	}
	return d.database.AutoMigrate(&profile.Profile{}, &profile.ProfileArgument{},
		&asset.Asset{}, &entity.UserVariable{})
}

func (d *SQLiteDelegate) Close() (err error) {
	if d.database == nil {
		return errors.New("the database has not been opened")
	}
	var database *sql.DB
	if database, err = d.database.DB(); err != nil {
		return
	}
	if err = database.Close(); err != nil {
		return
	}
	return
}

func (d *SQLiteDelegate) StoreImported(profiles []importer.Profile, assets []importer.Asset) (err error) {
	for _, profileEntry := range profiles {
		if err = d.storeImportedProfile(profileEntry); err != nil {
			return
		}
	}
	for _, assetEntry := range assets {
		if err = d.storeImportedAsset(assetEntry); err != nil {
			return
		}
	}
	return
}

func (d *SQLiteDelegate) create(value interface{}) error {
	if result := d.database.Create(value); result.Error != nil {
		return result.Error
	}
	return nil
}

func (d *SQLiteDelegate) createOrUpdate(value interface{}) error {
	if result := d.database.Clauses(clause.OnConflict{
		UpdateAll: true,
	}).Create(value); result.Error != nil {
		return result.Error
	}
	return nil
}

func (d *SQLiteDelegate) first(dest interface{}, conds ...interface{}) error {
	if result := d.database.First(dest, conds...); result.Error != nil {
		return result.Error
	}
	return nil
}
