package sqlite

import (
	"database/sql"

	"github.com/ruminansiart-arch/Installer/internal/asset"
	"github.com/ruminansiart-arch/Installer/internal/database/importer"
)

func (d *SQLiteDelegate) storeImportedAsset(importedEntity importer.Asset) (err error) {
	mirrorUrl := sql.NullString{}
	if importedEntity.Mirror != nil {
		mirrorUrl.Valid = true
		mirrorUrl.String = *importedEntity.Mirror
	}
	entity := asset.Asset{
		Slug:      importedEntity.Slug,
		Url:       importedEntity.Url,
		MirrorUrl: mirrorUrl,
		Category:  importedEntity.Category,
		FileName:  importedEntity.FileName,
	}
	return d.createOrUpdate(&entity)
}

func (d *SQLiteDelegate) GetAssets() (entities []asset.Asset, err error) {
	if result := d.database.Find(&entities); result.Error != nil {
		err = result.Error
		return
	}
	return
}
