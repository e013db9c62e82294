package sqlite

import (
	"database/sql"
	"encoding/base64"

	"github.com/ruminansiart-arch/Installer/internal/entity"
)

func (d *SQLiteDelegate) GetStoredCatalogHash() (storedCatalogHash []byte, err error) {
	var userVariable entity.UserVariable
	if err = d.first(&userVariable, "name = ?", "catalogHash"); err != nil || !userVariable.Value.Valid {
		storedCatalogHash = []byte{}
		err = nil
		return
	}
	storedCatalogHash, err = base64.URLEncoding.DecodeString(userVariable.Value.String)
	return
}

func (d *SQLiteDelegate) SetStoredCatalogHash(catalogHash []byte) (err error) {
	storingCatalogHash := base64.URLEncoding.EncodeToString(catalogHash)
	userVariable := entity.UserVariable{
		Name: "catalogHash",
		Value: sql.NullString{
			String: storingCatalogHash,
			Valid:  true,
		},
	}
	if err = d.createOrUpdate(&userVariable); err != nil {
		return
	}
	return
}
