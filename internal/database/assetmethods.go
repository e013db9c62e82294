package database

import "github.com/ruminansiart-arch/Installer/internal/asset"

func (d *Database) GetAssets() ([]asset.Asset, error) {
	return d.delegate.GetAssets()
}
