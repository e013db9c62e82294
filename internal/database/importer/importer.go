package importer

// Importer loads launch profiles and assets from a catalog source. The
// hash of the previous successful import is passed in so an unchanged
// catalog is skipped; a nil returned hash means nothing was imported.
type Importer interface {
	Import(currentCatalogHash []byte) (importedCatalogHash []byte, err error)
	CanImport() bool
	GetProfiles() []Profile
	GetAssets() []Asset
}

// Profile is the catalog representation of a launch profile. Paths are
// relative to the workspace root; arguments keep the catalog order.
type Profile struct {
	Slug             string
	EnvironmentPath  string
	WorkingDirectory string
	Executable       string
	Arguments        []string
	Replace          bool
}

// Asset is the catalog representation of a downloadable model file.
type Asset struct {
	Slug     string
	Url      string
	Mirror   *string
	Category string
	FileName string
}
