package importer

import (
	"errors"
	"sort"

	"github.com/BurntSushi/toml"
)

type catalogProfile struct {
	Environment string   `toml:"environment"`
	Directory   string   `toml:"directory"`
	Executable  string   `toml:"executable"`
	Arguments   []string `toml:"arguments"`
	Replace     bool     `toml:"replace"`
}

type catalogAsset struct {
	Url      string `toml:"url"`
	Mirror   string `toml:"mirror"`
	Category string `toml:"category"`
	FileName string `toml:"filename"`
}

type catalog struct {
	Profiles map[string]catalogProfile `toml:"profiles"`
	Assets   map[string]catalogAsset   `toml:"assets"`
}

// parseCatalog decodes a TOML catalog document into profile and asset
// entries. Slugs come from the table keys and are emitted in sorted
// order so imports are deterministic.
func parseCatalog(catalogData []byte) (profiles []Profile, assets []Asset, err error) {
	var document catalog
	if err = toml.Unmarshal(catalogData, &document); err != nil {
		return
	}

	profileSlugs := make([]string, 0, len(document.Profiles))
	for slug := range document.Profiles {
		profileSlugs = append(profileSlugs, slug)
	}
	sort.Strings(profileSlugs)
	for _, slug := range profileSlugs {
		entry := document.Profiles[slug]
		if entry.Environment == "" || entry.Directory == "" || entry.Executable == "" {
			err = errors.New("the profile " + slug + " is missing a mandatory field")
			return
		}
		profiles = append(profiles, Profile{
			Slug:             slug,
			EnvironmentPath:  entry.Environment,
			WorkingDirectory: entry.Directory,
			Executable:       entry.Executable,
			Arguments:        entry.Arguments,
			Replace:          entry.Replace,
		})
	}

	assetSlugs := make([]string, 0, len(document.Assets))
	for slug := range document.Assets {
		assetSlugs = append(assetSlugs, slug)
	}
	sort.Strings(assetSlugs)
	for _, slug := range assetSlugs {
		entry := document.Assets[slug]
		if entry.Url == "" || entry.Category == "" || entry.FileName == "" {
			err = errors.New("the asset " + slug + " is missing a mandatory field")
			return
		}
		var mirror *string
		if entry.Mirror != "" {
			mirrorValue := entry.Mirror
			mirror = &mirrorValue
		}
		assets = append(assets, Asset{
			Slug:     slug,
			Url:      entry.Url,
			Mirror:   mirror,
			Category: entry.Category,
			FileName: entry.FileName,
		})
	}
	return
}
