package sqlite

import (
	"github.com/ruminansiart-arch/Installer/internal/database/importer"
	"github.com/ruminansiart-arch/Installer/internal/profile"
)

func (d *SQLiteDelegate) storeImportedProfile(importedEntity importer.Profile) (err error) {
	entity := profile.Profile{
		Slug:             importedEntity.Slug,
		EnvironmentPath:  importedEntity.EnvironmentPath,
		WorkingDirectory: importedEntity.WorkingDirectory,
		Executable:       importedEntity.Executable,
		Replace:          importedEntity.Replace,
	}
	if err = d.createOrUpdate(&entity); err != nil {
		return
	}

	// Replace the argument list wholesale so a re-import cannot leave
	// stale or duplicated positions behind
	if result := d.database.Where("profile_id = ?", entity.Slug).
		Delete(&profile.ProfileArgument{}); result.Error != nil {
		return result.Error
	}
	for position, value := range importedEntity.Arguments {
		argument := profile.ProfileArgument{
			ProfileID: entity.Slug,
			Position:  position,
			Value:     value,
		}
		if err = d.create(&argument); err != nil {
			return
		}
	}
	return
}

func (d *SQLiteDelegate) GetProfiles() (entities []profile.Profile, err error) {
	if result := d.database.Find(&entities); result.Error != nil {
		err = result.Error
		return
	}
	return
}

func (d *SQLiteDelegate) GetProfileBySlug(slug string) (entity profile.Profile, err error) {
	err = d.first(&entity, "slug = ?", slug)
	return
}

func (d *SQLiteDelegate) GetProfileArguments(profileSlug string) (arguments []string, err error) {
	var entities []profile.ProfileArgument
	if result := d.database.Where("profile_id = ?", profileSlug).
		Order("position").Find(&entities); result.Error != nil {
		err = result.Error
		return
	}
	for _, entity := range entities {
		arguments = append(arguments, entity.Value)
	}
	return
}
