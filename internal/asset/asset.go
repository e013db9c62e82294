package asset

import "database/sql"

// Asset is a downloadable model file. Category selects the destination
// folder under the application root; MirrorUrl, when set, points at a
// distributed storage copy tried before the HTTP origin.
type Asset struct {
	Slug      string `gorm:"primaryKey"`
	Url       string `gorm:"not null"`
	MirrorUrl sql.NullString
	Category  string `gorm:"not null"`
	FileName  string `gorm:"not null"`
}
