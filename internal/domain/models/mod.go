package models

import "time"

// Mod represents one downloadable Geode add-on in the catalog.
//
// The ID is an opaque string (a UUID when generated by the service, but seed
// records use human-readable slugs) and doubles as the Mongo document key.
// Category, Tags, and Compatibility are free-form labels by contract; the
// service does not enforce an enumeration.
type Mod struct {
	ID          string   `bson:"_id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description" json:"description"`
	Author      string   `bson:"author" json:"author"`
	Version     string   `bson:"version" json:"version"`
	Category    string   `bson:"category" json:"category"`
	Tags        []string `bson:"tags" json:"tags"`
	DownloadURL string   `bson:"download_url" json:"download_url"`
	FileSize    string   `bson:"file_size,omitempty" json:"file_size,omitempty"`

	// Screenshots is an ordered list of external image URLs; may be empty.
	Screenshots []string `bson:"screenshots" json:"screenshots"`

	// Compatibility lists the game versions this mod targets (e.g. "2.206").
	Compatibility []string `bson:"compatibility" json:"compatibility"`

	Rating         float64 `bson:"rating" json:"rating"`
	DownloadsCount int64   `bson:"downloads_count" json:"downloads_count"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	// UpdatedAt is stamped at creation and never refreshed afterwards, not
	// even by the download-count increment. Callers must not rely on it
	// tracking mutations.
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
