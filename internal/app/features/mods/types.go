package mods

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/modshelf/modshelf/internal/domain/models"
)

// CreateRequest is the payload for POST /api/mods. Server-owned fields (id,
// rating, downloads_count, timestamps) are not accepted; the store fills
// them.
type CreateRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Author        string   `json:"author"`
	Version       string   `json:"version"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	DownloadURL   string   `json:"download_url"`
	FileSize      string   `json:"file_size"`
	Screenshots   []string `json:"screenshots"`
	Compatibility []string `json:"compatibility"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
		validation.Field(&r.Author, validation.Required.Error("author is required")),
		validation.Field(&r.Version, validation.Required.Error("version is required")),
		validation.Field(&r.Category, validation.Required.Error("category is required")),
		validation.Field(&r.DownloadURL,
			validation.Required.Error("download_url is required"),
			is.URL.Error("download_url must be a valid URL"),
		),
	)
}

// Mod converts the request into a domain Mod for the store to finish.
func (r CreateRequest) Mod() models.Mod {
	return models.Mod{
		Name:          r.Name,
		Description:   r.Description,
		Author:        r.Author,
		Version:       r.Version,
		Category:      r.Category,
		Tags:          r.Tags,
		DownloadURL:   r.DownloadURL,
		FileSize:      r.FileSize,
		Screenshots:   r.Screenshots,
		Compatibility: r.Compatibility,
	}
}

// DownloadResponse is the payload for POST /api/mods/{id}/download.
type DownloadResponse struct {
	DownloadURL  string `json:"download_url"`
	Filename     string `json:"filename"`
	Instructions string `json:"instructions"`
}
