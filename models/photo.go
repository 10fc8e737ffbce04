package models

import "time"

type Photo struct {
	ID               int64     `json:"id"`
	FileUUID         string    `json:"file_uuid"`
	Name             string    `json:"name"`
	OriginalFilename string    `json:"original_filename"`
	Description      string    `json:"description"`
	FileType         string    `json:"file_type"`
	FileSize         int64     `json:"file_size"`
	Width            int       `json:"width"`
	Height           int       `json:"height"`
	DateAdded        time.Time `json:"date_added"`
	Favorite         bool      `json:"favorite"`
	Checksum         string    `json:"checksum,omitempty"`
	Tags             []string  `json:"tags,omitempty"`
	Albums           []string  `json:"albums,omitempty"`

	// FilePath is the managed storage location, derived rather than stored.
	FilePath string `json:"file_path,omitempty"`
}

type Album struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CatalogStats struct {
	TotalPhotos    int `json:"total_photos"`
	TotalAlbums    int `json:"total_albums"`
	TotalTags      int `json:"total_tags"`
	FavoritePhotos int `json:"favorite_photos"`
}

// PhotoUpdate carries a partial metadata update. Nil fields are left untouched.
type PhotoUpdate struct {
	Name        *string `json:"name" validate:"omitempty,photoname"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Favorite    *bool   `json:"favorite"`
}

// PhotoFilter narrows photo listings. Zero values mean "no constraint".
type PhotoFilter struct {
	Album        string
	Tags         []string
	MatchAllTags bool
	FavoriteOnly bool
	NameQuery    string
	DateFrom     time.Time
	DateTo       time.Time
}

type CreateAlbumRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100,photoname"`
	Description string `json:"description" validate:"max=2000"`
}

type UpdateAlbumRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100,photoname"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50,tagname"`
}

type RenameTagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50,tagname"`
}

type AssociationRequest struct {
	FileUUID string `json:"file_uuid" validate:"required,uuid4"`
}

type ImportFileRequest struct {
	Path        string   `json:"path" validate:"required"`
	Name        string   `json:"name" validate:"omitempty,photoname"`
	Description string   `json:"description" validate:"max=2000"`
	Albums      []string `json:"albums" validate:"dive,min=1,max=100"`
	Tags        []string `json:"tags" validate:"dive,min=1,max=50"`
}

type ImportDirectoryRequest struct {
	Path  string   `json:"path" validate:"required"`
	Album string   `json:"album" validate:"omitempty,min=1,max=100"`
	Tags  []string `json:"tags" validate:"dive,min=1,max=50"`
}
