package services

import "errors"

// Common service-level errors
var (
	// Photo errors
	ErrPhotoNotFound  = errors.New("photo not found")
	ErrEmptyUpdate    = errors.New("no fields to update")
	ErrDuplicatePhoto = errors.New("photo already exists in catalog")

	// Import errors
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// Album errors
	ErrAlbumNotFound      = errors.New("album not found")
	ErrAlbumAlreadyExists = errors.New("album already exists")

	// Tag errors
	ErrTagNotFound      = errors.New("tag not found")
	ErrTagAlreadyExists = errors.New("tag already exists")
	ErrEmptyTagName     = errors.New("tag name is empty")
)
