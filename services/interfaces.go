package services

import (
	"time"

	"photo-catalog/models"
)

// PhotoRepository defines the interface for photo data access
type PhotoRepository interface {
	CreatePhoto(photo *models.Photo) error
	GetPhotoByUUID(fileUUID string) (*models.Photo, error)
	GetPhotoByChecksum(checksum string) (*models.Photo, error)
	GetAllPhotos() ([]models.Photo, error)
	GetFavoritePhotos() ([]models.Photo, error)
	GetPhotosByDateRange(from, to time.Time) ([]models.Photo, error)
	SearchPhotosByName(query, sortBy string) ([]models.Photo, error)
	SearchPhotosByTags(tags []string, matchAll bool) ([]models.Photo, error)
	UpdatePhoto(fileUUID string, update models.PhotoUpdate) (bool, error)
	SetFavorite(fileUUID string, favorite bool) (bool, error)
	DeletePhoto(fileUUID string) (bool, error)
	GetPhotoTags(fileUUID string) ([]string, error)
	GetPhotoAlbums(fileUUID string) ([]string, error)
	GetAlbumPhotos(albumName string) ([]models.Photo, error)
}

// AlbumRepository defines the interface for album data access
type AlbumRepository interface {
	CreateAlbum(album *models.Album) error
	GetAlbums() ([]models.Album, error)
	SearchAlbumsByName(query string) ([]models.Album, error)
	GetAlbumByName(name string) (*models.Album, error)
	UpdateAlbum(oldName, newName string, description *string) (bool, error)
	DeleteAlbum(name string) (bool, error)
	AddPhotoToAlbum(fileUUID, albumName string) (bool, error)
	RemovePhotoFromAlbum(fileUUID, albumName string) (bool, error)
	GetAlbumPhotos(albumName string) ([]models.Photo, error)
	GetPhotosNotInAlbum(albumName string) ([]models.Photo, error)
	PhotoInAlbum(fileUUID, albumName string) (bool, error)
	GetPhotoByUUID(fileUUID string) (*models.Photo, error)
}

// TagRepository defines the interface for tag data access
type TagRepository interface {
	CreateTag(tag *models.Tag) error
	GetTags() ([]models.Tag, error)
	SearchTagsByName(query string) ([]models.Tag, error)
	GetTagByName(name string) (*models.Tag, error)
	RenameTag(oldName, newName string) (bool, error)
	DeleteTag(name string) (bool, error)
	AddTagToPhoto(fileUUID, tagName string) (bool, error)
	RemoveTagFromPhoto(fileUUID, tagName string) (bool, error)
	GetPhotoTags(fileUUID string) ([]string, error)
	GetPhotoByUUID(fileUUID string) (*models.Photo, error)
}

// ImportRepository is the slice of the catalog store the importer needs
type ImportRepository interface {
	CreatePhoto(photo *models.Photo) error
	GetPhotoByChecksum(checksum string) (*models.Photo, error)
	AddPhotoToAlbum(fileUUID, albumName string) (bool, error)
	AddTagToPhoto(fileUUID, tagName string) (bool, error)
}

// StatsRepository provides catalog-wide counters
type StatsRepository interface {
	GetStats() (*models.CatalogStats, error)
}
