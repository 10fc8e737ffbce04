package services

import (
	"errors"

	"photo-catalog/database"
	"photo-catalog/models"
)

// AlbumService handles business logic for albums
type AlbumService struct {
	repo AlbumRepository
}

// NewAlbumService creates a new album service
func NewAlbumService(repo AlbumRepository) *AlbumService {
	return &AlbumService{repo: repo}
}

// Create makes a new album
func (as *AlbumService) Create(name, description string) (*models.Album, error) {
	album := &models.Album{
		Name:        name,
		Description: description,
	}

	if err := as.repo.CreateAlbum(album); err != nil {
		if errors.Is(err, database.ErrUniqueViolation) {
			return nil, ErrAlbumAlreadyExists
		}
		return nil, err
	}

	return album, nil
}

// List returns all albums
func (as *AlbumService) List() ([]models.Album, error) {
	return as.repo.GetAlbums()
}

// Search finds albums whose name contains the query
func (as *AlbumService) Search(query string) ([]models.Album, error) {
	return as.repo.SearchAlbumsByName(query)
}

// Get returns an album by name
func (as *AlbumService) Get(name string) (*models.Album, error) {
	album, err := as.repo.GetAlbumByName(name)
	if err != nil {
		return nil, err
	}
	if album == nil {
		return nil, ErrAlbumNotFound
	}
	return album, nil
}

// Update renames an album and optionally replaces its description
func (as *AlbumService) Update(oldName, newName string, description *string) (*models.Album, error) {
	updated, err := as.repo.UpdateAlbum(oldName, newName, description)
	if err != nil {
		if errors.Is(err, database.ErrUniqueViolation) {
			return nil, ErrAlbumAlreadyExists
		}
		return nil, err
	}
	if !updated {
		return nil, ErrAlbumNotFound
	}

	return as.Get(newName)
}

// Delete removes an album. Photo memberships go with it; photos stay.
func (as *AlbumService) Delete(name string) error {
	deleted, err := as.repo.DeleteAlbum(name)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAlbumNotFound
	}
	return nil
}

// Photos returns the photos in an album
func (as *AlbumService) Photos(name string) ([]models.Photo, error) {
	album, err := as.repo.GetAlbumByName(name)
	if err != nil {
		return nil, err
	}
	if album == nil {
		return nil, ErrAlbumNotFound
	}
	return as.repo.GetAlbumPhotos(name)
}

// PhotosNotIn returns photos that are not members of the album
func (as *AlbumService) PhotosNotIn(name string) ([]models.Photo, error) {
	album, err := as.repo.GetAlbumByName(name)
	if err != nil {
		return nil, err
	}
	if album == nil {
		return nil, ErrAlbumNotFound
	}
	return as.repo.GetPhotosNotInAlbum(name)
}

// AddPhoto puts a photo in the album, creating the album if needed
func (as *AlbumService) AddPhoto(fileUUID, albumName string) error {
	photo, err := as.repo.GetPhotoByUUID(fileUUID)
	if err != nil {
		return err
	}
	if photo == nil {
		return ErrPhotoNotFound
	}

	_, err = as.repo.AddPhotoToAlbum(fileUUID, albumName)
	return err
}

// RemovePhoto drops a photo's membership in the album
func (as *AlbumService) RemovePhoto(fileUUID, albumName string) error {
	removed, err := as.repo.RemovePhotoFromAlbum(fileUUID, albumName)
	if err != nil {
		return err
	}
	if !removed {
		return ErrAlbumNotFound
	}
	return nil
}
