package services

import (
	"os"
	"path/filepath"
	"time"

	"photo-catalog/models"
)

// maxDate stands in for an open upper bound on date-range listings.
var maxDate = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// PhotoService handles business logic for photos
type PhotoService struct {
	repo       PhotoRepository
	storageDir string
}

// NewPhotoService creates a new photo service
func NewPhotoService(repo PhotoRepository, storageDir string) *PhotoService {
	return &PhotoService{
		repo:       repo,
		storageDir: storageDir,
	}
}

// Get retrieves a photo by file UUID with its tags and albums attached
func (ps *PhotoService) Get(fileUUID string) (*models.Photo, error) {
	photo, err := ps.repo.GetPhotoByUUID(fileUUID)
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, ErrPhotoNotFound
	}

	if photo.Tags, err = ps.repo.GetPhotoTags(fileUUID); err != nil {
		return nil, err
	}
	if photo.Albums, err = ps.repo.GetPhotoAlbums(fileUUID); err != nil {
		return nil, err
	}

	photo.FilePath = ps.StoredPath(photo)
	return photo, nil
}

// List returns photos matching the filter. Album, tag set, name query, and
// date range are alternative entry points; the favorite flag narrows any of
// them.
func (ps *PhotoService) List(filter models.PhotoFilter) ([]models.Photo, error) {
	var photos []models.Photo
	var err error
	favoritesApplied := false

	switch {
	case filter.Album != "":
		photos, err = ps.repo.GetAlbumPhotos(filter.Album)
	case len(filter.Tags) > 0:
		photos, err = ps.repo.SearchPhotosByTags(normalizeTags(filter.Tags), filter.MatchAllTags)
	case filter.NameQuery != "":
		photos, err = ps.repo.SearchPhotosByName(filter.NameQuery, "name")
	case !filter.DateFrom.IsZero() || !filter.DateTo.IsZero():
		from, to := filter.DateFrom, filter.DateTo
		if to.IsZero() {
			to = maxDate
		}
		photos, err = ps.repo.GetPhotosByDateRange(from, to)
	case filter.FavoriteOnly:
		photos, err = ps.repo.GetFavoritePhotos()
		favoritesApplied = true
	default:
		photos, err = ps.repo.GetAllPhotos()
	}
	if err != nil {
		return nil, err
	}

	if filter.FavoriteOnly && !favoritesApplied {
		filtered := make([]models.Photo, 0, len(photos))
		for _, photo := range photos {
			if photo.Favorite {
				filtered = append(filtered, photo)
			}
		}
		photos = filtered
	}

	for i := range photos {
		photos[i].FilePath = ps.StoredPath(&photos[i])
	}

	return photos, nil
}

// Update applies a partial metadata update to a photo
func (ps *PhotoService) Update(fileUUID string, update models.PhotoUpdate) (*models.Photo, error) {
	if update.Name == nil && update.Description == nil && update.Favorite == nil {
		return nil, ErrEmptyUpdate
	}

	updated, err := ps.repo.UpdatePhoto(fileUUID, update)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrPhotoNotFound
	}

	return ps.Get(fileUUID)
}

// SetFavorite sets the favorite flag on a photo
func (ps *PhotoService) SetFavorite(fileUUID string, favorite bool) error {
	updated, err := ps.repo.SetFavorite(fileUUID, favorite)
	if err != nil {
		return err
	}
	if !updated {
		return ErrPhotoNotFound
	}
	return nil
}

// ToggleFavorite flips the favorite flag and returns the new value
func (ps *PhotoService) ToggleFavorite(fileUUID string) (bool, error) {
	photo, err := ps.repo.GetPhotoByUUID(fileUUID)
	if err != nil {
		return false, err
	}
	if photo == nil {
		return false, ErrPhotoNotFound
	}

	favorite := !photo.Favorite
	if _, err := ps.repo.SetFavorite(fileUUID, favorite); err != nil {
		return false, err
	}
	return favorite, nil
}

// Delete removes a photo from the catalog. Association rows cascade in the
// store; the managed file copy is removed best-effort afterwards.
func (ps *PhotoService) Delete(fileUUID string) error {
	photo, err := ps.repo.GetPhotoByUUID(fileUUID)
	if err != nil {
		return err
	}
	if photo == nil {
		return ErrPhotoNotFound
	}

	deleted, err := ps.repo.DeletePhoto(fileUUID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPhotoNotFound
	}

	if path := ps.StoredPath(photo); path != "" {
		_ = os.Remove(path)
	}

	return nil
}

// StoredPath returns the location of the managed file copy for a photo.
func (ps *PhotoService) StoredPath(photo *models.Photo) string {
	if ps.storageDir == "" || photo.FileType == "" {
		return ""
	}
	return filepath.Join(ps.storageDir, photo.FileUUID+"."+photo.FileType)
}
