package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"photo-catalog/models"
)

// ==================== MOCKS ====================

// MockPhotoRepository is a mock implementation of PhotoRepository interface
type MockPhotoRepository struct {
	mock.Mock
}

// Ensure MockPhotoRepository implements PhotoRepository interface
var _ PhotoRepository = (*MockPhotoRepository)(nil)

func (m *MockPhotoRepository) CreatePhoto(photo *models.Photo) error {
	args := m.Called(photo)
	return args.Error(0)
}

func (m *MockPhotoRepository) GetPhotoByUUID(fileUUID string) (*models.Photo, error) {
	args := m.Called(fileUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Photo), args.Error(1)
}

func (m *MockPhotoRepository) GetPhotoByChecksum(checksum string) (*models.Photo, error) {
	args := m.Called(checksum)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Photo), args.Error(1)
}

func (m *MockPhotoRepository) GetAllPhotos() ([]models.Photo, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Photo), args.Error(1)
}

func (m *MockPhotoRepository) GetFavoritePhotos() ([]models.Photo, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Photo), args.Error(1)
}

func (m *MockPhotoRepository) GetPhotosByDateRange(from, to time.Time) ([]models.Photo, error) {
	args := m.Called(from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Photo), args.Error(1)
}

func (m *MockPhotoRepository) SearchPhotosByName(query, sortBy string) ([]models.Photo, error) {
	args := m.Called(query, sortBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Photo), args.Error(1)
}

func (m *MockPhotoRepository) SearchPhotosByTags(tags []string, matchAll bool) ([]models.Photo, error) {
	args := m.Called(tags, matchAll)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Photo), args.Error(1)
}

func (m *MockPhotoRepository) UpdatePhoto(fileUUID string, update models.PhotoUpdate) (bool, error) {
	args := m.Called(fileUUID, update)
	return args.Bool(0), args.Error(1)
}

func (m *MockPhotoRepository) SetFavorite(fileUUID string, favorite bool) (bool, error) {
	args := m.Called(fileUUID, favorite)
	return args.Bool(0), args.Error(1)
}

func (m *MockPhotoRepository) DeletePhoto(fileUUID string) (bool, error) {
	args := m.Called(fileUUID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPhotoRepository) GetPhotoTags(fileUUID string) ([]string, error) {
	args := m.Called(fileUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPhotoRepository) GetPhotoAlbums(fileUUID string) ([]string, error) {
	args := m.Called(fileUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPhotoRepository) GetAlbumPhotos(albumName string) ([]models.Photo, error) {
	args := m.Called(albumName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Photo), args.Error(1)
}

// ==================== TESTS ====================

func TestPhotoServiceGet(t *testing.T) {
	t.Run("attaches tags and albums", func(t *testing.T) {
		repo := new(MockPhotoRepository)
		svc := NewPhotoService(repo, "/storage")

		repo.On("GetPhotoByUUID", "uuid-1").Return(&models.Photo{
			FileUUID: "uuid-1",
			Name:     "sunset",
			FileType: "jpg",
		}, nil)
		repo.On("GetPhotoTags", "uuid-1").Return([]string{"beach"}, nil)
		repo.On("GetPhotoAlbums", "uuid-1").Return([]string{"Vacation"}, nil)

		photo, err := svc.Get("uuid-1")
		assert.NoError(t, err)
		assert.Equal(t, []string{"beach"}, photo.Tags)
		assert.Equal(t, []string{"Vacation"}, photo.Albums)
		assert.Contains(t, photo.FilePath, "uuid-1.jpg")
		repo.AssertExpectations(t)
	})

	t.Run("missing photo", func(t *testing.T) {
		repo := new(MockPhotoRepository)
		svc := NewPhotoService(repo, "/storage")

		repo.On("GetPhotoByUUID", "no-such").Return(nil, nil)

		_, err := svc.Get("no-such")
		assert.ErrorIs(t, err, ErrPhotoNotFound)
	})
}

func TestPhotoServiceList(t *testing.T) {
	t.Run("album filter", func(t *testing.T) {
		repo := new(MockPhotoRepository)
		svc := NewPhotoService(repo, "/storage")

		repo.On("GetAlbumPhotos", "Vacation").Return([]models.Photo{
			{FileUUID: "uuid-1", FileType: "jpg"},
		}, nil)

		photos, err := svc.List(models.PhotoFilter{Album: "Vacation"})
		assert.NoError(t, err)
		assert.Len(t, photos, 1)
		repo.AssertExpectations(t)
	})

	t.Run("tag filter normalizes names", func(t *testing.T) {
		repo := new(MockPhotoRepository)
		svc := NewPhotoService(repo, "/storage")

		repo.On("SearchPhotosByTags", []string{"beach"}, true).Return([]models.Photo{}, nil)

		_, err := svc.List(models.PhotoFilter{Tags: []string{" Beach "}, MatchAllTags: true})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("favorite flag narrows album listing", func(t *testing.T) {
		repo := new(MockPhotoRepository)
		svc := NewPhotoService(repo, "/storage")

		repo.On("GetAlbumPhotos", "Vacation").Return([]models.Photo{
			{FileUUID: "uuid-1", Favorite: true},
			{FileUUID: "uuid-2", Favorite: false},
		}, nil)

		photos, err := svc.List(models.PhotoFilter{Album: "Vacation", FavoriteOnly: true})
		assert.NoError(t, err)
		assert.Len(t, photos, 1)
		assert.Equal(t, "uuid-1", photos[0].FileUUID)
	})

	t.Run("favorites only", func(t *testing.T) {
		repo := new(MockPhotoRepository)
		svc := NewPhotoService(repo, "/storage")

		repo.On("GetFavoritePhotos").Return([]models.Photo{{FileUUID: "uuid-1", Favorite: true}}, nil)

		photos, err := svc.List(models.PhotoFilter{FavoriteOnly: true})
		assert.NoError(t, err)
		assert.Len(t, photos, 1)
		repo.AssertExpectations(t)
	})

	t.Run("open-ended date range gets an upper bound", func(t *testing.T) {
		repo := new(MockPhotoRepository)
		svc := NewPhotoService(repo, "/storage")

		from := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
		repo.On("GetPhotosByDateRange", from, maxDate).Return([]models.Photo{}, nil)

		_, err := svc.List(models.PhotoFilter{DateFrom: from})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestPhotoServiceUpdate(t *testing.T) {
	t.Run("empty update rejected", func(t *testing.T) {
		repo := new(MockPhotoRepository)
		svc := NewPhotoService(repo, "/storage")

		_, err := svc.Update("uuid-1", models.PhotoUpdate{})
		assert.ErrorIs(t, err, ErrEmptyUpdate)
	})

	t.Run("unknown photo", func(t *testing.T) {
		repo := new(MockPhotoRepository)
		svc := NewPhotoService(repo, "/storage")

		name := "x"
		repo.On("UpdatePhoto", "no-such", mock.Anything).Return(false, nil)

		_, err := svc.Update("no-such", models.PhotoUpdate{Name: &name})
		assert.ErrorIs(t, err, ErrPhotoNotFound)
	})
}

func TestPhotoServiceToggleFavorite(t *testing.T) {
	repo := new(MockPhotoRepository)
	svc := NewPhotoService(repo, "/storage")

	repo.On("GetPhotoByUUID", "uuid-1").Return(&models.Photo{FileUUID: "uuid-1", Favorite: false}, nil)
	repo.On("SetFavorite", "uuid-1", true).Return(true, nil)

	favorite, err := svc.ToggleFavorite("uuid-1")
	assert.NoError(t, err)
	assert.True(t, favorite)
	repo.AssertExpectations(t)
}

func TestPhotoServiceDelete(t *testing.T) {
	t.Run("missing photo", func(t *testing.T) {
		repo := new(MockPhotoRepository)
		svc := NewPhotoService(repo, "/storage")

		repo.On("GetPhotoByUUID", "no-such").Return(nil, nil)

		err := svc.Delete("no-such")
		assert.ErrorIs(t, err, ErrPhotoNotFound)
	})

	t.Run("repo failure propagates", func(t *testing.T) {
		repo := new(MockPhotoRepository)
		svc := NewPhotoService(repo, "/storage")

		repoErr := errors.New("disk on fire")
		repo.On("GetPhotoByUUID", "uuid-1").Return(&models.Photo{FileUUID: "uuid-1"}, nil)
		repo.On("DeletePhoto", "uuid-1").Return(false, repoErr)

		err := svc.Delete("uuid-1")
		assert.ErrorIs(t, err, repoErr)
	})
}
