package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photo-catalog/models"
)

// MockImportRepository is a mock implementation of ImportRepository interface
type MockImportRepository struct {
	mock.Mock
}

var _ ImportRepository = (*MockImportRepository)(nil)

func (m *MockImportRepository) CreatePhoto(photo *models.Photo) error {
	args := m.Called(photo)
	return args.Error(0)
}

func (m *MockImportRepository) GetPhotoByChecksum(checksum string) (*models.Photo, error) {
	args := m.Called(checksum)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Photo), args.Error(1)
}

func (m *MockImportRepository) AddPhotoToAlbum(fileUUID, albumName string) (bool, error) {
	args := m.Called(fileUUID, albumName)
	return args.Bool(0), args.Error(1)
}

func (m *MockImportRepository) AddTagToPhoto(fileUUID, tagName string) (bool, error) {
	args := m.Called(fileUUID, tagName)
	return args.Bool(0), args.Error(1)
}

func writeTestImage(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestImportFile(t *testing.T) {
	t.Run("unsupported extension rejected", func(t *testing.T) {
		repo := new(MockImportRepository)
		svc, err := NewImportService(repo, t.TempDir())
		require.NoError(t, err)

		path := writeTestImage(t, t.TempDir(), "notes.txt", []byte("not an image"))

		_, err = svc.ImportFile(path, ImportOptions{})
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("duplicate checksum rejected", func(t *testing.T) {
		repo := new(MockImportRepository)
		svc, err := NewImportService(repo, t.TempDir())
		require.NoError(t, err)

		path := writeTestImage(t, t.TempDir(), "photo.jpg", []byte("image bytes"))
		repo.On("GetPhotoByChecksum", mock.Anything).Return(&models.Photo{FileUUID: "existing"}, nil)

		_, err = svc.ImportFile(path, ImportOptions{})
		assert.ErrorIs(t, err, ErrDuplicatePhoto)
	})

	t.Run("import copies file and records metadata", func(t *testing.T) {
		repo := new(MockImportRepository)
		storageDir := t.TempDir()
		svc, err := NewImportService(repo, storageDir)
		require.NoError(t, err)

		path := writeTestImage(t, t.TempDir(), "beach sunset.jpg", []byte("image bytes"))

		repo.On("GetPhotoByChecksum", mock.Anything).Return(nil, nil)
		repo.On("CreatePhoto", mock.MatchedBy(func(photo *models.Photo) bool {
			return photo.Name == "beach sunset" &&
				photo.OriginalFilename == "beach sunset.jpg" &&
				photo.FileType == "jpg" &&
				photo.FileSize == int64(len("image bytes")) &&
				photo.Checksum != "" &&
				photo.FileUUID != ""
		})).Return(nil)
		repo.On("AddPhotoToAlbum", mock.Anything, "Vacation").Return(true, nil)
		repo.On("AddTagToPhoto", mock.Anything, "beach").Return(true, nil)

		photo, err := svc.ImportFile(path, ImportOptions{
			Albums: []string{"Vacation"},
			Tags:   []string{" Beach "},
		})
		require.NoError(t, err)

		// The managed copy exists under the photo's UUID name
		stored := filepath.Join(storageDir, photo.FileUUID+".jpg")
		_, statErr := os.Stat(stored)
		assert.NoError(t, statErr)

		repo.AssertExpectations(t)
	})

	t.Run("stored copy removed when insert fails", func(t *testing.T) {
		repo := new(MockImportRepository)
		storageDir := t.TempDir()
		svc, err := NewImportService(repo, storageDir)
		require.NoError(t, err)

		path := writeTestImage(t, t.TempDir(), "photo.jpg", []byte("image bytes"))

		repo.On("GetPhotoByChecksum", mock.Anything).Return(nil, nil)
		repo.On("CreatePhoto", mock.Anything).Return(assert.AnError)

		_, err = svc.ImportFile(path, ImportOptions{})
		require.Error(t, err)

		entries, readErr := os.ReadDir(storageDir)
		require.NoError(t, readErr)
		assert.Empty(t, entries)
	})
}

func TestImportDirectory(t *testing.T) {
	repo := new(MockImportRepository)
	svc, err := NewImportService(repo, t.TempDir())
	require.NoError(t, err)

	srcDir := t.TempDir()
	writeTestImage(t, srcDir, "one.jpg", []byte("first image"))
	writeTestImage(t, srcDir, "two.png", []byte("second image"))
	writeTestImage(t, srcDir, "ignore.txt", []byte("not an image"))

	nested := filepath.Join(srcDir, "nested")
	require.NoError(t, os.MkdirAll(nested, 0755))
	writeTestImage(t, nested, "three.gif", []byte("third image"))

	// First two images are new; the third hits the duplicate check.
	repo.On("GetPhotoByChecksum", mock.Anything).Return(nil, nil).Twice()
	repo.On("GetPhotoByChecksum", mock.Anything).Return(&models.Photo{FileUUID: "existing"}, nil).Once()
	repo.On("CreatePhoto", mock.Anything).Return(nil).Twice()

	summary, err := svc.ImportDirectory(srcDir, ImportOptions{})
	require.NoError(t, err)

	assert.Len(t, summary.Imported, 2)
	assert.Equal(t, 1, summary.Duplicates)
	assert.Equal(t, 0, summary.Failed)
}
