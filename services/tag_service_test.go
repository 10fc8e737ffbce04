package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"photo-catalog/database"
	"photo-catalog/models"
)

// MockTagRepository is a mock implementation of TagRepository interface
type MockTagRepository struct {
	mock.Mock
}

var _ TagRepository = (*MockTagRepository)(nil)

func (m *MockTagRepository) CreateTag(tag *models.Tag) error {
	args := m.Called(tag)
	return args.Error(0)
}

func (m *MockTagRepository) GetTags() ([]models.Tag, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) SearchTagsByName(query string) ([]models.Tag, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) GetTagByName(name string) (*models.Tag, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) RenameTag(oldName, newName string) (bool, error) {
	args := m.Called(oldName, newName)
	return args.Bool(0), args.Error(1)
}

func (m *MockTagRepository) DeleteTag(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *MockTagRepository) AddTagToPhoto(fileUUID, tagName string) (bool, error) {
	args := m.Called(fileUUID, tagName)
	return args.Bool(0), args.Error(1)
}

func (m *MockTagRepository) RemoveTagFromPhoto(fileUUID, tagName string) (bool, error) {
	args := m.Called(fileUUID, tagName)
	return args.Bool(0), args.Error(1)
}

func (m *MockTagRepository) GetPhotoTags(fileUUID string) ([]string, error) {
	args := m.Called(fileUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTagRepository) GetPhotoByUUID(fileUUID string) (*models.Photo, error) {
	args := m.Called(fileUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Photo), args.Error(1)
}

func TestTagServiceCreate(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		repo := new(MockTagRepository)
		svc := NewTagService(repo)

		repo.On("CreateTag", mock.MatchedBy(func(tag *models.Tag) bool {
			return tag.Name == "beach"
		})).Return(nil)

		tag, err := svc.Create("  Beach ")
		assert.NoError(t, err)
		assert.Equal(t, "beach", tag.Name)
		repo.AssertExpectations(t)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		repo := new(MockTagRepository)
		svc := NewTagService(repo)

		_, err := svc.Create("   ")
		assert.ErrorIs(t, err, ErrEmptyTagName)
		repo.AssertNotCalled(t, "CreateTag", mock.Anything)
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo := new(MockTagRepository)
		svc := NewTagService(repo)

		repo.On("CreateTag", mock.Anything).Return(database.ErrUniqueViolation)

		_, err := svc.Create("beach")
		assert.ErrorIs(t, err, ErrTagAlreadyExists)
	})
}

func TestTagServiceSearch(t *testing.T) {
	repo := new(MockTagRepository)
	svc := NewTagService(repo)

	repo.On("SearchTagsByName", "beach").Return([]models.Tag{{ID: 1, Name: "beach"}}, nil)

	tags, err := svc.Search(" Beach ")
	assert.NoError(t, err)
	assert.Len(t, tags, 1)
	repo.AssertExpectations(t)
}

func TestTagServiceTagPhoto(t *testing.T) {
	t.Run("unknown photo", func(t *testing.T) {
		repo := new(MockTagRepository)
		svc := NewTagService(repo)

		repo.On("GetPhotoByUUID", "no-such").Return(nil, nil)

		err := svc.TagPhoto("no-such", "beach")
		assert.ErrorIs(t, err, ErrPhotoNotFound)
	})

	t.Run("normalizes before attaching", func(t *testing.T) {
		repo := new(MockTagRepository)
		svc := NewTagService(repo)

		repo.On("GetPhotoByUUID", "uuid-1").Return(&models.Photo{FileUUID: "uuid-1"}, nil)
		repo.On("AddTagToPhoto", "uuid-1", "beach").Return(true, nil)

		err := svc.TagPhoto("uuid-1", " BEACH ")
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestTagServiceUntagPhoto(t *testing.T) {
	repo := new(MockTagRepository)
	svc := NewTagService(repo)

	repo.On("RemoveTagFromPhoto", "uuid-1", "beach").Return(false, nil)

	err := svc.UntagPhoto("uuid-1", "beach")
	assert.ErrorIs(t, err, ErrTagNotFound)
}
