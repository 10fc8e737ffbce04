package services

import (
	"errors"
	"strings"

	"photo-catalog/database"
	"photo-catalog/models"
)

// TagService handles business logic for tags
type TagService struct {
	repo TagRepository
}

// NewTagService creates a new tag service
func NewTagService(repo TagRepository) *TagService {
	return &TagService{repo: repo}
}

// normalizeTag lower-cases and trims a tag name so "Beach" and "beach "
// resolve to the same tag.
func normalizeTag(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// normalizeTags normalizes a tag list, dropping entries that end up empty.
func normalizeTags(names []string) []string {
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		if tag := normalizeTag(name); tag != "" {
			normalized = append(normalized, tag)
		}
	}
	return normalized
}

// Create makes a new tag
func (ts *TagService) Create(name string) (*models.Tag, error) {
	name = normalizeTag(name)
	if name == "" {
		return nil, ErrEmptyTagName
	}

	tag := &models.Tag{Name: name}
	if err := ts.repo.CreateTag(tag); err != nil {
		if errors.Is(err, database.ErrUniqueViolation) {
			return nil, ErrTagAlreadyExists
		}
		return nil, err
	}

	return tag, nil
}

// List returns all tags
func (ts *TagService) List() ([]models.Tag, error) {
	return ts.repo.GetTags()
}

// Search finds tags whose name contains the query. The query is normalized
// the same way stored tag names are.
func (ts *TagService) Search(query string) ([]models.Tag, error) {
	return ts.repo.SearchTagsByName(normalizeTag(query))
}

// Rename changes a tag's name
func (ts *TagService) Rename(oldName, newName string) (*models.Tag, error) {
	oldName = normalizeTag(oldName)
	newName = normalizeTag(newName)
	if oldName == "" || newName == "" {
		return nil, ErrEmptyTagName
	}

	renamed, err := ts.repo.RenameTag(oldName, newName)
	if err != nil {
		if errors.Is(err, database.ErrUniqueViolation) {
			return nil, ErrTagAlreadyExists
		}
		return nil, err
	}
	if !renamed {
		return nil, ErrTagNotFound
	}

	return ts.repo.GetTagByName(newName)
}

// Delete removes a tag. Photo taggings go with it; photos stay.
func (ts *TagService) Delete(name string) error {
	name = normalizeTag(name)
	if name == "" {
		return ErrEmptyTagName
	}

	deleted, err := ts.repo.DeleteTag(name)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTagNotFound
	}
	return nil
}

// TagPhoto attaches a tag to a photo, creating the tag if needed
func (ts *TagService) TagPhoto(fileUUID, tagName string) error {
	tagName = normalizeTag(tagName)
	if tagName == "" {
		return ErrEmptyTagName
	}

	photo, err := ts.repo.GetPhotoByUUID(fileUUID)
	if err != nil {
		return err
	}
	if photo == nil {
		return ErrPhotoNotFound
	}

	_, err = ts.repo.AddTagToPhoto(fileUUID, tagName)
	return err
}

// UntagPhoto detaches a tag from a photo
func (ts *TagService) UntagPhoto(fileUUID, tagName string) error {
	tagName = normalizeTag(tagName)
	if tagName == "" {
		return ErrEmptyTagName
	}

	removed, err := ts.repo.RemoveTagFromPhoto(fileUUID, tagName)
	if err != nil {
		return err
	}
	if !removed {
		return ErrTagNotFound
	}
	return nil
}

// PhotoTags returns the tags attached to a photo
func (ts *TagService) PhotoTags(fileUUID string) ([]string, error) {
	photo, err := ts.repo.GetPhotoByUUID(fileUUID)
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, ErrPhotoNotFound
	}

	return ts.repo.GetPhotoTags(fileUUID)
}
