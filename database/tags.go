package database

import (
	"database/sql"
	"strings"

	"photo-catalog/models"
)

// ==================== TAGS ====================

// CreateTag inserts a new tag. Fails with ErrUniqueViolation if the name is
// taken. Names are stored as given; normalization happens in the service
// layer.
func (r *Repository) CreateTag(tag *models.Tag) error {
	result, err := r.db.Exec(`INSERT INTO tags (name) VALUES (?)`, tag.Name)
	if err != nil {
		return translateError(err)
	}

	tag.ID, err = result.LastInsertId()
	return err
}

// GetTags returns all tags ordered by name.
func (r *Repository) GetTags() ([]models.Tag, error) {
	rows, err := r.db.Query(`SELECT id, name FROM tags ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]models.Tag, 0)
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}

// SearchTagsByName finds tags whose name contains the query.
func (r *Repository) SearchTagsByName(query string) ([]models.Tag, error) {
	rows, err := r.db.Query(`
		SELECT id, name FROM tags
		WHERE name LIKE ?
		ORDER BY name ASC
	`, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]models.Tag, 0)
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}

// GetTagByName returns the tag with the given name, or nil if it doesn't
// exist.
func (r *Repository) GetTagByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.QueryRow(`
		SELECT id, name FROM tags WHERE name = ?
	`, name).Scan(&tag.ID, &tag.Name)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &tag, nil
}

// RenameTag changes a tag's name. Returns false if the tag doesn't exist.
func (r *Repository) RenameTag(oldName, newName string) (bool, error) {
	result, err := r.db.Exec(`
		UPDATE tags SET name = ? WHERE name = ?
	`, newName, oldName)
	if err != nil {
		return false, translateError(err)
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

// DeleteTag removes a tag. Tagging rows cascade; photos stay. Returns false
// if the tag didn't exist.
func (r *Repository) DeleteTag(name string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM tags WHERE name = ?`, name)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

// AddTagToPhoto attaches a tag to a photo, creating the tag if needed.
// Returns false if the photo is unknown or already tagged.
func (r *Repository) AddTagToPhoto(fileUUID, tagName string) (bool, error) {
	if _, err := r.db.Exec(`
		INSERT OR IGNORE INTO tags (name) VALUES (?)
	`, tagName); err != nil {
		return false, translateError(err)
	}

	result, err := r.db.Exec(`
		INSERT OR IGNORE INTO photo_tags (photo_id, tag_id)
		SELECT photos.id, tags.id
		FROM photos, tags
		WHERE photos.file_uuid = ? AND tags.name = ?
	`, fileUUID, tagName)
	if err != nil {
		return false, translateError(err)
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

// RemoveTagFromPhoto detaches a tag from a photo. Returns false if the photo
// wasn't tagged with it.
func (r *Repository) RemoveTagFromPhoto(fileUUID, tagName string) (bool, error) {
	result, err := r.db.Exec(`
		DELETE FROM photo_tags
		WHERE photo_id = (SELECT id FROM photos WHERE file_uuid = ?)
		AND tag_id = (SELECT id FROM tags WHERE name = ?)
	`, fileUUID, tagName)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

// GetPhotoTags returns the tag names attached to a photo.
func (r *Repository) GetPhotoTags(fileUUID string) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT t.name FROM tags t
		JOIN photo_tags pt ON t.id = pt.tag_id
		JOIN photos p ON pt.photo_id = p.id
		WHERE p.file_uuid = ?
		ORDER BY t.name ASC
	`, fileUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// SearchPhotosByTags finds photos carrying the given tags. With matchAll the
// photo must carry every tag; otherwise any one of them is enough.
func (r *Repository) SearchPhotosByTags(tags []string, matchAll bool) ([]models.Photo, error) {
	if len(tags) == 0 {
		return make([]models.Photo, 0), nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(tags)), ",")
	args := make([]interface{}, 0, len(tags)+1)
	for _, tag := range tags {
		args = append(args, tag)
	}

	var query string
	if matchAll {
		query = `
			SELECT ` + photoPrefixedColumns + ` FROM photos p
			WHERE p.id IN (
				SELECT pt.photo_id FROM photo_tags pt
				JOIN tags t ON pt.tag_id = t.id
				WHERE t.name IN (` + placeholders + `)
				GROUP BY pt.photo_id
				HAVING COUNT(DISTINCT t.name) = ?
			)
			ORDER BY p.date_added DESC`
		args = append(args, len(tags))
	} else {
		query = `
			SELECT DISTINCT ` + photoPrefixedColumns + ` FROM photos p
			JOIN photo_tags pt ON p.id = pt.photo_id
			JOIN tags t ON pt.tag_id = t.id
			WHERE t.name IN (` + placeholders + `)
			ORDER BY p.date_added DESC`
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return collectPhotos(rows)
}
