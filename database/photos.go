package database

import (
	"database/sql"
	"time"

	"photo-catalog/models"
)

// ==================== PHOTOS ====================

// CreatePhoto inserts a new photo row and fills in the generated ID and
// timestamp. Fails with ErrUniqueViolation on a duplicate file UUID or
// checksum.
func (r *Repository) CreatePhoto(photo *models.Photo) error {
	checksum := sql.NullString{String: photo.Checksum, Valid: photo.Checksum != ""}

	if photo.DateAdded.IsZero() {
		photo.DateAdded = time.Now()
	}

	result, err := r.db.Exec(`
		INSERT INTO photos (file_uuid, name, original_filename, description,
			file_type, file_size, width, height, date_added, favorite, checksum)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		photo.FileUUID, photo.Name, photo.OriginalFilename, photo.Description,
		photo.FileType, photo.FileSize, photo.Width, photo.Height,
		photo.DateAdded, photo.Favorite, checksum,
	)
	if err != nil {
		return translateError(err)
	}

	photo.ID, err = result.LastInsertId()
	return err
}

// GetPhotoByUUID returns the photo with the given file UUID, or nil if it
// doesn't exist.
func (r *Repository) GetPhotoByUUID(fileUUID string) (*models.Photo, error) {
	photo, err := scanPhoto(r.db.QueryRow(`
		SELECT `+photoColumns+` FROM photos WHERE file_uuid = ?
	`, fileUUID))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return photo, nil
}

// GetPhotoByChecksum looks a photo up by content checksum. Used for
// duplicate detection before import.
func (r *Repository) GetPhotoByChecksum(checksum string) (*models.Photo, error) {
	photo, err := scanPhoto(r.db.QueryRow(`
		SELECT `+photoColumns+` FROM photos WHERE checksum = ?
	`, checksum))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return photo, nil
}

// GetAllPhotos returns every photo, newest first.
func (r *Repository) GetAllPhotos() ([]models.Photo, error) {
	rows, err := r.db.Query(`
		SELECT ` + photoColumns + ` FROM photos ORDER BY date_added DESC
	`)
	if err != nil {
		return nil, err
	}
	return collectPhotos(rows)
}

// GetFavoritePhotos returns exactly the photos with the favorite flag set.
func (r *Repository) GetFavoritePhotos() ([]models.Photo, error) {
	rows, err := r.db.Query(`
		SELECT ` + photoColumns + ` FROM photos
		WHERE favorite = 1
		ORDER BY date_added DESC
	`)
	if err != nil {
		return nil, err
	}
	return collectPhotos(rows)
}

// GetPhotosByDateRange returns photos added within [from, to], inclusive.
func (r *Repository) GetPhotosByDateRange(from, to time.Time) ([]models.Photo, error) {
	rows, err := r.db.Query(`
		SELECT `+photoColumns+` FROM photos
		WHERE date_added >= ? AND date_added <= ?
		ORDER BY date_added DESC
	`, from, to)
	if err != nil {
		return nil, err
	}
	return collectPhotos(rows)
}

// SearchPhotosByName finds photos whose name contains the query,
// case-insensitively. sortBy is either "name" or "date_added".
func (r *Repository) SearchPhotosByName(query, sortBy string) ([]models.Photo, error) {
	order := "name ASC"
	if sortBy == "date_added" {
		order = "date_added DESC"
	}

	rows, err := r.db.Query(`
		SELECT `+photoColumns+` FROM photos
		WHERE name LIKE ?
		ORDER BY `+order,
		"%"+query+"%",
	)
	if err != nil {
		return nil, err
	}
	return collectPhotos(rows)
}

// UpdatePhoto applies a partial metadata update. Returns false if the photo
// doesn't exist or nothing was requested.
func (r *Repository) UpdatePhoto(fileUUID string, update models.PhotoUpdate) (bool, error) {
	sets := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)

	if update.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *update.Name)
	}
	if update.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *update.Description)
	}
	if update.Favorite != nil {
		sets = append(sets, "favorite = ?")
		args = append(args, *update.Favorite)
	}

	if len(sets) == 0 {
		return false, nil
	}

	query := "UPDATE photos SET " + sets[0]
	for _, s := range sets[1:] {
		query += ", " + s
	}
	query += " WHERE file_uuid = ?"
	args = append(args, fileUUID)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return false, translateError(err)
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

// SetFavorite flips the favorite flag on a photo. Returns false if the photo
// doesn't exist.
func (r *Repository) SetFavorite(fileUUID string, favorite bool) (bool, error) {
	result, err := r.db.Exec(`
		UPDATE photos SET favorite = ? WHERE file_uuid = ?
	`, favorite, fileUUID)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

// DeletePhoto removes a photo. Album and tag association rows go with it
// via ON DELETE CASCADE. Returns false if the photo didn't exist.
func (r *Repository) DeletePhoto(fileUUID string) (bool, error) {
	result, err := r.db.Exec(`
		DELETE FROM photos WHERE file_uuid = ?
	`, fileUUID)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}
