package database

import (
	"database/sql"

	"photo-catalog/models"
)

// ==================== ALBUMS ====================

// CreateAlbum inserts a new album. Fails with ErrUniqueViolation if the name
// is taken.
func (r *Repository) CreateAlbum(album *models.Album) error {
	result, err := r.db.Exec(`
		INSERT INTO albums (name, description) VALUES (?, ?)
	`, album.Name, album.Description)
	if err != nil {
		return translateError(err)
	}

	album.ID, err = result.LastInsertId()
	return err
}

// GetAlbums returns all albums ordered by name.
func (r *Repository) GetAlbums() ([]models.Album, error) {
	rows, err := r.db.Query(`
		SELECT id, name, description FROM albums ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	albums := make([]models.Album, 0)
	for rows.Next() {
		var album models.Album
		if err := rows.Scan(&album.ID, &album.Name, &album.Description); err != nil {
			return nil, err
		}
		albums = append(albums, album)
	}

	return albums, rows.Err()
}

// SearchAlbumsByName finds albums whose name contains the query,
// case-insensitively.
func (r *Repository) SearchAlbumsByName(query string) ([]models.Album, error) {
	rows, err := r.db.Query(`
		SELECT id, name, description FROM albums
		WHERE name LIKE ?
		ORDER BY name ASC
	`, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	albums := make([]models.Album, 0)
	for rows.Next() {
		var album models.Album
		if err := rows.Scan(&album.ID, &album.Name, &album.Description); err != nil {
			return nil, err
		}
		albums = append(albums, album)
	}

	return albums, rows.Err()
}

// GetAlbumByName returns the album with the given name, or nil if it
// doesn't exist.
func (r *Repository) GetAlbumByName(name string) (*models.Album, error) {
	var album models.Album
	err := r.db.QueryRow(`
		SELECT id, name, description FROM albums WHERE name = ?
	`, name).Scan(&album.ID, &album.Name, &album.Description)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &album, nil
}

// UpdateAlbum renames an album and optionally replaces its description.
// Returns false if the album doesn't exist.
func (r *Repository) UpdateAlbum(oldName, newName string, description *string) (bool, error) {
	var result sql.Result
	var err error

	if description != nil {
		result, err = r.db.Exec(`
			UPDATE albums SET name = ?, description = ? WHERE name = ?
		`, newName, *description, oldName)
	} else {
		result, err = r.db.Exec(`
			UPDATE albums SET name = ? WHERE name = ?
		`, newName, oldName)
	}
	if err != nil {
		return false, translateError(err)
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

// DeleteAlbum removes an album. Membership rows cascade; photos stay.
// Returns false if the album didn't exist.
func (r *Repository) DeleteAlbum(name string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM albums WHERE name = ?`, name)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

// AddPhotoToAlbum puts a photo in an album, creating the album if needed.
// Returns false if the photo is unknown or already in the album.
func (r *Repository) AddPhotoToAlbum(fileUUID, albumName string) (bool, error) {
	if _, err := r.db.Exec(`
		INSERT OR IGNORE INTO albums (name) VALUES (?)
	`, albumName); err != nil {
		return false, translateError(err)
	}

	result, err := r.db.Exec(`
		INSERT OR IGNORE INTO photo_albums (photo_id, album_id)
		SELECT photos.id, albums.id
		FROM photos, albums
		WHERE photos.file_uuid = ? AND albums.name = ?
	`, fileUUID, albumName)
	if err != nil {
		return false, translateError(err)
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

// RemovePhotoFromAlbum drops a photo's album membership. Returns false if
// the membership didn't exist.
func (r *Repository) RemovePhotoFromAlbum(fileUUID, albumName string) (bool, error) {
	result, err := r.db.Exec(`
		DELETE FROM photo_albums
		WHERE photo_id = (SELECT id FROM photos WHERE file_uuid = ?)
		AND album_id = (SELECT id FROM albums WHERE name = ?)
	`, fileUUID, albumName)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}

// GetAlbumPhotos returns all photos in an album, newest first.
func (r *Repository) GetAlbumPhotos(albumName string) ([]models.Photo, error) {
	rows, err := r.db.Query(`
		SELECT `+photoPrefixedColumns+` FROM photos p
		JOIN photo_albums pa ON p.id = pa.photo_id
		JOIN albums a ON pa.album_id = a.id
		WHERE a.name = ?
		ORDER BY p.date_added DESC
	`, albumName)
	if err != nil {
		return nil, err
	}
	return collectPhotos(rows)
}

// GetPhotosNotInAlbum returns photos that are not members of the given
// album. The GUI uses this to populate its "add to album" picker.
func (r *Repository) GetPhotosNotInAlbum(albumName string) ([]models.Photo, error) {
	rows, err := r.db.Query(`
		SELECT `+photoPrefixedColumns+` FROM photos p
		WHERE p.id NOT IN (
			SELECT pa.photo_id FROM photo_albums pa
			JOIN albums a ON pa.album_id = a.id
			WHERE a.name = ?
		)
		ORDER BY p.date_added DESC
	`, albumName)
	if err != nil {
		return nil, err
	}
	return collectPhotos(rows)
}

// GetPhotoAlbums returns the names of the albums a photo belongs to.
func (r *Repository) GetPhotoAlbums(fileUUID string) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT a.name FROM albums a
		JOIN photo_albums pa ON a.id = pa.album_id
		JOIN photos p ON pa.photo_id = p.id
		WHERE p.file_uuid = ?
		ORDER BY a.name ASC
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

// PhotoInAlbum reports whether the photo is already a member of the album.
func (r *Repository) PhotoInAlbum(fileUUID, albumName string) (bool, error) {
	var exists int
	err := r.db.QueryRow(`
		SELECT 1 FROM photo_albums pa
		JOIN photos p ON pa.photo_id = p.id
		JOIN albums a ON pa.album_id = a.id
		WHERE p.file_uuid = ? AND a.name = ?
	`, fileUUID, albumName).Scan(&exists)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
