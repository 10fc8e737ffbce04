package database

import (
	"database/sql"

	"photo-catalog/models"
)

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// photoColumns is the SELECT list every photo query shares. Keep in sync
// with scanPhoto.
const photoColumns = `id, file_uuid, name, original_filename, description,
	file_type, file_size, width, height, date_added, favorite, checksum`

// photoPrefixedColumns is photoColumns qualified with the "p" alias, for
// queries that join photos against association tables.
const photoPrefixedColumns = `p.id, p.file_uuid, p.name, p.original_filename,
	p.description, p.file_type, p.file_size, p.width, p.height, p.date_added,
	p.favorite, p.checksum`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPhoto(row rowScanner) (*models.Photo, error) {
	var photo models.Photo
	var checksum sql.NullString

	err := row.Scan(
		&photo.ID, &photo.FileUUID, &photo.Name, &photo.OriginalFilename,
		&photo.Description, &photo.FileType, &photo.FileSize,
		&photo.Width, &photo.Height, &photo.DateAdded,
		&photo.Favorite, &checksum,
	)
	if err != nil {
		return nil, err
	}

	if checksum.Valid {
		photo.Checksum = checksum.String
	}
	return &photo, nil
}

func collectPhotos(rows *sql.Rows) ([]models.Photo, error) {
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	photos := make([]models.Photo, 0)
	for rows.Next() {
		photo, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, *photo)
	}

	return photos, rows.Err()
}

// ==================== STATS ====================

func (r *Repository) GetStats() (*models.CatalogStats, error) {
	var stats models.CatalogStats

	err := r.db.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM photos),
			(SELECT COUNT(*) FROM albums),
			(SELECT COUNT(*) FROM tags),
			(SELECT COUNT(*) FROM photos WHERE favorite = 1)
	`).Scan(
		&stats.TotalPhotos, &stats.TotalAlbums,
		&stats.TotalTags, &stats.FavoritePhotos,
	)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
