package services

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"photo-catalog/database"
	"photo-catalog/models"
	"photo-catalog/pkg/hasher"
	"photo-catalog/pkg/scanner"
)

// ImportOptions carries optional metadata for a file import.
type ImportOptions struct {
	Name        string
	Description string
	Albums      []string
	Tags        []string
}

// ImportSummary reports the outcome of a directory import.
type ImportSummary struct {
	Imported   []models.Photo `json:"imported"`
	Duplicates int            `json:"duplicates"`
	Skipped    int            `json:"skipped"`
	Failed     int            `json:"failed"`
}

// ImportService brings photos from the file system into the catalog
type ImportService struct {
	repo       ImportRepository
	storageDir string
}

// NewImportService creates a new import service. The storage directory is
// created if missing.
func NewImportService(repo ImportRepository, storageDir string) (*ImportService, error) {
	if err := os.MkdirAll(storageDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &ImportService{
		repo:       repo,
		storageDir: storageDir,
	}, nil
}

// ImportFile catalogs a single photo: checksum it, reject duplicates, copy
// the file into managed storage under a fresh UUID, and record its metadata
// together with any requested albums and tags.
func (is *ImportService) ImportFile(path string, opts ImportOptions) (*models.Photo, error) {
	if !scanner.IsImageFile(path) {
		return nil, ErrUnsupportedFormat
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat photo: %w", err)
	}

	checksum, err := hasher.SHA256File(path)
	if err != nil {
		return nil, err
	}

	existing, err := is.repo.GetPhotoByChecksum(checksum)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicatePhoto
	}

	fileUUID := uuid.New().String()
	fileType := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	name := opts.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	storedPath := filepath.Join(is.storageDir, fileUUID+"."+fileType)
	if err := copyFile(path, storedPath); err != nil {
		return nil, err
	}

	photo := &models.Photo{
		FileUUID:         fileUUID,
		Name:             name,
		OriginalFilename: filepath.Base(path),
		Description:      opts.Description,
		FileType:         fileType,
		FileSize:         info.Size(),
		Checksum:         checksum,
	}
	photo.Width, photo.Height = imageDimensions(path)

	if err := is.repo.CreatePhoto(photo); err != nil {
		_ = os.Remove(storedPath)
		if errors.Is(err, database.ErrUniqueViolation) {
			return nil, ErrDuplicatePhoto
		}
		return nil, err
	}

	for _, album := range opts.Albums {
		album = strings.TrimSpace(album)
		if album == "" {
			continue
		}
		if _, err := is.repo.AddPhotoToAlbum(fileUUID, album); err != nil {
			return nil, err
		}
	}

	for _, tag := range normalizeTags(opts.Tags) {
		if _, err := is.repo.AddTagToPhoto(fileUUID, tag); err != nil {
			return nil, err
		}
	}

	photo.FilePath = storedPath
	photo.Albums = opts.Albums
	photo.Tags = normalizeTags(opts.Tags)
	return photo, nil
}

// ImportDirectory scans a directory tree and imports every image file found.
// Individual failures don't abort the batch; they are tallied in the summary.
func (is *ImportService) ImportDirectory(root string, opts ImportOptions) (*ImportSummary, error) {
	paths, err := scanner.ScanDirectory(root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}

	summary := &ImportSummary{Imported: make([]models.Photo, 0, len(paths))}
	for _, path := range paths {
		photo, err := is.ImportFile(path, ImportOptions{
			Albums: opts.Albums,
			Tags:   opts.Tags,
		})
		switch {
		case err == nil:
			summary.Imported = append(summary.Imported, *photo)
		case errors.Is(err, ErrDuplicatePhoto):
			summary.Duplicates++
		case errors.Is(err, ErrUnsupportedFormat):
			summary.Skipped++
		default:
			summary.Failed++
		}
	}

	return summary, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create stored file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return fmt.Errorf("failed to copy photo into storage: %w", err)
	}

	return out.Close()
}

// imageDimensions reads pixel dimensions from the file header. Formats the
// stdlib can't decode just get zero dimensions; that's not an import error.
func imageDimensions(path string) (int, int) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
