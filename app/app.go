package app

import (
	"log/slog"

	"photo-catalog/database"
	"photo-catalog/services"
	"photo-catalog/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo      *database.Repository
	Photos    *services.PhotoService
	Albums    *services.AlbumService
	Tags      *services.TagService
	Importer  *services.ImportService
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, storageDir string, logger *slog.Logger) (*App, error) {
	importer, err := services.NewImportService(repo, storageDir)
	if err != nil {
		return nil, err
	}

	return &App{
		Repo:      repo,
		Photos:    services.NewPhotoService(repo, storageDir),
		Albums:    services.NewAlbumService(repo),
		Tags:      services.NewTagService(repo),
		Importer:  importer,
		Validator: validator.New(),
		Logger:    logger,
	}, nil
}
