package handlers

import (
	"github.com/gofiber/fiber/v2"

	"photo-catalog/app"
	"photo-catalog/models"
	"photo-catalog/services"
)

// ImportFile catalogs a single photo from a local path
func ImportFile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ImportFileRequest
		if err := parseBody(c, a, &req); err != nil {
			return err
		}

		photo, err := a.Importer.ImportFile(req.Path, services.ImportOptions{
			Name:        req.Name,
			Description: req.Description,
			Albums:      req.Albums,
			Tags:        req.Tags,
		})
		if err != nil {
			return serviceError(c, err, "Failed to import photo")
		}

		return created(c, fiber.Map{"photo": photo})
	}
}

// ImportDirectory catalogs every image file under a local directory
func ImportDirectory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ImportDirectoryRequest
		if err := parseBody(c, a, &req); err != nil {
			return err
		}

		opts := services.ImportOptions{Tags: req.Tags}
		if req.Album != "" {
			opts.Albums = []string{req.Album}
		}

		summary, err := a.Importer.ImportDirectory(req.Path, opts)
		if err != nil {
			return serviceError(c, err, "Failed to import directory")
		}

		return success(c, fiber.Map{"summary": summary})
	}
}
