package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"photo-catalog/app"
	"photo-catalog/models"
)

// ListPhotos returns photos filtered by album, tags, favorite flag, name
// query, or date range.
func ListPhotos(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := models.PhotoFilter{
			Album:        c.Query("album"),
			NameQuery:    c.Query("q"),
			FavoriteOnly: c.QueryBool("favorite", false),
			MatchAllTags: c.Query("match", "all") != "any",
		}

		if tags := c.Query("tags"); tags != "" {
			filter.Tags = strings.Split(tags, ",")
		}

		if from := c.Query("from"); from != "" {
			t, err := time.Parse("2006-01-02", from)
			if err != nil {
				return badRequest(c, "from must be in YYYY-MM-DD format")
			}
			filter.DateFrom = t
		}
		if to := c.Query("to"); to != "" {
			t, err := time.Parse("2006-01-02", to)
			if err != nil {
				return badRequest(c, "to must be in YYYY-MM-DD format")
			}
			// Inclusive upper bound: extend to the end of the day
			filter.DateTo = t.Add(24*time.Hour - time.Nanosecond)
		}

		photos, err := a.Photos.List(filter)
		if err != nil {
			return serviceError(c, err, "Failed to list photos")
		}

		return success(c, fiber.Map{"photos": photos, "count": len(photos)})
	}
}

// GetPhoto returns a single photo with its tags and albums
func GetPhoto(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photo, err := a.Photos.Get(c.Params("uuid"))
		if err != nil {
			return serviceError(c, err, "Failed to fetch photo")
		}

		return success(c, fiber.Map{"photo": photo})
	}
}

// UpdatePhoto applies a partial metadata update
func UpdatePhoto(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.PhotoUpdate
		if err := parseBody(c, a, &req); err != nil {
			return err
		}

		photo, err := a.Photos.Update(c.Params("uuid"), req)
		if err != nil {
			return serviceError(c, err, "Failed to update photo")
		}

		return success(c, fiber.Map{"photo": photo})
	}
}

// ToggleFavorite flips the favorite flag and reports the new value
func ToggleFavorite(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileUUID := c.Params("uuid")

		favorite, err := a.Photos.ToggleFavorite(fileUUID)
		if err != nil {
			return serviceError(c, err, "Failed to toggle favorite")
		}

		return success(c, fiber.Map{"file_uuid": fileUUID, "favorite": favorite})
	}
}

// DeletePhoto removes a photo and its associations from the catalog
func DeletePhoto(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Photos.Delete(c.Params("uuid")); err != nil {
			return serviceError(c, err, "Failed to delete photo")
		}

		return success(c, fiber.Map{"message": "Photo deleted successfully"})
	}
}
