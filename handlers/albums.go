package handlers

import (
	"github.com/gofiber/fiber/v2"

	"photo-catalog/app"
	"photo-catalog/models"
)

// GetAlbums lists all albums, optionally narrowed by a name query
func GetAlbums(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var albums []models.Album
		var err error

		if q := c.Query("q"); q != "" {
			albums, err = a.Albums.Search(q)
		} else {
			albums, err = a.Albums.List()
		}
		if err != nil {
			return serviceError(c, err, "Failed to list albums")
		}

		return success(c, fiber.Map{"albums": albums})
	}
}

// CreateAlbum makes a new album
func CreateAlbum(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateAlbumRequest
		if err := parseBody(c, a, &req); err != nil {
			return err
		}

		album, err := a.Albums.Create(req.Name, req.Description)
		if err != nil {
			return serviceError(c, err, "Failed to create album")
		}

		return created(c, fiber.Map{"album": album})
	}
}

// UpdateAlbum renames an album and optionally replaces its description
func UpdateAlbum(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateAlbumRequest
		if err := parseBody(c, a, &req); err != nil {
			return err
		}

		album, err := a.Albums.Update(c.Params("name"), req.Name, req.Description)
		if err != nil {
			return serviceError(c, err, "Failed to update album")
		}

		return success(c, fiber.Map{"album": album})
	}
}

// DeleteAlbum removes an album, leaving its photos in place
func DeleteAlbum(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Albums.Delete(c.Params("name")); err != nil {
			return serviceError(c, err, "Failed to delete album")
		}

		return success(c, fiber.Map{"message": "Album deleted successfully"})
	}
}

// GetAlbumPhotos lists the photos in an album
func GetAlbumPhotos(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photos, err := a.Albums.Photos(c.Params("name"))
		if err != nil {
			return serviceError(c, err, "Failed to fetch album photos")
		}

		return success(c, fiber.Map{"photos": photos, "count": len(photos)})
	}
}

// GetAlbumCandidates lists photos not yet in the album, for the GUI's
// "add to album" picker
func GetAlbumCandidates(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photos, err := a.Albums.PhotosNotIn(c.Params("name"))
		if err != nil {
			return serviceError(c, err, "Failed to fetch album candidates")
		}

		return success(c, fiber.Map{"photos": photos, "count": len(photos)})
	}
}

// AddPhotoToAlbum puts a photo in the album
func AddPhotoToAlbum(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.AssociationRequest
		if err := parseBody(c, a, &req); err != nil {
			return err
		}

		if err := a.Albums.AddPhoto(req.FileUUID, c.Params("name")); err != nil {
			return serviceError(c, err, "Failed to add photo to album")
		}

		return success(c, fiber.Map{"message": "Photo added to album"})
	}
}

// RemovePhotoFromAlbum drops a photo's membership in the album
func RemovePhotoFromAlbum(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Albums.RemovePhoto(c.Params("uuid"), c.Params("name")); err != nil {
			return serviceError(c, err, "Failed to remove photo from album")
		}

		return success(c, fiber.Map{"message": "Photo removed from album"})
	}
}
