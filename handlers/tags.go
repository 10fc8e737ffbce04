package handlers

import (
	"github.com/gofiber/fiber/v2"

	"photo-catalog/app"
	"photo-catalog/models"
)

// GetTags lists all tags, optionally narrowed by a name query
func GetTags(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var tags []models.Tag
		var err error

		if q := c.Query("q"); q != "" {
			tags, err = a.Tags.Search(q)
		} else {
			tags, err = a.Tags.List()
		}
		if err != nil {
			return serviceError(c, err, "Failed to list tags")
		}

		return success(c, fiber.Map{"tags": tags})
	}
}

// CreateTag makes a new tag
func CreateTag(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateTagRequest
		if err := parseBody(c, a, &req); err != nil {
			return err
		}

		tag, err := a.Tags.Create(req.Name)
		if err != nil {
			return serviceError(c, err, "Failed to create tag")
		}

		return created(c, fiber.Map{"tag": tag})
	}
}

// RenameTag changes a tag's name
func RenameTag(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RenameTagRequest
		if err := parseBody(c, a, &req); err != nil {
			return err
		}

		tag, err := a.Tags.Rename(c.Params("name"), req.Name)
		if err != nil {
			return serviceError(c, err, "Failed to rename tag")
		}

		return success(c, fiber.Map{"tag": tag})
	}
}

// DeleteTag removes a tag, leaving tagged photos in place
func DeleteTag(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Tags.Delete(c.Params("name")); err != nil {
			return serviceError(c, err, "Failed to delete tag")
		}

		return success(c, fiber.Map{"message": "Tag deleted successfully"})
	}
}

// GetPhotoTags lists the tags on a photo
func GetPhotoTags(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tags, err := a.Tags.PhotoTags(c.Params("uuid"))
		if err != nil {
			return serviceError(c, err, "Failed to fetch photo tags")
		}

		return success(c, fiber.Map{"tags": tags})
	}
}

// TagPhoto attaches a tag to a photo, creating the tag if needed
func TagPhoto(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateTagRequest
		if err := parseBody(c, a, &req); err != nil {
			return err
		}

		if err := a.Tags.TagPhoto(c.Params("uuid"), req.Name); err != nil {
			return serviceError(c, err, "Failed to tag photo")
		}

		return success(c, fiber.Map{"message": "Photo tagged"})
	}
}

// UntagPhoto detaches a tag from a photo
func UntagPhoto(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Tags.UntagPhoto(c.Params("uuid"), c.Params("name")); err != nil {
			return serviceError(c, err, "Failed to untag photo")
		}

		return success(c, fiber.Map{"message": "Tag removed from photo"})
	}
}
