package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"photo-catalog/app"
	"photo-catalog/database"
	"photo-catalog/services"
	"photo-catalog/validator"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": message})
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	slog.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// parseBody decodes and validates a JSON request body. A non-nil return has
// already written the 400 response.
func parseBody(c *fiber.Ctx, a *app.App, dest interface{}) error {
	if err := c.BodyParser(dest); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := a.Validator.Validate(dest); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Validation failed",
				"fields": validationErrs,
			})
		}
		return badRequest(c, err.Error())
	}

	return nil
}

// serviceError maps service-layer errors onto HTTP statuses.
func serviceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrPhotoNotFound),
		errors.Is(err, services.ErrAlbumNotFound),
		errors.Is(err, services.ErrTagNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, services.ErrDuplicatePhoto),
		errors.Is(err, services.ErrAlbumAlreadyExists),
		errors.Is(err, services.ErrTagAlreadyExists),
		errors.Is(err, database.ErrUniqueViolation):
		return conflict(c, err.Error())
	case errors.Is(err, services.ErrUnsupportedFormat),
		errors.Is(err, services.ErrEmptyTagName),
		errors.Is(err, services.ErrEmptyUpdate),
		errors.Is(err, database.ErrForeignKeyViolation):
		return badRequest(c, err.Error())
	default:
		return serverErrorWithDetails(c, fallback, err)
	}
}
