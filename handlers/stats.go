package handlers

import (
	"github.com/gofiber/fiber/v2"

	"photo-catalog/app"
)

// GetStats reports catalog-wide counters for the GUI's sidebar
func GetStats(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := a.Repo.GetStats()
		if err != nil {
			return serviceError(c, err, "Failed to fetch catalog stats")
		}

		return success(c, fiber.Map{"stats": stats})
	}
}
