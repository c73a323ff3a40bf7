package api

import (
	"github.com/gofiber/fiber/v2"

	"reversi/internal/repository"
)

// GetStats returns aggregated game results per difficulty.
func GetStats(c *fiber.Ctx) error {
	repo := repository.NewResultRepository(c)

	stats, err := repo.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
