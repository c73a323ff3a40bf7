package api

import (
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"

	"reversi/internal/bot"
	"reversi/internal/models"
	"reversi/internal/repository"
	"reversi/internal/services"
)

// CreateGame starts a human-vs-bot game. The bot opens immediately when the
// human plays White, since Black always moves first.
func CreateGame(c *fiber.Ctx) error {
	var payload models.CreateGameRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	difficulty, err := bot.ParseDifficulty(payload.Difficulty)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	humanColor := models.Black
	if payload.HumanColor != "" {
		humanColor, err = models.ParseColor(payload.HumanColor)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	svc := c.Locals("services").(*services.Services) //nolint: errcheck

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session := svc.Games.Create(humanColor, difficulty, bot.NewStrategy(difficulty, rng))

	session.Lock()
	defer session.Unlock()

	steps := session.Advance()

	return c.Status(fiber.StatusCreated).JSON(session.Response(steps))
}

// GetGame returns the current state of a session.
func GetGame(c *fiber.Ctx) error {
	svc := c.Locals("services").(*services.Services) //nolint: errcheck

	session, err := svc.Games.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	session.Lock()
	defer session.Unlock()

	return c.Status(fiber.StatusOK).JSON(session.Response(nil))
}

// PlayMove applies a human move and returns the bot's response moves along
// with the resulting state.
func PlayMove(c *fiber.Ctx) error {
	svc := c.Locals("services").(*services.Services) //nolint: errcheck

	session, err := svc.Games.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var payload models.MoveRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	session.Lock()
	defer session.Unlock()

	steps, err := session.PlayHuman(payload.Field)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, services.ErrGameOver) || errors.Is(err, services.ErrNotYourTurn) {
			status = fiber.StatusConflict
		}

		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if session.Game.Over() {
		repo := repository.NewResultRepository(c)
		if err := repo.SaveSession(c.Context(), session); err != nil {
			// The response still carries the final state.
			slog.Error("Failed to store game result", "game_id", session.ID, "error", err)
		}
		svc.Games.Delete(session.ID)
	}

	return c.Status(fiber.StatusOK).JSON(session.Response(steps))
}
