package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"reversi/internal/models"
	"reversi/internal/services"
)

const (
	statsKey      = "session_stats"
	statsCacheTTL = 5 * time.Minute
)

// GameResult is a finished game as stored in Postgres.
type GameResult struct {
	ID         string    `json:"id"          db:"id"`
	Difficulty string    `json:"difficulty"  db:"difficulty"`
	HumanColor string    `json:"human_color" db:"human_color"`
	Result     string    `json:"result"      db:"result"`
	BlackDiscs int       `json:"black_discs" db:"black_discs"`
	WhiteDiscs int       `json:"white_discs" db:"white_discs"`
	FinishedAt time.Time `json:"finished_at" db:"finished_at"`
}

// SessionStats aggregates stored results per difficulty tier.
type SessionStats struct {
	Difficulty string `json:"difficulty" db:"difficulty"`
	Games      int    `json:"games"      db:"games"`
	HumanWins  int    `json:"human_wins" db:"human_wins"`
	BotWins    int    `json:"bot_wins"   db:"bot_wins"`
	Draws      int    `json:"draws"      db:"draws"`
}

// ResultRepository handles storage of finished games.
type ResultRepository struct {
	services *services.Services
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(c *fiber.Ctx) *ResultRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &ResultRepository{
		services: services,
	}
}

func NewResultRepositoryFromServices(services *services.Services) *ResultRepository {
	return &ResultRepository{
		services: services,
	}
}

// SaveSession stores the result of a finished session.
func (repo *ResultRepository) SaveSession(ctx context.Context, session *services.Session) error {
	game := session.Game
	board := game.Board()

	result := GameResult{
		ID:         session.ID,
		Difficulty: session.Difficulty.String(),
		HumanColor: session.HumanColor.String(),
		Result:     game.Result().String(),
		BlackDiscs: board.Count(models.Black),
		WhiteDiscs: board.Count(models.White),
		FinishedAt: time.Now(),
	}

	return repo.SaveResult(ctx, result)
}

// SaveResult stores a finished game and invalidates the stats cache.
func (repo *ResultRepository) SaveResult(ctx context.Context, result GameResult) error {
	query := `
		INSERT INTO game_results (id, difficulty, human_color, result, black_discs, white_discs, finished_at)
		VALUES (:id, :difficulty, :human_color, :result, :black_discs, :white_discs, :finished_at)`

	if _, err := repo.services.Postgres.NamedExecContext(ctx, query, result); err != nil {
		return fmt.Errorf("error storing game result: %w", err)
	}

	// The next stats read rebuilds the cache from Postgres.
	if err := repo.services.Redis.Del(ctx, statsKey).Err(); err != nil {
		return fmt.Errorf("error invalidating stats cache: %w", err)
	}

	return nil
}

// GetStats returns per-difficulty aggregates, served from a Redis cache and
// rebuilt from Postgres when the cache is cold.
func (repo *ResultRepository) GetStats(ctx context.Context) ([]SessionStats, error) {
	redisConn := repo.services.Redis

	cached, err := redisConn.Get(ctx, statsKey).Result()
	if err == nil {
		var stats []SessionStats
		if err = json.Unmarshal([]byte(cached), &stats); err == nil {
			return stats, nil
		}
		// A corrupt cache entry falls through to a rebuild.
	} else if !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("error reading stats cache: %w", err)
	}

	stats, err := repo.buildStats(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return nil, fmt.Errorf("error marshaling stats: %w", err)
	}

	if err = redisConn.Set(ctx, statsKey, data, statsCacheTTL).Err(); err != nil {
		return nil, fmt.Errorf("error writing stats cache: %w", err)
	}

	return stats, nil
}

func (repo *ResultRepository) buildStats(ctx context.Context) ([]SessionStats, error) {
	query := `
		SELECT
			difficulty,
			COUNT(*) AS games,
			COUNT(*) FILTER (
				WHERE (result = 'black_wins' AND human_color = 'black')
				   OR (result = 'white_wins' AND human_color = 'white')
			) AS human_wins,
			COUNT(*) FILTER (
				WHERE (result = 'black_wins' AND human_color = 'white')
				   OR (result = 'white_wins' AND human_color = 'black')
			) AS bot_wins,
			COUNT(*) FILTER (WHERE result = 'draw') AS draws
		FROM game_results
		GROUP BY difficulty
		ORDER BY difficulty`

	stats := make([]SessionStats, 0)
	if err := repo.services.Postgres.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("error aggregating game results: %w", err)
	}

	return stats, nil
}
