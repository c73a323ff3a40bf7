package services

import (
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"reversi/internal/config"
)

// Services contains the connections to the external services and the
// in-memory session store.
type Services struct {
	Postgres *sqlx.DB
	Redis    *redis.Client
	Games    *GameStore
}

func InitServices(cfg *config.ServerConfig) (*Services, error) {
	// Initialize database
	postgres, err := InitPostgres(cfg.PostgresURL)
	if err != nil {
		return nil, err
	}

	// Initialize Redis
	redis, err := InitRedis(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	return &Services{
		Postgres: postgres,
		Redis:    redis,
		Games:    NewGameStore(),
	}, nil
}
