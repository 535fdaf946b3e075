package integration_test

import (
	"log/slog"
	"os"

	"github.com/metinatakli/movie-catalog/internal/app"
	"github.com/metinatakli/movie-catalog/internal/repository"
	appvalidator "github.com/metinatakli/movie-catalog/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App   *app.Application
	Redis *redis.Client
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient, cfg)

	movieRepo := repository.NewMemoryMovieRepository(repository.SeedMovies())
	genreRepo := repository.NewMemoryGenreRepository(repository.SeedGenres())

	application := app.NewApp(
		cfg,
		logger,
		redisClient,
		validator,
		sessionManager,
		movieRepo,
		genreRepo,
	)

	return &TestApp{
		App:   application,
		Redis: redisClient,
	}, nil
}
