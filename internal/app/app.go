package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/movie-catalog/api"
	"github.com/metinatakli/movie-catalog/internal/catalog"
	"github.com/metinatakli/movie-catalog/internal/domain"
	"github.com/metinatakli/movie-catalog/internal/repository"
	appvalidator "github.com/metinatakli/movie-catalog/internal/validator"
	"github.com/metinatakli/movie-catalog/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "movie-catalog-api"

var (
	version = vcs.Version()
)

var _ api.ServerInterface = (*Application)(nil)

type Application struct {
	config         Config
	logger         *slog.Logger
	redis          *redis.Client
	validator      *validator.Validate
	sessionManager *scs.SessionManager

	movieRepo domain.MovieRepository
	genreRepo domain.GenreRepository

	tracer        trace.Tracer
	pagesComputed metric.Int64Counter

	sessionLocks sessionLocks
}

type Config struct {
	Port             int
	Env              string
	PageSize         int
	Redis            RedisConfig
	Session          SessionConfig
	OtelCollectorUrl string
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type SessionConfig struct {
	IdleTimeout time.Duration
	CookieName  string
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	redisClient *redis.Client,
	validator *validator.Validate,
	sessionManager *scs.SessionManager,
	movieRepo domain.MovieRepository,
	genreRepo domain.GenreRepository,
) *Application {
	app := &Application{
		config:         cfg,
		logger:         logger,
		redis:          redisClient,
		validator:      validator,
		sessionManager: sessionManager,
		movieRepo:      movieRepo,
		genreRepo:      genreRepo,
	}

	app.initInstruments()

	return app
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")
	flag.IntVar(&cfg.PageSize, "page-size", catalog.DefaultPageSize, "Movies per catalog page")

	flag.StringVar(&cfg.Redis.URL, "redis-url", "", "Redis address for the session store (in-memory when empty)")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.DurationVar(&cfg.Session.IdleTimeout, "session-idle-timeout", 20*time.Minute, "Idle time before a catalog session expires")
	flag.StringVar(&cfg.Session.CookieName, "session-cookie-name", "session_id", "Session cookie name")

	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector gRPC endpoint")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	if cfg.PageSize < 1 || cfg.PageSize > catalog.MaxPageSize {
		return fmt.Errorf("page size must be between 1 and %d", catalog.MaxPageSize)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	_, err := api.Document()
	if err != nil {
		return err
	}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		redisClient, err = NewRedisClient(cfg)
		if err != nil {
			return err
		}
		defer redisClient.Close()
	}

	app := NewApp(
		cfg,
		logger,
		redisClient,
		appvalidator.NewValidator(),
		NewSessionManager(redisClient, cfg),
		repository.NewMemoryMovieRepository(repository.SeedMovies()),
		repository.NewMemoryGenreRepository(repository.SeedGenres()),
	)

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.run()
}

// NewSessionManager keeps sessions in Redis when a client is given and in process
// memory otherwise.
func NewSessionManager(client *redis.Client, cfg Config) *scs.SessionManager {
	sessionManager := scs.New()

	if client != nil {
		sessionManager.Store = goredisstore.New(client)
	} else {
		sessionManager.Store = memstore.New()
	}

	sessionManager.IdleTimeout = cfg.Session.IdleTimeout
	sessionManager.Cookie.Name = cfg.Session.CookieName

	return sessionManager
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := errors.Join(redisotel.InstrumentTracing(rdb), redisotel.InstrumentMetrics(rdb))
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "redis", app.redis != nil)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.serializeSession)
	r.Use(app.sessionManager.LoadAndSave)

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: app.badRequestResponse,
	})

	return r
}
