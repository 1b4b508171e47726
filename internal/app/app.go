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
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/metinatakli/cinema-operations/api"
	"github.com/metinatakli/cinema-operations/internal/broker"
	"github.com/metinatakli/cinema-operations/internal/domain"
	"github.com/metinatakli/cinema-operations/internal/repository"
	appvalidator "github.com/metinatakli/cinema-operations/internal/validator"
	"github.com/metinatakli/cinema-operations/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"go.opentelemetry.io/otel"
)

const serviceName = "cinema-operations-api"

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	db        *pgxpool.Pool
	redis     redis.UniversalClient
	validator *validator.Validate

	sessionRepo          domain.SessionRepository
	screenings           domain.ScreeningFinder
	roomRepo             domain.RoomRepository
	movieRepo            domain.MovieRepository
	customerRepo         domain.CustomerRepository
	eventReservationRepo domain.EventReservationRepository
	promotionRepo        domain.PromotionRuleRepository

	locker     domain.SessionLocker
	roomLocker domain.RoomLocker
	publisher  domain.EventPublisher

	pricing   *domain.PricingEngine
	conflicts *domain.RoomConflictChecker
	metrics   *appMetrics

	now func() time.Time
	wg  sync.WaitGroup
}

type Config struct {
	Port             int
	Env              string
	DB               DBConfig
	Redis            RedisConfig
	AMQP             AMQPConfig
	Sessions         SessionConfig
	OtelCollectorUrl string
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type AMQPConfig struct {
	URL string
}

type SessionConfig struct {
	HoldMinutes   int
	SweepInterval time.Duration
	LockTTL       time.Duration
	LockWait      time.Duration
}

func Run() error {
	// A missing .env file is fine; flags and the environment still apply.
	_ = godotenv.Load()

	var cfg Config

	flag.IntVar(&cfg.Port, "port", envInt("PORT", 3000), "server port")
	flag.StringVar(&cfg.Env, "env", envString("ENV", "dev"), "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", envString("DB_DSN", ""), "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", envString("REDIS_URL", ""), "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.AMQP.URL, "amqp-url", envString("AMQP_URL", ""), "RabbitMQ URL, events are only logged when empty")

	flag.IntVar(&cfg.Sessions.HoldMinutes, "hold-minutes", envInt("HOLD_MINUTES", 10), "Minutes a seat hold lasts")
	flag.DurationVar(&cfg.Sessions.SweepInterval, "sweep-interval", 30*time.Second, "Interval of the hold expiry sweep")
	flag.DurationVar(&cfg.Sessions.LockTTL, "lock-ttl", 5*time.Second, "TTL of the per-session lock")
	flag.DurationVar(&cfg.Sessions.LockWait, "lock-wait", 2*time.Second, "Max time to wait for the per-session lock")

	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", envString("OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector gRPC endpoint")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	validator := appvalidator.NewValidator()

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := NewRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	publisher, closePublisher, err := newPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer closePublisher()

	sessionRepo := repository.NewPostgresSessionRepository(db)
	roomRepo := repository.NewPostgresRoomRepository(db)
	movieRepo := repository.NewPostgresMovieRepository(db)
	customerRepo := repository.NewPostgresCustomerRepository(db)
	eventReservationRepo := repository.NewPostgresEventReservationRepository(db)
	promotionRepo := repository.NewPostgresPromotionRuleRepository(db)
	locker := repository.NewRedisSessionLocker(redisClient, logger, cfg.Sessions.LockTTL, cfg.Sessions.LockWait)
	roomLocker := repository.NewRedisRoomLocker(redisClient, logger, cfg.Sessions.LockTTL, cfg.Sessions.LockWait)

	app, err := NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		sessionRepo,
		sessionRepo,
		roomRepo,
		movieRepo,
		customerRepo,
		eventReservationRepo,
		promotionRepo,
		locker,
		roomLocker,
		publisher,
	)
	if err != nil {
		return err
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.run()
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redis redis.UniversalClient,
	validator *validator.Validate,
	sessionRepo domain.SessionRepository,
	screenings domain.ScreeningFinder,
	roomRepo domain.RoomRepository,
	movieRepo domain.MovieRepository,
	customerRepo domain.CustomerRepository,
	eventReservationRepo domain.EventReservationRepository,
	promotionRepo domain.PromotionRuleRepository,
	locker domain.SessionLocker,
	roomLocker domain.RoomLocker,
	publisher domain.EventPublisher) (*Application, error) {

	metrics, err := newAppMetrics(otel.Meter(serviceName))
	if err != nil {
		return nil, err
	}

	return &Application{
		config:               cfg,
		logger:               logger,
		db:                   db,
		redis:                redis,
		validator:            validator,
		sessionRepo:          sessionRepo,
		screenings:           screenings,
		roomRepo:             roomRepo,
		movieRepo:            movieRepo,
		customerRepo:         customerRepo,
		eventReservationRepo: eventReservationRepo,
		promotionRepo:        promotionRepo,
		locker:               locker,
		roomLocker:           roomLocker,
		publisher:            publisher,
		pricing:              domain.NewPricingEngine(),
		conflicts:            domain.NewRoomConflictChecker(screenings, eventReservationRepo),
		metrics:              metrics,
		now:                  time.Now,
	}, nil
}

func newPublisher(cfg Config, logger *slog.Logger) (domain.EventPublisher, func(), error) {
	if cfg.AMQP.URL == "" {
		logger.Info("AMQP URL not set, events will only be logged")
		return broker.NewLogPublisher(logger), func() {}, nil
	}

	publisher, err := broker.NewRabbitPublisher(cfg.AMQP.URL, logger)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close rabbitmq publisher", "error", err)
		}
	}

	return publisher, closeFn, nil
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := redisotel.InstrumentTracing(rdb)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
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

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()

	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		app.runHoldSweeper(sweepCtx, app.config.Sessions.SweepInterval)
	}()

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		stopSweeper()
		app.logger.Info("waiting for background tasks", "addr", srv.Addr)
		app.wg.Wait()

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

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

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(app.requestLogger)

	r.Get("/v1/openapi.json", app.GetOpenAPISpec)

	api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: app.invalidParamResponse,
	})

	return r
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	return n
}
