package integration_test

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-operations/internal/app"
	"github.com/metinatakli/cinema-operations/internal/domain"
	"github.com/metinatakli/cinema-operations/internal/repository"
	appvalidator "github.com/metinatakli/cinema-operations/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App         *app.Application
	DB          *pgxpool.Pool
	RedisClient *redis.Client
	Events      *recordingPublisher
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()
	events := &recordingPublisher{}

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionRepo := repository.NewPostgresSessionRepository(db)
	roomRepo := repository.NewPostgresRoomRepository(db)
	movieRepo := repository.NewPostgresMovieRepository(db)
	customerRepo := repository.NewPostgresCustomerRepository(db)
	eventReservationRepo := repository.NewPostgresEventReservationRepository(db)
	promotionRepo := repository.NewPostgresPromotionRuleRepository(db)
	locker := repository.NewRedisSessionLocker(redisClient, logger, cfg.Sessions.LockTTL, cfg.Sessions.LockWait)
	roomLocker := repository.NewRedisRoomLocker(redisClient, logger, cfg.Sessions.LockTTL, cfg.Sessions.LockWait)

	application, err := app.NewApp(
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
		events,
	)
	if err != nil {
		return nil, err
	}

	return &TestApp{
		App:         application,
		DB:          db,
		RedisClient: redisClient,
		Events:      events,
	}, nil
}

func (a *TestApp) Close() {
	a.RedisClient.Close()
	a.DB.Close()
}

// recordingPublisher keeps published events in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event domain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = nil
}

func (p *recordingPublisher) Published() []domain.Event {
	p.mu.Lock()
	defer p.mu.Unlock()

	events := make([]domain.Event, len(p.events))
	copy(events, p.events)

	return events
}
