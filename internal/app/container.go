package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"projectlink/internal/config"
	"projectlink/internal/database"
	dbpostgres "projectlink/internal/database/postgres"
	dbsqlite "projectlink/internal/database/sqlite"
	"projectlink/internal/database/seeder"
	"projectlink/internal/infrastructure/kv"
	"projectlink/internal/repository"
	"projectlink/internal/usecase"
	"projectlink/internal/ws"
)

type Container struct {
	Config config.Config
	Logger *log.Logger
	// DB is nil for the memory and redis drivers.
	DB    database.DB
	Store *kv.Store
	Hub   *ws.Hub

	Session        usecase.SessionUsecase
	Projects       usecase.ProjectUsecase
	Membership     usecase.MembershipUsecase
	Recommendation usecase.RecommendationUsecase
	Chat           usecase.ChatUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	backend, db, err := openBackend(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	store := kv.NewStore(backend, logger)
	hub := ws.NewHub(logger)
	store.OnChange(hub.NotifyKeyChanged)

	if cfg.Features.SeedDemoData {
		runner := seeder.Runner{Seeders: seeder.Defaults(), Logger: logger}
		if err := runner.Run(ctx, store); err != nil {
			_ = store.Close()
			return nil, err
		}
	}

	users := repository.NewKVUserRepository(store)
	sessions := repository.NewKVSessionRepository(store)
	projects := repository.NewKVProjectRepository(store)
	peers := repository.NewKVPeerRepository(store)
	mentors := repository.NewKVMentorRepository(store)
	joined := repository.NewKVJoinedRepository(store)
	chats := repository.NewKVChatRepository(store)

	clock := usecase.NewClock(time.Now)

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Store:  store,
		Hub:    hub,

		Session:  usecase.NewSessionUsecase(users, sessions, clock),
		Projects: usecase.NewProjectUsecase(projects, users, peers, mentors, clock),
		Membership: usecase.NewMembershipUsecase(usecase.MembershipDeps{
			Users:    users,
			Projects: projects,
			Peers:    peers,
			Mentors:  mentors,
			Joined:   joined,
			Chats:    chats,
			Sessions: sessions,
			Clock:    clock,
		}),
		Recommendation: usecase.NewRecommendationUsecase(users, projects, peers, mentors, cfg.Features.RecommendLimit),
		Chat:           usecase.NewChatUsecase(chats, users, projects, clock),
	}, nil
}

// openBackend picks the KV backend for the configured driver. An unreachable
// Redis degrades to the in-memory backend.
func openBackend(ctx context.Context, cfg config.Config, logger *log.Logger) (kv.Backend, database.DB, error) {
	switch cfg.Store.Driver {
	case config.DriverRedis:
		r, err := kv.NewRedis(ctx, kv.RedisOptions{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		if err != nil {
			if errors.Is(err, kv.ErrUnavailable) {
				logger.Printf("[KV] falling back to memory | addr=%s err=%v", cfg.Redis.Addr(), err)
				return kv.NewMemory(), nil, nil
			}
			return nil, nil, err
		}
		return r, nil, nil
	case config.DriverSQLite:
		db, err := dbsqlite.Open(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		return sqlBackend(ctx, db)
	case config.DriverPostgres:
		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		return sqlBackend(ctx, db)
	default:
		return kv.NewMemory(), nil, nil
	}
}

func sqlBackend(ctx context.Context, db database.DB) (kv.Backend, database.DB, error) {
	b, err := kv.NewSQL(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return b, db, nil
}

// Close releases the store backend, which owns the DB handle when there is one.
func (c *Container) Close() error {
	if c == nil || c.Store == nil {
		return nil
	}
	return c.Store.Close()
}
