package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"hireboard/internal/config"
	"hireboard/internal/database"
	"hireboard/internal/database/migration"
	dbpostgres "hireboard/internal/database/postgres"
	dbsqlite "hireboard/internal/database/sqlite"
	"hireboard/internal/delivery/http/handler"
	"hireboard/internal/delivery/http/middleware"
	"hireboard/internal/delivery/http/routes"
	v1 "hireboard/internal/delivery/http/routes/v1"
	"hireboard/internal/domain/user"
	"hireboard/internal/infrastructure/cache"
	"hireboard/internal/infrastructure/export"
	"hireboard/internal/infrastructure/mailer"
	"hireboard/internal/intake"
	"hireboard/internal/pkg/jwt"
	"hireboard/internal/repository"
	"hireboard/internal/seeder"
	"hireboard/internal/usecase"
	"hireboard/internal/ws"
)

type Container struct {
	Config config.Config
	Logger *log.Logger

	DB     database.DB
	SQLite *sql.DB
	Redis  *cache.Redis

	Store  *usecase.Store
	Hub    *ws.Hub
	Mailer *mailer.Dispatcher
	Board  *usecase.Board
	Routes *routes.Registry
}

func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}
	c := &Container{Config: cfg, Logger: logger}

	drafts, err := c.openDraftStore(ctx)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("draft store: %w", err)
	}

	users := user.DefaultDirectory()
	ds, err := seeder.Runner{
		Seeders: append([]seeder.Seeder{
			seeder.CandidateSeeder{
				Count:      cfg.Seed.Candidates,
				Seed:       cfg.Seed.Seed,
				Recruiters: users.Recruiters(),
			},
		}, seeder.Fixtures(nil)...),
		Logger: logger,
	}.Run(ctx)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Store = usecase.NewStore(ds)

	c.Hub = ws.NewHub(logger)
	c.Mailer = mailer.NewDispatcher(mailer.LogSender{Logger: logger}, cfg.Mail.Workers, float64(cfg.Mail.RatePerSecond), logger)

	validator := intake.NewValidator()
	tokens := jwt.NewHMACService(cfg.Session.Secret, cfg.Session.TTL)

	candidates := usecase.NewCandidateUsecase(
		c.Store.Candidates,
		validator,
		export.Exporter{},
		c.Mailer,
		ws.NewNotifier(c.Hub),
		cfg.Board.PageSize,
		logger,
	)
	c.Board = usecase.NewBoardUsecase(c.Store.Candidates, cfg.Board.Debounce, cfg.Board.PageSize, logger)
	intakeUC := usecase.NewIntakeUsecase(drafts, cfg.Draft.Key, validator, candidates, logger)
	directory := usecase.NewDirectoryUsecase(c.Store, cfg.Board.PageSize)
	stats := usecase.NewStatsUsecase(c.Store)
	sessions := usecase.NewSessionUsecase(users, tokens, logger)

	c.Routes = routes.NewRegistry(v1.Handlers{
		Actor:      middleware.NewActorMiddleware(tokens, users),
		Session:    handler.NewSessionHandler(sessions),
		Candidates: handler.NewCandidatesHandler(candidates),
		Board:      handler.NewBoardHandler(c.Board),
		Directory:  handler.NewDirectoryHandler(directory),
		Stats:      handler.NewStatsHandler(stats),
		Intake:     handler.NewIntakeHandler(intakeUC),
	}, ws.NewHandler(c.Hub, logger))

	return c, nil
}

// openDraftStore connects the backend named by DRAFT_STORE.
func (c *Container) openDraftStore(ctx context.Context) (intake.DraftStore, error) {
	cfg := c.Config
	switch cfg.Draft.Store {
	case config.DraftStoreRedis:
		c.Redis = cache.NewRedis(cfg.Redis, c.Logger)
		return cache.NewDraftStore(c.Redis, cfg.Draft.TTL), nil

	case config.DraftStorePostgres:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(connectCtx, cfg.Database)
		if err != nil {
			return nil, err
		}
		c.DB = db
		if err := (migration.Runner{Dir: cfg.Database.MigrationsDir}).Run(ctx, db.SQLDB()); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return repository.NewPostgresDraftStore(db), nil

	case config.DraftStoreSQLite:
		db, err := dbsqlite.Open(ctx, cfg.Draft.SQLitePath)
		if err != nil {
			return nil, err
		}
		c.SQLite = db
		return repository.NewSQLiteDraftStore(ctx, db)

	default:
		return repository.NewMemoryDraftStore(), nil
	}
}

// Start runs the background workers until ctx is cancelled.
func (c *Container) Start(ctx context.Context) {
	go c.Hub.Run(ctx)
	c.Mailer.Start(ctx)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	if c.Board != nil {
		c.Board.Close()
	}
	if c.Mailer != nil {
		c.Mailer.Close()
	}

	var errs []error
	if c.Redis != nil {
		errs = append(errs, c.Redis.Close())
	}
	if c.SQLite != nil {
		errs = append(errs, c.SQLite.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
