package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/pilgrim-travel/internal/api/http"
	"github.com/spec-kit/pilgrim-travel/internal/api/http/handlers"
	"github.com/spec-kit/pilgrim-travel/internal/auth"
	"github.com/spec-kit/pilgrim-travel/internal/config"
	"github.com/spec-kit/pilgrim-travel/internal/events"
	"github.com/spec-kit/pilgrim-travel/internal/mail"
	"github.com/spec-kit/pilgrim-travel/internal/observability"
	"github.com/spec-kit/pilgrim-travel/internal/persistence"
	"github.com/spec-kit/pilgrim-travel/internal/repository"
	"github.com/spec-kit/pilgrim-travel/internal/repository/memory"
	"github.com/spec-kit/pilgrim-travel/internal/service"
	"github.com/spec-kit/pilgrim-travel/internal/storage"
	"github.com/spec-kit/pilgrim-travel/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations && pg.Enabled() {
		if err := persistence.RunMigrations(ctx, pg.Pool, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	stores := newStores(pg)
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	sessions := auth.NewSessionManager(stores.sessions, cfg.Auth.SessionTTL(), logger)
	authService, err := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		Users:      stores.users,
		Sessions:   sessions,
		Throttle:   newLoginThrottle(cfg.Auth, redis, logger),
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("failed to init auth service", zap.Error(err))
	}
	if err := authService.EnsureBootstrapAdmin(ctx, cfg.Auth.BootstrapAdminEmail, cfg.Auth.BootstrapAdminPassword); err != nil {
		logger.Fatal("failed to provision bootstrap admin", zap.Error(err))
	}

	catalog := service.NewCatalog(stores.catalog, dispatcher, logger)

	objectStore, err := newObjectStore(cfg.Storage, logger)
	if err != nil {
		logger.Fatal("failed to init object storage", zap.Error(err))
	}
	mediaService := service.NewMediaService(objectStore, cfg.Storage.MaxUploadBytes(), logger)

	inquiryService := service.NewInquiryService(stores.catalog.Packages, dispatcher, logger)
	notificationService := service.NewNotificationService(dispatcher, mail.New(cfg.Mail, logger), cfg.Mail.OperatorTo, logger)
	inquiryLimiter := httptransport.NewIPRateLimiter(cfg.Inquiry.RatePerMinute, cfg.Inquiry.Burst)

	background := worker.Background{
		Notifications: notificationService,
		Tasks:         []func(context.Context){inquiryLimiter.Run},
	}
	if interval := cfg.Auth.SweepInterval(); interval > 0 {
		background.Sweeper = worker.NewSessionSweeper(stores.sessions, interval, logger)
	}
	waitBackground := background.Start(ctx)

	cookie := handlers.CookieSettings{Name: cfg.Auth.CookieName, Secure: cfg.App.IsProduction()}
	app := httptransport.NewServer(httptransport.ServerConfig{
		AppName:        cfg.App.Name,
		RequestTimeout: cfg.App.RequestTimeout(),
		MaxUploadBytes: cfg.Storage.MaxUploadBytes(),
		Logger:         logger,
		Metrics:        metrics,
		Routes: httptransport.RouteConfig{
			Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, metrics,
				handlers.Dependency{Name: "postgres", Pinger: pg},
				handlers.Dependency{Name: "redis", Pinger: redis},
				handlers.Dependency{Name: "storage", Pinger: objectStore},
			),
			Auth: handlers.NewAuthHandler(authService, cookie),
			Pages: handlers.NewAdminPagesHandler(cfg.App.Name, authService, cookie,
				handlers.CountSource{Label: "Locations", Counter: catalog.Locations},
				handlers.CountSource{Label: "Hotels", Counter: catalog.Hotels},
				handlers.CountSource{Label: "Rooms", Counter: catalog.Rooms},
				handlers.CountSource{Label: "Categories", Counter: catalog.Categories},
				handlers.CountSource{Label: "Packages", Counter: catalog.Packages},
				handlers.CountSource{Label: "Events", Counter: catalog.Events},
				handlers.CountSource{Label: "Transportation", Counter: catalog.Transportation},
				handlers.CountSource{Label: "Visas", Counter: catalog.Visas},
				handlers.CountSource{Label: "Blog posts", Counter: catalog.BlogPosts},
				handlers.CountSource{Label: "Testimonials", Counter: catalog.Testimonials},
			),
			Uploads:        handlers.NewUploadHandler(mediaService),
			Inquiries:      handlers.NewInquiryHandler(inquiryService),
			Catalog:        catalog,
			Sessions:       auth.NewSessionMiddleware(sessions, cfg.Auth.CookieName),
			InquiryLimiter: inquiryLimiter,
		},
	})

	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.Shutdown(); err != nil {
		logger.Warn("fiber shutdown", zap.Error(err))
	}
	cancel()
	waitBackground()
}

type storeSet struct {
	users    repository.AdminUserRepository
	sessions repository.SessionRepository
	catalog  service.CatalogRepositories
}

// newStores picks the pgx repositories when a pool exists and the in-memory
// ones otherwise.
func newStores(pg *persistence.Postgres) storeSet {
	if pg.Enabled() {
		pool := pg.Pool
		return storeSet{
			users:    repository.NewAdminUserRepository(pool),
			sessions: repository.NewSessionRepository(pool),
			catalog: service.CatalogRepositories{
				Locations:      repository.NewCatalogRepository(pool, repository.LocationSchema),
				Hotels:         repository.NewCatalogRepository(pool, repository.HotelSchema),
				Rooms:          repository.NewCatalogRepository(pool, repository.RoomSchema),
				Categories:     repository.NewCatalogRepository(pool, repository.CategorySchema),
				Packages:       repository.NewCatalogRepository(pool, repository.PackageSchema),
				Events:         repository.NewCatalogRepository(pool, repository.EventSchema),
				Transportation: repository.NewCatalogRepository(pool, repository.TransportationSchema),
				Visas:          repository.NewCatalogRepository(pool, repository.VisaSchema),
				BlogPosts:      repository.NewCatalogRepository(pool, repository.BlogPostSchema),
				Testimonials:   repository.NewCatalogRepository(pool, repository.TestimonialSchema),
			},
		}
	}

	users := memory.NewUserStore()
	return storeSet{
		users:    users,
		sessions: memory.NewSessionStore(users),
		catalog: service.CatalogRepositories{
			Locations:      memory.NewCatalogStore(repository.LocationSchema),
			Hotels:         memory.NewCatalogStore(repository.HotelSchema),
			Rooms:          memory.NewCatalogStore(repository.RoomSchema),
			Categories:     memory.NewCatalogStore(repository.CategorySchema),
			Packages:       memory.NewCatalogStore(repository.PackageSchema),
			Events:         memory.NewCatalogStore(repository.EventSchema),
			Transportation: memory.NewCatalogStore(repository.TransportationSchema),
			Visas:          memory.NewCatalogStore(repository.VisaSchema),
			BlogPosts:      memory.NewCatalogStore(repository.BlogPostSchema),
			Testimonials:   memory.NewCatalogStore(repository.TestimonialSchema),
		},
	}
}

func newLoginThrottle(cfg config.AuthConfig, redis *persistence.Redis, logger *zap.Logger) auth.LoginThrottle {
	if cfg.LoginMaxAttempts <= 0 {
		return auth.NoopThrottle()
	}
	if redis == nil {
		logger.Warn("AUTH_LOGIN_MAX_ATTEMPTS set without REDIS_ADDR; login throttle disabled")
		return auth.NoopThrottle()
	}
	logger.Info("login throttle enabled",
		zap.Int("max_attempts", cfg.LoginMaxAttempts),
		zap.Duration("window", cfg.LoginWindow()),
	)
	return auth.NewRedisThrottle(redis.Client, cfg.LoginMaxAttempts, cfg.LoginWindow())
}

func newObjectStore(cfg config.StorageConfig, logger *zap.Logger) (storage.ObjectStore, error) {
	store, err := storage.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return storage.Unconfigured{}, nil
	}
	return store, nil
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
