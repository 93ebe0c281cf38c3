package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"lostfound/internal/config"
	"lostfound/internal/db"
	"lostfound/internal/handlers"
	"lostfound/internal/imaging"
	"lostfound/internal/logger"
	"lostfound/internal/middleware"
	"lostfound/internal/repository"
	"lostfound/internal/routes"
	"lostfound/internal/services"
	"lostfound/internal/session"
	"lostfound/internal/utils"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout  = 10 * time.Second
	janitorInterval  = 10 * time.Minute
	tokenPurgePeriod = time.Hour
)

// App owns the database pool, the HTTP server and the background workers.
type App struct {
	cfg       *config.Config
	pool      *pgxpool.Pool
	server    *http.Server
	notifier  *services.Notifier
	sessions  *session.Manager
	passwords *services.PasswordService
	auth      *services.AuthService
}

func InitApp(ctx context.Context, cfg *config.Config) (*App, error) {
	proxies, err := middleware.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("TRUSTED_PROXIES: %w", err)
	}
	authLimit := middleware.StrictLimit
	authLimit.TrustedProxies = proxies

	pool, err := db.NewPostgresConnection(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := db.ApplyMigrations(pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	utils.BcryptCost = cfg.BcryptCost

	// Repositories
	userRepo := repository.NewUserRepository(pool)
	itemRepo := repository.NewItemRepository(pool)
	claimRepo := repository.NewClaimRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)
	reportRepo := repository.NewLostReportRepository(pool)
	deadRepo := repository.NewDeadLetterRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)

	var store session.Store = session.NewMemoryStore()
	if cfg.SessionStore == "postgres" {
		store = repository.NewSessionRepository(pool)
	}
	sessions := session.NewManager(store, session.Options{
		Secret:     cfg.SessionSecret,
		TTL:        cfg.SessionLifetime(),
		CookieName: cfg.CookieName,
		Secure:     cfg.IsProd(),
	})

	// Services
	mailer := services.NewEmailService(cfg)
	notifier := services.NewNotifier(mailer, deadRepo, services.NotifierConfig{
		Workers:     cfg.NotifyWorkers,
		QueueSize:   cfg.NotifyQueueSize,
		MaxAttempts: cfg.NotifyMaxAttempts,
		Backoff:     cfg.NotifyRetryBackoff(),
	})
	authService := services.NewAuthService(userRepo, cfg.EmailDomain)
	passwordService := services.NewPasswordService(userRepo, resetRepo, notifier, cfg.AppURL, cfg.ResetTokenLifetime())
	itemService := services.NewItemService(itemRepo, imaging.NewPhotoStore(cfg.UploadDir))
	claimService := services.NewClaimService(claimRepo, itemRepo, userRepo, notifier)
	reportService := services.NewLostReportService(reportRepo)
	adminService := services.NewAdminService(statsRepo, deadRepo)

	// Handlers
	h := routes.Handlers{
		Auth:     handlers.NewAuthHandler(authService, sessions),
		Password: handlers.NewPasswordHandler(passwordService, cfg.StaticDir),
		Items:    handlers.NewItemHandler(itemService),
		Claims:   handlers.NewClaimHandler(claimService),
		Lost:     handlers.NewLostReportHandler(reportService),
		Admin:    handlers.NewAdminHandler(adminService),
		Health:   handlers.NewHealthHandler(pool),
	}

	router := mux.NewRouter()
	routes.InitRoutes(router, h, routes.Options{
		Sessions:  sessions,
		StaticDir: cfg.StaticDir,
		UploadDir: cfg.UploadDir,
		AuthLimit: authLimit,
	})

	return &App{
		cfg:       cfg,
		pool:      pool,
		server:    &http.Server{Addr: ":" + cfg.Port, Handler: withCORS(cfg, router), ReadHeaderTimeout: 10 * time.Second},
		notifier:  notifier,
		sessions:  sessions,
		passwords: passwordService,
		auth:      authService,
	}, nil
}

func withCORS(cfg *config.Config, h http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "Retry-After"},
	}
	if len(cfg.CORSOrigins) == 0 {
		// Same-origin pages only; any origin is reflected outside production.
		opts.AllowOriginFunc = func(string) bool { return !cfg.IsProd() }
	}
	return cors.New(opts).Handler(h)
}

// Run serves HTTP and runs the background workers until ctx is cancelled,
// then shuts everything down.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.server.Addr, err)
	}
	return a.serve(ctx, ln)
}

// serve owns ln. The notifier outlives the HTTP drain so that requests
// finishing during shutdown can still queue notifications.
func (a *App) serve(ctx context.Context, ln net.Listener) error {
	notifyCtx, stopNotifier := context.WithCancel(context.WithoutCancel(ctx))
	defer stopNotifier()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Log.Info("Server started", zap.String("addr", ln.Addr().String()))
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		defer stopNotifier()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Log.Info("Shutting down HTTP server")
		return a.server.Shutdown(shutdownCtx)
	})

	g.Go(func() error { return a.notifier.Run(notifyCtx) })
	g.Go(func() error { return a.sessions.RunJanitor(gctx, janitorInterval) })
	g.Go(func() error { return a.purgeResetTokens(gctx) })

	return g.Wait()
}

func (a *App) purgeResetTokens(ctx context.Context) error {
	t := time.NewTicker(tokenPurgePeriod)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			n, err := a.passwords.PurgeExpired(ctx)
			if err != nil {
				logger.Log.Warn("Reset token purge failed", zap.Error(err))
				continue
			}
			if n > 0 {
				logger.Log.Info("Expired reset tokens purged", zap.Int64("count", n))
			}
		}
	}
}

// Purge removes expired sessions and reset tokens once.
func (a *App) Purge(ctx context.Context) (sessions int, tokens int64, err error) {
	sessions, err = a.sessions.Purge(ctx)
	if err != nil {
		return 0, 0, err
	}
	tokens, err = a.passwords.PurgeExpired(ctx)
	return sessions, tokens, err
}

func (a *App) Auth() *services.AuthService { return a.auth }

func (a *App) Close() {
	a.pool.Close()
}
