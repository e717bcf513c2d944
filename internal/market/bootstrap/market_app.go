package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/Lexv0lk/article-market/internal/market/application"
	"github.com/Lexv0lk/article-market/internal/market/domain"
	httpwrap "github.com/Lexv0lk/article-market/internal/market/infrastructure/http"
	"github.com/Lexv0lk/article-market/internal/market/infrastructure/postgres"
	redislock "github.com/Lexv0lk/article-market/internal/market/infrastructure/redis"
	"github.com/Lexv0lk/article-market/internal/pkg/database"
	"github.com/Lexv0lk/article-market/internal/pkg/jwt"
	"github.com/Lexv0lk/article-market/internal/pkg/lock"
	"github.com/Lexv0lk/article-market/internal/pkg/logging"
	"github.com/Lexv0lk/article-market/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	goredislib "github.com/redis/go-redis/v9"
)

type MarketApp struct {
	cfg    MarketConfig
	logger logging.Logger

	server      *http.Server
	dbpool      *pgxpool.Pool
	redisClient *goredislib.Client
}

func NewMarketApp(cfg MarketConfig, logger logging.Logger) *MarketApp {
	return &MarketApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *MarketApp) Run(ctx context.Context, lis net.Listener) error {
	logger := a.logger
	dbURL := a.cfg.DbSettings.GetURL()

	err := database.MigrateDatabase(dbURL, migrations.FS, migrations.Dir, database.MigrationsDriver, database.MigrationsDialect)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	locker, err := a.createLocker(ctx)
	if err != nil {
		return fmt.Errorf("failed to create commit lock: %w", err)
	}

	a.server = &http.Server{
		Handler: a.createRouter(dbpool, locker),
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "addr", lis.Addr().String(), "lock_backend", a.cfg.Lock.Backend)
		if err := a.server.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("error while serving http: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *MarketApp) Shutdown() {
	if a.server != nil {
		a.logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown failed", "error", err.Error())
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Error("failed to close redis client", "error", err.Error())
		}
	}

	if a.dbpool != nil {
		a.dbpool.Close()
	}

	a.logger.Info("market stopped")
}

func (a *MarketApp) createLocker(ctx context.Context) (domain.Locker, error) {
	cfg := a.cfg.Lock

	switch cfg.Backend {
	case LockBackendLocal:
		return lock.NewKeyedLocker(), nil
	case LockBackendRedis:
		client := goredislib.NewClient(&goredislib.Options{Addr: cfg.RedisAddr})
		a.redisClient = client

		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
		}

		return redislock.NewLocker(client, redislock.LockOptions{
			Expiry:     cfg.Expiry,
			Tries:      cfg.Tries,
			RetryDelay: cfg.RetryDelay,
		}, a.logger)
	default:
		return nil, fmt.Errorf("unknown lock backend %q", cfg.Backend)
	}
}

func (a *MarketApp) createRouter(dbpool *pgxpool.Pool, locker domain.Locker) http.Handler {
	logger := a.logger
	txManager := database.NewDelegateTxManager(dbpool, logger)

	accountsRepository := postgres.NewAccountsRepository(dbpool)
	articlesRepository := postgres.NewArticlesRepository(dbpool)
	ledger := postgres.NewLedger()
	registry := postgres.NewRegistry()

	accountsCase := application.NewAccountsCase(accountsRepository, accountsRepository, ledger, locker, txManager, logger)
	articlesCase := application.NewArticlesCase(articlesRepository, articlesRepository, accountsRepository, locker, txManager, logger)
	purchaseCase := application.NewPurchaseCase(accountsRepository, articlesRepository, ledger, registry, locker, txManager, logger)

	authMiddleware := httpwrap.NewAuthMiddleware(a.cfg.JwtSecret, jwt.NewJWTTokenParser(), logger)

	return httpwrap.NewRouter(
		httpwrap.NewAccountHandler(accountsCase),
		httpwrap.NewArticleHandler(articlesCase, purchaseCase),
		authMiddleware,
	)
}
