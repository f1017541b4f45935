package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	authapp "github.com/apetrenko/file-market/internal/auth/application"
	authdomain "github.com/apetrenko/file-market/internal/auth/domain"
	authpg "github.com/apetrenko/file-market/internal/auth/infrastructure/postgres"
	"github.com/apetrenko/file-market/internal/market/application"
	"github.com/apetrenko/file-market/internal/market/domain"
	httpwrap "github.com/apetrenko/file-market/internal/market/infrastructure/http"
	marketpg "github.com/apetrenko/file-market/internal/market/infrastructure/postgres"
	"github.com/apetrenko/file-market/internal/market/infrastructure/storage"
	"github.com/apetrenko/file-market/internal/pkg/database"
	"github.com/apetrenko/file-market/internal/pkg/jwt"
	"github.com/apetrenko/file-market/internal/pkg/logging"
	"github.com/apetrenko/file-market/migrations"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const (
	shutdownTimeout = 5 * time.Second

	rateLimitRequests = 30
	rateLimitWindow   = time.Minute
)

type MarketApp struct {
	cfg    MarketConfig
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
}

func NewMarketApp(cfg MarketConfig, logger logging.Logger) *MarketApp {
	return &MarketApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *MarketApp) Run(ctx context.Context) error {
	logger := a.logger
	dbURL := a.cfg.DbSettings.GetUrl()

	if err := database.MigrateDatabase(dbURL, migrations.FS); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	mover, err := a.createBlobMover()
	if err != nil {
		return err
	}

	txManager := database.NewDelegateTxManager(dbpool)

	usersRepository := marketpg.NewUsersRepository(dbpool)
	accountsRepository := marketpg.NewAccountsRepository()
	listingsRepository := marketpg.NewListingsRepository()
	ledgerRecorder := marketpg.NewLedgerRecorder()
	historyCleaner := marketpg.NewHistoryCleaner()
	userInfoRepository := marketpg.NewUserInfoRepository(dbpool, logger)
	listingsBrowser := marketpg.NewListingsBrowser(dbpool)

	purchaseCase := application.NewPurchaseCase(
		usersRepository,
		listingsRepository,
		accountsRepository,
		ledgerRecorder,
		mover,
		txManager,
		logger,
	)
	clearHistoryCase := application.NewClearHistoryCase(usersRepository, historyCleaner, txManager)
	userInfoCase := application.NewUserInfoCase(userInfoRepository, logger)

	authUsersRepository := authpg.NewUsersRepository(dbpool)
	authenticator := authapp.NewAuthenticator(
		authUsersRepository,
		authdomain.NewArgonPasswordHasher(),
		jwt.NewJWTTokenIssuer(),
		a.cfg.JwtSecret,
	)

	router := a.createRouter(purchaseCase, clearHistoryCase, userInfoCase, listingsBrowser, authenticator)

	a.server = &http.Server{
		Addr:    a.cfg.HttpPort,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", "addr", a.cfg.HttpPort)

		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errChan:
		return err
	}
}

func (a *MarketApp) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err.Error())
	}

	if a.dbpool != nil {
		a.dbpool.Close()
	}

	a.logger.Info("HTTP server stopped")
}

func (a *MarketApp) createBlobMover() (domain.BlobMover, error) {
	switch a.cfg.StorageBackend {
	case StorageBackendS3:
		return storage.NewS3Store(a.cfg.S3Settings, a.logger)
	case StorageBackendDisk:
		return storage.NewDiskStore(a.cfg.StorageDataDir)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", a.cfg.StorageBackend)
	}
}

func (a *MarketApp) createRouter(
	purchaseCase *application.PurchaseCase,
	clearHistoryCase *application.ClearHistoryCase,
	userInfoCase *application.UserInfoCase,
	listingsBrowser domain.ListingsBrowser,
	authenticator authdomain.AuthService,
) *gin.Engine {
	router := gin.Default()

	authHandler := httpwrap.NewAuthHandler(authenticator)
	marketHandler := httpwrap.NewMarketHandler(purchaseCase, clearHistoryCase, userInfoCase, listingsBrowser)

	api := router.Group("/api")
	{
		api.POST("/auth", authHandler.Authenticate)

		authenticated := api.Group("/", httpwrap.NewAuthMiddleware(a.cfg.JwtSecret, jwt.NewJWTTokenParser()))
		{
			if a.cfg.RedisAddr != "" {
				redisClient := redis.NewClient(&redis.Options{
					Addr:     a.cfg.RedisAddr,
					Password: a.cfg.RedisPassword,
				})
				authenticated.Use(httpwrap.NewRateLimitMiddleware(redisClient, rateLimitRequests, rateLimitWindow))
			}

			authenticated.GET("/info", marketHandler.GetInfo)
			authenticated.GET("/listings", marketHandler.ListAvailable)
			authenticated.POST("/purchase", marketHandler.Purchase)
			authenticated.POST("/clearHistory", marketHandler.ClearHistory)
		}
	}

	return router
}
