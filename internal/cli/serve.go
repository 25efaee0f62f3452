package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/SscSPs/money_counter/internal/adapters/database/pgsql"
	"github.com/SscSPs/money_counter/internal/core/services"
	"github.com/SscSPs/money_counter/internal/dto"
	"github.com/SscSPs/money_counter/internal/handlers"
	"github.com/SscSPs/money_counter/internal/middleware"
	"github.com/SscSPs/money_counter/internal/platform/config"
	"github.com/SscSPs/money_counter/internal/platform/logger"
	"github.com/SscSPs/money_counter/internal/utils"
	"github.com/SscSPs/money_counter/pkg/database"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var skipMigrations bool

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, skipMigrations)
		},
	}

	c.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply database migrations on startup")
	return c
}

func serve(ctx context.Context, skipMigrations bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	baseLogger := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return fmt.Errorf("initialize database pool: %w", err)
	}
	defer dbPool.Close()
	baseLogger.Info("Database connection pool established.")

	if !skipMigrations {
		baseLogger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, baseLogger); err != nil {
			return err
		}
	}

	if err := dto.RegisterValidators(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}

	rateLimiter, err := middleware.NewLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, baseLogger)
	defer posthogClient.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(baseLogger),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("set trusted proxies: %w", err)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, rateLimiter, posthogClient)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		baseLogger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed to run: %w", err)
	case <-ctx.Done():
	}

	baseLogger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return <-errCh
}
