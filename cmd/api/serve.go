package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/linkledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/gateway/identity"
)

const (
	flagSkipMigrate   = "skip-migrate"
	flagPurgeInterval = "purge-interval"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  runServe,
	}
	cmd.Flags().Bool(flagSkipMigrate, false, "do not apply migrations on startup")
	cmd.Flags().Duration(flagPurgeInterval, 10*time.Minute, "how often expired rate limit counters are removed (0 disables)")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	cmd.SetContext(ctx)

	a, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	if skip, _ := cmd.Flags().GetBool(flagSkipMigrate); !skip {
		if err := a.migrate(ctx); err != nil {
			a.logger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
			return err
		}
	}

	if a.conf.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	paymentGateway, signatures := a.paymentGateway()
	uc := a.useCases(paymentGateway)
	rateLimits := a.rateLimits()
	verifier := identity.NewJWTVerifier(a.conf.Auth.JWTSecret, a.conf.Auth.Issuer, a.clock)

	router := gin.New()
	routes.SetupMiddlewares(router, a.logger, middleware.NewHTTPMetrics(a.registry), a.conf.Server.AllowedOrigins)
	routes.SetupRoutes(router,
		routes.Handlers{
			User:        handler.NewUserHandler(uc.users, uc.bonus, a.logger),
			Link:        handler.NewLinkHandler(uc.links, a.logger),
			Transaction: handler.NewTransactionHandler(uc.payment, uc.users, signatures, a.logger),
			Admin:       handler.NewAdminHandler(uc.admin, a.logger),
			Health:      handler.NewHealthHandler(a.db, a.logger),
		},
		routes.Guards{
			Auth: middleware.RequireUser(verifier, uc.users, a.logger),
			AdminRateLimit: middleware.RateLimit(rateLimits, "admin",
				a.conf.RateLimit.AdminRequests, a.conf.RateLimit.AdminWindow, a.clock, a.logger),
		},
		promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}),
	)

	srv := &http.Server{
		Addr:              net.JoinHostPort(a.conf.Server.Host, strconv.Itoa(a.conf.Server.Port)),
		Handler:           router,
		ReadTimeout:       a.conf.Server.ReadTimeout,
		WriteTimeout:      a.conf.Server.WriteTimeout,
		IdleTimeout:       a.conf.Server.IdleTimeout,
		ReadHeaderTimeout: a.conf.Server.ReadHeaderTimeout,
	}

	if interval, _ := cmd.Flags().GetDuration(flagPurgeInterval); interval > 0 {
		go a.purgeLoop(ctx, rateLimits, interval)
	}

	serverErr := make(chan error, 1)
	go func() {
		a.logger.Info("Starting server", map[string]any{
			"address":     srv.Addr,
			"environment": a.conf.Environment,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.conf.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
		return err
	}
	a.logger.Info("Server exited gracefully", nil)
	return nil
}

func (a *app) purgeLoop(ctx context.Context, store persistence.RateLimitRepository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := store.PurgeExpired(ctx, a.clock.Now()); err != nil {
				a.logger.Warn("Failed to purge rate limit counters", map[string]any{"error": err.Error()})
			}
		}
	}
}
