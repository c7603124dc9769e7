package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tracklytic/internal/handlers"
	"tracklytic/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// uploads may exceed the receipt limit by this much so the receipt service
// can answer with its own error
const bodyLimitHeadroom = 1 << 20

func newServeCmd() *cobra.Command {
	var withWorker bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), withWorker)
		},
	}
	cmd.Flags().BoolVar(&withWorker, "with-worker", false, "Also run the scheduled jobs in this process")
	return cmd
}

func runServe(ctx context.Context, withWorker bool) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, logger, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	defer a.Close()

	limiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, 0)
	e := newEcho(a, limiter)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		limiter.Run(gctx)
		return nil
	})

	g.Go(func() error {
		server := &http.Server{
			Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		}
		logger.Info("Starting server", "addr", server.Addr, "environment", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if withWorker {
		sched, err := newScheduler(cfg.Worker, a.jobs(), logger)
		if err != nil {
			return err
		}
		g.Go(func() error { return sched.Run(gctx) })
	}

	return g.Wait()
}

func newEcho(a *app, limiter *middleware.RateLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(a.logger))
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders(!a.cfg.IsDevelopment()))
	if origins := a.cfg.Server.CORSAllowOrigins; len(origins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     origins,
			AllowCredentials: true,
			AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
			ExposeHeaders:    []string{middleware.TraceIDHeader},
		}))
	}
	e.Use(echomw.BodyLimit(fmt.Sprintf("%dB", a.cfg.Receipt.MaxUploadSize+bodyLimitHeadroom)))
	e.Use(limiter.Middleware())

	registerRoutes(e, newRouteHandlers(a), middleware.RequireAuth(a.tokens, a.repos.blacklist))
	return e
}
