package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MauritiusChief/toki-ante/internal/adapter/provider/remote"
	"github.com/MauritiusChief/toki-ante/internal/auth"
	"github.com/MauritiusChief/toki-ante/internal/config"
	"github.com/MauritiusChief/toki-ante/internal/preset"
	"github.com/MauritiusChief/toki-ante/internal/service/dictionary"
	"github.com/MauritiusChief/toki-ante/internal/transport/middleware"
	"github.com/MauritiusChief/toki-ante/internal/transport/rest"
)

// Run wires the preference store, preset bundle, dictionary service and
// HTTP server, then serves until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store", cfg.Store.Driver),
	)

	store, err := OpenStore(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	var fetcher preset.Fetcher
	if cfg.Dictionary.UsesRemotePresets() {
		fetcher = remote.NewProvider(cfg.Dictionary.PresetBaseURL, cfg.Dictionary.FetchTimeout, logger)
		logger.Info("presets fetched remotely", slog.String("base_url", cfg.Dictionary.PresetBaseURL))
	}

	wired, err := newServer(cfg, store, fetcher, logger)
	if err != nil {
		return err
	}
	defer wired.limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      wired.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		sweep(gctx, wired.svc, cfg.Dictionary.SweepInterval, logger)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// server is the wired HTTP handler and the service behind it.
type server struct {
	handler http.Handler
	svc     *dictionary.Service
	limiter *middleware.RateLimiter
}

// newServer builds the preset bundle, dictionary service, middleware chains
// and router on top of store. A nil fetcher serves presets from the
// embedded bundle.
func newServer(cfg *config.Config, store Store, fetcher preset.Fetcher, logger *slog.Logger) (*server, error) {
	bundle, err := preset.NewBundle(logger, fetcher)
	if err != nil {
		return nil, fmt.Errorf("build preset bundle: %w", err)
	}

	svc := dictionary.NewService(logger, store, bundle, cfg.Dictionary)
	tokens := auth.NewClientTokens(cfg.Auth.ClientTokenSecret, cfg.Auth.Issuer, cfg.Auth.ClientTokenTTL)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	var limit middleware.Middleware
	if cfg.RateLimit.RequestsPerMinute > 0 {
		limit = limiter.Limit(cfg.RateLimit.RequestsPerMinute)
	}

	public := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
	)
	client := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Client(tokens, cfg.Auth, logger),
		middleware.Logger(logger),
		limit,
	)

	router := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(store, cfg.Store.Driver, BuildVersion()),
		Dictionary: rest.NewDictionaryHandler(svc, cfg.Dictionary.MaxUploadBytes, logger),
		Convert:    rest.NewConvertHandler(svc, cfg.Dictionary.MaxTextBytes, cfg.CORS.AllowedOrigins, logger),
		Presets:    rest.NewPresetFilesHandler(bundle),
	}, public, client)

	return &server{handler: router, svc: svc, limiter: limiter}, nil
}

type sweeper interface {
	SweepIdle(ctx context.Context) (*dictionary.SweepResult, error)
}

// sweep runs SweepIdle every interval until ctx is done. Failures are
// logged and retried on the next tick.
func sweep(ctx context.Context, s sweeper, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.SweepIdle(ctx); err != nil && ctx.Err() == nil {
				logger.WarnContext(ctx, "idle sweep failed", slog.String("error", err.Error()))
			}
		}
	}
}
