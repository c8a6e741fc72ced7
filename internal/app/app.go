package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ibeloyar/courierdesk/internal/config"
	"github.com/ibeloyar/courierdesk/internal/delivery"
	"github.com/ibeloyar/courierdesk/internal/feed"
	"github.com/ibeloyar/courierdesk/internal/otp"
	"github.com/ibeloyar/courierdesk/internal/repository/pg"
	"github.com/ibeloyar/courierdesk/internal/service"
	"github.com/ibeloyar/courierdesk/pgk/logger"
	"github.com/ibeloyar/courierdesk/pgk/retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	httpController "github.com/ibeloyar/courierdesk/internal/controller/http"
)

const shutdownTimeout = 5 * time.Second

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	storage, err := pg.New(cfg.DatabaseURI, lg)
	if err != nil {
		return err
	}

	ledgerWriter := pg.NewLedgerWriter(storage, cfg.LedgerWorkers, lg)
	ledgerWriter.Start()

	hub := delivery.NewHub(lg, newSourceFactory(cfg, lg), storage,
		delivery.WithOTPVerifier(newOTPVerifier(cfg)),
		delivery.WithCompletionDelay(cfg.CompletionDelay),
		delivery.WithRecorder(ledgerWriter),
	)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)

	s := service.New(storage, hub, cfg.PassCost, cfg.TokenLifetime, cfg.SecretKey)

	handlers := httpController.New(s, lg)
	router = httpController.InitRoutes(router, handlers, cfg.SecretKey)

	srv := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: router,
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(signalCtx)

	g.Go(func() error {
		lg.Infof("starting server on %s, feed mode %s", cfg.RunAddress, cfg.FeedMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server ListenAndServe error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		lg.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown (server) error: %w", err)
		}
		return nil
	})

	runErr := g.Wait()

	drainCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// сессии закрываются до остановки writer'а: отложенные завершения попадают в очередь
	hubDone := make(chan struct{})
	go func() {
		defer close(hubDone)
		hub.Shutdown()
	}()

	select {
	case <-hubDone:
	case <-drainCtx.Done():
		lg.Warn("rider sessions still closing after timeout")
	}

	if err := ledgerWriter.Shutdown(drainCtx); err != nil {
		lg.Errorf("shutdown (ledger writer) error: %v", err)
	}

	if err := storage.Shutdown(); err != nil {
		return fmt.Errorf("shutdown (repo) error: %w", err)
	}

	if runErr != nil {
		return runErr
	}

	lg.Info("server shutdown success")
	return nil
}

func newOTPVerifier(cfg config.Config) delivery.OTPVerifier {
	if cfg.OTPServiceAddress == "" {
		return otp.FormatVerifier{}
	}

	client := retryablehttp.NewRetryableClient(retryablehttp.RetryConfig{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   2 * time.Second,
		Timeout:    3 * time.Second,
	})

	return otp.NewRemoteVerifier(cfg.OTPServiceAddress, client)
}

func newSourceFactory(cfg config.Config, lg *zap.SugaredLogger) delivery.SourceFactory {
	switch cfg.FeedMode {
	case config.FeedModeAMQP:
		return func(riderID int64, bus *feed.Bus) feed.Source {
			return feed.NewAMQPSource(cfg.AMQPURL, riderID, bus, lg)
		}
	case config.FeedModeNone:
		return nil
	default:
		simCfg := feed.DefaultSimulatorConfig()
		simCfg.ConnectDelay = cfg.FeedConnectDelay
		simCfg.JobProposalInterval = cfg.JobProposalInterval
		simCfg.OrderUpdateInterval = cfg.OrderUpdateInterval

		return func(riderID int64, bus *feed.Bus) feed.Source {
			return feed.NewSimulator(riderID, bus, simCfg, lg)
		}
	}
}
