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
	"time"

	"go.uber.org/zap"

	"github.com/tbeaudouin05/braintree-billing/api/bootstrap"
	"github.com/tbeaudouin05/braintree-billing/api/config"
	"github.com/tbeaudouin05/braintree-billing/api/database"
	"github.com/tbeaudouin05/braintree-billing/api/grpcserver"
	"github.com/tbeaudouin05/braintree-billing/api/router"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bootstrap failures keep the process up so health checks can report them.
	bootErr := bootstrap.Ensure()
	log := bootstrap.Logger()
	defer func() { _ = log.Sync() }()
	if bootErr != nil {
		log.Error("bootstrap failed", zap.Error(bootErr))
	}
	if config.AppConfig == nil {
		return fmt.Errorf("configuration unavailable: %w", bootErr)
	}
	cfg := config.AppConfig

	grpcSrv, hs := grpcserver.New(log)
	grpcserver.SetServing(hs, bootErr == nil)
	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	httpSrv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router.NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info("grpc listening", zap.String("addr", lis.Addr().String()))
		if err := grpcSrv.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc serve: %w", err)
		}
	}()
	go func() {
		log.Info("http listening", zap.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err = <-errCh:
		log.Error("server stopped", zap.Error(err))
	}

	grpcserver.SetServing(hs, false)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutErr := httpSrv.Shutdown(shutdownCtx); shutErr != nil {
		log.Warn("http shutdown", zap.Error(shutErr))
	}
	grpcSrv.GracefulStop()
	if closeErr := database.Close(); closeErr != nil {
		log.Warn("database close", zap.Error(closeErr))
	}
	return err
}
