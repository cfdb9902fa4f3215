// Package main запускает HTTP-сервер магазина путеводителей.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/snovatour/guideshop/internal/config"
	"github.com/snovatour/guideshop/internal/handler"
	"github.com/snovatour/guideshop/internal/logger"
	"github.com/snovatour/guideshop/internal/payment"
	"github.com/snovatour/guideshop/internal/render"
	"github.com/snovatour/guideshop/internal/repository"
	"github.com/snovatour/guideshop/internal/service"
)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger initialization error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	sugar := log.Sugar()

	repo, err := repository.NewPostgresRepository(cfg.DatabaseURI)
	if err != nil {
		sugar.Fatalw("database initialization error", "error", err.Error())
	}

	if cfg.PaymentKey == "" {
		sugar.Warn("payment key is not set, order creation will be rejected")
	}
	payments := payment.NewClient(cfg.PaymentAPIURL, cfg.PaymentKey, cfg.PaymentAPIVersion)

	baseURL := config.NewBaseURL(cfg.PublicBaseURL)

	svc := service.NewService(repo, payments, baseURL, log)
	defer svc.Close()

	templates, err := render.NewTemplates()
	if err != nil {
		sugar.Fatalw("templates initialization error", "error", err.Error())
	}

	h := handler.NewHandler(svc, log, templates, cfg.FilesRoot, cfg.StaticRoot)

	server := &http.Server{
		Addr:              cfg.RunAddress,
		Handler:           h.SetupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("starting guideshop server",
			"addr", cfg.RunAddress,
			"public_base_url", baseURL.Get(),
			"files_root", cfg.FilesRoot,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// SIGHUP перечитывает PUBLIC_BASE_URL без перезапуска.
	g.Go(func() error {
		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		defer signal.Stop(hup)

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-hup:
				u, err := baseURL.Reload()
				if err != nil {
					sugar.Errorw("reload public base url", "error", err)
					continue
				}
				sugar.Infow("public base url reloaded", "public_base_url", u)
			}
		}
	})

	// Graceful shutdown при отмене контекста (сигнал или ошибка в другой горутине)
	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 35*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}
