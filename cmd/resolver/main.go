// Command resolver runs the caching DNS resolver: it binds a UDP socket,
// resolves queries via cache, local zone file, and upstream forward, and
// optionally serves a read-only admin/observability HTTP API.
//
// Signal-driven shutdown and background-server goroutines cancel the
// root context on a listen error; config is env-var/flag driven and the
// admin API is optional.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tugunchinov/cacheresolver/internal/adminapi"
	"github.com/tugunchinov/cacheresolver/internal/audit"
	"github.com/tugunchinov/cacheresolver/internal/config"
	"github.com/tugunchinov/cacheresolver/internal/logging"
	"github.com/tugunchinov/cacheresolver/internal/resolver"
	"github.com/tugunchinov/cacheresolver/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.Configure(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "cacheresolver",
	})
	logger.Info("cacheresolver starting",
		"bind", cfg.BindAddr,
		"upstream", cfg.Upstream,
		"zone", cfg.ZoneFile,
		"admin_addr", cfg.AdminAddr,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	res := resolver.New(cfg.ZoneFile, cfg.Upstream, logger)

	var store *audit.Store
	var adminSrv *adminapi.Server
	if cfg.AdminAddr != "" {
		store, err = audit.Open(cfg.AdminDB)
		if err != nil {
			return fmt.Errorf("open audit store: %w", err)
		}
		defer store.Close()
		if err := store.RecordStart(cfg.BindAddr, cfg.Upstream, cfg.ZoneFile); err != nil {
			logger.Warn("failed to record instance start", "error", err)
		}

		adminSrv = adminapi.New(cfg.AdminAddr, res, store, logger)
		logger.Info("admin API starting", "addr", cfg.AdminAddr)
		go func() {
			if err := adminSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("admin API server error", "error", err)
				cancel()
			}
		}()
	}

	dnsSrv := &server.Server{Resolver: res, Logger: logger}
	runErr := dnsSrv.Run(ctx, cfg.BindAddr)

	if adminSrv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = adminSrv.Shutdown(shutdownCtx)
		shutdownCancel()
	}

	if runErr != nil {
		return fmt.Errorf("server exited with error: %w", runErr)
	}
	return nil
}
