package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	csvattendeesource "github.com/Overland-East-Bay/workshop-checkin/internal/adapters/csv/attendeesource"
	"github.com/Overland-East-Bay/workshop-checkin/internal/adapters/httpapi"
	postgres "github.com/Overland-East-Bay/workshop-checkin/internal/adapters/postgres"
	pgattendeesource "github.com/Overland-East-Bay/workshop-checkin/internal/adapters/postgres/attendeesource"
	xlsxattendeesource "github.com/Overland-East-Bay/workshop-checkin/internal/adapters/xlsx/attendeesource"
	"github.com/Overland-East-Bay/workshop-checkin/internal/app/directory"
	"github.com/Overland-East-Bay/workshop-checkin/internal/app/registration"
	platformclock "github.com/Overland-East-Bay/workshop-checkin/internal/platform/clock"
	"github.com/Overland-East-Bay/workshop-checkin/internal/platform/config"
	"github.com/Overland-East-Bay/workshop-checkin/internal/platform/watcher"
	attendeesourceport "github.com/Overland-East-Bay/workshop-checkin/internal/ports/out/attendeesource"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src, cleanup, err := openSource(ctx, cfg)
	if err != nil {
		log.Fatalf("directory source: %v", err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	clk := platformclock.NewSystemClock()

	dir := directory.New(src, clk)
	dir.SeedFixture = cfg.SeedFixture
	dir.Load(ctx)

	svc := registration.NewService(dir)
	if cfg.WelcomeMessage != "" {
		svc.WelcomeMessage = cfg.WelcomeMessage
	}

	api := httpapi.NewServer(svc, clk)
	handler := httpapi.NewRouterWithOptions(api, httpapi.RouterOptions{
		AdminMiddleware: httpapi.NewAdminMiddleware(cfg.AdminToken),
		RequestLogging:  cfg.RequestLogging,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	var w *watcher.Watcher
	if cfg.Watch {
		w, err = watcher.New(watcher.Config{Path: cfg.DirectoryPath, DebounceDur: cfg.WatchDebounce})
		if err != nil {
			log.Fatalf("watch %s: %v", cfg.DirectoryPath, err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("check-in server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if w != nil {
		g.Go(func() error {
			log.Printf("watching %s for changes", cfg.DirectoryPath)
			return w.Run(gctx, func() {
				if n, err := dir.Reload(gctx); err == nil {
					log.Printf("directory changed on disk, reloaded %d attendees", n)
				}
			})
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Printf("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func openSource(ctx context.Context, cfg config.Config) (attendeesourceport.Source, func(), error) {
	switch cfg.DirectorySource {
	case config.SourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			return nil, nil, err
		}
		return pgattendeesource.NewSource(pool), pool.Close, nil
	case config.SourceCSV:
		return csvattendeesource.NewSource(cfg.DirectoryPath), nil, nil
	default:
		return xlsxattendeesource.NewSource(cfg.DirectoryPath), nil, nil
	}
}
