package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/cedzoi/cedzoi/internal/api/http"
	"github.com/cedzoi/cedzoi/internal/catalog"
	"github.com/cedzoi/cedzoi/internal/config"
	"github.com/cedzoi/cedzoi/internal/db"
	"github.com/cedzoi/cedzoi/internal/logger"
	"github.com/cedzoi/cedzoi/internal/storage"
)

func main() {
	cfg, err := config.Load()
	log := logger.New(logger.WithPrefix("[studyd] "), logger.WithVerbose(cfg.Verbose))
	if err != nil {
		log.Fatal("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, ready, closeFn, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("content store: %v", err)
	}
	defer closeFn()

	r := api.NewRouter(store, api.RouterOptions{CORSOrigins: cfg.CORSOrigins, Ready: ready})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("listening on %s (source=%s)", cfg.HTTPAddr, cfg.ContentSource)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		closeFn()
		log.Fatal("serve: %v", err)
	}
}

// openStore builds the catalog named by CONTENT_SOURCE. For sql, SEED_DIR
// (when set) is imported before serving.
func openStore(ctx context.Context, cfg config.Config, log *logger.Logger) (catalog.Store, func() error, func(), error) {
	switch cfg.ContentSource {
	case config.SourceSQL:
		openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		dbh, err := db.Open(openCtx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			return nil, nil, nil, err
		}
		store := catalog.NewSQLStore(dbh)
		if cfg.SeedDir != "" {
			fs, err := storage.NewFSStore(cfg.SeedDir)
			if err != nil {
				dbh.Close()
				return nil, nil, nil, err
			}
			if err := catalog.Seed(openCtx, catalog.NewDirStore(fs), store); err != nil {
				dbh.Close()
				return nil, nil, nil, err
			}
			log.Info("seeded catalog from %s", cfg.SeedDir)
		}
		ready := func() error { return dbh.PingContext(context.Background()) }
		return store, ready, func() { dbh.Close() }, nil

	default:
		fs, err := storage.NewFSStore(cfg.ContentDir)
		if err != nil {
			return nil, nil, nil, err
		}
		log.Debug("serving content from %s", fs.Base())
		ready := func() error {
			rc, err := fs.Get(catalog.QuizzesFile)
			if err != nil {
				return err
			}
			return rc.Close()
		}
		return catalog.NewDirStore(fs), ready, func() {}, nil
	}
}
