package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/sync/errgroup"

	"jobscout-engine/internal/config"
	"jobscout-engine/internal/events"
	"jobscout-engine/internal/httpapi"
	"jobscout-engine/internal/provider"
	"jobscout-engine/internal/store"
)

func main() {
	dataDir := os.Getenv("JOBSCOUT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine per data dir; two writers on the same sqlite file is asking
	// for trouble.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("data dir lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another engine instance is already using %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config invalid: %v", err)
	}
	cfgVal.Store(cfg)

	// Credentials are resolved once per process; absence is handled at
	// request time, not here.
	creds := config.ResolveCredentials(cfg)
	if creds.ProxyAPIKey == "" {
		log.Printf("level=warn msg=\"no scraping proxy credential configured\"")
	}
	if creds.StructuredAPIKey == "" || creds.StructuredCreds == "" {
		log.Printf("level=info msg=\"structured jobs provider not configured, scrape path only\"")
	}

	db, err := store.Open(filepath.Join(dataDir, "jobscout.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := store.Migrate(db); err != nil {
		log.Fatal(err)
	}

	hub := events.NewHub()

	limiter := provider.NewHostLimiter(cfg.Limits.HostReqPerSec, cfg.Limits.HostBurst)
	searcher := &provider.Searcher{
		Structured: provider.NewStructuredClient(
			creds.StructuredAPIKey, creds.StructuredCreds,
			cfg.Providers.Structured.Endpoint, limiter),
		Proxy: provider.NewProxyClient(
			creds.ProxyAPIKey, cfg.Providers.Proxy.Endpoint, limiter),
		SearchURLTemplate: cfg.Providers.Proxy.SearchURLTemplate,
	}

	applyCredentials := func() {
		c := config.ResolveCredentials(cfgVal.Load().(config.Config))
		searcher.UpdateCredentials(c.StructuredAPIKey, c.StructuredCreds, c.ProxyAPIKey)
	}

	mux := httpapi.NewMux(httpapi.Deps{
		DB:               db,
		Hub:              hub,
		Searcher:         searcher,
		FetchTimeout:     time.Duration(cfg.Limits.FetchTimeoutSeconds) * time.Second,
		ApplyCredentials: applyCredentials,
		CfgVal:           &cfgVal,
		UserCfgPath:      userCfgPath,
		LoadCfg:          loadCfg,
	})
	handler := httpapi.Chain(mux,
		httpapi.Cors,
		httpapi.RequestID,
		httpapi.Recover,
		httpapi.AccessLog,
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("level=info msg=\"api listening\" addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
