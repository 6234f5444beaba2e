package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Yalort/lootgen/internal/catalog"
	"github.com/Yalort/lootgen/internal/config"
	"github.com/Yalort/lootgen/internal/generator"
	"github.com/Yalort/lootgen/internal/logger"
	"github.com/Yalort/lootgen/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logCfg.Environment = cfg.Env
	lg := logger.Init(logCfg, os.Stdout)

	loader, err := catalog.NewLoader(cfg.CacheSize)
	if err != nil {
		lg.Error("create loader", "error", err)
		os.Exit(1)
	}
	store, err := catalog.NewStore(loader, cfg.CatalogPath, cfg.MaterialsPath)
	if err != nil {
		lg.Error("load catalog", "error", err)
		os.Exit(1)
	}
	cat := store.Snapshot()
	for _, w := range cat.Warnings {
		lg.Warn("catalog warning", "detail", w)
	}
	lg.Info("catalog loaded", "items", len(cat.Items), "materials", len(cat.Materials), "tags", len(cat.Tags))

	svc := generator.NewService(store, generator.Options{
		MaxBudget: cfg.MaxBudget,
		MaxTrials: cfg.MaxTrials,
	})

	srv, err := server.New(cfg.HTTPAddr, cfg.GRPCAddr, server.NewRouter(svc))
	if err != nil {
		lg.Error("start server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.WatchInterval > 0 {
		w := catalog.NewWatcher(store.Paths(), cfg.WatchInterval, func(path string) {
			lg.Info("catalog file changed", "path", path)
			_, err := svc.Reload(ctx)
			srv.SetServing(err == nil)
		})
		go w.Run(ctx)
	}

	if err := srv.Serve(ctx, cfg.ShutdownTimeout); err != nil {
		lg.Error("server stopped", "error", err)
		os.Exit(1)
	}
	lg.Info("server stopped")
}
