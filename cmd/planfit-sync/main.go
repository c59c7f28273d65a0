package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/claude/planfit/internal/config"
	"github.com/claude/planfit/internal/remote"
	"github.com/claude/planfit/internal/storage"
	"github.com/claude/planfit/internal/sync"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	userID := flag.String("user", "", "user ID to sync (overrides config)")
	fullSync := flag.Bool("full", false, "ignore local sync state and re-store every record")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("planfit-sync", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	uid := cfg.Remote.UserID
	if *userID != "" {
		uid = *userID
	}
	if uid == "" {
		fmt.Fprintf(os.Stderr, "Error: no user ID (set remote.user_id in config or pass -user)\n")
		os.Exit(1)
	}
	if cfg.Remote.BaseURL == "" {
		fmt.Fprintf(os.Stderr, "Error: remote.base_url is required for sync\n")
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := storage.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Open state database (skipped entirely with -full)
	var state *sync.StateDB
	if !*fullSync {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Error("failed to get home directory", "error", err)
			os.Exit(1)
		}
		state, err = sync.OpenStateDB(filepath.Join(homeDir, ".planfit-sync"))
		if err != nil {
			log.Error("failed to open state database", "error", err)
			os.Exit(1)
		}
		defer state.Close()
	}

	client := remote.NewClient(strings.TrimRight(cfg.Remote.BaseURL, "/"), cfg.Remote.APIKey)
	syncer := sync.NewSyncer(client, db, state, log)

	result, err := syncer.Run(ctx, uid)
	if err != nil {
		log.Error("sync failed", "error", err)
		os.Exit(1)
	}

	log.Info("sync complete",
		"sessions_fetched", result.SessionsFetched,
		"sessions_upserted", result.SessionsUpserted,
		"sessions_skipped", result.SessionsSkipped,
		"sessions_dropped", result.SessionsDropped,
		"plans_fetched", result.PlansFetched,
		"plans_upserted", result.PlansUpserted,
		"plans_skipped", result.PlansSkipped,
	)
}
