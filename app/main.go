package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"pressradar/app/cfg"
	"pressradar/app/config"
	"pressradar/app/database"
	"pressradar/app/notifier"
	"pressradar/app/pipeline"
	"pressradar/app/press"
	"pressradar/app/sources"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting press radar scan", "version", appCfg.Version)

	scanCfg, err := config.NewLoader(appCfg.ConfigPath).Load()
	if err != nil {
		slog.Error("Failed to load scan profile", "path", appCfg.ConfigPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Scan profile loaded", "keywords", len(scanCfg.Keywords))

	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "path", appCfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Debug("Database migrated", "version", version, "dirty", dirty)

	client := sources.NewClient(&http.Client{}, time.Duration(appCfg.FetchTimeout)*time.Second)
	adapters := sources.NewAdapters(client, scanCfg)
	repo := database.NewSeenItemStore(db)
	runner := pipeline.NewRunner(adapters, press.NewMatcher(), press.NewGenerator(), repo, scanCfg.Keywords)

	result, err := runner.Run(context.Background())
	if err != nil {
		slog.Error("Scan failed", "error", err)
		os.Exit(1)
	}

	if appCfg.DryRun {
		fmt.Println(result.Digest)
		return
	}

	sender := notifier.New(scanCfg.Email.SubjectPrefix)
	if err := sender.Send(result.Digest, time.Now()); err != nil {
		slog.Error("Failed to send digest", "error", err)
		os.Exit(1)
	}

	slog.Info("Digest sent", "to", appCfg.EmailTo, "new_hits", result.NewHits)
}
