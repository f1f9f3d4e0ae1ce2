package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"svw.info/slide/internal/api"
	"svw.info/slide/internal/engine"
	"svw.info/slide/internal/generator"
	"svw.info/slide/internal/infrastructure/storage"
	"svw.info/slide/internal/tui"
	"svw.info/slide/internal/usecase"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "puzzle service base URL")
	dataDir := flag.String("data", defaultDataDir(), "local save directory")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	logFile := flag.String("log-file", "", "log file path (default <data>/slide.log)")
	seed := flag.Int64("seed", 0, "fixed generation seed for reproducible boards (0 = time-based)")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	_ = os.MkdirAll(*dataDir, 0o755)

	// The TUI owns stdout, so logs go to a file.
	path := *logFile
	if path == "" {
		path = *dataDir + "/slide.log"
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open log file:", err)
		os.Exit(1)
	}
	defer f.Close()
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}))

	client, err := api.New(*server)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid -server:", err)
		os.Exit(1)
	}

	// Wire providers → use cases → TUI
	st := storage.NewFS(*dataDir)
	uc := usecase.NewService(generator.New(), engine.NewAStarSolver(), client, client, client, st)

	settings, err := uc.Settings(context.Background())
	if err != nil {
		logger.Warn("settings load failed", "err", err)
	}

	logger.Info("starting", "server", *server, "data", *dataDir, "seed", *seed)
	p := tea.NewProgram(tui.New(uc, logger, settings, *seed), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("tui error", "err", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir + "/slide"
	}
	return "./data"
}
