package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stratosfear/internal/config"
	"stratosfear/internal/console"
	"stratosfear/internal/database"
	"stratosfear/internal/journal"
	"stratosfear/internal/roster"
	"stratosfear/internal/terminal"

	"github.com/spf13/pflag"
)

func initLogger(cfg *config.Config) {
	var logLevel slog.Level
	switch cfg.Log.Level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	// stdout belongs to the mission-control screen
	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
}

func main() {
	flags := pflag.NewFlagSet("stratosfear", pflag.ExitOnError)
	flags.String("config", "", "Path to config file (YAML)")
	flags.Int("fuel-pool", 0, "Fuel units in the depot at the start of each run")
	flags.String("db", "", "Run journal database path (\":memory:\" keeps nothing on disk)")
	flags.String("profile", "", "Display profile: normal, slow or glitch")
	flags.String("color", "", "Color output: auto, always or never")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(flags)
	if err != nil {
		basicLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		basicLogger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	catalog, err := roster.Load(roster.Default(), roster.Paths{
		Crew:     cfg.Roster.CrewCSV,
		Fleet:    cfg.Roster.FleetCSV,
		Missions: cfg.Roster.MissionsCSV,
	})
	if err != nil {
		slog.Error("Failed to load roster", "error", err)
		os.Exit(1)
	}
	if len(cfg.Passengers) > 0 {
		catalog.Passengers = cfg.Passengers
	}

	db, err := database.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize database", "db_path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	profile, _ := terminal.LookupProfile(cfg.Display.Profile)
	out, color, tty := terminal.Stdout(cfg.Display.Color)
	printer := terminal.NewPrinter(out, profile, terminal.WithColor(color), terminal.WithPacing(tty))
	prompt := terminal.NewPrompter(os.Stdin, printer)

	journalCfg := journal.Config{
		BatchSize:    cfg.BatchSize,
		BatchTimeout: time.Duration(cfg.BatchTimeoutMS) * time.Millisecond,
	}
	mc := console.New(printer, prompt, console.Options{
		FuelPool: cfg.FuelPool,
		Catalog:  catalog,
		OpenJournal: func(run journal.Run) (console.Journal, error) {
			j, err := journal.Open(db, run, journalCfg)
			if err != nil {
				return nil, err
			}
			return j, nil
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Mission control starting",
		"fuel_pool", cfg.FuelPool,
		"profile", profile.Name,
		"db_path", cfg.DBPath,
		"tty", tty,
	)

	err = mc.Run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		slog.Info("Input closed, shutting down")
	case errors.Is(err, context.Canceled):
		printer.Println("")
		slog.Info("Received interrupt signal, shutting down...")
	default:
		slog.Error("Mission control stopped", "error", err)
		db.Close()
		os.Exit(1)
	}

	slog.Info("Shutdown complete")
}
