package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	app "github.com/rocketscienceinc/monopoly-backend/internal"
	"github.com/rocketscienceinc/monopoly-backend/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	cmd := &cli.Command{
		Name:  "monopoly",
		Usage: "run economic game simulations",
		Commands: []*cli.Command{
			{
				Name:  "simulate",
				Usage: "play a fresh game with bot players",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "players", Value: 4, Usage: "number of bot players"},
					&cli.IntFlag{Name: "max-rounds", Value: 0, Usage: "stop after this many rounds, 0 for unlimited"},
					&cli.StringFlag{Name: "save-slot", Usage: "save the final state under this slot name"},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return run(app.Options{
						Players:   int(cmd.Int("players")),
						MaxRounds: int(cmd.Int("max-rounds")),
						SaveSlot:  cmd.String("save-slot"),
					})
				},
			},
			{
				Name:  "resume",
				Usage: "continue a previously saved game",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "slot", Required: true, Usage: "save slot to load"},
					&cli.IntFlag{Name: "max-rounds", Value: 0, Usage: "stop after this many rounds, 0 for unlimited"},
					&cli.StringFlag{Name: "save-slot", Usage: "save the final state under this slot name"},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return run(app.Options{
						LoadSlot:  cmd.String("slot"),
						MaxRounds: int(cmd.Int("max-rounds")),
						SaveSlot:  cmd.String("save-slot"),
					})
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

func run(opts app.Options) error {
	conf := initConfig()
	logger := initLogger(conf)

	return app.RunApp(logger, conf, opts)
}

// initialize config.
func initConfig() *config.Config {
	// a missing .env file is fine, the config has defaults for everything
	_ = godotenv.Load()

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
