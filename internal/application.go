package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/boarddata"
	"github.com/rocketscienceinc/monopoly-backend/internal/config"
	"github.com/rocketscienceinc/monopoly-backend/internal/monopoly"
	"github.com/rocketscienceinc/monopoly-backend/internal/repository"
	"github.com/rocketscienceinc/monopoly-backend/internal/repository/storage"
	"github.com/rocketscienceinc/monopoly-backend/internal/service"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// Options selects what one application run does: start a fresh simulation
// or resume a slot, and where to save the outcome.
type Options struct {
	Players   int
	MaxRounds int
	SaveSlot  string
	LoadSlot  string
}

// RunApp - runs one simulated game to completion and persists its snapshots.
func RunApp(logger *slog.Logger, conf *config.Config, opts Options) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}
	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	gameRepo := repository.NewGameRepository(redisStorage.Connection)
	slotRepo := repository.NewSaveSlotRepository(sqliteStorage.Connection)

	spaces, chance, chest, err := loadBoardData(conf)
	if err != nil {
		return err
	}

	game, err := buildGame(ctx, logger, conf, opts, slotRepo, spaces, chance, chest)
	if err != nil {
		return err
	}

	if err = runSimulation(ctx, log, conf, opts, game, gameRepo); err != nil {
		return err
	}

	snap := repository.CaptureSnapshot(game)
	if err = gameRepo.CreateOrUpdate(ctx, snap); err != nil {
		return fmt.Errorf("could not store final snapshot: %w", err)
	}

	if opts.SaveSlot != "" {
		if err = slotRepo.Save(ctx, opts.SaveSlot, snap); err != nil {
			return fmt.Errorf("could not save slot %q: %w", opts.SaveSlot, err)
		}
		log.Info("game saved", "slot", opts.SaveSlot, "game", game.ID)
	}

	reportStandings(log, game)

	return nil
}

func loadBoardData(conf *config.Config) ([]boarddata.SpaceRecord, []boarddata.CardRecord, []boarddata.CardRecord, error) {
	spaces, err := boarddata.LoadSpaces(conf.BoardPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not load board: %w", err)
	}

	chance, err := boarddata.LoadCards(conf.ChancePath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not load chance deck: %w", err)
	}

	chest, err := boarddata.LoadCards(conf.CommunityPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not load community chest deck: %w", err)
	}

	return spaces, chance, chest, nil
}

func buildGame(
	ctx context.Context,
	logger *slog.Logger,
	conf *config.Config,
	opts Options,
	slotRepo repository.SaveSlotRepository,
	spaces []boarddata.SpaceRecord,
	chance, chest []boarddata.CardRecord,
) (*monopoly.Game, error) {
	if opts.LoadSlot != "" {
		snap, err := slotRepo.Find(ctx, opts.LoadSlot)
		if err != nil {
			return nil, fmt.Errorf("could not load slot %q: %w", opts.LoadSlot, err)
		}

		game, err := repository.RestoreSnapshot(logger, conf, spaces, chance, chest, snap, service.SeatBot)
		if err != nil {
			return nil, fmt.Errorf("could not restore slot %q: %w", opts.LoadSlot, err)
		}

		return game, nil
	}

	game, err := monopoly.NewGame(logger, conf, spaces, chance, chest)
	if err != nil {
		return nil, fmt.Errorf("could not build game: %w", err)
	}

	for i := 0; i < opts.Players; i++ {
		service.SeatBot(game, fmt.Sprintf("player-%d", i+1))
	}

	return game, nil
}

// runSimulation plays turns until one player remains, the round cap is hit,
// or the context is canceled. A snapshot goes to the hot store and the
// archive directory at every completed round.
func runSimulation(
	ctx context.Context,
	log *slog.Logger,
	conf *config.Config,
	opts Options,
	game *monopoly.Game,
	gameRepo repository.GameRepository,
) error {
	rounds := 0

	for {
		select {
		case <-ctx.Done():
			log.Info("simulation interrupted", "rounds", rounds)
			return nil
		default:
		}

		result, err := game.PlayTurn()
		if errors.Is(err, apperror.ErrGameOver) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("turn failed: %w", err)
		}

		if result.RoundCompleted {
			rounds++

			snap := repository.CaptureSnapshot(game)
			if err = gameRepo.CreateOrUpdate(ctx, snap); err != nil {
				log.Error("could not store snapshot", "error", err)
			}
			if _, err = repository.WriteArchive(conf.SnapshotDir, snap); err != nil {
				log.Error("could not archive snapshot", "error", err)
			}
		}

		if result.GameOver {
			log.Info("game over", "rounds", rounds)
			return nil
		}

		if opts.MaxRounds > 0 && rounds >= opts.MaxRounds {
			log.Info("round cap reached", "rounds", rounds)
			return nil
		}
	}
}

func reportStandings(log *slog.Logger, game *monopoly.Game) {
	if winner := game.Winner(); winner != nil {
		log.Info("winner", "player", winner.Name, "net_worth", winner.NetWorth())
		return
	}

	for place, player := range game.RankSurvivors() {
		log.Info("standing", "place", place+1, "player", player.Name, "net_worth", player.NetWorth())
	}
}
