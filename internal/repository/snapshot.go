package repository

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/boarddata"
	"github.com/rocketscienceinc/monopoly-backend/internal/config"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/rocketscienceinc/monopoly-backend/internal/monopoly"
)

// GameSnapshotV1 is the serialized form of a running game. It carries only
// the mutable economic state; the board layout and deck contents come from
// the external data files again on restore, so a snapshot stays small and
// survives card-text edits.
type GameSnapshotV1 struct {
	Version int    `json:"version"`
	ID      string `json:"id"`
	SavedAt string `json:"saved_at"`
	Current int    `json:"current"`
	Pot     int    `json:"pot"`
	Houses  int    `json:"houses"`
	Hotels  int    `json:"hotels"`

	Players []PlayerSnapshotV1 `json:"players"`
	Deeds   []DeedSnapshotV1   `json:"deeds"`
}

type PlayerSnapshotV1 struct {
	Name           string `json:"name"`
	Balance        int    `json:"balance"`
	Position       int    `json:"position"`
	Eliminated     bool   `json:"eliminated"`
	InJail         bool   `json:"in_jail"`
	JailTurns      int    `json:"jail_turns"`
	JailFreeChance bool   `json:"jail_free_chance"`
	JailFreeChest  bool   `json:"jail_free_chest"`
}

// DeedSnapshotV1 records one owned title deed by board position. Unowned
// spaces are omitted; restore starts every deed unowned and replays these.
type DeedSnapshotV1 struct {
	Position  int  `json:"position"`
	Owner     int  `json:"owner"`
	Mortgaged bool `json:"mortgaged"`
	Level     int  `json:"level"`
}

const snapshotVersion = 1

// CaptureSnapshot freezes the game's mutable state.
func CaptureSnapshot(game *monopoly.Game) *GameSnapshotV1 {
	snap := &GameSnapshotV1{
		Version: snapshotVersion,
		ID:      game.ID,
		SavedAt: time.Now().UTC().Format(time.RFC3339),
		Current: game.Current,
		Pot:     game.Pot,
		Houses:  game.Bank.Houses,
		Hotels:  game.Bank.Hotels,
	}

	for _, player := range game.Players {
		snap.Players = append(snap.Players, PlayerSnapshotV1{
			Name:           player.Name,
			Balance:        player.Balance,
			Position:       player.Position,
			Eliminated:     player.Eliminated,
			InJail:         player.InJail,
			JailTurns:      player.JailTurns,
			JailFreeChance: player.JailFreeChance,
			JailFreeChest:  player.JailFreeChest,
		})
	}

	for _, space := range game.Board.OwnableSpaces() {
		deed := space.Deed()
		if !deed.IsOwned() {
			continue
		}
		snap.Deeds = append(snap.Deeds, DeedSnapshotV1{
			Position:  space.Position,
			Owner:     deed.Owner,
			Mortgaged: deed.Mortgaged,
			Level:     deed.Level,
		})
	}

	return snap
}

// RestoreSnapshot rebuilds a playable game from a snapshot and the same
// external data files the original game was built from. The seat callback
// adds one player with their decision provider; it runs once per
// snapshotted player, in seating order.
func RestoreSnapshot(
	logger *slog.Logger,
	conf *config.Config,
	spaces []boarddata.SpaceRecord,
	chance, chest []boarddata.CardRecord,
	snap *GameSnapshotV1,
	seat func(game *monopoly.Game, name string) *entity.Player,
) (*monopoly.Game, error) {
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("snapshot version %d is not supported", snap.Version)
	}

	game, err := monopoly.NewGame(logger, conf, spaces, chance, chest)
	if err != nil {
		return nil, fmt.Errorf("can't rebuild game: %w", err)
	}

	game.ID = snap.ID
	game.Current = snap.Current
	game.Pot = snap.Pot
	game.Bank.Houses = snap.Houses
	game.Bank.Hotels = snap.Hotels

	for _, record := range snap.Players {
		player := seat(game, record.Name)
		player.Balance = record.Balance
		player.Position = record.Position
		player.Eliminated = record.Eliminated
		player.InJail = record.InJail
		player.JailTurns = record.JailTurns
		player.JailFreeChance = record.JailFreeChance
		player.JailFreeChest = record.JailFreeChest

		if record.JailFreeChance {
			game.Decks[boarddata.DeckChance].WithholdJailFree()
		}
		if record.JailFreeChest {
			game.Decks[boarddata.DeckCommunityChest].WithholdJailFree()
		}
	}

	for _, record := range snap.Deeds {
		if record.Position < 0 || record.Position >= game.Board.Size() {
			return nil, fmt.Errorf("deed at position %d: %w", record.Position, apperror.ErrSpaceNotFound)
		}
		space := game.Board.SpaceAt(record.Position)
		if !space.IsOwnable() {
			return nil, fmt.Errorf("deed at position %d: %w", record.Position, apperror.ErrSpaceNotFound)
		}
		if record.Owner < 0 || record.Owner >= len(game.Players) {
			return nil, fmt.Errorf("deed at position %d owned by unknown player %d", record.Position, record.Owner)
		}

		game.Bank.TransferOwnership(space, record.Owner, game.Players[record.Owner])

		deed := space.Deed()
		deed.Mortgaged = record.Mortgaged
		deed.Level = record.Level
	}

	return game, nil
}
