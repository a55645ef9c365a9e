package entity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/boarddata"
)

func ownedDeed(t *testing.T, player *Player, board *Board, name string) *TitleDeed {
	t.Helper()

	space, err := board.FindByName(name)
	require.NoError(t, err)

	deed := space.Deed()
	deed.Owner = 0
	player.Deeds = append(player.Deeds, deed)
	space.Ownable.Group.RecomputeOwnership()

	return deed
}

func TestPlayer_Mortgage(t *testing.T) {
	board, err := NewBoard(boardRecords(), 200)
	require.NoError(t, err)

	t.Run("mortgaging pays out the mortgage value once", func(t *testing.T) {
		// Given: a player owning Elm Street
		player := NewPlayer("a", 100)
		deed := ownedDeed(t, player, board, "Elm Street")
		t.Cleanup(func() { deed.Owner = NoOwner; deed.Mortgaged = false })

		// When: the deed is mortgaged
		require.NoError(t, player.Mortgage(deed))

		// Then: the cash arrived and a second mortgage is rejected
		require.True(t, deed.Mortgaged)
		require.Equal(t, 130, player.Balance)
		require.ErrorIs(t, player.Mortgage(deed), apperror.ErrAlreadyMortgaged)
	})

	t.Run("improved deeds cannot be mortgaged", func(t *testing.T) {
		// Given: a deed carrying a house
		player := NewPlayer("a", 100)
		deed := ownedDeed(t, player, board, "Oak Street")
		deed.Level = 1
		t.Cleanup(func() { deed.Owner = NoOwner; deed.Level = 0 })

		// When: a mortgage is attempted
		err := player.Mortgage(deed)

		// Then: it is rejected
		require.ErrorIs(t, err, apperror.ErrHasImprovements)
	})

	t.Run("only the owner can mortgage", func(t *testing.T) {
		// Given: a deed the player does not hold
		player := NewPlayer("a", 100)
		space, err := board.FindByName("North Station")
		require.NoError(t, err)

		// When: a mortgage is attempted
		err = player.Mortgage(space.Deed())

		// Then: it is rejected
		require.ErrorIs(t, err, apperror.ErrNotOwner)
	})
}

func TestPlayer_Unmortgage(t *testing.T) {
	board, err := NewBoard(boardRecords(), 200)
	require.NoError(t, err)

	// Given: a mortgaged deed and just enough cash for value plus ten percent
	player := NewPlayer("a", 33)
	deed := ownedDeed(t, player, board, "Elm Street")
	deed.Mortgaged = true

	// When: the player cannot quite afford the lift
	player.Balance = 32
	require.ErrorIs(t, player.Unmortgage(deed), apperror.ErrInsufficientFunds)

	// When: the player can afford it
	player.Balance = 33
	require.NoError(t, player.Unmortgage(deed))

	// Then: the mortgage lifted at the full cost
	require.False(t, deed.Mortgaged)
	require.Zero(t, player.Balance)
}

func TestPlayer_NetWorth(t *testing.T) {
	board, err := NewBoard(boardRecords(), 200)
	require.NoError(t, err)

	// Given: a player with cash, a built-up deed and a mortgaged one
	player := NewPlayer("a", 100)
	elm := ownedDeed(t, player, board, "Elm Street")
	oak := ownedDeed(t, player, board, "Oak Street")
	elm.Level = 2
	oak.Mortgaged = true

	// Then: worth is cash plus price and houses, plus the mortgage value
	require.Equal(t, 100+60+2*50+30, player.NetWorth())

	// Then: the buildings split into houses and hotels
	houses, hotels := player.CountBuildings()
	require.Equal(t, 2, houses)
	require.Zero(t, hotels)
}

func TestPlayer_JailFreeCards(t *testing.T) {
	// Given: a player holding both jail-free cards
	player := NewPlayer("a", 0)
	require.NoError(t, player.GrantJailFree(boarddata.DeckChance))
	require.NoError(t, player.GrantJailFree(boarddata.DeckCommunityChest))
	require.True(t, player.HasJailFreeCard())

	// When: cards are used one by one
	kind, ok := player.UseJailFreeCard()

	// Then: the chance card goes first
	require.True(t, ok)
	require.Equal(t, boarddata.DeckChance, kind)

	kind, ok = player.UseJailFreeCard()
	require.True(t, ok)
	require.Equal(t, boarddata.DeckCommunityChest, kind)

	// Then: no cards remain
	_, ok = player.UseJailFreeCard()
	require.False(t, ok)

	// Then: an unknown deck is rejected
	require.ErrorIs(t, player.GrantJailFree("tarot"), apperror.ErrUnknownJailCard)
}

func TestPlayer_Jail(t *testing.T) {
	// Given: a player entering jail
	player := NewPlayer("a", 0)
	player.JailTurns = 2
	player.EnterJail(4)

	// Then: position and counters reset
	require.True(t, player.InJail)
	require.Equal(t, 4, player.Position)
	require.Zero(t, player.JailTurns)

	// When: the player leaves
	player.JailTurns = 1
	player.LeaveJail()

	// Then: the jail state is cleared
	require.False(t, player.InJail)
	require.Zero(t, player.JailTurns)
}
