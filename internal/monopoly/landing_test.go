package monopoly

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/boarddata"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

func TestGame_ApplyEffect(t *testing.T) {
	t.Run("advancing to a named space pays the salary on wrap", func(t *testing.T) {
		// Given: player A past the target space
		game := testGame(t, &stubProvider{}, &stubProvider{})
		game.Players[0].Position = 8

		// When: a card sends them to Elm Street
		err := game.applyEffect(0, Effect{Kind: EffectAdvanceTo, Target: "Elm Street"})

		// Then: they wrapped past the start and collected the salary
		require.NoError(t, err)
		require.Equal(t, 1, game.Players[0].Position)
		require.Equal(t, 1500+200, game.Players[0].Balance)
	})

	t.Run("the nearest owned railroad charges double rent", func(t *testing.T) {
		// Given: player B owns both railroads, player A at the start
		game := testGame(t, &stubProvider{}, &stubProvider{})
		claim(t, game, "North Station", 1)
		claim(t, game, "South Station", 1)

		// When: a card sends A to the nearest railroad
		err := game.applyEffect(0, Effect{Kind: EffectAdvanceToNearest, Target: "railroad"})

		// Then: A paid twice the two-railroad rent
		require.NoError(t, err)
		require.Equal(t, 4, game.Players[0].Position)
		require.Equal(t, 1500-100, game.Players[0].Balance)
		require.Equal(t, 1500+100, game.Players[1].Balance)
	})

	t.Run("the nearest owned utility charges ten times the pips", func(t *testing.T) {
		// Given: player B owns the first utility and A just rolled nine
		game := testGame(t, &stubProvider{}, &stubProvider{})
		claim(t, game, "Power Plant", 1)
		game.Players[0].LastRoll = roll(4, 5)

		// When: a card sends A to the nearest utility
		err := game.applyEffect(0, Effect{Kind: EffectAdvanceToNearest, Target: "utility"})

		// Then: A paid the flat card multiplier on their pips
		require.NoError(t, err)
		require.Equal(t, 7, game.Players[0].Position)
		require.Equal(t, 1500-90, game.Players[0].Balance)
		require.Equal(t, 1500+90, game.Players[1].Balance)
	})

	t.Run("moving backwards never pays the salary", func(t *testing.T) {
		// Given: player A three spaces past the start
		game := testGame(t, &stubProvider{}, &stubProvider{})
		game.Players[0].Position = 3

		// When: a card moves them back three spaces
		err := game.applyEffect(0, Effect{Kind: EffectAdvanceSteps, Amount: -3})

		// Then: they stand on the start without collecting anything
		require.NoError(t, err)
		require.Zero(t, game.Players[0].Position)
		require.Equal(t, 1500, game.Players[0].Balance)
	})

	t.Run("paying every player stops when the payer goes under", func(t *testing.T) {
		// Given: a nearly broke payer and two creditors
		game := testGame(t, &stubProvider{}, &stubProvider{}, &stubProvider{})
		game.Players[0].Balance = 60

		// When: a card charges fifty per player
		err := game.applyEffect(0, Effect{Kind: EffectPayMoneyToPlayers, Amount: 50})

		// Then: the first transfer settled, the second eliminated the payer
		require.ErrorIs(t, err, apperror.ErrInsufficientFunds)
		require.True(t, game.Players[0].Eliminated)
		require.Equal(t, 1500+50, game.Players[1].Balance)
		require.Equal(t, 1500+10, game.Players[2].Balance)
	})

	t.Run("a repairs card charges per building", func(t *testing.T) {
		// Given: player A with three houses and a hotel
		game := testGame(t, &stubProvider{}, &stubProvider{})
		elm := claim(t, game, "Elm Street", 0)
		oak := claim(t, game, "Oak Street", 0)
		elm.Level = 3
		oak.Level = 5

		// When: a repairs card hits
		err := game.applyEffect(0, Effect{Kind: EffectPayMoneyBuildings, HousePrice: 25, HotelPrice: 100})

		// Then: three houses and one hotel were billed into the pot
		require.NoError(t, err)
		require.Equal(t, 1500-175, game.Players[0].Balance)
		require.Equal(t, 175, game.Pot)
	})
}

func TestGame_FreeParking(t *testing.T) {
	// Given: a funded pot and a player on the free-parking space
	game := testGame(t, &stubProvider{}, &stubProvider{})
	game.Pot = 300
	game.Players[0].Position = game.Board.FreeParkingPosition()

	// When: the landing resolves
	err := game.resolveLanding(0)

	// Then: the whole pot moved to the player
	require.NoError(t, err)
	require.Equal(t, 1500+300, game.Players[0].Balance)
	require.Zero(t, game.Pot)
}

func TestGame_ApplyTrade(t *testing.T) {
	// Given: A holds Elm Street, B holds cash
	game := testGame(t, &stubProvider{}, &stubProvider{})
	elm := claim(t, game, "Elm Street", 0)

	// When: A trades the deed for 200 in cash
	err := game.applyTrade(0, &TradeProposal{
		Partner:     1,
		RequestCash: 200,
		OfferDeeds:  []*entity.TitleDeed{elm},
	})

	// Then: the deed and the cash switched hands
	require.NoError(t, err)
	require.True(t, elm.OwnedBy(1))
	require.Equal(t, 1500+200, game.Players[0].Balance)
	require.Equal(t, 1500-200, game.Players[1].Balance)
	require.True(t, game.Players[1].OwnsDeed(elm))
	require.False(t, game.Players[0].OwnsDeed(elm))
}

func TestGame_ApplyTrade_JailFreeCards(t *testing.T) {
	t.Run("held card switches hands with the rest of the proposal", func(t *testing.T) {
		// Given: A holds the chance jail-free card
		game := testGame(t, &stubProvider{}, &stubProvider{})
		require.NoError(t, game.Players[0].GrantJailFree(boarddata.DeckChance))

		// When: A trades the card for 50 in cash
		err := game.applyTrade(0, &TradeProposal{
			Partner:        1,
			RequestCash:    50,
			OfferJailFrees: []string{boarddata.DeckChance},
		})

		// Then: B holds the card and A holds the cash
		require.NoError(t, err)
		require.False(t, game.Players[0].JailFreeChance)
		require.True(t, game.Players[1].JailFreeChance)
		require.Equal(t, 1500+50, game.Players[0].Balance)
		require.Equal(t, 1500-50, game.Players[1].Balance)
	})

	t.Run("offering a card the player does not hold rejects the whole trade", func(t *testing.T) {
		// Given: A holds Elm Street but no jail-free card
		game := testGame(t, &stubProvider{}, &stubProvider{})
		elm := claim(t, game, "Elm Street", 0)

		// When: A offers the deed plus a chance card they never drew
		err := game.applyTrade(0, &TradeProposal{
			Partner:        1,
			RequestCash:    200,
			OfferDeeds:     []*entity.TitleDeed{elm},
			OfferJailFrees: []string{boarddata.DeckChance},
		})

		// Then: nothing moved, not even the valid parts
		require.ErrorIs(t, err, apperror.ErrInvalidTrade)
		require.True(t, elm.OwnedBy(0))
		require.True(t, game.Players[0].OwnsDeed(elm))
		require.False(t, game.Players[1].OwnsDeed(elm))
		require.Equal(t, 1500, game.Players[0].Balance)
		require.Equal(t, 1500, game.Players[1].Balance)
		require.False(t, game.Players[1].JailFreeChance)
	})

	t.Run("receiver already holding the same card rejects the trade", func(t *testing.T) {
		// Given: both players hold the community chest card flag
		game := testGame(t, &stubProvider{}, &stubProvider{})
		require.NoError(t, game.Players[0].GrantJailFree(boarddata.DeckCommunityChest))
		require.NoError(t, game.Players[1].GrantJailFree(boarddata.DeckCommunityChest))

		// When: A offers their copy to B
		err := game.applyTrade(0, &TradeProposal{
			Partner:        1,
			OfferJailFrees: []string{boarddata.DeckCommunityChest},
		})

		// Then: the trade is rejected and both flags stand
		require.ErrorIs(t, err, apperror.ErrInvalidTrade)
		require.True(t, game.Players[0].JailFreeChest)
		require.True(t, game.Players[1].JailFreeChest)
	})

	t.Run("unknown card kind rejects the trade", func(t *testing.T) {
		// Given: a proposal naming a deck that does not exist
		game := testGame(t, &stubProvider{}, &stubProvider{})

		// When: A offers a card from it
		err := game.applyTrade(0, &TradeProposal{
			Partner:        1,
			OfferJailFrees: []string{"treasure"},
		})

		// Then: the kind is refused
		require.ErrorIs(t, err, apperror.ErrUnknownJailCard)
	})
}
