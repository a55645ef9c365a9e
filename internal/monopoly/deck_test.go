package monopoly

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/boarddata"
)

func TestNewDeck(t *testing.T) {
	t.Run("parses every card up front", func(t *testing.T) {
		// When: a deck is built from valid records
		deck, err := NewDeck(boarddata.DeckChance, testChanceRecords())

		// Then: all cards are in circulation
		require.NoError(t, err)
		require.Equal(t, 3, deck.Len())
	})

	t.Run("an unknown effect fails construction", func(t *testing.T) {
		// Given: a record with an unrecognized effect tag
		records := []boarddata.CardRecord{
			{Description: "Mystery.", Effect: boarddata.EffectRecord{Type: "teleport", Amount: 3}},
		}

		// When: the deck is built
		_, err := NewDeck(boarddata.DeckChance, records)

		// Then: construction is rejected
		require.ErrorIs(t, err, apperror.ErrUnknownEffectType)
	})
}

func TestDeck_Draw(t *testing.T) {
	t.Run("a drawn card recycles to the tail", func(t *testing.T) {
		// Given: an unshuffled chance deck and a seated player
		game := testGame(t, &stubProvider{}, &stubProvider{})
		deck, err := NewDeck(boarddata.DeckChance, testChanceRecords())
		require.NoError(t, err)

		balance := game.Players[0].Balance

		// When: the front card is drawn
		card, err := deck.Draw(game, 0)

		// Then: its effect applied and it sits at the tail again
		require.NoError(t, err)
		require.Equal(t, "Bank pays you dividend of $50.", card.Description)
		require.Equal(t, balance+50, game.Players[0].Balance)
		require.Equal(t, 3, deck.Len())
		require.Equal(t, card, deck.Peek()[deck.Len()-1])
	})

	t.Run("a jail-free card leaves circulation", func(t *testing.T) {
		// Given: a deck whose front card is the jail-free card
		game := testGame(t, &stubProvider{}, &stubProvider{})
		deck, err := NewDeck(boarddata.DeckChance, testChanceRecords()[1:])
		require.NoError(t, err)

		// When: it is drawn
		_, err = deck.Draw(game, 0)

		// Then: the player holds it and the deck shrank
		require.NoError(t, err)
		require.True(t, game.Players[0].JailFreeChance)
		require.Equal(t, 1, deck.Len())

		// When: the card is returned
		deck.ReturnJailFree()

		// Then: it circulates again
		require.Equal(t, 2, deck.Len())
	})

	t.Run("an empty deck cannot be drawn from", func(t *testing.T) {
		// Given: a deck whose only card is withheld
		game := testGame(t, &stubProvider{}, &stubProvider{})
		deck, err := NewDeck(boarddata.DeckChance, testChanceRecords()[1:2])
		require.NoError(t, err)
		_, err = deck.Draw(game, 0)
		require.NoError(t, err)

		// When: another draw is attempted
		_, err = deck.Draw(game, 0)

		// Then: the draw fails
		require.Error(t, err)
	})
}

func TestDeck_WithholdJailFree(t *testing.T) {
	// Given: an unshuffled chance deck
	deck, err := NewDeck(boarddata.DeckChance, testChanceRecords())
	require.NoError(t, err)

	// When: the jail-free card is withheld without drawing
	require.True(t, deck.WithholdJailFree())

	// Then: it left circulation and a second withhold finds nothing
	require.Equal(t, 2, deck.Len())
	require.False(t, deck.WithholdJailFree())
}
