package monopoly

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/monopoly-backend/internal/boarddata"
	"github.com/rocketscienceinc/monopoly-backend/internal/config"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

// testSpaceRecords is a compact board: a two-member brown group, a
// three-member green group, two railroads and two utilities around the usual
// corner spaces.
func testSpaceRecords() []boarddata.SpaceRecord {
	return []boarddata.SpaceRecord{
		{Type: boarddata.TypeGo, Name: "Go"},
		{Type: boarddata.TypeProperty, Name: "Elm Street", Group: "brown", Price: 60, Mortgage: 30, BuildCost: 50, Rent: []int{2, 10, 30, 90, 160, 250}},
		{Type: boarddata.TypeProperty, Name: "Oak Street", Group: "brown", Price: 60, Mortgage: 30, BuildCost: 50, Rent: []int{4, 20, 60, 180, 320, 450}},
		{Type: boarddata.TypeCardDraw, Name: "Chance", Deck: boarddata.DeckChance},
		{Type: boarddata.TypeRailroad, Name: "North Station", Price: 200, Mortgage: 100, Rent: []int{25, 50, 100, 200}},
		{Type: boarddata.TypeTax, Name: "Income Tax", Amount: 100},
		{Type: boarddata.TypeJail, Name: "Jail"},
		{Type: boarddata.TypeUtility, Name: "Power Plant", Price: 150, Mortgage: 75, Rent: []int{4, 10}},
		{Type: boarddata.TypeProperty, Name: "Maple Street", Group: "green", Price: 100, Mortgage: 50, BuildCost: 50, Rent: []int{6, 30, 90, 270, 400, 550}},
		{Type: boarddata.TypeProperty, Name: "Cedar Street", Group: "green", Price: 100, Mortgage: 50, BuildCost: 50, Rent: []int{6, 30, 90, 270, 400, 550}},
		{Type: boarddata.TypeGoToJail, Name: "Go To Jail"},
		{Type: boarddata.TypeProperty, Name: "Birch Street", Group: "green", Price: 120, Mortgage: 60, BuildCost: 50, Rent: []int{8, 40, 100, 300, 450, 600}},
		{Type: boarddata.TypeRailroad, Name: "South Station", Price: 200, Mortgage: 100, Rent: []int{25, 50, 100, 200}},
		{Type: boarddata.TypeFreeParking, Name: "Free Parking"},
		{Type: boarddata.TypeUtility, Name: "Water Plant", Price: 150, Mortgage: 75, Rent: []int{4, 10}},
		{Type: boarddata.TypeCardDraw, Name: "Community Chest", Deck: boarddata.DeckCommunityChest},
	}
}

func testChanceRecords() []boarddata.CardRecord {
	return []boarddata.CardRecord{
		{Description: "Bank pays you dividend of $50.", Effect: boarddata.EffectRecord{Type: boarddata.EffectCollectMoney, Amount: 50}},
		{Description: "Get Out of Jail Free.", Effect: boarddata.EffectRecord{Type: boarddata.EffectGrantJailFree, CardKind: boarddata.DeckChance}},
		{Description: "Pay poor tax of $15.", Effect: boarddata.EffectRecord{Type: boarddata.EffectPayMoney, Amount: 15}},
	}
}

func testChestRecords() []boarddata.CardRecord {
	return []boarddata.CardRecord{
		{Description: "Get Out of Jail Free.", Effect: boarddata.EffectRecord{Type: boarddata.EffectGrantJailFree, CardKind: boarddata.DeckCommunityChest}},
		{Description: "You inherit $100.", Effect: boarddata.EffectRecord{Type: boarddata.EffectCollectMoney, Amount: 100}},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Rules: config.Rules{
			StartingBalance: 1500,
			BaseSalary:      200,
			BailAmount:      50,
			MaxJailTurns:    3,
			RentInJail:      true,
			Houses:          32,
			Hotels:          12,
			DiceSize:        6,
		},
		SpeedDie: config.SpeedDie{Size: 6, BusFaces: 1, MrMonopolyFaces: 2},
	}
}

// stubProvider answers decisions from optional function fields; unset fields
// decline everything.
type stubProvider struct {
	purchase   func(space *entity.Space) bool
	build      func() []*entity.TitleDeed
	mortgage   func() []*entity.TitleDeed
	unmortgage func() []*entity.TitleDeed
	trade      func() *TradeProposal
	auctionBid func(space *entity.Space, currentHigh int) AuctionBid
	jail       func() JailChoice
}

func (that *stubProvider) DecidePurchase(space *entity.Space) bool {
	if that.purchase == nil {
		return false
	}
	return that.purchase(space)
}

func (that *stubProvider) DecideBuild() []*entity.TitleDeed {
	if that.build == nil {
		return nil
	}
	return that.build()
}

func (that *stubProvider) DecideMortgage() []*entity.TitleDeed {
	if that.mortgage == nil {
		return nil
	}
	return that.mortgage()
}

func (that *stubProvider) DecideUnmortgage() []*entity.TitleDeed {
	if that.unmortgage == nil {
		return nil
	}
	return that.unmortgage()
}

func (that *stubProvider) DecideTrade() *TradeProposal {
	if that.trade == nil {
		return nil
	}
	return that.trade()
}

func (that *stubProvider) DecideAuctionBid(space *entity.Space, currentHigh int) AuctionBid {
	if that.auctionBid == nil {
		return AuctionBid{Withdraw: true}
	}
	return that.auctionBid(space, currentHigh)
}

func (that *stubProvider) DecideJailStrategy() JailChoice {
	if that.jail == nil {
		return JailRoll
	}
	return that.jail()
}

// scriptedDice replays a fixed sequence of rolls, repeating the last one.
type scriptedDice struct {
	rolls []entity.DiceOutcome
}

func (that *scriptedDice) Roll() entity.DiceOutcome {
	roll := that.rolls[0]
	if len(that.rolls) > 1 {
		that.rolls = that.rolls[1:]
	}
	return roll
}

func roll(die1, die2 int) entity.DiceOutcome {
	return entity.DiceOutcome{
		Die1:    die1,
		Die2:    die2,
		Total:   die1 + die2,
		Doubles: die1 == die2,
	}
}

func testGame(t *testing.T, providers ...*stubProvider) *Game {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	game, err := NewGame(logger, testConfig(), testSpaceRecords(), testChanceRecords(), testChestRecords())
	require.NoError(t, err)

	for i, provider := range providers {
		game.AddPlayer("player-"+string(rune('A'+i)), provider)
	}

	return game
}

// claim hands a space to the player outside any turn, for test setup.
func claim(t *testing.T, game *Game, name string, playerIdx int) *entity.TitleDeed {
	t.Helper()

	space, err := game.Board.FindByName(name)
	require.NoError(t, err)

	game.Bank.TransferOwnership(space, playerIdx, game.Players[playerIdx])

	return space.Deed()
}
