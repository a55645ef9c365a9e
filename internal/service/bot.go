package service

import (
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/rocketscienceinc/monopoly-backend/internal/monopoly"
)

// cashReserve is how much a bot keeps untouched before spending on
// purchases, buildings or auction raises.
const cashReserve = 100

// auctionStep caps how far a bot raises over the current high bid.
const auctionStep = 25

// BotProvider is a self-contained decision policy driving one player. It
// answers every DecisionProvider query from the player's holdings and
// balance; the turn machine cannot tell it apart from a human provider.
type BotProvider struct {
	game   *monopoly.Game
	player *entity.Player
}

func NewBotProvider(game *monopoly.Game, player *entity.Player) *BotProvider {
	return &BotProvider{
		game:   game,
		player: player,
	}
}

// SeatBot adds a bot-driven player to the game and returns the seated player.
func SeatBot(game *monopoly.Game, name string) *entity.Player {
	bot := &BotProvider{game: game}
	bot.player = game.AddPlayer(name, bot)
	return bot.player
}

// DecidePurchase buys anything the bot can afford with its reserve intact.
func (that *BotProvider) DecidePurchase(space *entity.Space) bool {
	return that.player.Balance-space.Ownable.Price >= cashReserve
}

// DecideBuild picks every monopoly deed the bot can improve while keeping
// its reserve. The bank re-checks the even-building rule, so ordering by
// level here just avoids pointless rejections.
func (that *BotProvider) DecideBuild() []*entity.TitleDeed {
	var builds []*entity.TitleDeed
	budget := that.player.Balance

	for _, deed := range that.player.Deeds {
		if deed.Space.Kind != entity.SpaceProperty || deed.Level >= entity.MaxImprovement {
			continue
		}

		group := deed.Space.Ownable.Group
		owner, ok := group.MonopolyOwner()
		if !ok || !deed.OwnedBy(owner) {
			continue
		}

		cost := deed.Space.Ownable.BuildCost
		if budget-cost < cashReserve {
			continue
		}

		budget -= cost
		builds = append(builds, deed)
	}

	return builds
}

// DecideMortgage raises cash from unimproved deeds once the balance dips
// under the reserve.
func (that *BotProvider) DecideMortgage() []*entity.TitleDeed {
	if that.player.Balance >= cashReserve {
		return nil
	}

	var mortgages []*entity.TitleDeed
	for _, deed := range that.player.Deeds {
		if !deed.Mortgaged && deed.Level == 0 {
			mortgages = append(mortgages, deed)
		}
	}
	return mortgages
}

// DecideUnmortgage lifts mortgages while the reserve allows it.
func (that *BotProvider) DecideUnmortgage() []*entity.TitleDeed {
	var lifts []*entity.TitleDeed
	budget := that.player.Balance

	for _, deed := range that.player.Deeds {
		if !deed.Mortgaged {
			continue
		}
		cost := entity.UnmortgageCost(deed)
		if budget-cost < cashReserve {
			continue
		}
		budget -= cost
		lifts = append(lifts, deed)
	}

	return lifts
}

// DecideTrade never proposes; valuing a swap fairly needs heuristics beyond
// this policy.
func (that *BotProvider) DecideTrade() *monopoly.TradeProposal {
	return nil
}

// DecideAuctionBid raises in small steps up to the space's list price and
// withdraws beyond it.
func (that *BotProvider) DecideAuctionBid(space *entity.Space, currentHigh int) monopoly.AuctionBid {
	cap := space.Ownable.Price
	if currentHigh >= cap || that.player.Balance-currentHigh-auctionStep < cashReserve {
		return monopoly.AuctionBid{Withdraw: true}
	}

	raise := currentHigh + auctionStep
	if raise > cap {
		raise = cap
	}

	return monopoly.AuctionBid{Amount: raise}
}

// DecideJailStrategy pays bail when affordable, otherwise tries for doubles.
// A held jail-free card is consumed by the turn machine before this is asked.
func (that *BotProvider) DecideJailStrategy() monopoly.JailChoice {
	if that.player.HasJailFreeCard() {
		return monopoly.JailUseCard
	}
	if that.player.CanAfford(that.game.Rules.BailAmount) {
		return monopoly.JailPayBail
	}
	return monopoly.JailRoll
}
