package monopoly

import (
	"fmt"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

// utilityCardMultiplier replaces the metered rent table when a card sends the
// player to the nearest utility: the owner collects this many times the pips.
const utilityCardMultiplier = 10

// resolveLanding runs the landed-on space's contract exactly once.
func (that *Game) resolveLanding(playerIdx int) error {
	player := that.Players[playerIdx]
	space := that.Board.SpaceAt(player.Position)

	that.logger.Debug("landed", "player", player.Name, "space", space.Name)

	switch space.Kind {
	case entity.SpaceProperty, entity.SpaceRailroad, entity.SpaceUtility:
		return that.resolveOwnableLanding(playerIdx, space)

	case entity.SpaceTax:
		return that.pay(playerIdx, space.Amount, PayeeBank)

	case entity.SpaceCardDraw:
		deck, ok := that.Decks[space.DeckName]
		if !ok {
			return fmt.Errorf("space %q: no deck named %q", space.Name, space.DeckName)
		}
		card, err := deck.Draw(that, playerIdx)
		if card != nil {
			that.logger.Info("card drawn", "player", player.Name, "card", card.Description)
		}
		return err

	case entity.SpaceGoToJail:
		that.sendToJail(playerIdx)
		return nil

	case entity.SpaceFreeParking:
		if that.Pot > 0 {
			player.Collect(that.Pot)
			that.logger.Info("free parking pot collected", "player", player.Name, "amount", that.Pot)
			that.Pot = 0
		}
		return nil

	case entity.SpaceGo:
		if that.Rules.DoubleSalaryOnGo {
			player.Collect(that.Board.BaseSalary)
		}
		return nil

	case entity.SpaceJail:
		// just visiting
		return nil
	}

	return nil
}

// resolveOwnableLanding applies the shared contract of ownable spaces: offer
// an unowned space to the lander (auction it when their net worth cannot
// cover the price), charge rent when another player owns it, do nothing on
// the owner's own space.
func (that *Game) resolveOwnableLanding(playerIdx int, space *entity.Space) error {
	player := that.Players[playerIdx]
	deed := space.Deed()

	if !deed.IsOwned() {
		price := space.Ownable.Price

		if player.NetWorth() < price {
			that.Bank.Auction(that, space)
			return nil
		}

		if that.Providers[playerIdx].DecidePurchase(space) && player.CanAfford(price) {
			player.Balance -= price
			that.Bank.TransferOwnership(space, playerIdx, player)
			that.logger.Info("space purchased", "player", player.Name, "space", space.Name, "price", price)
		}
		return nil
	}

	if deed.OwnedBy(playerIdx) {
		return nil
	}

	owner := that.Players[deed.Owner]
	rent, err := CalculateRent(space, owner, that.Rules.RentInJail, player.LastRoll.Total)
	if err != nil {
		return fmt.Errorf("rent on %q: %w", space.Name, err)
	}

	return that.pay(playerIdx, rent, deed.Owner)
}

// applyEffect interprets one drawn card effect against the drawing player.
func (that *Game) applyEffect(playerIdx int, effect Effect) error {
	player := that.Players[playerIdx]

	switch effect.Kind {
	case EffectAdvanceTo:
		target, err := that.Board.FindByName(effect.Target)
		if err != nil {
			return err
		}
		that.Board.Move(player, that.Board.DistanceTo(player, target))
		return that.resolveLanding(playerIdx)

	case EffectAdvanceToNearest:
		return that.advanceToNearest(playerIdx, effect.Target)

	case EffectAdvanceSteps:
		that.Board.Move(player, effect.Amount)
		return that.resolveLanding(playerIdx)

	case EffectCollectMoney:
		player.Collect(effect.Amount)
		return nil

	case EffectPayMoney:
		return that.pay(playerIdx, effect.Amount, PayeeBank)

	case EffectPayMoneyBuildings:
		houses, hotels := player.CountBuildings()
		return that.pay(playerIdx, houses*effect.HousePrice+hotels*effect.HotelPrice, PayeeBank)

	case EffectPayMoneyToPlayers:
		for otherIdx, other := range that.Players {
			if otherIdx == playerIdx || other.Eliminated {
				continue
			}
			if err := that.pay(playerIdx, effect.Amount, otherIdx); err != nil {
				// The payer went under mid-sequence; the remaining
				// transfers have no one to draw from.
				return err
			}
		}
		return nil

	case EffectGrantJailFree:
		return player.GrantJailFree(effect.CardKind)

	case EffectGoToJail:
		that.sendToJail(playerIdx)
		return nil
	}

	return fmt.Errorf("%w: %q", apperror.ErrUnknownEffectType, effect.Kind)
}

// advanceToNearest moves the player forward to the first space of the target
// group, wrapping to the group's first member when none lies ahead. An
// already-owned transit destination charges double rent and an owned metered
// destination a flat pip multiplier; only this card-triggered movement does.
func (that *Game) advanceToNearest(playerIdx int, groupLabel string) error {
	members := that.Board.FindByGroup(groupLabel)
	if len(members) == 0 {
		return fmt.Errorf("%w: %q", apperror.ErrGroupNotFound, groupLabel)
	}

	player := that.Players[playerIdx]

	target := members[0]
	for _, member := range members {
		if member.Position > player.Position {
			target = member
			break
		}
	}

	that.Board.Move(player, that.Board.DistanceTo(player, target))

	deed := target.Deed()
	if deed == nil || !deed.IsOwned() || deed.OwnedBy(playerIdx) {
		return that.resolveLanding(playerIdx)
	}

	switch target.Kind {
	case entity.SpaceRailroad:
		owner := that.Players[deed.Owner]
		rent, err := CalculateRent(target, owner, that.Rules.RentInJail, player.LastRoll.Total)
		if err != nil {
			return err
		}
		return that.pay(playerIdx, rent*2, deed.Owner)

	case entity.SpaceUtility:
		if player.LastRoll.Total <= 0 {
			return apperror.ErrDiceRollRequired
		}
		return that.pay(playerIdx, player.LastRoll.Total*utilityCardMultiplier, deed.Owner)

	default:
		return that.resolveLanding(playerIdx)
	}
}
