package entity

import (
	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/boarddata"
)

// Player is a plain data record; every decision it faces is answered by an
// external decision provider. The balance may only go negative transiently,
// between a payment attempt and forced liquidation.
type Player struct {
	Name     string
	Balance  int
	Position int
	Deeds    []*TitleDeed

	Eliminated bool
	InJail     bool
	JailTurns  int

	JailFreeChance bool
	JailFreeChest  bool

	LastRoll DiceOutcome
}

func NewPlayer(name string, startingBalance int) *Player {
	return &Player{
		Name:    name,
		Balance: startingBalance,
	}
}

func (that *Player) CanAfford(amount int) bool {
	return that.Balance >= amount
}

func (that *Player) Collect(amount int) {
	that.Balance += amount
}

// NetWorth is cash plus, per deed, the mortgage value if mortgaged or the
// purchase price plus improvement value otherwise.
func (that *Player) NetWorth() int {
	worth := that.Balance
	for _, deed := range that.Deeds {
		ownable := deed.Space.Ownable
		if deed.Mortgaged {
			worth += ownable.MortgageValue
			continue
		}
		worth += ownable.Price + deed.Level*ownable.BuildCost
	}
	return worth
}

// CountBuildings totals houses and hotels across the player's holdings.
func (that *Player) CountBuildings() (houses, hotels int) {
	for _, deed := range that.Deeds {
		if deed.HasHotel() {
			hotels++
		} else {
			houses += deed.Level
		}
	}
	return houses, hotels
}

func (that *Player) OwnsDeed(deed *TitleDeed) bool {
	for _, owned := range that.Deeds {
		if owned == deed {
			return true
		}
	}
	return false
}

// Mortgage trades the deed's rent eligibility for its mortgage value in cash.
func (that *Player) Mortgage(deed *TitleDeed) error {
	if !that.OwnsDeed(deed) {
		return apperror.ErrNotOwner
	}
	if deed.Mortgaged {
		return apperror.ErrAlreadyMortgaged
	}
	if deed.Level > 0 {
		return apperror.ErrHasImprovements
	}

	deed.Mortgaged = true
	that.Collect(deed.Space.Ownable.MortgageValue)

	return nil
}

// Unmortgage lifts a mortgage for the mortgage value plus ten percent.
func (that *Player) Unmortgage(deed *TitleDeed) error {
	if !that.OwnsDeed(deed) {
		return apperror.ErrNotOwner
	}
	if !deed.Mortgaged {
		return apperror.ErrNotMortgaged
	}

	cost := UnmortgageCost(deed)
	if !that.CanAfford(cost) {
		return apperror.ErrInsufficientFunds
	}

	that.Balance -= cost
	deed.Mortgaged = false

	return nil
}

func UnmortgageCost(deed *TitleDeed) int {
	value := deed.Space.Ownable.MortgageValue
	return value + value/10
}

func (that *Player) EnterJail(jailPosition int) {
	that.InJail = true
	that.JailTurns = 0
	that.Position = jailPosition
}

func (that *Player) LeaveJail() {
	that.InJail = false
	that.JailTurns = 0
}

func (that *Player) HasJailFreeCard() bool {
	return that.JailFreeChance || that.JailFreeChest
}

// UseJailFreeCard consumes one jail-free card, preferring the chance one, and
// reports which deck it came from.
func (that *Player) UseJailFreeCard() (string, bool) {
	if that.JailFreeChance {
		that.JailFreeChance = false
		return boarddata.DeckChance, true
	}
	if that.JailFreeChest {
		that.JailFreeChest = false
		return boarddata.DeckCommunityChest, true
	}
	return "", false
}

// GrantJailFree sets the flag matching the originating deck.
func (that *Player) GrantJailFree(kind string) error {
	switch kind {
	case boarddata.DeckChance:
		that.JailFreeChance = true
	case boarddata.DeckCommunityChest:
		that.JailFreeChest = true
	default:
		return apperror.ErrUnknownJailCard
	}
	return nil
}
