package monopoly

import (
	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

// hotelTrigger is the improvement level whose upgrade converts four houses
// into one hotel.
const hotelTrigger = entity.MaxImprovement - 1

// Bank owns the finite pool of improvement units and every mutation that
// moves ownership or buildings around. Units removed from a deed always
// return to the pool before capacity is checked again.
type Bank struct {
	Houses int
	Hotels int
}

func NewBank(houses, hotels int) *Bank {
	return &Bank{
		Houses: houses,
		Hotels: hotels,
	}
}

// Upgrade adds one improvement level to a buildable deed. The owner must hold
// the full group and the deed must sit at the group's minimum level (even
// building). Levels below 4 take a house from the pool; the hotel upgrade
// returns the deed's four houses and takes a hotel.
func (that *Bank) Upgrade(deed *entity.TitleDeed) error {
	space := deed.Space
	if space.Kind != entity.SpaceProperty {
		return apperror.ErrNotBuildable
	}

	group := space.Ownable.Group
	owner, ok := group.MonopolyOwner()
	if !ok || owner != deed.Owner {
		return apperror.ErrNoMonopoly
	}

	if deed.Level != minGroupLevel(group, owner) {
		return apperror.ErrUnevenBuild
	}

	switch {
	case deed.Level < hotelTrigger:
		if that.Houses <= 0 {
			return apperror.ErrNoHousesLeft
		}
		that.Houses--
		deed.Level++
	case deed.Level == hotelTrigger:
		if that.Hotels <= 0 {
			return apperror.ErrNoHotelsLeft
		}
		that.Houses += hotelTrigger
		that.Hotels--
		deed.Level = entity.MaxImprovement
	default:
		return apperror.ErrMaxImprovement
	}

	return nil
}

// Downgrade removes one improvement level and refunds the owner half the
// build cost. Selling a hotel returns it to the pool and withdraws four
// houses back onto the deed.
func (that *Bank) Downgrade(deed *entity.TitleDeed, owner *entity.Player) error {
	switch {
	case deed.Level == 0:
		return apperror.ErrNoImprovements
	case deed.Level == entity.MaxImprovement:
		if that.Houses < hotelTrigger {
			return apperror.ErrNoHousesLeft
		}
		that.Hotels++
		that.Houses -= hotelTrigger
		deed.Level = hotelTrigger
	default:
		that.Houses++
		deed.Level--
	}

	owner.Collect(deed.Space.Ownable.BuildCost / 2)

	return nil
}

// RaiseFunds strips a player's holdings for cash: improvements are returned
// to the pool wholesale for half their build cost, then every deed is
// mortgaged. Called when a payment attempt exceeds the balance.
func (that *Bank) RaiseFunds(player *entity.Player) {
	for _, deed := range player.Deeds {
		if deed.Level > 0 {
			that.reclaimImprovements(deed, player)
		}
		if !deed.Mortgaged {
			_ = player.Mortgage(deed)
		}
	}
}

// LiquidatePlayer is the terminal resolution when even RaiseFunds cannot
// cover a payment: holdings are stripped and the player is eliminated.
func (that *Bank) LiquidatePlayer(player *entity.Player) {
	that.RaiseFunds(player)
	player.Eliminated = true
}

// reclaimImprovements returns a deed's buildings to the pool in one step,
// sidestepping the hotel-to-houses exchange that a per-level downgrade would
// need houses in the pool for.
func (that *Bank) reclaimImprovements(deed *entity.TitleDeed, owner *entity.Player) {
	if deed.HasHotel() {
		that.Hotels++
	} else {
		that.Houses += deed.Level
	}

	owner.Collect(deed.Level * deed.Space.Ownable.BuildCost / 2)
	deed.Level = 0
}

// TransferOwnership assigns the deed to the player and refreshes the group
// tally. Used by direct purchase, auction settlement and trades.
func (that *Bank) TransferOwnership(space *entity.Space, playerIdx int, player *entity.Player) {
	deed := space.Deed()
	deed.Owner = playerIdx
	player.Deeds = append(player.Deeds, deed)
	space.Ownable.Group.RecomputeOwnership()
}

func minGroupLevel(group *entity.Group, owner int) int {
	min := entity.MaxImprovement
	for _, member := range group.Members {
		deed := member.Deed()
		if deed.OwnedBy(owner) && deed.Level < min {
			min = deed.Level
		}
	}
	return min
}
