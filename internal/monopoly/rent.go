package monopoly

import (
	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

// CalculateRent computes the rent a visitor owes on an ownable space.
// It returns 0 when the space is unowned or mortgaged, or when the owner sits
// in jail and collecting there is disabled. Utility rent needs the visitor's
// dice total; calling without one is an input error.
func CalculateRent(space *entity.Space, owner *entity.Player, collectInJail bool, diceTotal int) (int, error) {
	deed := space.Deed()
	if deed == nil || !deed.IsOwned() || deed.Mortgaged {
		return 0, nil
	}
	if !collectInJail && owner.InJail {
		return 0, nil
	}

	ownable := space.Ownable

	switch space.Kind {
	case entity.SpaceProperty:
		if deed.Level == 0 && ownable.Group.HasMonopoly() {
			return ownable.Rent[0] * 2, nil
		}
		return ownable.Rent[deed.Level], nil

	case entity.SpaceRailroad:
		owned := ownable.Group.CountOwnedBy(deed.Owner)
		return rentTier(ownable.Rent, owned), nil

	case entity.SpaceUtility:
		if diceTotal <= 0 {
			return 0, apperror.ErrDiceRollRequired
		}
		owned := ownable.Group.CountOwnedBy(deed.Owner)
		return diceTotal * rentTier(ownable.Rent, owned), nil
	}

	return 0, nil
}

// rentTier looks up the table entry for an owned-count tier (1-based).
func rentTier(rent []int, owned int) int {
	if owned <= 0 {
		return 0
	}
	if owned > len(rent) {
		owned = len(rent)
	}
	return rent[owned-1]
}
