package monopoly

import (
	"fmt"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/boarddata"
)

// EffectKind is the closed set of card effects. Raw effect records are parsed
// into this union once, at deck construction; an unknown tag never survives
// until draw time.
type EffectKind string

const (
	EffectAdvanceTo         EffectKind = boarddata.EffectAdvanceTo
	EffectAdvanceToNearest  EffectKind = boarddata.EffectAdvanceToNearest
	EffectAdvanceSteps      EffectKind = boarddata.EffectAdvanceSteps
	EffectCollectMoney      EffectKind = boarddata.EffectCollectMoney
	EffectPayMoney          EffectKind = boarddata.EffectPayMoney
	EffectPayMoneyBuildings EffectKind = boarddata.EffectPayMoneyBuildings
	EffectPayMoneyToPlayers EffectKind = boarddata.EffectPayMoneyToPlayers
	EffectGrantJailFree     EffectKind = boarddata.EffectGrantJailFree
	EffectGoToJail          EffectKind = boarddata.EffectGoToJail
)

// Effect carries only the fields its kind needs.
type Effect struct {
	Kind       EffectKind
	Target     string // advance_to space name or advance_to_nearest group
	Amount     int
	HousePrice int
	HotelPrice int
	CardKind   string // originating deck of a jail-free card
}

func parseEffect(record boarddata.EffectRecord) (Effect, error) {
	effect := Effect{
		Kind:       EffectKind(record.Type),
		Target:     record.Target,
		Amount:     record.Amount,
		HousePrice: record.HousePrice,
		HotelPrice: record.HotelPrice,
		CardKind:   record.CardKind,
	}

	switch effect.Kind {
	case EffectAdvanceTo, EffectAdvanceToNearest:
		if effect.Target == "" {
			return Effect{}, fmt.Errorf("effect %q: missing target", record.Type)
		}
	case EffectAdvanceSteps:
		// negative steps move the player backwards
		if effect.Amount == 0 {
			return Effect{}, fmt.Errorf("effect %q: missing amount", record.Type)
		}
	case EffectCollectMoney, EffectPayMoney, EffectPayMoneyToPlayers:
		if effect.Amount <= 0 {
			return Effect{}, fmt.Errorf("effect %q: missing amount", record.Type)
		}
	case EffectPayMoneyBuildings:
		if effect.HousePrice <= 0 || effect.HotelPrice <= 0 {
			return Effect{}, fmt.Errorf("effect %q: missing house or hotel price", record.Type)
		}
	case EffectGrantJailFree:
		if effect.CardKind != boarddata.DeckChance && effect.CardKind != boarddata.DeckCommunityChest {
			return Effect{}, fmt.Errorf("%w: %q", apperror.ErrUnknownJailCard, record.CardKind)
		}
	case EffectGoToJail:
	default:
		return Effect{}, fmt.Errorf("%w: %q", apperror.ErrUnknownEffectType, record.Type)
	}

	return effect, nil
}
