package monopoly

import (
	"math/rand"

	"github.com/rocketscienceinc/monopoly-backend/internal/config"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

// DiceRoller produces one movement roll per turn. Tests substitute a scripted
// implementation.
type DiceRoller interface {
	Roll() entity.DiceOutcome
}

// Dice rolls two uniform dice and, when configured, the speed die. The speed
// die is skipped on doubles; its symbolic faces add no movement and are only
// surfaced on the outcome.
type Dice struct {
	size  int
	speed config.SpeedDie
	rng   *rand.Rand
}

func NewDice(size int, speed config.SpeedDie, rng *rand.Rand) *Dice {
	return &Dice{
		size:  size,
		speed: speed,
		rng:   rng,
	}
}

func (that *Dice) Roll() entity.DiceOutcome {
	die1 := that.rng.Intn(that.size) + 1
	die2 := that.rng.Intn(that.size) + 1

	outcome := entity.DiceOutcome{
		Die1:    die1,
		Die2:    die2,
		Total:   die1 + die2,
		Doubles: die1 == die2,
	}

	if that.speed.Active && !outcome.Doubles {
		value, symbol := that.rollSpeedDie()
		outcome.SpeedValue = value
		outcome.SpeedSymbol = symbol
		outcome.Total += value
	}

	return outcome
}

// rollSpeedDie returns either a numeric face or one of the two symbolic
// faces. The highest faces are Mr. Monopoly, the next ones the bus.
func (that *Dice) rollSpeedDie() (int, string) {
	roll := that.rng.Intn(that.speed.Size) + 1

	switch {
	case roll > that.speed.Size-that.speed.MrMonopolyFaces:
		return 0, entity.SpeedSymbolMrMonopoly
	case roll > that.speed.Size-(that.speed.MrMonopolyFaces+that.speed.BusFaces):
		return 0, entity.SpeedSymbolBus
	default:
		return roll, ""
	}
}
