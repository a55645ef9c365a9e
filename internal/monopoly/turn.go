package monopoly

import (
	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

// TurnPhase names the states of one player's turn.
type TurnPhase string

const (
	PhaseAwaitingRoll    TurnPhase = "awaiting_roll"
	PhaseMoving          TurnPhase = "moving"
	PhaseLanded          TurnPhase = "landed"
	PhaseAwaitingActions TurnPhase = "awaiting_actions"
	PhaseTurnComplete    TurnPhase = "turn_complete"
	PhaseGameOver        TurnPhase = "game_over"
)

// TurnResult summarizes one completed turn for the caller.
type TurnResult struct {
	Player         string
	Roll           entity.DiceOutcome
	Landed         string
	RemainedJailed bool
	RoundCompleted bool
	GameOver       bool
}

// PlayTurn runs the active player's whole turn through the phase machine and
// rotates to the next non-eliminated player. The round-completed flag marks
// the full-rotation boundary used by external snapshotting.
func (that *Game) PlayTurn() (*TurnResult, error) {
	if that.IsOver() {
		return nil, apperror.ErrGameOver
	}

	playerIdx := that.Current
	player := that.Players[playerIdx]
	result := &TurnResult{Player: player.Name}

	that.logger.Info("turn started", "player", player.Name)

	phase := PhaseAwaitingRoll
	rolled := false

	for {
		switch phase {
		case PhaseAwaitingRoll:
			if player.InJail && !rolled {
				freed, jailRoll := that.resolveJail(playerIdx)
				if player.Eliminated {
					phase = PhaseTurnComplete
					continue
				}
				if !freed {
					result.RemainedJailed = true
					phase = PhaseTurnComplete
					continue
				}
				if jailRoll != nil {
					// Doubles in jail release and move with that roll.
					result.Roll = *jailRoll
					rolled = true
					phase = PhaseMoving
					continue
				}
			}

			roll := that.dice.Roll()
			player.LastRoll = roll
			result.Roll = roll
			rolled = true

			that.logger.Info("dice rolled",
				"player", player.Name,
				"total", roll.Total,
				"doubles", roll.Doubles,
				"speed_symbol", roll.SpeedSymbol,
			)

			phase = PhaseMoving

		case PhaseMoving:
			that.Board.Move(player, player.LastRoll.Total)
			phase = PhaseLanded

		case PhaseLanded:
			result.Landed = that.Board.SpaceAt(player.Position).Name
			if err := that.resolveLanding(playerIdx); err != nil {
				that.logger.Warn("landing resolution", "player", player.Name, "error", err)
			}
			phase = PhaseAwaitingActions

		case PhaseAwaitingActions:
			if !player.Eliminated {
				that.runActionPhase(playerIdx)
			}
			phase = PhaseTurnComplete

		case PhaseTurnComplete:
			result.RoundCompleted = that.advanceTurn()
			if that.IsOver() {
				result.GameOver = true
			}
			return result, nil
		}
	}
}

// resolveJail runs once at the start of a jailed player's turn. A jail-free
// card always releases without payment; otherwise the provider may pay bail;
// otherwise the player rolls, leaving on doubles and using that roll to
// move. Hitting the jail-turn limit forces bail or liquidation.
func (that *Game) resolveJail(playerIdx int) (freed bool, jailRoll *entity.DiceOutcome) {
	player := that.Players[playerIdx]

	if kind, ok := player.UseJailFreeCard(); ok {
		that.Decks[kind].ReturnJailFree()
		player.LeaveJail()
		that.logger.Info("left jail with a card", "player", player.Name)
		return true, nil
	}

	choice := that.Providers[playerIdx].DecideJailStrategy()
	if choice == JailPayBail && player.CanAfford(that.Rules.BailAmount) {
		player.Balance -= that.Rules.BailAmount
		that.credit(PayeeBank, that.Rules.BailAmount)
		player.LeaveJail()
		that.logger.Info("paid bail", "player", player.Name, "amount", that.Rules.BailAmount)
		return true, nil
	}

	roll := that.dice.Roll()
	player.LastRoll = roll
	if roll.Doubles {
		player.LeaveJail()
		that.logger.Info("rolled doubles to leave jail", "player", player.Name)
		return true, &roll
	}

	player.JailTurns++
	if player.JailTurns < that.Rules.MaxJailTurns {
		return false, nil
	}

	// Out of attempts: bail is no longer optional.
	if err := that.pay(playerIdx, that.Rules.BailAmount, PayeeBank); err != nil {
		return false, nil
	}
	player.LeaveJail()
	that.logger.Info("forced bail after max jail turns", "player", player.Name)

	return true, nil
}

// runActionPhase lets the provider unmortgage, build, mortgage and trade at
// the end of the turn. Rejected actions leave the game state unchanged and
// the turn continues.
func (that *Game) runActionPhase(playerIdx int) {
	player := that.Players[playerIdx]
	provider := that.Providers[playerIdx]

	for _, deed := range provider.DecideUnmortgage() {
		if err := player.Unmortgage(deed); err != nil {
			that.logger.Debug("unmortgage rejected", "player", player.Name, "space", deed.Space.Name, "error", err)
		}
	}

	for _, deed := range provider.DecideBuild() {
		cost := deed.Space.Ownable.BuildCost
		if !player.CanAfford(cost) {
			that.logger.Debug("build rejected", "player", player.Name, "space", deed.Space.Name, "error", apperror.ErrInsufficientFunds)
			continue
		}
		if err := that.Bank.Upgrade(deed); err != nil {
			that.logger.Debug("build rejected", "player", player.Name, "space", deed.Space.Name, "error", err)
			continue
		}
		player.Balance -= cost
	}

	for _, deed := range provider.DecideMortgage() {
		if err := player.Mortgage(deed); err != nil {
			that.logger.Debug("mortgage rejected", "player", player.Name, "space", deed.Space.Name, "error", err)
		}
	}

	if proposal := provider.DecideTrade(); proposal != nil {
		if err := that.applyTrade(playerIdx, proposal); err != nil {
			that.logger.Debug("trade rejected", "player", player.Name, "error", err)
		}
	}
}

// advanceTurn rotates to the next non-eliminated player and reports whether
// the rotation wrapped past the start of the player list, which closes a
// full round.
func (that *Game) advanceTurn() bool {
	previous := that.Current

	for range that.Players {
		that.Current = (that.Current + 1) % len(that.Players)
		if !that.Players[that.Current].Eliminated {
			break
		}
	}

	return that.Current <= previous
}
