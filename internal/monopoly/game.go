package monopoly

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/boarddata"
	"github.com/rocketscienceinc/monopoly-backend/internal/config"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

// PayeeBank routes a payment into the free-parking pot instead of another
// player. Taxes, bail and card charges all end up there.
const PayeeBank = entity.NoOwner

// Game owns the whole table: board, bank, decks, players and the active-turn
// index. All mutation runs through the single active turn's call chain; a
// caller exposing the game to several goroutines must serialize on it.
type Game struct {
	ID    string
	Rules config.Rules

	Board *entity.Board
	Bank  *Bank
	Decks map[string]*Deck

	Players   []*entity.Player
	Providers []DecisionProvider

	Current int
	Pot     int

	dice   DiceRoller
	logger *slog.Logger
}

// NewGame builds a game from the external space and deck records. Malformed
// records fail construction outright.
func NewGame(logger *slog.Logger, conf *config.Config, spaces []boarddata.SpaceRecord, chance, chest []boarddata.CardRecord) (*Game, error) {
	board, err := entity.NewBoard(spaces, conf.Rules.BaseSalary)
	if err != nil {
		return nil, fmt.Errorf("can't build board: %w", err)
	}

	chanceDeck, err := NewDeck(boarddata.DeckChance, chance)
	if err != nil {
		return nil, fmt.Errorf("can't build chance deck: %w", err)
	}

	chestDeck, err := NewDeck(boarddata.DeckCommunityChest, chest)
	if err != nil {
		return nil, fmt.Errorf("can't build community chest deck: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // game dice, not crypto
	chanceDeck.Shuffle(rng)
	chestDeck.Shuffle(rng)

	return &Game{
		ID:    uuid.NewString(),
		Rules: conf.Rules,
		Board: board,
		Bank:  NewBank(conf.Rules.Houses, conf.Rules.Hotels),
		Decks: map[string]*Deck{
			boarddata.DeckChance:         chanceDeck,
			boarddata.DeckCommunityChest: chestDeck,
		},
		dice:   NewDice(conf.Rules.DiceSize, conf.SpeedDie, rng),
		logger: logger.With("component", "game"),
	}, nil
}

// AddPlayer seats a player with the decision provider answering for them.
func (that *Game) AddPlayer(name string, provider DecisionProvider) *entity.Player {
	player := entity.NewPlayer(name, that.Rules.StartingBalance)
	that.Players = append(that.Players, player)
	that.Providers = append(that.Providers, provider)
	return player
}

// SetDice swaps the roller; scripted rolls make turns deterministic in tests.
func (that *Game) SetDice(roller DiceRoller) {
	that.dice = roller
}

func (that *Game) AlivePlayers() []*entity.Player {
	var alive []*entity.Player
	for _, player := range that.Players {
		if !player.Eliminated {
			alive = append(alive, player)
		}
	}
	return alive
}

// IsOver reports whether at most one player is left standing.
func (that *Game) IsOver() bool {
	return len(that.AlivePlayers()) <= 1
}

// Winner returns the sole survivor, or nil while the game runs or when no
// player survived a degenerate start.
func (that *Game) Winner() *entity.Player {
	alive := that.AlivePlayers()
	if !that.IsOver() || len(alive) != 1 {
		return nil
	}
	return alive[0]
}

// RankSurvivors orders the non-eliminated players by net worth, richest
// first.
func (that *Game) RankSurvivors() []*entity.Player {
	ranked := that.AlivePlayers()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].NetWorth() > ranked[j].NetWorth()
	})
	return ranked
}

func (that *Game) playerIndex(player *entity.Player) int {
	for i, candidate := range that.Players {
		if candidate == player {
			return i
		}
	}
	return entity.NoOwner
}

// pay moves money from a player to another player or to the pot. A payer who
// cannot cover the amount is stripped of improvements and mortgages first;
// if that still does not cover it, they are eliminated and the creditor gets
// whatever cash remains.
func (that *Game) pay(payerIdx, amount, payeeIdx int) error {
	if amount <= 0 {
		return nil
	}

	payer := that.Players[payerIdx]

	if payer.Balance < amount {
		that.Bank.RaiseFunds(payer)
	}

	if payer.Balance >= amount {
		payer.Balance -= amount
		that.credit(payeeIdx, amount)
		return nil
	}

	remaining := payer.Balance
	if remaining > 0 {
		payer.Balance = 0
		that.credit(payeeIdx, remaining)
	}
	that.eliminate(payerIdx)

	return fmt.Errorf("%s owes %d: %w", payer.Name, amount, apperror.ErrInsufficientFunds)
}

func (that *Game) credit(payeeIdx, amount int) {
	if payeeIdx == PayeeBank {
		that.Pot += amount
		return
	}
	that.Players[payeeIdx].Collect(amount)
}

// eliminate permanently removes a player: every deed returns to the market
// unowned, jail-free cards go back to their decks, and the player is skipped
// by rotation forever.
func (that *Game) eliminate(playerIdx int) {
	player := that.Players[playerIdx]
	that.Bank.LiquidatePlayer(player)

	for _, deed := range player.Deeds {
		deed.Owner = entity.NoOwner
		deed.Mortgaged = false
		deed.Space.Ownable.Group.RecomputeOwnership()
	}
	player.Deeds = nil

	for {
		kind, ok := player.UseJailFreeCard()
		if !ok {
			break
		}
		that.Decks[kind].ReturnJailFree()
	}

	that.logger.Info("player eliminated", "player", player.Name)
}

// sendToJail repositions the player onto the jail space without ending the
// turn cycle; jail resolution runs when their next turn begins.
func (that *Game) sendToJail(playerIdx int) {
	player := that.Players[playerIdx]
	player.EnterJail(that.Board.JailPosition())
	that.logger.Info("player jailed", "player", player.Name)
}

// applyTrade executes a proposal between the active player and a partner.
// The whole exchange is validated first and applied atomically.
func (that *Game) applyTrade(playerIdx int, proposal *TradeProposal) error {
	if proposal.Partner < 0 || proposal.Partner >= len(that.Players) || proposal.Partner == playerIdx {
		return fmt.Errorf("trade partner %d: %w", proposal.Partner, apperror.ErrInvalidTrade)
	}

	player := that.Players[playerIdx]
	partner := that.Players[proposal.Partner]
	if partner.Eliminated {
		return apperror.ErrPlayerEliminated
	}
	if !player.CanAfford(proposal.OfferCash) || !partner.CanAfford(proposal.RequestCash) {
		return apperror.ErrInsufficientFunds
	}
	for _, deed := range proposal.OfferDeeds {
		if !deed.OwnedBy(playerIdx) {
			return apperror.ErrNotOwner
		}
	}
	for _, deed := range proposal.RequestDeeds {
		if !deed.OwnedBy(proposal.Partner) {
			return apperror.ErrNotOwner
		}
	}
	for _, kind := range proposal.OfferJailFrees {
		if err := validateJailFreeTransfer(player, partner, kind); err != nil {
			return err
		}
	}
	for _, kind := range proposal.RequestJailFrees {
		if err := validateJailFreeTransfer(partner, player, kind); err != nil {
			return err
		}
	}

	player.Balance += proposal.RequestCash - proposal.OfferCash
	partner.Balance += proposal.OfferCash - proposal.RequestCash

	for _, deed := range proposal.OfferDeeds {
		that.moveDeed(deed, playerIdx, proposal.Partner)
	}
	for _, deed := range proposal.RequestDeeds {
		that.moveDeed(deed, proposal.Partner, playerIdx)
	}

	for _, kind := range proposal.OfferJailFrees {
		moveJailFree(player, partner, kind)
	}
	for _, kind := range proposal.RequestJailFrees {
		moveJailFree(partner, player, kind)
	}

	that.logger.Info("trade settled", "player", player.Name, "partner", partner.Name)

	return nil
}

func (that *Game) moveDeed(deed *entity.TitleDeed, fromIdx, toIdx int) {
	from := that.Players[fromIdx]
	for i, owned := range from.Deeds {
		if owned == deed {
			from.Deeds = append(from.Deeds[:i], from.Deeds[i+1:]...)
			break
		}
	}

	to := that.Players[toIdx]
	deed.Owner = toIdx
	to.Deeds = append(to.Deeds, deed)
	deed.Space.Ownable.Group.RecomputeOwnership()
}

// validateJailFreeTransfer checks a single card move without touching state:
// the kind must name a deck, the giver must hold that card, and the receiver
// must not, because each deck circulates exactly one.
func validateJailFreeTransfer(from, to *entity.Player, kind string) error {
	switch kind {
	case boarddata.DeckChance:
		if !from.JailFreeChance || to.JailFreeChance {
			return fmt.Errorf("jail-free card from %s: %w", kind, apperror.ErrInvalidTrade)
		}
	case boarddata.DeckCommunityChest:
		if !from.JailFreeChest || to.JailFreeChest {
			return fmt.Errorf("jail-free card from %s: %w", kind, apperror.ErrInvalidTrade)
		}
	default:
		return apperror.ErrUnknownJailCard
	}
	return nil
}

// moveJailFree flips the holding flags; the proposal is validated beforehand,
// so the transfer cannot fail.
func moveJailFree(from, to *entity.Player, kind string) {
	switch kind {
	case boarddata.DeckChance:
		from.JailFreeChance = false
		to.JailFreeChance = true
	case boarddata.DeckCommunityChest:
		from.JailFreeChest = false
		to.JailFreeChest = true
	}
}
