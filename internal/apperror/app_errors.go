package apperror

import "errors"

var (
	ErrGameOver          = errors.New("game is already over")
	ErrPlayerEliminated  = errors.New("player is eliminated")
	ErrNotOwner          = errors.New("player does not own this deed")
	ErrAlreadyMortgaged  = errors.New("deed is already mortgaged")
	ErrNotMortgaged      = errors.New("deed is not mortgaged")
	ErrHasImprovements   = errors.New("deed still carries improvements")
	ErrNotBuildable      = errors.New("space cannot carry improvements")
	ErrNoMonopoly        = errors.New("owner does not hold the full group")
	ErrUnevenBuild       = errors.New("improvements must be built evenly across the group")
	ErrNoHousesLeft      = errors.New("no houses left in the bank")
	ErrNoHotelsLeft      = errors.New("no hotels left in the bank")
	ErrMaxImprovement    = errors.New("maximum improvement already reached")
	ErrNoImprovements    = errors.New("no improvements to sell")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrDiceRollRequired  = errors.New("a dice roll value is required")
	ErrSpaceNotFound     = errors.New("space not found")
	ErrGroupNotFound     = errors.New("group not found")
	ErrGameNotFound      = errors.New("game not found")
	ErrInvalidTrade      = errors.New("trade proposal is invalid")
	ErrSaveSlotNotFound  = errors.New("save slot not found")
	ErrUnknownSpaceType  = errors.New("unknown space type")
	ErrUnknownEffectType = errors.New("unknown card effect type")
	ErrUnknownJailCard   = errors.New("unknown jail-free card kind")
)
