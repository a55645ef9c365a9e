package monopoly

import "github.com/rocketscienceinc/monopoly-backend/internal/entity"

// JailChoice is the strategy a jailed player picks at the start of a turn.
type JailChoice string

const (
	JailUseCard JailChoice = "use_card"
	JailPayBail JailChoice = "pay_bail"
	JailRoll    JailChoice = "roll"
)

// AuctionBid is one bidder's answer during an auction round. Amount must
// exceed the current high bid to count as a raise; anything else is a pass.
type AuctionBid struct {
	Amount   int
	Withdraw bool
}

// TradeProposal is an offer from the active player to a partner. Deeds and
// jail-free card kinds flow in both directions together with cash.
type TradeProposal struct {
	Partner          int
	OfferCash        int
	RequestCash      int
	OfferDeeds       []*entity.TitleDeed
	RequestDeeds     []*entity.TitleDeed
	OfferJailFrees   []string
	RequestJailFrees []string
}

// DecisionProvider answers every decision a player faces during a turn. The
// turn machine is oblivious to whether a human or an automated policy sits
// behind it; calls block until answered.
type DecisionProvider interface {
	DecidePurchase(space *entity.Space) bool
	DecideBuild() []*entity.TitleDeed
	DecideMortgage() []*entity.TitleDeed
	DecideUnmortgage() []*entity.TitleDeed
	DecideTrade() *TradeProposal
	DecideAuctionBid(space *entity.Space, currentHigh int) AuctionBid
	DecideJailStrategy() JailChoice
}
