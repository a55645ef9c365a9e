package monopoly

import (
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

type bidderState struct {
	idx      int
	player   *entity.Player
	provider DecisionProvider
	active   bool
}

// Auction sells an unowned space to the highest bidder among the
// non-eliminated players. Bidding is round-robin starting at the current
// turn-holder; each active bidder raises, passes or withdraws. The auction
// ends when the last bidder standing holds the high bid, or after a full
// silent round with no raise. With no bid at all the space stays unowned.
func (that *Bank) Auction(game *Game, space *entity.Space) (winner, winningBid int) {
	var bidders []*bidderState
	for offset := range game.Players {
		idx := (game.Current + offset) % len(game.Players)
		if game.Players[idx].Eliminated {
			continue
		}
		bidders = append(bidders, &bidderState{
			idx:      idx,
			player:   game.Players[idx],
			provider: game.Providers[idx],
			active:   true,
		})
	}
	if len(bidders) == 0 {
		return entity.NoOwner, 0
	}

	highBid := 0
	highBidder := entity.NoOwner
	active := len(bidders)
	stalled := 0

bidding:
	for active > 0 && stalled < len(bidders) {
		for _, bidder := range bidders {
			if !bidder.active {
				continue
			}
			if active == 1 && highBidder == bidder.idx {
				// last bidder standing already leads
				break bidding
			}

			bid := bidder.provider.DecideAuctionBid(space, highBid)

			switch {
			case bid.Withdraw:
				bidder.active = false
				active--
			case bid.Amount > highBid && bidder.player.CanAfford(bid.Amount):
				highBid = bid.Amount
				highBidder = bidder.idx
				stalled = 0
			case bid.Amount > highBid:
				// A raise beyond the bidder's means drops them out.
				bidder.active = false
				active--
			default:
				stalled++
			}
		}
	}

	if highBidder == entity.NoOwner {
		game.logger.Info("auction ended with no bids", "space", space.Name)
		return entity.NoOwner, 0
	}

	buyer := game.Players[highBidder]
	buyer.Balance -= highBid
	that.TransferOwnership(space, highBidder, buyer)

	game.logger.Info("auction won",
		"space", space.Name,
		"player", buyer.Name,
		"bid", highBid,
	)

	return highBidder, highBid
}
