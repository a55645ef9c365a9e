package monopoly

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/monopoly-backend/internal/boarddata"
)

// EventCard is one drawable card with its parsed effect.
type EventCard struct {
	Description string
	Effect      Effect
}

// Deck is a FIFO queue of event cards. Drawn cards recycle to the tail,
// except jail-free cards, which stay with the drawing player until used or
// until their holder is eliminated.
type Deck struct {
	name     string
	cards    []*EventCard
	withheld []*EventCard
}

// NewDeck parses the deck records; any card with an unrecognized effect makes
// construction fail.
func NewDeck(name string, records []boarddata.CardRecord) (*Deck, error) {
	deck := &Deck{name: name}

	for i, record := range records {
		effect, err := parseEffect(record.Effect)
		if err != nil {
			return nil, fmt.Errorf("deck %s, card %d (%s): %w", name, i, record.Description, err)
		}
		deck.cards = append(deck.cards, &EventCard{
			Description: record.Description,
			Effect:      effect,
		})
	}

	return deck, nil
}

func (that *Deck) Name() string {
	return that.name
}

func (that *Deck) Len() int {
	return len(that.cards)
}

func (that *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(that.cards), func(i, j int) {
		that.cards[i], that.cards[j] = that.cards[j], that.cards[i]
	})
}

// Draw pops the front card, applies its effect to the drawing player and
// recycles it to the tail. A drawn jail-free card leaves circulation instead.
func (that *Deck) Draw(game *Game, playerIdx int) (*EventCard, error) {
	if len(that.cards) == 0 {
		return nil, fmt.Errorf("deck %s is empty", that.name)
	}

	card := that.cards[0]
	that.cards = that.cards[1:]

	if card.Effect.Kind == EffectGrantJailFree {
		that.withheld = append(that.withheld, card)
	} else {
		that.cards = append(that.cards, card)
	}

	if err := game.applyEffect(playerIdx, card.Effect); err != nil {
		return card, fmt.Errorf("card %q: %w", card.Description, err)
	}

	return card, nil
}

// WithholdJailFree removes a jail-free card from circulation without drawing
// it. Used when restoring a game whose players already hold such cards.
func (that *Deck) WithholdJailFree() bool {
	for i, card := range that.cards {
		if card.Effect.Kind == EffectGrantJailFree {
			that.cards = append(that.cards[:i], that.cards[i+1:]...)
			that.withheld = append(that.withheld, card)
			return true
		}
	}
	return false
}

// ReturnJailFree puts a previously drawn jail-free card back at the tail.
func (that *Deck) ReturnJailFree() {
	var card *EventCard
	if n := len(that.withheld); n > 0 {
		card = that.withheld[n-1]
		that.withheld = that.withheld[:n-1]
	} else {
		card = &EventCard{
			Description: "Get Out of Jail Free",
			Effect:      Effect{Kind: EffectGrantJailFree, CardKind: that.name},
		}
	}
	that.cards = append(that.cards, card)
}

// Peek returns the card order without mutating the deck.
func (that *Deck) Peek() []*EventCard {
	return that.cards
}
