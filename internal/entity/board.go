package entity

import (
	"fmt"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/boarddata"
)

// rentTiers is the number of entries a buildable rent table must carry,
// one per improvement level 0..5.
const rentTiers = MaxImprovement + 1

// Board is the ordered sequence of spaces. Groups are built incrementally as
// the space records are consumed in board order.
type Board struct {
	Spaces     []*Space
	Groups     map[string]*Group
	BaseSalary int

	jailPosition        int
	freeParkingPosition int
}

// NewBoard builds the board from external space records. An unrecognized or
// incomplete record fails construction; a silently shrunken board is worse
// than no board.
func NewBoard(records []boarddata.SpaceRecord, baseSalary int) (*Board, error) {
	board := &Board{
		Groups:     make(map[string]*Group),
		BaseSalary: baseSalary,
	}

	for i, record := range records {
		space, err := board.buildSpace(i, record)
		if err != nil {
			return nil, fmt.Errorf("space %d (%s): %w", i, record.Name, err)
		}
		board.Spaces = append(board.Spaces, space)
	}

	return board, nil
}

func (that *Board) buildSpace(position int, record boarddata.SpaceRecord) (*Space, error) {
	space := &Space{
		Name:     record.Name,
		Position: position,
	}

	switch record.Type {
	case boarddata.TypeProperty:
		if len(record.Rent) != rentTiers {
			return nil, fmt.Errorf("rent table must have %d tiers, got %d", rentTiers, len(record.Rent))
		}
		space.Kind = SpaceProperty
		that.attachOwnable(space, record, record.Group)
	case boarddata.TypeRailroad:
		if len(record.Rent) == 0 {
			return nil, fmt.Errorf("rent table is empty")
		}
		space.Kind = SpaceRailroad
		that.attachOwnable(space, record, boarddata.TypeRailroad)
	case boarddata.TypeUtility:
		if len(record.Rent) == 0 {
			return nil, fmt.Errorf("rent table is empty")
		}
		space.Kind = SpaceUtility
		that.attachOwnable(space, record, boarddata.TypeUtility)
	case boarddata.TypeTax:
		space.Kind = SpaceTax
		space.Amount = record.Amount
	case boarddata.TypeGo:
		space.Kind = SpaceGo
	case boarddata.TypeJail:
		space.Kind = SpaceJail
		that.jailPosition = position
	case boarddata.TypeGoToJail:
		space.Kind = SpaceGoToJail
	case boarddata.TypeFreeParking:
		space.Kind = SpaceFreeParking
		that.freeParkingPosition = position
	case boarddata.TypeCardDraw:
		space.Kind = SpaceCardDraw
		space.DeckName = record.Deck
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownSpaceType, record.Type)
	}

	return space, nil
}

func (that *Board) attachOwnable(space *Space, record boarddata.SpaceRecord, groupLabel string) {
	group, ok := that.Groups[groupLabel]
	if !ok {
		group = NewGroup(groupLabel)
		that.Groups[groupLabel] = group
	}

	space.Ownable = &Ownable{
		Price:         record.Price,
		MortgageValue: record.Mortgage,
		BuildCost:     record.BuildCost,
		Rent:          record.Rent,
		Group:         group,
	}
	space.Ownable.Deed = TitleDeed{Space: space, Owner: NoOwner}

	group.addMember(space)
}

func (that *Board) Size() int {
	return len(that.Spaces)
}

func (that *Board) JailPosition() int {
	return that.jailPosition
}

func (that *Board) FreeParkingPosition() int {
	return that.freeParkingPosition
}

func (that *Board) SpaceAt(position int) *Space {
	return that.Spaces[position%len(that.Spaces)]
}

// Move advances the player with wraparound and credits the passing salary
// when forward movement wraps past the start. Moving backwards never pays
// salary. Landing resolution is the caller's job; non-standard movement like
// "advance to nearest" reuses Move without triggering side effects twice.
func (that *Board) Move(player *Player, steps int) bool {
	size := len(that.Spaces)
	oldPosition := player.Position
	player.Position = ((oldPosition+steps)%size + size) % size

	passedGo := steps > 0 && player.Position < oldPosition
	if passedGo {
		player.Collect(that.BaseSalary)
	}

	return passedGo
}

func (that *Board) FindByName(name string) (*Space, error) {
	for _, space := range that.Spaces {
		if space.Name == name {
			return space, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", apperror.ErrSpaceNotFound, name)
}

func (that *Board) FindByGroup(label string) []*Space {
	group, ok := that.Groups[label]
	if !ok {
		return nil
	}
	return group.Members
}

// DistanceTo is the forward-only modular distance from the player to the
// target space, never negative.
func (that *Board) DistanceTo(player *Player, target *Space) int {
	size := len(that.Spaces)
	return ((target.Position - player.Position) % size + size) % size
}

// OwnableSpaces lists every space that can be owned, in board order.
func (that *Board) OwnableSpaces() []*Space {
	var spaces []*Space
	for _, space := range that.Spaces {
		if space.IsOwnable() {
			spaces = append(spaces, space)
		}
	}
	return spaces
}
