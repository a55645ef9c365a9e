package entity

// NoOwner marks an unowned deed. Owners are indices into the game's player
// list, never pointers, so a deed can be serialized and restored as-is.
const NoOwner = -1

// MaxImprovement is the hotel tier; levels 0-4 count houses.
const MaxImprovement = 5

// TitleDeed is the mutable state of an ownable space. It is created once per
// space at board construction and only its Owner, Mortgaged and Level fields
// change afterwards.
type TitleDeed struct {
	Space     *Space
	Owner     int
	Mortgaged bool
	Level     int
}

func (that *TitleDeed) IsOwned() bool {
	return that.Owner != NoOwner
}

func (that *TitleDeed) OwnedBy(player int) bool {
	return that.Owner == player
}

func (that *TitleDeed) HasHotel() bool {
	return that.Level == MaxImprovement
}

// Houses reports how many loose houses stand on the deed; a hotel counts as
// zero houses and one hotel.
func (that *TitleDeed) Houses() int {
	if that.Level == MaxImprovement {
		return 0
	}
	return that.Level
}
