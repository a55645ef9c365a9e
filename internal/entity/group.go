package entity

// Group aggregates the ownable spaces sharing a category and keeps a derived
// owner-to-count tally. The member list is fixed at board construction; the
// tally is recomputed from deed owners on every ownership change.
type Group struct {
	Label   string
	Members []*Space

	tally map[int]int
}

func NewGroup(label string) *Group {
	return &Group{
		Label: label,
		tally: make(map[int]int),
	}
}

func (that *Group) addMember(space *Space) {
	that.Members = append(that.Members, space)
}

func (that *Group) Size() int {
	return len(that.Members)
}

// RecomputeOwnership rebuilds the tally from the current deed owners. Must be
// called after every ownership transfer affecting a member space.
func (that *Group) RecomputeOwnership() {
	that.tally = make(map[int]int, len(that.Members))
	for _, space := range that.Members {
		if deed := space.Deed(); deed.IsOwned() {
			that.tally[deed.Owner]++
		}
	}
}

// HasMonopoly reports whether a single owner holds every member space.
func (that *Group) HasMonopoly() bool {
	_, ok := that.MonopolyOwner()
	return ok
}

// MonopolyOwner returns the player holding the whole group, if any.
func (that *Group) MonopolyOwner() (int, bool) {
	for owner, count := range that.tally {
		if count == len(that.Members) {
			return owner, true
		}
	}
	return NoOwner, false
}

func (that *Group) CountOwnedBy(player int) int {
	return that.tally[player]
}
