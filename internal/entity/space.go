package entity

// SpaceKind tags the board space variants. Ownable kinds carry an Ownable
// record; the rest carry at most one extra field.
type SpaceKind string

const (
	SpaceProperty    SpaceKind = "property"
	SpaceRailroad    SpaceKind = "railroad"
	SpaceUtility     SpaceKind = "utility"
	SpaceTax         SpaceKind = "tax"
	SpaceGo          SpaceKind = "go"
	SpaceJail        SpaceKind = "jail"
	SpaceGoToJail    SpaceKind = "go_to_jail"
	SpaceFreeParking SpaceKind = "free_parking"
	SpaceCardDraw    SpaceKind = "card_draw"
)

// Space is one position on the board.
type Space struct {
	Kind     SpaceKind
	Name     string
	Position int

	Amount   int    // tax spaces only
	DeckName string // card-draw spaces only

	Ownable *Ownable // nil unless the kind is ownable
}

// Ownable is the shared capability record of a purchasable space. The rent
// table is keyed by a discrete tier: improvement level for properties,
// owned-count for railroads, owned-count multiplier for utilities.
type Ownable struct {
	Price         int
	MortgageValue int
	BuildCost     int // properties only
	Rent          []int
	Group         *Group
	Deed          TitleDeed
}

func (that *Space) IsOwnable() bool {
	return that.Ownable != nil
}

// Deed returns the mutable ownership record, nil for non-ownable spaces.
func (that *Space) Deed() *TitleDeed {
	if that.Ownable == nil {
		return nil
	}
	return &that.Ownable.Deed
}

func (that *Space) Group() *Group {
	if that.Ownable == nil {
		return nil
	}
	return that.Ownable.Group
}
