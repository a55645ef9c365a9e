// Package boarddata reads the external board, card and deck definitions.
// It only produces plain records; turning them into a playable board is the
// job of the entity and monopoly packages.
package boarddata

// Space type tags accepted in board files.
const (
	TypeProperty    = "property"
	TypeRailroad    = "railroad"
	TypeUtility     = "utility"
	TypeTax         = "tax"
	TypeGo          = "go"
	TypeJail        = "jail"
	TypeGoToJail    = "go_to_jail"
	TypeFreeParking = "free_parking"
	TypeCardDraw    = "card_draw"
)

// Card effect type tags accepted in deck files.
const (
	EffectAdvanceTo         = "advance_to"
	EffectAdvanceToNearest  = "advance_to_nearest"
	EffectAdvanceSteps      = "advance_steps"
	EffectCollectMoney      = "collect_money"
	EffectPayMoney          = "pay_money"
	EffectPayMoneyBuildings = "pay_money_buildings"
	EffectPayMoneyToPlayers = "pay_money_to_players"
	EffectGrantJailFree     = "get_out_of_jail_free"
	EffectGoToJail          = "go_to_jail"
)

// Deck identifiers; also the only values accepted for a jail-free card kind.
const (
	DeckChance         = "chance"
	DeckCommunityChest = "community_chest"
)

// SpaceRecord is one entry of the ordered board list. Which fields are
// meaningful depends on Type; the schema enforces the required ones.
type SpaceRecord struct {
	Type      string `json:"type"`
	Name      string `json:"name"`
	Group     string `json:"group,omitempty"`
	Price     int    `json:"price,omitempty"`
	Mortgage  int    `json:"mortgage,omitempty"`
	BuildCost int    `json:"build_cost,omitempty"`
	Rent      []int  `json:"rent,omitempty"`
	Amount    int    `json:"amount,omitempty"`
	Deck      string `json:"deck,omitempty"`
}

// CardRecord is one entry of an ordered deck list.
type CardRecord struct {
	Description string       `json:"description"`
	Effect      EffectRecord `json:"effect"`
}

// EffectRecord is the raw, untyped effect of a card. The monopoly package
// parses it into a closed effect union and rejects unknown types.
type EffectRecord struct {
	Type       string `json:"type"`
	Target     string `json:"target,omitempty"`
	Amount     int    `json:"amount,omitempty"`
	HousePrice int    `json:"house_price,omitempty"`
	HotelPrice int    `json:"hotel_price,omitempty"`
	CardKind   string `json:"card_kind,omitempty"`
}
