package entity

// Symbolic speed die faces. They add no movement; the turn machine surfaces
// them to the caller and resolves nothing further.
const (
	SpeedSymbolBus        = "BUS"
	SpeedSymbolMrMonopoly = "MR_MONOPOLY"
)

// DiceOutcome is the result of one roll, kept on the player so that rent
// calculations depending on pips can reach it.
type DiceOutcome struct {
	Die1        int    `json:"die1"`
	Die2        int    `json:"die2"`
	SpeedValue  int    `json:"speed_value,omitempty"`
	SpeedSymbol string `json:"speed_symbol,omitempty"`
	Total       int    `json:"total"`
	Doubles     bool   `json:"doubles"`
}
