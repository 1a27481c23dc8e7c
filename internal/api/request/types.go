package request

// RegisterPlayerRequest is the request body for registering a player
type RegisterPlayerRequest struct {
	Name string `json:"name"`
}

// UpdateLevelRequest is the request body for changing a player's level
type UpdateLevelRequest struct {
	Level *uint8 `json:"level"`
}

// RegisterCombatantRequest is the request body for registering a combatant.
// HP defaults to model.DefaultHP when omitted.
type RegisterCombatantRequest struct {
	HP *uint8 `json:"hp,omitempty"`
}

// AttackRequest is the request body for an attack
type AttackRequest struct {
	Damage *uint8 `json:"damage"`
}

// MintItemRequest is the request body for minting an item
type MintItemRequest struct {
	Destination string `json:"destination"`
}
