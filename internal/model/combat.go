package model

// DefaultHP is the hit points a combatant starts with when none are given
const DefaultHP uint8 = 100

// CombatRecord is the combat engine's view of a player. It is deliberately
// separate from ProfileRecord: the two share an address space but no fields.
type CombatRecord struct {
	Owner Identity
	HP    uint8
}

// NewCombatRecord builds a combatant with the given hit points
func NewCombatRecord(owner Identity, hp uint8) (*CombatRecord, error) {
	if hp == 0 {
		return nil, ErrInvalidHP
	}
	return &CombatRecord{Owner: owner, HP: hp}, nil
}

// ApplyDamage subtracts damage if the combatant survives with hp > 0.
// Damage equal to or above current hp is rejected and leaves hp unchanged.
func (c *CombatRecord) ApplyDamage(damage uint8) error {
	if damage >= c.HP {
		return ErrLethalDamage
	}
	c.HP -= damage
	return nil
}
