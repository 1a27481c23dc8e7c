package redis

import (
	"fmt"

	"github.com/mcoot/gamemodules/internal/model"
)

// Key prefix for all record data
const keyPrefix = "gmod"

// profileKey returns the Redis key for a ProfileRecord
func profileKey(addr model.Address) string {
	return fmt.Sprintf("%s:profile:%s", keyPrefix, addr)
}

// combatantKey returns the Redis key for a CombatRecord
func combatantKey(addr model.Address) string {
	return fmt.Sprintf("%s:combatant:%s", keyPrefix, addr)
}
