package response

import (
	"github.com/mcoot/gamemodules/internal/ledger"
	"github.com/mcoot/gamemodules/internal/model"
)

// Player represents a profile record in API responses
type Player struct {
	Address string `json:"address"`
	Owner   string `json:"owner"`
	Name    string `json:"name"`
	Level   uint8  `json:"level"`
}

// PlayerFromModel converts a model.ProfileRecord to a response Player
func PlayerFromModel(addr model.Address, p *model.ProfileRecord) Player {
	return Player{
		Address: string(addr),
		Owner:   p.Owner.String(),
		Name:    p.Name,
		Level:   p.Level,
	}
}

// Combatant represents a combat record in API responses
type Combatant struct {
	Address string `json:"address"`
	Owner   string `json:"owner"`
	HP      uint8  `json:"hp"`
}

// CombatantFromModel converts a model.CombatRecord to a response Combatant
func CombatantFromModel(addr model.Address, c *model.CombatRecord) Combatant {
	return Combatant{
		Address: string(addr),
		Owner:   c.Owner.String(),
		HP:      c.HP,
	}
}

// Account represents a token account in API responses
type Account struct {
	Account string `json:"account"`
	Mint    string `json:"mint"`
	Owner   string `json:"owner"`
	Balance uint64 `json:"balance"`
}

// AccountFromLedger converts a ledger.Account
func AccountFromLedger(ref model.AccountRef, a *ledger.Account) Account {
	return Account{
		Account: string(ref),
		Mint:    string(a.Mint),
		Owner:   a.Owner.String(),
		Balance: a.Balance,
	}
}

// Mint describes a created mint
type Mint struct {
	Mint      string `json:"mint"`
	Authority string `json:"authority"`
}

// MintedItem is returned after a successful item mint
type MintedItem struct {
	Mint        string `json:"mint"`
	Destination string `json:"destination"`
	Quantity    uint64 `json:"quantity"`
}

// Status is a simple status payload
type Status struct {
	Status string `json:"status"`
}
