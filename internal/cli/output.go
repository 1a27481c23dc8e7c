package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case Combatant:
		o.printCombatant(v)
	case Account:
		o.printAccount(v)
	case Mint:
		o.printMint(v)
	case MintedItem:
		o.printMintedItem(v)
	case KeyInfo:
		o.printKeyInfo(v)
	case StatusResult:
		o.printStatusResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	Address string `json:"address"`
	Owner   string `json:"owner"`
	Name    string `json:"name"`
	Level   uint8  `json:"level"`
}

// Combatant response type
type Combatant struct {
	Address string `json:"address"`
	Owner   string `json:"owner"`
	HP      uint8  `json:"hp"`
}

// Account response type
type Account struct {
	Account string `json:"account"`
	Mint    string `json:"mint"`
	Owner   string `json:"owner"`
	Balance uint64 `json:"balance"`
}

// Mint response type
type Mint struct {
	Mint      string `json:"mint"`
	Authority string `json:"authority"`
}

// MintedItem response type
type MintedItem struct {
	Mint        string `json:"mint"`
	Destination string `json:"destination"`
	Quantity    uint64 `json:"quantity"`
}

// KeyInfo describes the local signing key
type KeyInfo struct {
	Identity string `json:"identity"`
	KeyFile  string `json:"key_file"`
}

// StatusResult response type
type StatusResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.Address)
	fmt.Printf("Level: %d\n", p.Level)
	fmt.Printf("Owner: %s\n", p.Owner)
}

func (o *Output) printCombatant(c Combatant) {
	fmt.Printf("Combatant: %s\n", c.Address)
	fmt.Printf("HP: %d\n", c.HP)
	fmt.Printf("Owner: %s\n", c.Owner)
}

func (o *Output) printAccount(a Account) {
	fmt.Printf("Account: %s\n", a.Account)
	fmt.Printf("Mint: %s\n", a.Mint)
	fmt.Printf("Balance: %d\n", a.Balance)
	fmt.Printf("Owner: %s\n", a.Owner)
}

func (o *Output) printMint(m Mint) {
	fmt.Printf("Mint: %s\n", m.Mint)
	fmt.Printf("Authority: %s\n", m.Authority)
}

func (o *Output) printMintedItem(m MintedItem) {
	fmt.Printf("Minted %d %s to %s\n", m.Quantity, m.Mint, m.Destination)
}

func (o *Output) printKeyInfo(k KeyInfo) {
	fmt.Printf("Identity: %s\n", k.Identity)
	fmt.Printf("Key file: %s\n", k.KeyFile)
}

func (o *Output) printStatusResult(s StatusResult) {
	fmt.Printf("Status: %s\n", s.Status)
}
