// Package ledger defines the token ledger the asset module mints through.
// The ledger owns mint authorities and balances; callers only issue requests.
package ledger

import (
	"context"
	"errors"

	"github.com/mcoot/gamemodules/internal/model"
)

// MaxSupply caps the supply of any mint. It is the largest integer a Lua
// number holds exactly, so every backend can enforce the same bound.
const MaxSupply uint64 = 1<<53 - 1

// Errors
var (
	ErrMintAuthorityMismatch = errors.New("signer is not the mint authority")
	ErrMintNotFound          = errors.New("mint not found")
	ErrMintExists            = errors.New("mint already exists")
	ErrAccountNotFound       = errors.New("token account not found")
	ErrAccountExists         = errors.New("token account already exists")
	ErrAccountMintMismatch   = errors.New("token account belongs to a different mint")
	ErrZeroQuantity          = errors.New("quantity must be greater than zero")
	ErrSupplyOverflow        = errors.New("mint supply would overflow")
)

// Mint is a token type with a single minting authority
type Mint struct {
	Authority model.Identity
	Supply    uint64
}

// Account holds the balance of one mint's tokens for an owner
type Account struct {
	Mint    model.MintRef
	Owner   model.Identity
	Balance uint64
}

// Ledger tracks mints and balances. MintTo is atomic: it either credits the
// full quantity and raises supply, or changes nothing.
type Ledger interface {
	CreateMint(ctx context.Context, mint model.MintRef, authority model.Identity) error
	OpenAccount(ctx context.Context, account model.AccountRef, mint model.MintRef, owner model.Identity) error
	GetMint(ctx context.Context, mint model.MintRef) (*Mint, error)
	GetAccount(ctx context.Context, account model.AccountRef) (*Account, error)
	MintTo(ctx context.Context, mint model.MintRef, destination model.AccountRef, quantity uint64, authority model.Identity) error
}
