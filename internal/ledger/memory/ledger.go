package memory

import (
	"context"
	"sync"

	"github.com/mcoot/gamemodules/internal/ledger"
	"github.com/mcoot/gamemodules/internal/model"
)

// Ledger is an in-memory token ledger
type Ledger struct {
	mu sync.RWMutex

	mints    map[model.MintRef]ledger.Mint
	accounts map[model.AccountRef]ledger.Account
}

// New creates an empty in-memory ledger
func New() *Ledger {
	return &Ledger{
		mints:    make(map[model.MintRef]ledger.Mint),
		accounts: make(map[model.AccountRef]ledger.Account),
	}
}

var _ ledger.Ledger = (*Ledger)(nil)

func (l *Ledger) CreateMint(ctx context.Context, mint model.MintRef, authority model.Identity) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.mints[mint]; ok {
		return ledger.ErrMintExists
	}
	l.mints[mint] = ledger.Mint{Authority: authority}
	return nil
}

func (l *Ledger) OpenAccount(ctx context.Context, account model.AccountRef, mint model.MintRef, owner model.Identity) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.mints[mint]; !ok {
		return ledger.ErrMintNotFound
	}
	if _, ok := l.accounts[account]; ok {
		return ledger.ErrAccountExists
	}
	l.accounts[account] = ledger.Account{Mint: mint, Owner: owner}
	return nil
}

func (l *Ledger) GetMint(ctx context.Context, mint model.MintRef) (*ledger.Mint, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	m, ok := l.mints[mint]
	if !ok {
		return nil, ledger.ErrMintNotFound
	}
	return &m, nil
}

func (l *Ledger) GetAccount(ctx context.Context, account model.AccountRef) (*ledger.Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	a, ok := l.accounts[account]
	if !ok {
		return nil, ledger.ErrAccountNotFound
	}
	return &a, nil
}

func (l *Ledger) MintTo(ctx context.Context, mint model.MintRef, destination model.AccountRef, quantity uint64, authority model.Identity) error {
	if quantity == 0 {
		return ledger.ErrZeroQuantity
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.mints[mint]
	if !ok {
		return ledger.ErrMintNotFound
	}
	a, ok := l.accounts[destination]
	if !ok {
		return ledger.ErrAccountNotFound
	}
	if m.Authority != authority {
		return ledger.ErrMintAuthorityMismatch
	}
	if a.Mint != mint {
		return ledger.ErrAccountMintMismatch
	}
	if quantity > ledger.MaxSupply-m.Supply {
		return ledger.ErrSupplyOverflow
	}

	m.Supply += quantity
	a.Balance += quantity
	l.mints[mint] = m
	l.accounts[destination] = a
	return nil
}
