package asset

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/gamemodules/internal/ledger"
	"github.com/mcoot/gamemodules/internal/model"
	"github.com/mcoot/gamemodules/internal/services/auth"
)

// ItemQuantity is the number of units issued per MintItem call. Items are
// unique, so this is never configurable.
const ItemQuantity uint64 = 1

// Service mints single item units through the token ledger
type Service struct {
	ledger ledger.Ledger
	logger *slog.Logger
}

// New creates a new asset Service
func New(ledger ledger.Ledger, logger *slog.Logger) *Service {
	return &Service{
		ledger: ledger,
		logger: logger.With(slog.String("program", model.AssetProgramID)),
	}
}

// MintItem issues exactly one unit of mint to destination, signed by the caller.
// The ledger decides whether the caller is the mint authority.
func (s *Service) MintItem(ctx context.Context, caller auth.Caller, mint model.MintRef, destination model.AccountRef) error {
	authority, err := caller.Identity()
	if err != nil {
		return err
	}
	if err := mint.Validate(); err != nil {
		return err
	}
	if err := destination.Validate(); err != nil {
		return err
	}

	if err := s.ledger.MintTo(ctx, mint, destination, ItemQuantity, authority); err != nil {
		if errors.Is(err, ledger.ErrMintAuthorityMismatch) {
			return model.ErrMintAuthorityMismatch
		}
		return &model.LedgerError{Err: err}
	}

	s.logger.Info("item minted",
		slog.String("mint", string(mint)),
		slog.String("destination", string(destination)),
	)
	return nil
}

// CreateMint registers a new mint with the caller as its authority
func (s *Service) CreateMint(ctx context.Context, caller auth.Caller, mint model.MintRef) error {
	authority, err := caller.Identity()
	if err != nil {
		return err
	}
	if err := mint.Validate(); err != nil {
		return err
	}
	if err := s.ledger.CreateMint(ctx, mint, authority); err != nil {
		return &model.LedgerError{Err: err}
	}
	s.logger.Info("mint created", slog.String("mint", string(mint)))
	return nil
}

// OpenAccount opens a token account for mint owned by the caller
func (s *Service) OpenAccount(ctx context.Context, caller auth.Caller, mint model.MintRef, account model.AccountRef) error {
	owner, err := caller.Identity()
	if err != nil {
		return err
	}
	if err := mint.Validate(); err != nil {
		return err
	}
	if err := account.Validate(); err != nil {
		return err
	}
	if err := s.ledger.OpenAccount(ctx, account, mint, owner); err != nil {
		return &model.LedgerError{Err: err}
	}
	s.logger.Info("account opened",
		slog.String("mint", string(mint)),
		slog.String("account", string(account)),
	)
	return nil
}

// GetAccount returns a token account and its balance
func (s *Service) GetAccount(ctx context.Context, account model.AccountRef) (*ledger.Account, error) {
	if err := account.Validate(); err != nil {
		return nil, err
	}
	a, err := s.ledger.GetAccount(ctx, account)
	if err != nil {
		return nil, &model.LedgerError{Err: err}
	}
	return a, nil
}
