// Package ledgertest holds a behaviour suite every ledger backend must pass.
package ledgertest

import (
	"context"
	"sync"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/gamemodules/internal/ledger"
	"github.com/mcoot/gamemodules/internal/model"
)

// Suite runs ledger behaviour tests against the ledger returned by NewLedger
type Suite struct {
	suite.Suite

	// NewLedger builds a fresh, empty ledger for each test
	NewLedger func() ledger.Ledger

	Ledger    ledger.Ledger
	Ctx       context.Context
	Authority model.Identity
	Owner     model.Identity
}

func (s *Suite) SetupTest() {
	s.Ledger = s.NewLedger()
	s.Ctx = context.Background()
	s.Authority = model.Identity{0xa1}
	s.Owner = model.Identity{0xb2}
}

func (s *Suite) setupMintAndAccount() {
	s.Require().NoError(s.Ledger.CreateMint(s.Ctx, "sword", s.Authority))
	s.Require().NoError(s.Ledger.OpenAccount(s.Ctx, "bag", "sword", s.Owner))
}

func (s *Suite) balance(account model.AccountRef) uint64 {
	a, err := s.Ledger.GetAccount(s.Ctx, account)
	s.Require().NoError(err)
	return a.Balance
}

// Mint tests

func (s *Suite) TestCreateAndGetMint() {
	s.Require().NoError(s.Ledger.CreateMint(s.Ctx, "sword", s.Authority))

	m, err := s.Ledger.GetMint(s.Ctx, "sword")
	s.Require().NoError(err)
	s.Equal(s.Authority, m.Authority)
	s.Zero(m.Supply)
}

func (s *Suite) TestCreateMintTwiceFails() {
	s.Require().NoError(s.Ledger.CreateMint(s.Ctx, "sword", s.Authority))

	err := s.Ledger.CreateMint(s.Ctx, "sword", s.Owner)
	s.ErrorIs(err, ledger.ErrMintExists)

	m, _ := s.Ledger.GetMint(s.Ctx, "sword")
	s.Equal(s.Authority, m.Authority)
}

func (s *Suite) TestGetMintNotFound() {
	_, err := s.Ledger.GetMint(s.Ctx, "nonexistent")
	s.ErrorIs(err, ledger.ErrMintNotFound)
}

// Account tests

func (s *Suite) TestOpenAndGetAccount() {
	s.setupMintAndAccount()

	a, err := s.Ledger.GetAccount(s.Ctx, "bag")
	s.Require().NoError(err)
	s.Equal(model.MintRef("sword"), a.Mint)
	s.Equal(s.Owner, a.Owner)
	s.Zero(a.Balance)
}

func (s *Suite) TestOpenAccountRequiresMint() {
	err := s.Ledger.OpenAccount(s.Ctx, "bag", "nonexistent", s.Owner)
	s.ErrorIs(err, ledger.ErrMintNotFound)
}

func (s *Suite) TestOpenAccountTwiceFails() {
	s.setupMintAndAccount()

	err := s.Ledger.OpenAccount(s.Ctx, "bag", "sword", s.Authority)
	s.ErrorIs(err, ledger.ErrAccountExists)
}

func (s *Suite) TestGetAccountNotFound() {
	_, err := s.Ledger.GetAccount(s.Ctx, "nonexistent")
	s.ErrorIs(err, ledger.ErrAccountNotFound)
}

// MintTo tests

func (s *Suite) TestMintToCreditsBalanceAndSupply() {
	s.setupMintAndAccount()

	s.Require().NoError(s.Ledger.MintTo(s.Ctx, "sword", "bag", 1, s.Authority))
	s.Require().NoError(s.Ledger.MintTo(s.Ctx, "sword", "bag", 1, s.Authority))

	s.Equal(uint64(2), s.balance("bag"))
	m, _ := s.Ledger.GetMint(s.Ctx, "sword")
	s.Equal(uint64(2), m.Supply)
}

func (s *Suite) TestMintToRejectsWrongAuthority() {
	s.setupMintAndAccount()

	err := s.Ledger.MintTo(s.Ctx, "sword", "bag", 1, s.Owner)
	s.ErrorIs(err, ledger.ErrMintAuthorityMismatch)
	s.Zero(s.balance("bag"))
}

func (s *Suite) TestMintToRejectsUnknownMint() {
	s.setupMintAndAccount()

	err := s.Ledger.MintTo(s.Ctx, "shield", "bag", 1, s.Authority)
	s.ErrorIs(err, ledger.ErrMintNotFound)
}

func (s *Suite) TestMintToRejectsUnknownAccount() {
	s.setupMintAndAccount()

	err := s.Ledger.MintTo(s.Ctx, "sword", "pouch", 1, s.Authority)
	s.ErrorIs(err, ledger.ErrAccountNotFound)
}

func (s *Suite) TestMintToRejectsAccountOfOtherMint() {
	s.setupMintAndAccount()
	s.Require().NoError(s.Ledger.CreateMint(s.Ctx, "shield", s.Authority))
	s.Require().NoError(s.Ledger.OpenAccount(s.Ctx, "rack", "shield", s.Owner))

	err := s.Ledger.MintTo(s.Ctx, "sword", "rack", 1, s.Authority)
	s.ErrorIs(err, ledger.ErrAccountMintMismatch)
	s.Zero(s.balance("rack"))
}

func (s *Suite) TestMintToRejectsZeroQuantity() {
	s.setupMintAndAccount()

	err := s.Ledger.MintTo(s.Ctx, "sword", "bag", 0, s.Authority)
	s.ErrorIs(err, ledger.ErrZeroQuantity)
}

func (s *Suite) TestMintToRejectsSupplyOverflow() {
	s.setupMintAndAccount()
	s.Require().NoError(s.Ledger.MintTo(s.Ctx, "sword", "bag", ledger.MaxSupply, s.Authority))

	err := s.Ledger.MintTo(s.Ctx, "sword", "bag", 1, s.Authority)
	s.ErrorIs(err, ledger.ErrSupplyOverflow)
	s.Equal(ledger.MaxSupply, s.balance("bag"))
}

func (s *Suite) TestConcurrentMintsAllLand() {
	s.setupMintAndAccount()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Ledger.MintTo(s.Ctx, "sword", "bag", 1, s.Authority)
		}()
	}
	wg.Wait()

	s.Equal(uint64(50), s.balance("bag"))
}
