package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/gamemodules/internal/dependencies/mocks"
	"github.com/mcoot/gamemodules/internal/model"
	"github.com/mcoot/gamemodules/internal/nonce"
)

type StoreSuite struct {
	suite.Suite
	clock *mocks.MockClock
	store *Store
	ctx   context.Context
	alice model.Identity
	bob   model.Identity
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.store = New(s.clock)
	s.ctx = context.Background()
	s.alice = model.Identity{0xa}
	s.bob = model.Identity{0xb}
}

func (s *StoreSuite) TestSecondClaimIsReplay() {
	s.Require().NoError(s.store.Claim(s.ctx, s.alice, "nonce-0001", time.Minute))
	s.ErrorIs(s.store.Claim(s.ctx, s.alice, "nonce-0001", time.Minute), nonce.ErrReplayed)
}

func (s *StoreSuite) TestNoncesAreScopedPerSigner() {
	s.Require().NoError(s.store.Claim(s.ctx, s.alice, "nonce-0001", time.Minute))
	s.NoError(s.store.Claim(s.ctx, s.bob, "nonce-0001", time.Minute))
}

func (s *StoreSuite) TestClaimExpires() {
	s.Require().NoError(s.store.Claim(s.ctx, s.alice, "nonce-0001", time.Minute))

	s.clock.Advance(59 * time.Second)
	s.ErrorIs(s.store.Claim(s.ctx, s.alice, "nonce-0001", time.Minute), nonce.ErrReplayed)

	s.clock.Advance(time.Second)
	s.NoError(s.store.Claim(s.ctx, s.alice, "nonce-0001", time.Minute))
}

func (s *StoreSuite) TestExpiredEntriesAreDropped() {
	s.Require().NoError(s.store.Claim(s.ctx, s.alice, "nonce-0001", time.Minute))
	s.Require().NoError(s.store.Claim(s.ctx, s.alice, "nonce-0002", time.Minute))
	s.clock.Advance(2 * time.Minute)

	s.Require().NoError(s.store.Claim(s.ctx, s.alice, "nonce-0003", time.Minute))
	s.Equal(1, s.store.Len())
}

func (s *StoreSuite) TestConcurrentClaimsAdmitOne() {
	var wg sync.WaitGroup
	var accepted atomic.Int32
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.store.Claim(s.ctx, s.alice, "nonce-0001", time.Minute) == nil {
				accepted.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), accepted.Load())
}
