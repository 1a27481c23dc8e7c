package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mcoot/gamemodules/internal/dependencies/clock"
	"github.com/mcoot/gamemodules/internal/model"
	"github.com/mcoot/gamemodules/internal/nonce"
)

type entry struct {
	signer model.Identity
	nonce  string
}

// Store is an in-memory nonce store. Expired entries are dropped on Claim.
type Store struct {
	mu      sync.Mutex
	clock   clock.Clock
	expires map[entry]time.Time
}

// New creates an empty nonce store using clk for expiry
func New(clk clock.Clock) *Store {
	return &Store{
		clock:   clk,
		expires: make(map[entry]time.Time),
	}
}

var _ nonce.Store = (*Store)(nil)

func (s *Store) Claim(ctx context.Context, signer model.Identity, n string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	for e, exp := range s.expires {
		if !now.Before(exp) {
			delete(s.expires, e)
		}
	}

	key := entry{signer: signer, nonce: n}
	if _, ok := s.expires[key]; ok {
		return nonce.ErrReplayed
	}
	s.expires[key] = now.Add(ttl)
	return nil
}

// Len returns the number of remembered nonces
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.expires)
}
