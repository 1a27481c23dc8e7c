// Package nonce remembers which request nonces each signer has already used,
// so a captured proof cannot be submitted twice.
package nonce

import (
	"context"
	"errors"
	"time"

	"github.com/mcoot/gamemodules/internal/model"
)

// ErrReplayed is returned when a signer reuses a nonce that is still remembered
var ErrReplayed = errors.New("nonce already used")

// Store records used nonces per signer
type Store interface {
	// Claim marks nonce as used by signer for ttl. It returns ErrReplayed if
	// the pair is already marked.
	Claim(ctx context.Context, signer model.Identity, nonce string, ttl time.Duration) error
}
