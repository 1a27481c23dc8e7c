package auth

import (
	"context"
	"crypto/ed25519"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/mcoot/gamemodules/internal/dependencies/clock"
	"github.com/mcoot/gamemodules/internal/model"
	"github.com/mcoot/gamemodules/internal/nonce"
)

// Errors
var (
	ErrMissingProof     = fmt.Errorf("%w: missing proof", model.ErrInvalidAuthority)
	ErrInvalidSignature = fmt.Errorf("%w: signature does not verify", model.ErrInvalidAuthority)
	ErrStaleProof       = fmt.Errorf("%w: proof timestamp outside allowed window", model.ErrInvalidAuthority)
	ErrInvalidNonce     = fmt.Errorf("%w: nonce must be %d-%d characters of [A-Za-z0-9_-]", model.ErrInvalidAuthority, MinNonceLength, MaxNonceLength)
	ErrReplayedProof    = fmt.Errorf("%w: proof already used", model.ErrInvalidAuthority)
)

// Nonce length bounds
const (
	MinNonceLength = 8
	MaxNonceLength = 128
)

// Proof is the evidence a request carries that its sender controls Signer
type Proof struct {
	Signer    model.Identity
	Signature []byte
	Timestamp time.Time
	Nonce     string
	Method    string
	Path      string
	Body      []byte
}

// Service verifies ed25519 request proofs. Each accepted proof's nonce is
// claimed so the same proof is rejected if it is submitted again.
type Service struct {
	clock   clock.Clock
	nonces  nonce.Store
	maxSkew time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	MaxSkew time.Duration `env:"GMOD_AUTH_MAX_SKEW" envDefault:"5m"`
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		MaxSkew: 5 * time.Minute,
	}
}

// New creates a new auth Service
func New(clock clock.Clock, nonces nonce.Store, cfg Config) *Service {
	if cfg.MaxSkew == 0 {
		cfg.MaxSkew = DefaultConfig().MaxSkew
	}
	return &Service{
		clock:   clock,
		nonces:  nonces,
		maxSkew: cfg.MaxSkew,
	}
}

// NonceTTL is how long a claimed nonce is remembered: the whole span of
// timestamps Verify accepts
func (s *Service) NonceTTL() time.Duration {
	return 2 * s.maxSkew
}

// Verify checks the proof and returns a verified Caller for its signer.
// The nonce is only claimed once the signature checks out.
func (s *Service) Verify(ctx context.Context, p Proof) (Caller, error) {
	if p.Signer.IsZero() || len(p.Signature) == 0 || p.Nonce == "" {
		return Anonymous(), ErrMissingProof
	}
	if !validNonce(p.Nonce) {
		return Anonymous(), ErrInvalidNonce
	}

	if !clock.Within(s.clock, p.Timestamp, s.maxSkew) {
		return Anonymous(), ErrStaleProof
	}

	digest := Digest(p.Method, p.Path, p.Timestamp, p.Nonce, p.Body)
	if !ed25519.Verify(ed25519.PublicKey(p.Signer[:]), digest[:], p.Signature) {
		return Anonymous(), ErrInvalidSignature
	}

	if err := s.nonces.Claim(ctx, p.Signer, p.Nonce, s.NonceTTL()); err != nil {
		if errors.Is(err, nonce.ErrReplayed) {
			return Anonymous(), ErrReplayedProof
		}
		return Anonymous(), err
	}

	return Verified(p.Signer), nil
}

func validNonce(n string) bool {
	if len(n) < MinNonceLength || len(n) > MaxNonceLength {
		return false
	}
	for _, r := range n {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}

// Digest is the BLAKE2b-256 hash a signer signs for a request
func Digest(method, path string, ts time.Time, nonce string, body []byte) [32]byte {
	var tsBuf [8]byte
	binary.BigEndian.PutUint64(tsBuf[:], uint64(ts.Unix()))

	msg := make([]byte, 0, len(method)+len(path)+len(tsBuf)+len(nonce)+len(body)+4)
	msg = append(msg, method...)
	msg = append(msg, '\n')
	msg = append(msg, path...)
	msg = append(msg, '\n')
	msg = append(msg, tsBuf[:]...)
	msg = append(msg, '\n')
	msg = append(msg, nonce...)
	msg = append(msg, '\n')
	msg = append(msg, body...)
	return blake2b.Sum256(msg)
}

// Sign produces the signature Verify expects for a request
func Sign(key ed25519.PrivateKey, method, path string, ts time.Time, nonce string, body []byte) []byte {
	digest := Digest(method, path, ts, nonce, body)
	return ed25519.Sign(key, digest[:])
}

// IdentityOf returns the Identity for an ed25519 key pair
func IdentityOf(key ed25519.PrivateKey) model.Identity {
	id, _ := model.IdentityFromBytes(key.Public().(ed25519.PublicKey))
	return id
}

// Request headers carrying a proof
const (
	HeaderSigner    = "X-Signer"
	HeaderSignature = "X-Signature"
	HeaderTimestamp = "X-Timestamp"
	HeaderNonce     = "X-Nonce"
)
