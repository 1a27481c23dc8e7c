package auth

import "github.com/mcoot/gamemodules/internal/model"

// Caller is the authorization context passed into every operation. It carries
// the identity whose control has been proven by the verifier, if any.
type Caller struct {
	identity model.Identity
	verified bool
}

// Verified returns a caller whose control of id has been proven.
// The zero identity never counts as verified.
func Verified(id model.Identity) Caller {
	return Caller{identity: id, verified: !id.IsZero()}
}

// Anonymous returns a caller with no proof attached
func Anonymous() Caller {
	return Caller{}
}

// Identity returns the verified identity or ErrInvalidAuthority
func (c Caller) Identity() (model.Identity, error) {
	if !c.verified {
		return model.Identity{}, model.ErrInvalidAuthority
	}
	return c.identity, nil
}

// IsVerified reports whether a proof was verified for this caller
func (c Caller) IsVerified() bool {
	return c.verified
}
