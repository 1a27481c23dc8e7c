package storage

import (
	"context"
	"errors"

	"github.com/mcoot/gamemodules/internal/model"
)

// ErrConflict is returned when a concurrent writer changed a record during an update.
// The update is not applied and is not retried.
var ErrConflict = errors.New("record modified concurrently")

// ProfileMutator changes a profile in place. Returning an error aborts the update.
type ProfileMutator func(p *model.ProfileRecord) error

// CombatMutator changes a combatant in place. Returning an error aborts the update.
type CombatMutator func(c *model.CombatRecord) error

// Storage defines the record store. Profiles and combatants live in separate
// key spaces. Every call is atomic for its address.
type Storage interface {
	// Profile operations
	CreateProfile(ctx context.Context, addr model.Address, p *model.ProfileRecord) error
	GetProfile(ctx context.Context, addr model.Address) (*model.ProfileRecord, error)
	PutProfile(ctx context.Context, addr model.Address, p *model.ProfileRecord) error
	UpdateProfile(ctx context.Context, addr model.Address, fn ProfileMutator) (*model.ProfileRecord, error)

	// Combatant operations
	CreateCombatant(ctx context.Context, addr model.Address, c *model.CombatRecord) error
	GetCombatant(ctx context.Context, addr model.Address) (*model.CombatRecord, error)
	PutCombatant(ctx context.Context, addr model.Address, c *model.CombatRecord) error
	UpdateCombatant(ctx context.Context, addr model.Address, fn CombatMutator) (*model.CombatRecord, error)
}
