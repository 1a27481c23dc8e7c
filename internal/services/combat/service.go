package combat

import (
	"context"
	"log/slog"

	"github.com/mcoot/gamemodules/internal/model"
	"github.com/mcoot/gamemodules/internal/services/auth"
	"github.com/mcoot/gamemodules/internal/storage"
)

// Service applies damage to combatants
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new combat Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("program", model.CombatProgramID)),
	}
}

// RegisterCombatant creates a combatant at addr owned by the caller
func (s *Service) RegisterCombatant(ctx context.Context, caller auth.Caller, addr model.Address, hp uint8) (*model.CombatRecord, error) {
	owner, err := caller.Identity()
	if err != nil {
		return nil, err
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}

	combatant, err := model.NewCombatRecord(owner, hp)
	if err != nil {
		return nil, err
	}
	if err := s.storage.CreateCombatant(ctx, addr, combatant); err != nil {
		return nil, err
	}

	s.logger.Info("combatant registered",
		slog.String("address", string(addr)),
		slog.Int("hp", int(hp)),
	)
	return combatant, nil
}

// Attack lowers the caller's combatant hp by damage. The attack is refused
// with ErrLethalDamage when damage >= hp, so hp never reaches zero.
func (s *Service) Attack(ctx context.Context, caller auth.Caller, addr model.Address, damage uint8) (*model.CombatRecord, error) {
	id, err := caller.Identity()
	if err != nil {
		return nil, err
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}

	combatant, err := s.storage.UpdateCombatant(ctx, addr, func(c *model.CombatRecord) error {
		if c.Owner != id {
			return model.ErrUnauthorized
		}
		return c.ApplyDamage(damage)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("attack applied",
		slog.String("address", string(addr)),
		slog.Int("damage", int(damage)),
		slog.Int("hp", int(combatant.HP)),
	)
	return combatant, nil
}

// GetCombatant returns the combatant at addr
func (s *Service) GetCombatant(ctx context.Context, addr model.Address) (*model.CombatRecord, error) {
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return s.storage.GetCombatant(ctx, addr)
}
