package registry

import (
	"context"
	"log/slog"

	"github.com/mcoot/gamemodules/internal/model"
	"github.com/mcoot/gamemodules/internal/services/auth"
	"github.com/mcoot/gamemodules/internal/storage"
)

// Service registers player profiles and changes their level
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new registry Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("program", model.RegistryProgramID)),
	}
}

// RegisterPlayer creates a level 1 profile at addr owned by the caller
func (s *Service) RegisterPlayer(ctx context.Context, caller auth.Caller, addr model.Address, name string) (*model.ProfileRecord, error) {
	authority, err := caller.Identity()
	if err != nil {
		return nil, err
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	if err := model.ValidateName(name); err != nil {
		return nil, err
	}

	profile := model.NewProfileRecord(authority, name)
	if err := s.storage.CreateProfile(ctx, addr, profile); err != nil {
		return nil, err
	}

	s.logger.Info("player registered",
		slog.String("address", string(addr)),
		slog.String("owner", authority.String()),
	)
	return profile, nil
}

// UpdateLevel overwrites the level of the caller's profile. Any value is
// accepted, including lower levels.
func (s *Service) UpdateLevel(ctx context.Context, caller auth.Caller, addr model.Address, level uint8) (*model.ProfileRecord, error) {
	id, err := caller.Identity()
	if err != nil {
		return nil, err
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.storage.UpdateProfile(ctx, addr, func(p *model.ProfileRecord) error {
		if p.Owner != id {
			return model.ErrUnauthorized
		}
		p.Level = level
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("level updated",
		slog.String("address", string(addr)),
		slog.Int("level", int(level)),
	)
	return profile, nil
}

// GetPlayer returns the profile at addr
func (s *Service) GetPlayer(ctx context.Context, addr model.Address) (*model.ProfileRecord, error) {
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return s.storage.GetProfile(ctx, addr)
}
