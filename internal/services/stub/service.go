package stub

import (
	"context"
	"log/slog"

	"github.com/mcoot/gamemodules/internal/services/auth"
)

// Service is a reserved entry point. Initialize accepts any verified caller
// and changes nothing.
type Service struct {
	logger *slog.Logger
}

// New creates a new stub Service
func New(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// Initialize succeeds for any verified caller and has no side effect
func (s *Service) Initialize(ctx context.Context, caller auth.Caller) error {
	payer, err := caller.Identity()
	if err != nil {
		return err
	}
	s.logger.Debug("initialize called", slog.String("payer", payer.String()))
	return nil
}
