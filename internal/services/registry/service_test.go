package registry

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/gamemodules/internal/model"
	"github.com/mcoot/gamemodules/internal/services/auth"
	"github.com/mcoot/gamemodules/internal/storage/memory"
	"github.com/mcoot/gamemodules/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
	alice   auth.Caller
	bob     auth.Caller
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
	s.alice = auth.Verified(model.Identity{0xa})
	s.bob = auth.Verified(model.Identity{0xb})
}

// RegisterPlayer tests

func (s *ServiceSuite) TestRegisterPlayerSucceeds() {
	profile, err := s.service.RegisterPlayer(s.ctx, s.alice, "hero", "Hero")
	s.Require().NoError(err)

	s.Equal(model.Identity{0xa}, profile.Owner)
	s.Equal("Hero", profile.Name)
	s.Equal(uint8(1), profile.Level)
}

func (s *ServiceSuite) TestRegisterPlayerPersistsProfile() {
	_, _ = s.service.RegisterPlayer(s.ctx, s.alice, "hero", "Hero")

	stored, err := s.storage.GetProfile(s.ctx, "hero")
	s.Require().NoError(err)
	s.Equal("Hero", stored.Name)
	s.Equal(uint8(1), stored.Level)
}

func (s *ServiceSuite) TestRegisterPlayerTwiceFails() {
	_, _ = s.service.RegisterPlayer(s.ctx, s.alice, "hero", "Hero")

	_, err := s.service.RegisterPlayer(s.ctx, s.bob, "hero", "Impostor")
	s.ErrorIs(err, model.ErrAlreadyExists)

	stored, _ := s.storage.GetProfile(s.ctx, "hero")
	s.Equal("Hero", stored.Name)
	s.Equal(model.Identity{0xa}, stored.Owner)
}

func (s *ServiceSuite) TestRegisterPlayerSameCallerTwiceFails() {
	_, _ = s.service.RegisterPlayer(s.ctx, s.alice, "hero", "Hero")

	_, err := s.service.RegisterPlayer(s.ctx, s.alice, "hero", "Hero")
	s.ErrorIs(err, model.ErrAlreadyExists)
}

func (s *ServiceSuite) TestRegisterPlayerRequiresVerifiedCaller() {
	_, err := s.service.RegisterPlayer(s.ctx, auth.Anonymous(), "hero", "Hero")
	s.ErrorIs(err, model.ErrInvalidAuthority)

	_, err = s.storage.GetProfile(s.ctx, "hero")
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *ServiceSuite) TestRegisterPlayerRejectsBadName() {
	_, err := s.service.RegisterPlayer(s.ctx, s.alice, "hero", "")
	s.ErrorIs(err, model.ErrInvalidName)

	_, err = s.service.RegisterPlayer(s.ctx, s.alice, "hero", strings.Repeat("x", model.MaxNameLength+1))
	s.ErrorIs(err, model.ErrInvalidName)
}

func (s *ServiceSuite) TestRegisterPlayerRejectsBadAddress() {
	_, err := s.service.RegisterPlayer(s.ctx, s.alice, "", "Hero")
	s.ErrorIs(err, model.ErrInvalidAddress)
}

// UpdateLevel tests

func (s *ServiceSuite) TestUpdateLevelByOwner() {
	_, _ = s.service.RegisterPlayer(s.ctx, s.alice, "hero", "Hero")

	profile, err := s.service.UpdateLevel(s.ctx, s.alice, "hero", 50)
	s.Require().NoError(err)
	s.Equal(uint8(50), profile.Level)
}

func (s *ServiceSuite) TestUpdateLevelAllowsDecreaseAndZero() {
	_, _ = s.service.RegisterPlayer(s.ctx, s.alice, "hero", "Hero")
	_, _ = s.service.UpdateLevel(s.ctx, s.alice, "hero", 200)

	profile, err := s.service.UpdateLevel(s.ctx, s.alice, "hero", 0)
	s.Require().NoError(err)
	s.Equal(uint8(0), profile.Level)
}

func (s *ServiceSuite) TestUpdateLevelByNonOwnerFails() {
	_, _ = s.service.RegisterPlayer(s.ctx, s.alice, "hero", "Hero")

	for level := 0; level <= 255; level++ {
		_, err := s.service.UpdateLevel(s.ctx, s.bob, "hero", uint8(level))
		s.Require().ErrorIs(err, model.ErrUnauthorized)
	}

	stored, _ := s.service.GetPlayer(s.ctx, "hero")
	s.Equal(uint8(1), stored.Level)
}

func (s *ServiceSuite) TestUpdateLevelNotFound() {
	_, err := s.service.UpdateLevel(s.ctx, s.alice, "nobody", 5)
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *ServiceSuite) TestUpdateLevelRequiresVerifiedCaller() {
	_, _ = s.service.RegisterPlayer(s.ctx, s.alice, "hero", "Hero")

	_, err := s.service.UpdateLevel(s.ctx, auth.Anonymous(), "hero", 5)
	s.ErrorIs(err, model.ErrInvalidAuthority)
}

func (s *ServiceSuite) TestHeroScenario() {
	profile, err := s.service.RegisterPlayer(s.ctx, s.alice, "addr", "Hero")
	s.Require().NoError(err)
	s.Equal(model.Identity{0xa}, profile.Owner)
	s.Equal(uint8(1), profile.Level)

	profile, err = s.service.UpdateLevel(s.ctx, s.alice, "addr", 50)
	s.Require().NoError(err)
	s.Equal(uint8(50), profile.Level)

	_, err = s.service.UpdateLevel(s.ctx, s.bob, "addr", 60)
	s.ErrorIs(err, model.ErrUnauthorized)

	stored, err := s.service.GetPlayer(s.ctx, "addr")
	s.Require().NoError(err)
	s.Equal(uint8(50), stored.Level)
}

// GetPlayer tests

func (s *ServiceSuite) TestGetPlayerNotFound() {
	_, err := s.service.GetPlayer(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *ServiceSuite) TestMutationsAreLoggedWithProgram() {
	logger, logs := testutil.CaptureLogger()
	service := New(s.storage, logger)

	_, err := service.RegisterPlayer(s.ctx, s.alice, "hero", "Hero")
	s.Require().NoError(err)
	_, err = service.UpdateLevel(s.ctx, s.alice, "hero", 3)
	s.Require().NoError(err)

	registered := logs.Find("player registered")
	s.Require().NotNil(registered)
	s.Equal(model.RegistryProgramID, registered["program"])
	s.Equal("hero", registered["address"])

	updated := logs.Find("level updated")
	s.Require().NotNil(updated)
	s.EqualValues(3, updated["level"])
}
