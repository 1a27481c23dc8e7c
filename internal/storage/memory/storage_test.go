package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/mcoot/gamemodules/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
	owner   model.Identity
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
	s.owner = model.Identity{1}
}

// Profile tests

func (s *StorageSuite) TestCreateAndGetProfile() {
	p := model.NewProfileRecord(s.owner, "Hero")

	err := s.storage.CreateProfile(s.ctx, "hero", p)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetProfile(s.ctx, "hero")
	s.Require().NoError(err)
	s.Equal(*p, *retrieved)
}

func (s *StorageSuite) TestCreateProfileTwiceFails() {
	_ = s.storage.CreateProfile(s.ctx, "hero", model.NewProfileRecord(s.owner, "Hero"))

	err := s.storage.CreateProfile(s.ctx, "hero", model.NewProfileRecord(model.Identity{2}, "Other"))
	s.ErrorIs(err, model.ErrAlreadyExists)

	retrieved, err := s.storage.GetProfile(s.ctx, "hero")
	s.Require().NoError(err)
	s.Equal("Hero", retrieved.Name)
}

func (s *StorageSuite) TestGetProfileNotFound() {
	_, err := s.storage.GetProfile(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *StorageSuite) TestReturnedProfileIsACopy() {
	_ = s.storage.CreateProfile(s.ctx, "hero", model.NewProfileRecord(s.owner, "Hero"))

	retrieved, _ := s.storage.GetProfile(s.ctx, "hero")
	retrieved.Level = 99

	again, _ := s.storage.GetProfile(s.ctx, "hero")
	s.Equal(uint8(1), again.Level)
}

func (s *StorageSuite) TestPutProfileRequiresExisting() {
	err := s.storage.PutProfile(s.ctx, "hero", model.NewProfileRecord(s.owner, "Hero"))
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *StorageSuite) TestUpdateProfileApplies() {
	_ = s.storage.CreateProfile(s.ctx, "hero", model.NewProfileRecord(s.owner, "Hero"))

	updated, err := s.storage.UpdateProfile(s.ctx, "hero", func(p *model.ProfileRecord) error {
		p.Level = 7
		return nil
	})
	s.Require().NoError(err)
	s.Equal(uint8(7), updated.Level)

	retrieved, _ := s.storage.GetProfile(s.ctx, "hero")
	s.Equal(uint8(7), retrieved.Level)
}

func (s *StorageSuite) TestUpdateProfileAbortsOnError() {
	_ = s.storage.CreateProfile(s.ctx, "hero", model.NewProfileRecord(s.owner, "Hero"))
	boom := errors.New("boom")

	_, err := s.storage.UpdateProfile(s.ctx, "hero", func(p *model.ProfileRecord) error {
		p.Level = 7
		return boom
	})
	s.ErrorIs(err, boom)

	retrieved, _ := s.storage.GetProfile(s.ctx, "hero")
	s.Equal(uint8(1), retrieved.Level)
}

func (s *StorageSuite) TestUpdateProfileNotFound() {
	_, err := s.storage.UpdateProfile(s.ctx, "nonexistent", func(p *model.ProfileRecord) error {
		return nil
	})
	s.ErrorIs(err, model.ErrNotFound)
}

// Combatant tests

func (s *StorageSuite) TestCreateAndGetCombatant() {
	c := &model.CombatRecord{Owner: s.owner, HP: 10}

	err := s.storage.CreateCombatant(s.ctx, "hero", c)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetCombatant(s.ctx, "hero")
	s.Require().NoError(err)
	s.Equal(*c, *retrieved)
}

func (s *StorageSuite) TestProfileAndCombatantShareAddressIndependently() {
	s.Require().NoError(s.storage.CreateProfile(s.ctx, "hero", model.NewProfileRecord(s.owner, "Hero")))
	s.Require().NoError(s.storage.CreateCombatant(s.ctx, "hero", &model.CombatRecord{Owner: s.owner, HP: 10}))
}

func (s *StorageSuite) TestCreateCombatantTwiceFails() {
	_ = s.storage.CreateCombatant(s.ctx, "hero", &model.CombatRecord{Owner: s.owner, HP: 10})

	err := s.storage.CreateCombatant(s.ctx, "hero", &model.CombatRecord{Owner: s.owner, HP: 20})
	s.ErrorIs(err, model.ErrAlreadyExists)
}

func (s *StorageSuite) TestUpdateCombatantAbortsOnError() {
	_ = s.storage.CreateCombatant(s.ctx, "hero", &model.CombatRecord{Owner: s.owner, HP: 5})

	_, err := s.storage.UpdateCombatant(s.ctx, "hero", func(c *model.CombatRecord) error {
		return c.ApplyDamage(5)
	})
	s.ErrorIs(err, model.ErrLethalDamage)

	retrieved, _ := s.storage.GetCombatant(s.ctx, "hero")
	s.Equal(uint8(5), retrieved.HP)
}

func (s *StorageSuite) TestConcurrentUpdatesAreSerialized() {
	_ = s.storage.CreateCombatant(s.ctx, "hero", &model.CombatRecord{Owner: s.owner, HP: 201})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.storage.UpdateCombatant(s.ctx, "hero", func(c *model.CombatRecord) error {
				return c.ApplyDamage(2)
			})
		}()
	}
	wg.Wait()

	retrieved, _ := s.storage.GetCombatant(s.ctx, "hero")
	s.Equal(uint8(1), retrieved.HP)
}
