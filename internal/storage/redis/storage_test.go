package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/gamemodules/internal/model"
	"github.com/mcoot/gamemodules/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
	owner   model.Identity
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
	s.owner = model.Identity{1}
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestNewFailsWhenUnreachable() {
	cfg := DefaultConfig()
	cfg.URL = "redis://" + s.mini.Addr()
	s.mini.Close()

	_, err := New(cfg)
	s.Error(err)
}

func (s *StorageSuite) TestConnectClosesClientOnFailure() {
	client := redis.NewClient(&redis.Options{Addr: s.mini.Addr(), MaxRetries: -1})
	s.mini.Close()

	_, err := connect(client, DefaultConfig())
	s.Require().Error(err)
	s.ErrorIs(client.Ping(s.ctx).Err(), redis.ErrClosed)
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

func (s *StorageSuite) TestProfileStoredInFixedLayout() {
	_ = s.storage.CreateProfile(s.ctx, "hero", model.NewProfileRecord(s.owner, "Hero"))

	raw, err := s.mini.Get(profileKey("hero"))
	s.Require().NoError(err)
	s.Len(raw, model.ProfileRecordSize)
}

func (s *StorageSuite) TestCreateProfileTwiceFails() {
	_ = s.storage.CreateProfile(s.ctx, "hero", model.NewProfileRecord(s.owner, "Hero"))

	err := s.storage.CreateProfile(s.ctx, "hero", model.NewProfileRecord(model.Identity{2}, "Other"))
	s.ErrorIs(err, model.ErrAlreadyExists)

	retrieved, err := s.storage.GetProfile(s.ctx, "hero")
	s.Require().NoError(err)
	s.Equal("Hero", retrieved.Name)
	s.Equal(s.owner, retrieved.Owner)
}

func (s *StorageSuite) TestGetProfileNotFound() {
	_, err := s.storage.GetProfile(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *StorageSuite) TestGetProfileCorrupt() {
	s.Require().NoError(s.mini.Set(profileKey("hero"), "garbage"))

	_, err := s.storage.GetProfile(s.ctx, "hero")
	s.ErrorIs(err, model.ErrCorruptRecord)
}

func (s *StorageSuite) TestPutProfile() {
	_ = s.storage.CreateProfile(s.ctx, "hero", model.NewProfileRecord(s.owner, "Hero"))

	p := model.NewProfileRecord(s.owner, "Hero")
	p.Level = 3
	s.Require().NoError(s.storage.PutProfile(s.ctx, "hero", p))

	retrieved, _ := s.storage.GetProfile(s.ctx, "hero")
	s.Equal(uint8(3), retrieved.Level)
}

func (s *StorageSuite) TestPutProfileRequiresExisting() {
	err := s.storage.PutProfile(s.ctx, "hero", model.NewProfileRecord(s.owner, "Hero"))
	s.ErrorIs(err, model.ErrNotFound)
	s.False(s.mini.Exists(profileKey("hero")))
}

func (s *StorageSuite) TestUpdateProfileApplies() {
	_ = s.storage.CreateProfile(s.ctx, "hero", model.NewProfileRecord(s.owner, "Hero"))

	updated, err := s.storage.UpdateProfile(s.ctx, "hero", func(p *model.ProfileRecord) error {
		p.Level = 50
		return nil
	})
	s.Require().NoError(err)
	s.Equal(uint8(50), updated.Level)

	retrieved, _ := s.storage.GetProfile(s.ctx, "hero")
	s.Equal(uint8(50), retrieved.Level)
}

func (s *StorageSuite) TestUpdateProfileAbortsOnError() {
	_ = s.storage.CreateProfile(s.ctx, "hero", model.NewProfileRecord(s.owner, "Hero"))

	_, err := s.storage.UpdateProfile(s.ctx, "hero", func(p *model.ProfileRecord) error {
		p.Level = 50
		return model.ErrUnauthorized
	})
	s.ErrorIs(err, model.ErrUnauthorized)

	retrieved, _ := s.storage.GetProfile(s.ctx, "hero")
	s.Equal(uint8(1), retrieved.Level)
}

func (s *StorageSuite) TestUpdateProfileNotFound() {
	_, err := s.storage.UpdateProfile(s.ctx, "nonexistent", func(p *model.ProfileRecord) error {
		return nil
	})
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *StorageSuite) TestUpdateProfileConflict() {
	_ = s.storage.CreateProfile(s.ctx, "hero", model.NewProfileRecord(s.owner, "Hero"))

	_, err := s.storage.UpdateProfile(s.ctx, "hero", func(p *model.ProfileRecord) error {
		// A second writer sneaks in between read and commit
		intruder := model.NewProfileRecord(s.owner, "Hero")
		intruder.Level = 9
		return s.storage.PutProfile(s.ctx, "hero", intruder)
	})
	s.ErrorIs(err, storage.ErrConflict)

	retrieved, _ := s.storage.GetProfile(s.ctx, "hero")
	s.Equal(uint8(9), retrieved.Level)
}

// Combatant tests

func (s *StorageSuite) TestCreateAndGetCombatant() {
	c := &model.CombatRecord{Owner: s.owner, HP: 10}

	err := s.storage.CreateCombatant(s.ctx, "hero", c)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetCombatant(s.ctx, "hero")
	s.Require().NoError(err)
	s.Equal(*c, *retrieved)

	raw, err := s.mini.Get(combatantKey("hero"))
	s.Require().NoError(err)
	s.Len(raw, model.CombatRecordSize)
}

func (s *StorageSuite) TestProfileAndCombatantKeysAreSeparate() {
	s.Require().NoError(s.storage.CreateProfile(s.ctx, "hero", model.NewProfileRecord(s.owner, "Hero")))
	s.Require().NoError(s.storage.CreateCombatant(s.ctx, "hero", &model.CombatRecord{Owner: s.owner, HP: 10}))
	s.NotEqual(profileKey("hero"), combatantKey("hero"))
}

func (s *StorageSuite) TestCreateCombatantTwiceFails() {
	_ = s.storage.CreateCombatant(s.ctx, "hero", &model.CombatRecord{Owner: s.owner, HP: 10})

	err := s.storage.CreateCombatant(s.ctx, "hero", &model.CombatRecord{Owner: s.owner, HP: 20})
	s.ErrorIs(err, model.ErrAlreadyExists)
}

func (s *StorageSuite) TestGetCombatantNotFound() {
	_, err := s.storage.GetCombatant(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *StorageSuite) TestPutCombatantRequiresExisting() {
	err := s.storage.PutCombatant(s.ctx, "hero", &model.CombatRecord{Owner: s.owner, HP: 10})
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *StorageSuite) TestUpdateCombatantAbortsOnLethalDamage() {
	_ = s.storage.CreateCombatant(s.ctx, "hero", &model.CombatRecord{Owner: s.owner, HP: 5})

	_, err := s.storage.UpdateCombatant(s.ctx, "hero", func(c *model.CombatRecord) error {
		return c.ApplyDamage(5)
	})
	s.ErrorIs(err, model.ErrLethalDamage)

	retrieved, _ := s.storage.GetCombatant(s.ctx, "hero")
	s.Equal(uint8(5), retrieved.HP)
}

func (s *StorageSuite) TestUpdateCombatantApplies() {
	_ = s.storage.CreateCombatant(s.ctx, "hero", &model.CombatRecord{Owner: s.owner, HP: 10})

	updated, err := s.storage.UpdateCombatant(s.ctx, "hero", func(c *model.CombatRecord) error {
		return c.ApplyDamage(4)
	})
	s.Require().NoError(err)
	s.Equal(uint8(6), updated.HP)
}
