package memory

import (
	"context"
	"sync"

	"github.com/mcoot/gamemodules/internal/model"
	"github.com/mcoot/gamemodules/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Records are copied on the way in and out so callers never share state.
type Storage struct {
	mu sync.RWMutex

	profiles   map[model.Address]model.ProfileRecord
	combatants map[model.Address]model.CombatRecord
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		profiles:   make(map[model.Address]model.ProfileRecord),
		combatants: make(map[model.Address]model.CombatRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Profile operations

func (s *Storage) CreateProfile(ctx context.Context, addr model.Address, p *model.ProfileRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[addr]; ok {
		return model.ErrAlreadyExists
	}
	s.profiles[addr] = *p
	return nil
}

func (s *Storage) GetProfile(ctx context.Context, addr model.Address) (*model.ProfileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[addr]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &p, nil
}

func (s *Storage) PutProfile(ctx context.Context, addr model.Address, p *model.ProfileRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[addr]; !ok {
		return model.ErrNotFound
	}
	s.profiles[addr] = *p
	return nil
}

func (s *Storage) UpdateProfile(ctx context.Context, addr model.Address, fn storage.ProfileMutator) (*model.ProfileRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[addr]
	if !ok {
		return nil, model.ErrNotFound
	}
	if err := fn(&p); err != nil {
		return nil, err
	}
	s.profiles[addr] = p
	return &p, nil
}

// Combatant operations

func (s *Storage) CreateCombatant(ctx context.Context, addr model.Address, c *model.CombatRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.combatants[addr]; ok {
		return model.ErrAlreadyExists
	}
	s.combatants[addr] = *c
	return nil
}

func (s *Storage) GetCombatant(ctx context.Context, addr model.Address) (*model.CombatRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.combatants[addr]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &c, nil
}

func (s *Storage) PutCombatant(ctx context.Context, addr model.Address, c *model.CombatRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.combatants[addr]; !ok {
		return model.ErrNotFound
	}
	s.combatants[addr] = *c
	return nil
}

func (s *Storage) UpdateCombatant(ctx context.Context, addr model.Address, fn storage.CombatMutator) (*model.CombatRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.combatants[addr]
	if !ok {
		return nil, model.ErrNotFound
	}
	if err := fn(&c); err != nil {
		return nil, err
	}
	s.combatants[addr] = c
	return &c, nil
}
