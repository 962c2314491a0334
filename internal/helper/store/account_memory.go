package store

import (
	"context"
	"fmt"
	"sync"

	"helperhub/internal/helper/domain"
	id "helperhub/pkg/domain"
	"helperhub/pkg/platform/sentinel"
)

// MemoryAccountStore keeps account snapshots in memory.
type MemoryAccountStore struct {
	mu         sync.RWMutex
	byHelperID map[id.HelperID]domain.AccountSnapshot
}

func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{byHelperID: make(map[id.HelperID]domain.AccountSnapshot)}
}

func (s *MemoryAccountStore) Create(_ context.Context, account *domain.HelperAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := account.Snapshot()
	if _, exists := s.byHelperID[snapshot.HelperID]; exists {
		return fmt.Errorf("account for helper %s: %w", snapshot.HelperID, sentinel.ErrConflict)
	}
	for _, existing := range s.byHelperID {
		if existing.Email == snapshot.Email {
			return fmt.Errorf("account email %s already registered: %w", snapshot.Email, sentinel.ErrConflict)
		}
		if snapshot.Phone != "" && existing.Phone == snapshot.Phone {
			return fmt.Errorf("account phone %s already registered: %w", snapshot.Phone, sentinel.ErrConflict)
		}
	}
	s.byHelperID[snapshot.HelperID] = snapshot
	return nil
}

func (s *MemoryAccountStore) Update(_ context.Context, account *domain.HelperAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := account.Snapshot()
	if _, exists := s.byHelperID[snapshot.HelperID]; !exists {
		return fmt.Errorf("account for helper %s: %w", snapshot.HelperID, sentinel.ErrNotFound)
	}
	s.byHelperID[snapshot.HelperID] = snapshot
	return nil
}

func (s *MemoryAccountStore) FindByHelperID(_ context.Context, helperID id.HelperID) (*domain.HelperAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot, ok := s.byHelperID[helperID]
	if !ok {
		return nil, fmt.Errorf("account for helper %s: %w", helperID, sentinel.ErrNotFound)
	}
	return domain.RehydrateAccount(snapshot), nil
}

func (s *MemoryAccountStore) FindByEmail(_ context.Context, email string) (*domain.HelperAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, snapshot := range s.byHelperID {
		if snapshot.Email == email {
			return domain.RehydrateAccount(snapshot), nil
		}
	}
	return nil, fmt.Errorf("account with email %s: %w", email, sentinel.ErrNotFound)
}

func (s *MemoryAccountStore) FindByPhone(_ context.Context, phone string) (*domain.HelperAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if phone != "" {
		for _, snapshot := range s.byHelperID {
			if snapshot.Phone == phone {
				return domain.RehydrateAccount(snapshot), nil
			}
		}
	}
	return nil, fmt.Errorf("account with phone %s: %w", phone, sentinel.ErrNotFound)
}

func (s *MemoryAccountStore) FindByPasswordSetupToken(_ context.Context, token string) (*domain.HelperAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if token != "" {
		for _, snapshot := range s.byHelperID {
			if snapshot.TokenValue == token {
				return domain.RehydrateAccount(snapshot), nil
			}
		}
	}
	return nil, fmt.Errorf("account with setup token: %w", sentinel.ErrNotFound)
}
