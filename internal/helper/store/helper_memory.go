// Package store provides the repository implementations behind the ports:
// in-memory stores for tests and dev, PostgreSQL stores for production.
//
// Error contract, all stores:
//   - sentinel.ErrNotFound (wrapped) when the requested entity does not exist
//   - sentinel.ErrConflict (wrapped) when a unique field is already taken
//   - wrapped driver errors for infrastructure failures
package store

import (
	"context"
	"fmt"
	"sync"

	"helperhub/internal/helper/domain"
	id "helperhub/pkg/domain"
	"helperhub/pkg/platform/sentinel"
)

// MemoryHelperStore keeps helper snapshots in memory. Token lookups join
// through the account store, mirroring the SQL join in the Postgres store.
type MemoryHelperStore struct {
	mu       sync.RWMutex
	byID     map[id.HelperID]domain.HelperSnapshot
	accounts *MemoryAccountStore
}

// NewMemoryHelperStore constructs an empty store. accounts may be nil when
// token lookups are not exercised.
func NewMemoryHelperStore(accounts *MemoryAccountStore) *MemoryHelperStore {
	return &MemoryHelperStore{
		byID:     make(map[id.HelperID]domain.HelperSnapshot),
		accounts: accounts,
	}
}

func (s *MemoryHelperStore) Save(_ context.Context, helper *domain.Helper) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := helper.Snapshot()
	for existingID, existing := range s.byID {
		if existing.Email == snapshot.Email && existingID != snapshot.ID {
			return fmt.Errorf("email %s already registered: %w", snapshot.Email, sentinel.ErrConflict)
		}
	}
	s.byID[snapshot.ID] = snapshot
	return nil
}

func (s *MemoryHelperStore) FindByEmail(_ context.Context, email string) (*domain.Helper, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, snapshot := range s.byID {
		if snapshot.Email == email {
			return domain.RehydrateHelper(snapshot), nil
		}
	}
	return nil, fmt.Errorf("helper with email %s: %w", email, sentinel.ErrNotFound)
}

func (s *MemoryHelperStore) FindByPasswordSetupToken(ctx context.Context, token string) (*domain.Helper, error) {
	if s.accounts == nil {
		return nil, fmt.Errorf("helper by setup token: %w", sentinel.ErrNotFound)
	}
	account, err := s.accounts.FindByPasswordSetupToken(ctx, token)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot, ok := s.byID[account.HelperID()]
	if !ok {
		return nil, fmt.Errorf("helper %s: %w", account.HelperID(), sentinel.ErrNotFound)
	}
	return domain.RehydrateHelper(snapshot), nil
}

// Count reports the number of stored helpers. Test-only observability.
func (s *MemoryHelperStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
