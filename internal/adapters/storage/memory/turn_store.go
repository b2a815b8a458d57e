package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fitcoach/internal/domain"
)

// TurnStore keeps conversations in process memory. It backs local
// development and tests; nothing survives a restart.
type TurnStore struct {
	mu    sync.RWMutex
	turns map[domain.Identity][]*domain.Turn
	now   func() time.Time
}

func NewTurnStore() *TurnStore {
	return NewTurnStoreWithClock(time.Now)
}

// NewTurnStoreWithClock injects the timestamp source, for tests.
func NewTurnStoreWithClock(now func() time.Time) *TurnStore {
	return &TurnStore{
		turns: make(map[domain.Identity][]*domain.Turn),
		now:   now,
	}
}

func (s *TurnStore) Append(ctx context.Context, identity domain.Identity, role domain.Role, content string) (*domain.Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	turn := &domain.Turn{
		Identity:  identity,
		Role:      role,
		Content:   content,
		CreatedAt: s.now(),
	}
	s.turns[identity] = append(s.turns[identity], turn)
	return turn, nil
}

func (s *TurnStore) RecentWindow(ctx context.Context, identity domain.Identity, limit int) ([]*domain.Turn, error) {
	if limit <= 0 {
		return nil, &domain.StoreError{Op: "recent window", Err: fmt.Errorf("limit must be positive, got %d", limit)}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.turns[identity]
	if len(all) > limit {
		all = all[len(all)-limit:]
	}

	out := make([]*domain.Turn, len(all))
	copy(out, all)
	return out, nil
}

func (s *TurnStore) Clear(ctx context.Context, identity domain.Identity) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := int64(len(s.turns[identity]))
	delete(s.turns, identity)
	return deleted, nil
}
