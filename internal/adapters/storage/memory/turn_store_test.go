package memory_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"fitcoach/internal/adapters/storage/memory"
	"fitcoach/internal/domain"
)

const id = domain.Identity("someone")

// tickingClock returns strictly increasing timestamps.
func tickingClock() func() time.Time {
	base := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
}

func TestRecentWindowReturnsLastNAscending(t *testing.T) {
	ctx := context.Background()
	store := memory.NewTurnStoreWithClock(tickingClock())

	for i := 0; i < 7; i++ {
		if _, err := store.Append(ctx, id, domain.RoleUser, fmt.Sprintf("msg-%d", i)); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	window, err := store.RecentWindow(ctx, id, 3)
	if err != nil {
		t.Fatalf("RecentWindow failed: %v", err)
	}
	if len(window) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(window))
	}

	want := []string{"msg-4", "msg-5", "msg-6"}
	for i, turn := range window {
		if turn.Content != want[i] {
			t.Fatalf("window[%d] = %q, want %q", i, turn.Content, want[i])
		}
		if i > 0 && window[i].CreatedAt.Before(window[i-1].CreatedAt) {
			t.Fatalf("window is not ascending at index %d", i)
		}
	}
}

func TestRecentWindowRejectsNonPositiveLimit(t *testing.T) {
	store := memory.NewTurnStore()

	_, err := store.RecentWindow(context.Background(), id, 0)
	var storeErr *domain.StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected StoreError for limit 0, got %v", err)
	}
}

func TestClearThenWindowIsEmpty(t *testing.T) {
	ctx := context.Background()
	store := memory.NewTurnStoreWithClock(tickingClock())

	if _, err := store.Append(ctx, id, domain.RoleUser, "hello"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if _, err := store.Append(ctx, id, domain.RoleAssistant, "hi"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	deleted, err := store.Clear(ctx, id)
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected 2 deleted, got %d", deleted)
	}

	window, err := store.RecentWindow(ctx, id, 10)
	if err != nil {
		t.Fatalf("RecentWindow failed: %v", err)
	}
	if len(window) != 0 {
		t.Fatalf("expected empty window after clear, got %d turns", len(window))
	}
}

func TestClearEmptyIdentityReturnsZero(t *testing.T) {
	store := memory.NewTurnStore()

	deleted, err := store.Clear(context.Background(), domain.Identity("nobody"))
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if deleted != 0 {
		t.Fatalf("expected 0 deleted, got %d", deleted)
	}
}

func TestIdentitiesAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := memory.NewTurnStoreWithClock(tickingClock())

	other := domain.Identity("someone-else")
	if _, err := store.Append(ctx, id, domain.RoleUser, "mine"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if _, err := store.Append(ctx, other, domain.RoleUser, "theirs"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if _, err := store.Clear(ctx, other); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	window, err := store.RecentWindow(ctx, id, 10)
	if err != nil {
		t.Fatalf("RecentWindow failed: %v", err)
	}
	if len(window) != 1 || window[0].Content != "mine" {
		t.Fatalf("clearing one identity touched another: %v", window)
	}
}
