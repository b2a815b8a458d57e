package domain

import "context"

// TurnStore defines Turn persistence.
type TurnStore interface {
	// Append assigns the timestamp at call time and durably writes one Turn,
	// returning the stored value.
	Append(ctx context.Context, identity Identity, role Role, content string) (*Turn, error)

	// RecentWindow returns at most limit most-recent Turns for the identity,
	// ascending by CreatedAt regardless of how the backing store ranks them.
	// limit must be positive.
	RecentWindow(ctx context.Context, identity Identity, limit int) ([]*Turn, error)

	// Clear deletes every Turn for the identity and reports how many were
	// removed. Clearing an empty conversation returns 0, not an error.
	Clear(ctx context.Context, identity Identity) (int64, error)
}

// ResponseGenerator defines how the application obtains a model reply for a
// fully assembled prompt.
type ResponseGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
