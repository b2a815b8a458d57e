package chat

import (
	"context"
	"strings"

	"fitcoach/internal/domain"
	"fitcoach/internal/observability"
)

// Service handles one chat turn end to end: persist the user turn, fetch a
// bounded window of recent turns, generate a reply, persist the reply.
//
// There is no per-identity mutual exclusion: two concurrent requests for the
// same identity may interleave their turns in the log. Within one request
// the steps always run strictly in order, so the user turn's timestamp
// precedes the assistant turn's timestamp for that request.
type Service struct {
	store     domain.TurnStore
	generator domain.ResponseGenerator

	contextWindow int
	historyLimit  int
	maxMessageLen int
}

type Options struct {
	ContextWindow int // turns fetched as generation context
	HistoryLimit  int // turns returned for full-history display
	MaxMessageLen int // runes kept of an incoming message
}

func NewService(store domain.TurnStore, generator domain.ResponseGenerator, opts Options) *Service {
	if opts.ContextWindow <= 0 {
		opts.ContextWindow = 10
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = 50
	}
	if opts.MaxMessageLen <= 0 {
		opts.MaxMessageLen = 1000
	}

	return &Service{
		store:         store,
		generator:     generator,
		contextWindow: opts.ContextWindow,
		historyLimit:  opts.HistoryLimit,
		maxMessageLen: opts.MaxMessageLen,
	}
}

// SendMessage runs one chat turn and returns the generated reply.
//
// The user turn is persisted before generation and is never rolled back: a
// failed generation leaves a user turn with no matching reply. If persisting
// the reply fails, the reply is still returned and the failure is only
// logged, since from the caller's perspective the turn succeeded.
func (s *Service) SendMessage(ctx context.Context, identity domain.Identity, message string) (string, error) {
	log := observability.LoggerFromContext(ctx).With("identity", identity)

	sanitized := sanitizeMessage(message, s.maxMessageLen)
	if sanitized == "" {
		return "", &domain.InvalidInputError{Reason: "message must not be empty"}
	}

	if _, err := s.store.Append(ctx, identity, domain.RoleUser, sanitized); err != nil {
		log.Error("failed to append user turn", "error", err)
		return "", err
	}

	// Includes the turn appended above.
	window, err := s.store.RecentWindow(ctx, identity, s.contextWindow)
	if err != nil {
		log.Error("failed to load context window", "error", err)
		return "", err
	}

	intent := ClassifyIntent(sanitized)
	prompt := BuildPrompt(sanitized, RenderTranscript(window), intent)

	reply, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.Error("generation failed", "intent", intent, "error", err)
		return "", err
	}

	if _, err := s.store.Append(ctx, identity, domain.RoleAssistant, reply); err != nil {
		// Best effort: the reply exists, so the caller still gets it even
		// though it was not durably saved.
		log.Error("failed to append assistant turn", "error", err)
	}

	log.Info("chat turn completed", "intent", intent, "window", len(window))
	return reply, nil
}

// History returns the conversation for display, ascending by CreatedAt,
// bounded to the configured history limit.
func (s *Service) History(ctx context.Context, identity domain.Identity) ([]*domain.Turn, error) {
	return s.store.RecentWindow(ctx, identity, s.historyLimit)
}

// ClearHistory deletes the identity's conversation and reports how many
// turns were removed.
func (s *Service) ClearHistory(ctx context.Context, identity domain.Identity) (int64, error) {
	log := observability.LoggerFromContext(ctx).With("identity", identity)

	deleted, err := s.store.Clear(ctx, identity)
	if err != nil {
		log.Error("failed to clear history", "error", err)
		return 0, err
	}

	log.Info("history cleared", "deleted", deleted)
	return deleted, nil
}

// sanitizeMessage trims surrounding whitespace and truncates to at most max
// runes, so a multi-byte character is never cut mid-sequence.
func sanitizeMessage(message string, max int) string {
	trimmed := strings.TrimSpace(message)
	runes := []rune(trimmed)
	if len(runes) > max {
		return string(runes[:max])
	}
	return trimmed
}
