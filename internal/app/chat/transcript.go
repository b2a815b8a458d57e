package chat

import (
	"strings"

	"fitcoach/internal/domain"
)

// RenderTranscript renders an ordered sequence of turns as one
// "role: content" line per turn, joined by newlines. Input order is
// preserved exactly; callers supply chronological order. No filtering or
// deduplication happens here. An empty input renders as an empty string,
// which is a fresh conversation.
func RenderTranscript(turns []*domain.Turn) string {
	parts := make([]string, 0, len(turns))
	for _, t := range turns {
		parts = append(parts, string(t.Role)+": "+t.Content)
	}
	return strings.Join(parts, "\n")
}
