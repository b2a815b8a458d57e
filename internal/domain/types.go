package domain

import "time"

// Identity is the opaque identifier of a conversation owner.
type Identity string

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one persisted message in a conversation. Turns are append-only:
// once written they are never mutated, and the only delete is a bulk clear
// of one identity's history.
type Turn struct {
	Identity  Identity
	Role      Role
	Content   string
	CreatedAt time.Time
}
