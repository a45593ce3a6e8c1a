package core

import "github.com/google/uuid"

// RootID is the reserved identifier of the root directory. The root always
// exists, never has a parent and is never deleted.
const RootID = "root"

// NewID returns a fresh opaque identifier for a note or directory.
// Identifiers are 128-bit random UUIDs, so an id is never handed out twice by
// one notebook and collides with another notebook's ids only with negligible
// probability. Deleted ids are never reused.
func NewID() string {
	return uuid.NewString()
}
