package state

import "github.com/google/uuid"

// NewID returns a fresh element identifier, unique within the process.
func NewID() string {
	return uuid.NewString()
}
