// README: Common scalar types shared across modules.
package types

import "github.com/google/uuid"

// ID is an opaque entity identifier (UUID string).
type ID string

func NewID() ID {
	return ID(uuid.NewString())
}

func (id ID) String() string { return string(id) }
