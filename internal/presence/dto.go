package presence

import (
	"github.com/google/uuid"
)

// TouchCommand marks a user online. MessageSent suppresses the decay sweep
// for users who already signalled they are seeking contact.
type TouchCommand struct {
	UserID      uuid.UUID
	Location    string
	MessageSent bool
}
